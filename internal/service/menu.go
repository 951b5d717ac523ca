// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joaquin Valdez

package service

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/jmvaldez/portero/models"
)

// folderIcon marks synthesized group nodes, which have no icon of
// their own in the granted data.
const folderIcon = "folder"

// BuildMenu derives the navigation tree from the granted view list.
// Deterministic and pure: the same input always yields the same tree.
//
// Single-segment routes become top-level nodes directly. Nested routes
// are grouped by first segment under a synthesized parent whose orden
// is taken from its first child after the submenu sort. Each parent is
// inserted before the first existing top-level item with a greater
// orden, then the whole top level is sorted ascending by orden as a
// final stabilizing pass; the insert-then-sort keeps manually
// positioned parents close to their intended slot even before the
// final pass corrects ties.
func BuildMenu(vistas []models.Vista) []models.MenuNode {
	var top []models.MenuNode
	groups := make(map[string]*models.MenuNode)
	var groupKeys []string

	for _, v := range vistas {
		segments := v.Segments()
		if len(segments) <= 1 {
			top = append(top, nodeFromVista(v))
			continue
		}

		key := segments[0]
		parent, ok := groups[key]
		if !ok {
			parent = &models.MenuNode{
				Path: "/" + key,
				Name: capitalize(key),
				Icon: folderIcon,
			}
			groups[key] = parent
			groupKeys = append(groupKeys, key)
		}
		parent.Submenu = append(parent.Submenu, nodeFromVista(v))
	}

	for _, key := range groupKeys {
		parent := groups[key]

		sort.SliceStable(parent.Submenu, func(i, j int) bool {
			return parent.Submenu[i].Orden < parent.Submenu[j].Orden
		})
		parent.Orden = parent.Submenu[0].Orden

		at := len(top)
		for i, node := range top {
			if node.Orden > parent.Orden {
				at = i
				break
			}
		}
		top = append(top[:at], append([]models.MenuNode{*parent}, top[at:]...)...)
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Orden < top[j].Orden
	})

	return top
}

func nodeFromVista(v models.Vista) models.MenuNode {
	return models.MenuNode{
		Path:      v.Ruta,
		Name:      v.Nombre,
		Icon:      v.Icono,
		Categoria: v.Categoria,
		Orden:     v.Orden,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(r)) + s[size:]
}
