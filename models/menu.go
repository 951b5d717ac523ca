package models

// MenuNode is a display-tree entity derived from the granted Vista
// list. A node with a non-empty Submenu is synthesized by the menu
// builder to group nested routes and is never itself a grantable
// Vista. The tree is rebuilt from scratch on every permission load and
// never persisted.
type MenuNode struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Categoria string `json:"categoria"`
	Orden     int    `json:"orden"`

	// Submenu holds the grouped children of a synthesized parent,
	// sorted ascending by Orden.
	Submenu []MenuNode `json:"submenu,omitempty"`
}
