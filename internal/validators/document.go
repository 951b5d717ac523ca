// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joaquin Valdez

// Package validators holds the pure input classification used by the
// login flow: document numbers (DNI/RUC) and verification codes are
// checked locally before any network call is made.
package validators

import "strings"

// DocumentClass is the result of classifying a raw document input.
type DocumentClass int

const (
	// DocumentInvalid means the digit count matches neither accepted
	// format (9, 10 or more than 11 digits).
	DocumentInvalid DocumentClass = iota

	// DocumentIncomplete means fewer than 8 digits were entered so far.
	DocumentIncomplete

	// DocumentDNI is a well-formed 8-digit national ID.
	DocumentDNI

	// DocumentRUC is a well-formed 11-digit tax ID.
	DocumentRUC
)

// EsValido reports whether the class is one of the two accepted
// document formats.
func (c DocumentClass) EsValido() bool {
	return c == DocumentDNI || c == DocumentRUC
}

const codeLength = 6

// ClassifyDocument strips every non-digit rune from raw and classifies
// the remainder. It is total: every input maps to exactly one class
// and a user-facing message; there is no failure mode.
func ClassifyDocument(raw string) (DocumentClass, string) {
	digits := OnlyDigits(raw)

	switch n := len(digits); {
	case n == 8:
		return DocumentDNI, "DNI válido"
	case n == 11:
		return DocumentRUC, "RUC válido"
	case n < 8:
		return DocumentIncomplete, "Faltan dígitos: se esperan 8 (DNI) u 11 (RUC)"
	case n > 11:
		return DocumentInvalid, "Demasiados dígitos para un documento"
	default:
		return DocumentInvalid, "Longitud inválida: ni DNI (8 dígitos) ni RUC (11 dígitos)"
	}
}

// ValidCode reports whether code is exactly six digits, the only shape
// the verify-challenge endpoint accepts.
func ValidCode(code string) bool {
	if len(code) != codeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// OnlyDigits returns raw with every non-digit rune removed.
func OnlyDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
