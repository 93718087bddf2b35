// Package textutil provides text normalization helpers shared by the
// domain entities.
package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title trims surrounding whitespace and converts the string to
// word-by-word title case ("mantenimiento anual" -> "Mantenimiento Anual").
// A fresh Caser per call: Casers are stateful and not safe for
// concurrent use.
func Title(s string) string {
	return cases.Title(language.Spanish).String(strings.TrimSpace(s))
}

// Clean trims surrounding whitespace.
func Clean(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
