// Package search coincidencias de texto para los filtros de la consola:
// sin distinguir mayúsculas ni tildes ("cafe" encuentra "Café").
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza s quitando marcas diacríticas y aplicando case folding.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(strings.TrimSpace(out))
}

// Contains indica si term aparece en s. Un término vacío coincide con todo.
func Contains(s, term string) bool {
	ft := Fold(term)
	if ft == "" {
		return true
	}
	return strings.Contains(Fold(s), ft)
}

// AnyContains indica si term aparece en alguno de los campos.
func AnyContains(term string, fields ...string) bool {
	ft := Fold(term)
	if ft == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Fold(f), ft) {
			return true
		}
	}
	return false
}
