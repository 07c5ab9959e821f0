package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripper descompone (NFD), elimina las marcas diacríticas y recompone (NFC).
var stripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// StripAccents elimina los acentos de una cadena ("Pérez" -> "Perez").
// Se usa para normalizar términos de búsqueda antes de comparar con ILIKE.
func StripAccents(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeSearch prepara un término de búsqueda: sin acentos, sin espacios
// sobrantes y en minúsculas.
func NormalizeSearch(s string) string {
	return strings.ToLower(strings.TrimSpace(StripAccents(s)))
}
