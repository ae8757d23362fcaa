package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make genera un slug URL-safe a partir de un nombre: minúsculas, sin acentos,
// espacios y símbolos reemplazados por guiones.
func Make(name string) string {
	stripped := stripAccents(name)

	var b strings.Builder
	lastDash := true // evita guion inicial
	for _, r := range strings.ToLower(stripped) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// WithID añade un prefijo del ID al slug para garantizar unicidad (mismo criterio
// que el slug "nombre-12345678" del catálogo).
func WithID(name, id string) string {
	base := Make(name)
	if len(id) >= 8 {
		id = id[:8]
	}
	if base == "" {
		return id
	}
	return base + "-" + id
}

// stripAccents descompone a NFD y elimina las marcas diacríticas (á -> a, ñ -> n).
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
