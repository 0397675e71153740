package models

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugify turns a bucket name into a URL safe identifier.
//
// Diacritics are stripped by decomposing the string, removing the combining
// marks and recomposing it. Everything that is not a lowercase letter or a
// digit afterwards becomes a single dash.
func slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, name)
	if err != nil {
		stripped = name
	}

	var b strings.Builder
	needsDash := false
	for _, r := range strings.ToLower(stripped) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if needsDash && b.Len() > 0 {
				b.WriteRune('-')
			}
			needsDash = false
			b.WriteRune(r)
		default:
			needsDash = true
		}
	}

	return b.String()
}
