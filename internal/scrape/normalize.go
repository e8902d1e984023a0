package scrape

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// knownPrefixes are tried in order; at most one is removed.
var knownPrefixes = []string{
	"prefeitura de ",
	"prefeitura municipal de ",
	"camara municipal de ",
	"camara de ",
}

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize strips diacritics, trims whitespace and lowercases, so that
// entity names can be compared byte-wise. Empty input yields "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	if folded, _, err := transform.String(deaccent, s); err == nil {
		s = folded
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// StripKnownPrefix normalizes s and removes one leading institutional
// prefix ("prefeitura de ", "camara municipal de ", ...) so that
// "Prefeitura de Manaus" and "Manaus" match the same dataset row.
func StripKnownPrefix(s string) string {
	name := Normalize(s)
	for _, prefix := range knownPrefixes {
		if strings.HasPrefix(name, prefix) {
			return name[len(prefix):]
		}
	}
	return name
}
