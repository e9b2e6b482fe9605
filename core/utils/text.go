package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// UpperName returns the canonical uppercase form of a country name.
// The name is NFC-normalised, runs of whitespace collapse to one space and
// surrounding space is trimmed, so "São  Tomé" and "SÃO TOMÉ"
// compare equal.
func UpperName(s string) string {
	s = norm.NFC.String(s)
	s = strings.Join(strings.Fields(s), " ")
	return cases.Upper(language.Und).String(s)
}

// Chunk splits s into consecutive pieces of size runes. The last piece may be
// shorter. A non-positive size returns nil.
func Chunk(s string, size int) []string {
	if size <= 0 {
		return nil
	}
	runes := []rune(s)
	var chunks []string
	for i := 0; i < len(runes); i += size {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks
}

// CleanText trims s and collapses internal whitespace to single spaces.
// strings.Fields treats U+00A0 as space, which matters for scraped tables.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
