package util

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ToValidUTF8 ensures a string is valid UTF-8. Legacy CSV exports are often
// Latin-1 (ISO-8859-1), so invalid input is decoded as Latin-1 rather than
// replaced with U+FFFD, preserving characters like é, ä, ü.
func ToValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().String(s)
	if err == nil {
		return decoded
	}

	// Latin-1 maps 1:1 onto Unicode codepoints 0-255, so this always works.
	runes := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		runes[i] = rune(s[i])
	}
	return string(runes)
}

// ToValidUTF8Bytes ensures bytes represent valid UTF-8.
func ToValidUTF8Bytes(b []byte) []byte {
	if utf8.Valid(b) {
		return b
	}
	return []byte(ToValidUTF8(string(b)))
}

// Truncate shortens a string to at most n runes, appending an ellipsis when
// anything was cut. Used for cell previews in the status bar and flashes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
