// Package codepoint provides the code point helpers used when decoding numeric
// character references.
package codepoint

import (
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

// Replacement is substituted for code points that cannot be represented.
const Replacement = unicode.ReplacementChar

// legacy maps the C1 code points that Windows-1252 assigns to printable
// characters, plus NUL, to the character a browser would show.
var legacy = buildLegacy()

func buildLegacy() map[rune]rune {
	m := map[rune]rune{0: Replacement}
	for b := 0x80; b <= 0x9F; b++ {
		if r := charmap.Windows1252.DecodeByte(byte(b)); r != rune(b) && r != Replacement {
			m[rune(b)] = r
		}
	}
	return m
}

// Remap returns the corrected code point for a legacy numeric reference, or
// r itself when no correction applies.
func Remap(r rune) rune {
	if mapped, ok := legacy[r]; ok {
		return mapped
	}
	return r
}

// IsHighSurrogate reports whether r is a UTF-16 high (leading) surrogate.
func IsHighSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDBFF
}

// IsLowSurrogate reports whether r is a UTF-16 low (trailing) surrogate.
func IsLowSurrogate(r rune) bool {
	return r >= 0xDC00 && r <= 0xDFFF
}

// IsSurrogate reports whether r lies in the UTF-16 surrogate range.
func IsSurrogate(r rune) bool {
	return utf16.IsSurrogate(r)
}

// Compose returns the code point encoded by a high and low surrogate pair,
// or Replacement when the pair is not valid.
func Compose(high, low rune) rune {
	return utf16.DecodeRune(high, low)
}

// Decompose splits a code point above the Basic Multilingual Plane into its
// surrogate pair. Other code points yield Replacement twice.
func Decompose(r rune) (high, low rune) {
	return utf16.EncodeRune(r)
}
