package charref

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Encode replaces the characters selected by opts.Mode with character
// references. A character with a named reference at opts.Level gets the
// shortest one; any other character gets a numeric reference in the form
// selected by opts.Numeric.
//
// Invalid UTF-8 bytes are treated as U+FFFD by the non-ASCII modes. When
// nothing needs encoding, text is returned unchanged.
func Encode(text string, opts EncodeOptions) string {
	if text == "" {
		return ""
	}
	pattern := opts.Mode.pattern()
	table := opts.Level.table()
	base := opts.Numeric.base()

	matches := pattern.FindAllStringIndex(text, -1)
	if matches == nil {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 5*len(matches))
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		char := text[m[0]:m[1]]
		if ref, ok := table.Name(char); ok {
			b.WriteString(ref)
		} else {
			r, _ := utf8.DecodeRuneInString(char)
			writeNumeric(&b, r, base)
		}
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

func (n Numeric) base() int {
	switch n {
	case NumericDecimal:
		return 10
	case NumericHexadecimal:
		return 16
	default:
		panic(fmt.Sprintf("charref: invalid %v", n))
	}
}

func writeNumeric(b *strings.Builder, r rune, base int) {
	b.WriteString("&#")
	if base == 16 {
		b.WriteByte('x')
	}
	b.WriteString(strconv.FormatInt(int64(r), base))
	b.WriteByte(';')
}
