package charref

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jacoelho/charref/internal/codepoint"
	"github.com/jacoelho/charref/internal/entities"
)

// Decode replaces character references in text with the characters they
// stand for. Which references are recognised depends on opts.Level and
// opts.Scope; anything unrecognised or malformed is copied through unchanged.
//
// Numeric references at or above U+10FFFF decode to U+FFFD. Numeric references
// to the C1 range are corrected as if they were Windows-1252. A numeric
// reference to a high surrogate directly followed by one to a low surrogate
// decodes to the code point of the pair; any other surrogate decodes to U+FFFD.
func Decode(text string, opts DecodeOptions) string {
	if text == "" {
		return ""
	}
	scope := opts.Scope.resolve(opts.Level)
	pattern := decodePattern(opts.Level, scope)
	table := opts.Level.table()

	matches := pattern.FindAllStringIndex(text, -1)
	if matches == nil {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	// high holds a high surrogate waiting for its low half.
	var high rune
	for _, m := range matches {
		ref := resolveReference(text[m[0]:m[1]], table, scope)
		if high != 0 {
			if m[0] == last && codepoint.IsLowSurrogate(ref.surrogate) {
				b.WriteRune(codepoint.Compose(high, ref.surrogate))
				high = 0
				last = m[1]
				continue
			}
			b.WriteRune(codepoint.Replacement)
			high = 0
		}
		b.WriteString(text[last:m[0]])
		if codepoint.IsHighSurrogate(ref.surrogate) {
			high = ref.surrogate
		} else {
			b.WriteString(ref.text)
		}
		last = m[1]
	}
	if high != 0 {
		b.WriteRune(codepoint.Replacement)
	}
	b.WriteString(text[last:])
	return b.String()
}

// DecodeEntity resolves a single, already isolated reference such as "&amp;"
// or "&#x26;". The input is returned unchanged when it is not a reference
// known at opts.Level.
func DecodeEntity(entity string, opts EntityOptions) string {
	if entity == "" {
		return ""
	}
	scope := opts.Scope
	switch scope {
	case ScopeDefault:
		scope = ScopeBody
	case ScopeBody, ScopeStrict, ScopeAttribute:
	default:
		panic(fmt.Sprintf("charref: invalid %v", scope))
	}
	return resolveReference(entity, opts.Level.table(), scope).text
}

// reference is the outcome of resolving one reference.
type reference struct {
	// text replaces the reference. It is the reference itself when it was
	// left alone.
	text string
	// surrogate is set when a numeric reference named a UTF-16 surrogate;
	// text is then U+FFFD.
	surrogate rune
}

// resolveReference decodes one matched reference under the rules of scope.
func resolveReference(ref string, table *entities.Table, scope Scope) reference {
	switch last := ref[len(ref)-1]; {
	case scope == ScopeAttribute && last == '=':
		return reference{text: ref}
	case scope == ScopeStrict && last != ';':
		return reference{text: ref}
	}
	if value, ok := table.Resolve(ref); ok {
		return reference{text: value}
	}
	if !strings.HasPrefix(ref, "&#") {
		return reference{text: ref}
	}
	r, ok := parseNumeric(ref[2:])
	if !ok {
		return reference{text: ref}
	}
	switch {
	case r >= utf8.MaxRune:
		return reference{text: string(codepoint.Replacement)}
	case r > 0xFFFF:
		return reference{text: string(r)}
	}
	r = codepoint.Remap(r)
	if codepoint.IsSurrogate(r) {
		return reference{text: string(codepoint.Replacement), surrogate: r}
	}
	return reference{text: string(r)}
}

// parseNumeric reads the leading digits of a numeric reference body such as
// "60;" or "x3C;". Values beyond utf8.MaxRune saturate at utf8.MaxRune+1.
func parseNumeric(body string) (rune, bool) {
	base := rune(10)
	if body != "" && (body[0] == 'x' || body[0] == 'X') {
		base = 16
		body = body[1:]
	}
	var value rune
	n := 0
	for ; n < len(body); n++ {
		digit, ok := digitValue(body[n], base)
		if !ok {
			break
		}
		if value <= utf8.MaxRune {
			value = value*base + digit
		}
	}
	if n == 0 {
		return 0, false
	}
	if value > utf8.MaxRune {
		value = utf8.MaxRune + 1
	}
	return value, true
}

func digitValue(c byte, base rune) (rune, bool) {
	switch {
	case c >= '0' && c <= '9':
		return rune(c - '0'), true
	case base == 16 && c >= 'a' && c <= 'f':
		return rune(c-'a') + 10, true
	case base == 16 && c >= 'A' && c <= 'F':
		return rune(c-'A') + 10, true
	default:
		return 0, false
	}
}
