// Package entities holds the named character reference tables for XML, HTML4
// and HTML5 together with the body-scope decode grammars derived from them.
//
// Tables are built once during package initialisation and are read-only
// afterwards, so they are safe for concurrent use.
package entities

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Table maps characters to named references and named references back to
// characters for one markup level.
type Table struct {
	// characters maps a character sequence to its shortest named reference.
	characters map[string]string
	// entities maps "&name;" (and "&name" for legacy names) to its replacement.
	entities map[string]string
	// legacy lists the names accepted without a terminating semicolon.
	legacy []string
}

var (
	// XML holds the five predefined XML entities.
	XML = newTable(map[string]string{
		"lt;":   "<",
		"gt;":   ">",
		"quot;": "\"",
		"apos;": "'",
		"amp;":  "&",
	})
	// HTML4 holds the HTML 4.01 character entity references.
	HTML4 = newTable(html4References())
	// HTML5 holds the HTML5 named character references.
	HTML5 = newTable(html5Names)
)

func html4References() map[string]string {
	refs := make(map[string]string, 2*len(html4Names))
	for name, r := range html4Names {
		refs[name+";"] = string(r)
		if _, ok := html5Names[name]; ok {
			refs[name] = string(r)
		}
	}
	return refs
}

// newTable builds a table from names keyed without the leading ampersand.
// Keys ending in ';' are terminated references, the others are legacy names.
func newTable(names map[string]string) *Table {
	t := &Table{
		characters: make(map[string]string, len(names)),
		entities:   make(map[string]string, len(names)),
	}
	for key, value := range names {
		t.entities["&"+key] = value
		name, terminated := strings.CutSuffix(key, ";")
		if !terminated {
			t.legacy = append(t.legacy, name)
			continue
		}
		ref := "&" + key
		if prev, ok := t.characters[value]; ok && !preferred(ref, prev) {
			continue
		}
		t.characters[value] = ref
	}
	slices.Sort(t.legacy)
	return t
}

// preferred reports whether ref should replace prev as the encoding of a
// character: shorter wins, ties go to the greater name so "&amp;" beats "&AMP;".
func preferred(ref, prev string) bool {
	if len(ref) != len(prev) {
		return len(ref) < len(prev)
	}
	return ref > prev
}

// Name returns the shortest named reference for chars, including the
// ampersand and semicolon.
func (t *Table) Name(chars string) (string, bool) {
	ref, ok := t.characters[chars]
	return ref, ok
}

// Resolve returns the replacement text of a named reference such as "&amp;".
func (t *Table) Resolve(ref string) (string, bool) {
	value, ok := t.entities[ref]
	return value, ok
}

// Legacy returns the names this table accepts without a semicolon, sorted.
func (t *Table) Legacy() []string {
	return slices.Clone(t.legacy)
}

// Each calls fn for every terminated reference and its replacement text until
// fn returns false. Iteration order is unspecified.
func (t *Table) Each(fn func(ref, value string) bool) {
	for ref, value := range t.entities {
		if !strings.HasSuffix(ref, ";") {
			continue
		}
		if !fn(ref, value) {
			return
		}
	}
}

// EachCharacter calls fn for every single-rune character that has a named
// reference, with the reference chosen for encoding.
func (t *Table) EachCharacter(fn func(chars, ref string) bool) {
	for chars, ref := range t.characters {
		if utf8.RuneCountInString(chars) != 1 {
			continue
		}
		if !fn(chars, ref) {
			return
		}
	}
}

const (
	numericAlternatives = `#\d+|#[xX][\da-fA-F]+`
	nameAlternative     = `[0-9a-zA-Z]+`
)

// StrictPattern matches references that end in a semicolon.
func StrictPattern() string {
	return `&(?:` + numericAlternatives + `|` + nameAlternative + `);`
}

// AttributePattern matches references optionally followed by ';' or '='.
func AttributePattern() string {
	return `&(?:` + numericAlternatives + `|` + nameAlternative + `)[;=]?`
}

// BodyPattern returns the running-text grammar for t. Legacy names may appear
// without a semicolon, so they are tried before the generic name and after
// every terminated reference that would otherwise lose its tail to a legacy
// prefix (for example "&notin;" against "&not").
func (t *Table) BodyPattern() string {
	var b strings.Builder
	for _, ref := range t.shadowedByLegacy() {
		b.WriteString(ref)
		b.WriteByte('|')
	}
	b.WriteString(`&(?:`)
	for _, name := range t.legacy {
		b.WriteString(name)
		b.WriteByte('|')
	}
	b.WriteString(numericAlternatives + `|` + nameAlternative + `);?`)
	return b.String()
}

func (t *Table) shadowedByLegacy() []string {
	var refs []string
	for ref := range t.entities {
		name, ok := strings.CutSuffix(ref[1:], ";")
		if !ok {
			continue
		}
		for _, legacy := range t.legacy {
			if len(name) > len(legacy) && strings.HasPrefix(name, legacy) {
				refs = append(refs, ref)
				break
			}
		}
	}
	slices.Sort(refs)
	return refs
}
