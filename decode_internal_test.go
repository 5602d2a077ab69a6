package charref

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Decode and DecodeEntity share resolveReference; for any input that the
// decode grammar matches as a whole they must agree.
func TestDecodeEntityMatchesDecode(t *testing.T) {
	refs := []string{
		"&amp;", "&amp", "&amp=", "&AMP;", "&AMP", "&apos;", "&nbsp;", "&nbsp",
		"&notin;", "&lang;", "&bogus;", "&bogus", "&bogus=",
		"&#60;", "&#60", "&#60=", "&#x3c;", "&#X3C", "&#0;", "&#150;", "&#129;",
		"&#55357;", "&#56832;", "&#1114111;", "&#1114112;", "&#128512;", "&#x1f600;",
	}
	levels := []Level{LevelAll, LevelXML, LevelHTML4, LevelHTML5}
	scopes := []Scope{ScopeBody, ScopeStrict, ScopeAttribute}
	for _, level := range levels {
		for _, scope := range scopes {
			pattern := decodePattern(level, scope)
			for _, ref := range refs {
				if pattern.FindString(ref) != ref {
					continue
				}
				assert.Equalf(t,
					Decode(ref, DecodeOptions{Level: level, Scope: scope}),
					DecodeEntity(ref, EntityOptions{Level: level, Scope: scope}),
					"ref=%q level=%v scope=%v", ref, level, scope)
			}
		}
	}
}

func TestScopeResolve(t *testing.T) {
	assert.Equal(t, ScopeStrict, ScopeDefault.resolve(LevelXML))
	assert.Equal(t, ScopeBody, ScopeDefault.resolve(LevelHTML4))
	assert.Equal(t, ScopeBody, ScopeDefault.resolve(LevelAll))
	assert.Equal(t, ScopeAttribute, ScopeAttribute.resolve(LevelXML))
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want rune
		ok   bool
	}{
		{"60;", 60, true},
		{"60", 60, true},
		{"x3c;", 0x3C, true},
		{"X3C", 0x3C, true},
		{"x", 0, false},
		{"", 0, false},
		{";", 0, false},
		{"1114111;", 0x10FFFF, true},
		{"1114112;", 0x110000, true},
		{"999999999999999999999;", 0x110000, true},
		{"xFFFFFFFFFFFF;", 0x110000, true},
		{"12ab", 12, true},
	}
	for _, tt := range tests {
		got, ok := parseNumeric(tt.in)
		assert.Equalf(t, tt.ok, ok, "parseNumeric(%q)", tt.in)
		assert.Equalf(t, tt.want, got, "parseNumeric(%q)", tt.in)
	}
}

func TestDecodePatternSelection(t *testing.T) {
	assert.Same(t, strictPattern, decodePattern(LevelHTML5, ScopeStrict))
	assert.Same(t, strictPattern, decodePattern(LevelXML, ScopeStrict))
	assert.Same(t, attributePattern, decodePattern(LevelHTML4, ScopeAttribute))
	assert.Same(t, xmlBodyPattern, decodePattern(LevelXML, ScopeBody))
	assert.Same(t, html4BodyPattern, decodePattern(LevelHTML4, ScopeBody))
	assert.Same(t, html5BodyPattern, decodePattern(LevelHTML5, ScopeBody))
	assert.Same(t, html5BodyPattern, decodePattern(LevelAll, ScopeBody))
}
