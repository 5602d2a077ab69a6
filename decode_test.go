package charref_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacoelho/charref"
	"github.com/jacoelho/charref/internal/codepoint"
)

func TestDecode(t *testing.T) {
	html4 := charref.DecodeOptions{Level: charref.LevelHTML4}
	xml := charref.DecodeOptions{Level: charref.LevelXML}
	xmlBody := charref.DecodeOptions{Level: charref.LevelXML, Scope: charref.ScopeBody}
	attr := charref.DecodeOptions{Scope: charref.ScopeAttribute}
	strict := charref.DecodeOptions{Level: charref.LevelHTML5, Scope: charref.ScopeStrict}

	tests := []struct {
		name string
		in   string
		opts charref.DecodeOptions
		want string
	}{
		{"empty", "", charref.DecodeOptions{}, ""},
		{"plain", "no references here", charref.DecodeOptions{}, "no references here"},
		{"named", "&lt;b&gt;bold&lt;/b&gt;", charref.DecodeOptions{}, "<b>bold</b>"},
		{"unterminated legacy body", "&amp", charref.DecodeOptions{Level: charref.LevelHTML5, Scope: charref.ScopeBody}, "&"},
		{"legacy prefix", "&ampfoo", charref.DecodeOptions{}, "&foo"},
		{"shadowed terminated", "&notin;", charref.DecodeOptions{}, "∉"},
		{"legacy not", "&notit;", charref.DecodeOptions{}, "¬it;"},
		{"unknown named", "&bogus; &bogus", charref.DecodeOptions{}, "&bogus; &bogus"},
		{"lone ampersand", "fish & chips", charref.DecodeOptions{}, "fish & chips"},
		{"xml defaults to strict", "&amp", xml, "&amp"},
		{"xml terminated", "&amp;&apos;", xml, "&'"},
		{"xml has no html names", "&nbsp;", xml, "&nbsp;"},
		{"xml numeric", "&#60;&#x3E;", xml, "<>"},
		{"xml strict unterminated numeric", "&#60", xml, "&#60"},
		{"xml body numeric", "&#60", xmlBody, "<"},
		{"xml body named", "&amp", xmlBody, "&amp"},
		{"html4 no apos", "&apos;", html4, "&apos;"},
		{"html4 lang", "&lang;", html4, "〈"},
		{"html5 lang", "&lang;", charref.DecodeOptions{}, "\u27e8"},
		{"html4 legacy", "&eacute", html4, "é"},
		{"html4 no uppercase AMP", "&AMP;", html4, "&AMP;"},
		{"attribute ambiguous", "&amp=", attr, "&amp="},
		{"attribute query", "?a=1&b=2&amp;c=3", attr, "?a=1&b=2&c=3"},
		{"attribute terminated before equals", "&amp;=", attr, "&="},
		{"attribute unterminated", "&amp x", attr, "& x"},
		{"body ambiguous", "&amp=", charref.DecodeOptions{Scope: charref.ScopeBody}, "&="},
		{"strict unterminated", "&amp &lt;", strict, "&amp <"},
		{"decimal", "&#38;", charref.DecodeOptions{}, "&"},
		{"hex lower", "&#x26;", charref.DecodeOptions{}, "&"},
		{"hex upper", "&#X26;", charref.DecodeOptions{}, "&"},
		{"unterminated numeric body", "&#38abc", charref.DecodeOptions{}, "&abc"},
		{"astral", "&#128512;", charref.DecodeOptions{}, "😀"},
		{"astral hex", "&#x1F600;", charref.DecodeOptions{}, "😀"},
		{"out of range", "&#1114112;", charref.DecodeOptions{}, "\uFFFD"},
		{"max rune", "&#x10FFFF;", charref.DecodeOptions{}, "\uFFFD"},
		{"huge", "&#99999999999999999999999;", charref.DecodeOptions{}, "\uFFFD"},
		{"nul", "&#0;", charref.DecodeOptions{}, "\uFFFD"},
		{"windows-1252", "&#150;&#128;&#159;", charref.DecodeOptions{}, "–€Ÿ"},
		{"unassigned c1", "&#129;", charref.DecodeOptions{}, "\u0081"},
		{"surrogate pair", "&#55357;&#56832;", charref.DecodeOptions{}, "😀"},
		{"surrogate pair hex", "a&#xD83D;&#xDE00;b", charref.DecodeOptions{}, "a😀b"},
		{"lone high", "&#55357;x", charref.DecodeOptions{}, "\uFFFDx"},
		{"lone high at end", "x&#55357;", charref.DecodeOptions{}, "x\uFFFD"},
		{"lone low", "&#56832;", charref.DecodeOptions{}, "\uFFFD"},
		{"separated pair", "&#55357; &#56832;", charref.DecodeOptions{}, "\uFFFD \uFFFD"},
		{"double high", "&#55357;&#55357;&#56832;", charref.DecodeOptions{}, "\uFFFD😀"},
		{"high then named", "&#55357;&amp;", charref.DecodeOptions{}, "\uFFFD&"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, charref.Decode(tt.in, tt.opts))
		})
	}
}

func TestDecodePlainTextIsIdentity(t *testing.T) {
	inputs := []string{"a", "hello world", "semi;colons; and #hashes", "日本語", "\x00\xff"}
	for _, in := range inputs {
		for _, level := range []charref.Level{charref.LevelXML, charref.LevelHTML4, charref.LevelHTML5} {
			for _, scope := range []charref.Scope{charref.ScopeDefault, charref.ScopeBody, charref.ScopeStrict, charref.ScopeAttribute} {
				assert.Equal(t, in, charref.Decode(in, charref.DecodeOptions{Level: level, Scope: scope}))
			}
		}
	}
}

func TestDecodeSurrogatePairFromDecompose(t *testing.T) {
	for _, r := range []rune{0x10000, 0x1F600, 0x10FFFD} {
		high, low := codepoint.Decompose(r)
		in := fmt.Sprintf("&#%d;&#x%X;", high, low)
		assert.Equal(t, string(r), charref.Decode(in, charref.DecodeOptions{}), in)
	}
}

func TestDecodeInvalidOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { charref.Decode("x", charref.DecodeOptions{Level: charref.Level(9)}) })
	assert.Panics(t, func() { charref.Decode("x", charref.DecodeOptions{Scope: charref.Scope(9)}) })
	assert.Panics(t, func() { charref.DecodeEntity("x", charref.EntityOptions{Scope: charref.Scope(-3)}) })
}

func TestDecodeLongInput(t *testing.T) {
	in := strings.Repeat("a &lt; b &#x26; c ", 10000)
	want := strings.Repeat("a < b & c ", 10000)
	assert.Equal(t, want, charref.Decode(in, charref.DecodeOptions{}))
}

func TestDecodeEntity(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts charref.EntityOptions
		want string
	}{
		{"empty", "", charref.EntityOptions{}, ""},
		{"named", "&amp;", charref.EntityOptions{}, "&"},
		{"legacy", "&amp", charref.EntityOptions{}, "&"},
		{"unknown", "&bogus;", charref.EntityOptions{}, "&bogus;"},
		{"not a reference", "plain", charref.EntityOptions{}, "plain"},
		{"bare ampersand", "&", charref.EntityOptions{}, "&"},
		{"no digits", "&#;", charref.EntityOptions{}, "&#;"},
		{"no hex digits", "&#xZ;", charref.EntityOptions{}, "&#xZ;"},
		{"decimal", "&#60;", charref.EntityOptions{}, "<"},
		{"hex", "&#x3c;", charref.EntityOptions{}, "<"},
		{"out of range", "&#1114112;", charref.EntityOptions{}, "\uFFFD"},
		{"astral", "&#x1F600;", charref.EntityOptions{}, "😀"},
		{"lone surrogate", "&#xD83D;", charref.EntityOptions{}, "\uFFFD"},
		{"windows-1252", "&#146;", charref.EntityOptions{}, "’"},
		{"xml named", "&nbsp;", charref.EntityOptions{Level: charref.LevelXML}, "&nbsp;"},
		{"xml unterminated numeric", "&#60", charref.EntityOptions{Level: charref.LevelXML}, "<"},
		{"html4", "&lang;", charref.EntityOptions{Level: charref.LevelHTML4}, "〈"},
		{"strict rejects", "&amp", charref.EntityOptions{Scope: charref.ScopeStrict}, "&amp"},
		{"attribute rejects equals", "&amp=", charref.EntityOptions{Scope: charref.ScopeAttribute}, "&amp="},
		{"attribute accepts", "&amp;", charref.EntityOptions{Scope: charref.ScopeAttribute}, "&"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, charref.DecodeEntity(tt.in, tt.opts))
		})
	}
}
