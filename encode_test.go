package charref_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacoelho/charref"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts charref.EncodeOptions
		want string
	}{
		{"empty", "", charref.EncodeOptions{}, ""},
		{"nothing to encode", "hello world", charref.EncodeOptions{}, "hello world"},
		{
			"special chars html5",
			`<a href="x">Tom & 'Jerry'</a>`,
			charref.EncodeOptions{},
			"&lt;a href=&quot;x&quot;&gt;Tom &amp; &apos;Jerry&apos;&lt;/a&gt;",
		},
		{"apostrophe html4", "'", charref.EncodeOptions{Level: charref.LevelHTML4}, "&#39;"},
		{"apostrophe html4 hex", "'", charref.EncodeOptions{Level: charref.LevelHTML4, Numeric: charref.NumericHexadecimal}, "&#x27;"},
		{"apostrophe xml", "'", charref.EncodeOptions{Level: charref.LevelXML}, "&apos;"},
		{"special chars leave non ascii", "café <", charref.EncodeOptions{}, "café &lt;"},
		{"non ascii named", "café", charref.EncodeOptions{Mode: charref.ModeNonASCII}, "caf&eacute;"},
		{"non ascii xml decimal", "café", charref.EncodeOptions{Mode: charref.ModeNonASCII, Level: charref.LevelXML}, "caf&#233;"},
		{
			"non ascii xml hex",
			"café",
			charref.EncodeOptions{Mode: charref.ModeNonASCII, Level: charref.LevelXML, Numeric: charref.NumericHexadecimal},
			"caf&#xe9;",
		},
		{"named beats numeric", "<", charref.EncodeOptions{Numeric: charref.NumericHexadecimal}, "&lt;"},
		{"astral decimal", "a😀b", charref.EncodeOptions{Mode: charref.ModeNonASCII}, "a&#128512;b"},
		{"astral hex", "😀", charref.EncodeOptions{Mode: charref.ModeNonASCII, Numeric: charref.NumericHexadecimal}, "&#x1f600;"},
		{"nbsp", "a\u00a0b", charref.EncodeOptions{Mode: charref.ModeNonASCII}, "a&nbsp;b"},
		{"invalid utf8 non ascii", "a\xffb", charref.EncodeOptions{Mode: charref.ModeNonASCII}, "a&#65533;b"},
		{"invalid utf8 special chars", "a\xffb", charref.EncodeOptions{}, "a\xffb"},
		{"ascii control left by non ascii", "a\x01b", charref.EncodeOptions{Mode: charref.ModeNonASCII}, "a\x01b"},
		{"printable control", "a\x01b\x7f", charref.EncodeOptions{Mode: charref.ModeNonASCIIPrintable, Level: charref.LevelXML}, "a&#1;b&#127;"},
		{"printable keeps newline", "a\nb\x10", charref.EncodeOptions{Mode: charref.ModeNonASCIIPrintable}, "a\nb\x10"},
		{"extensive html5", "a.b\nc", charref.EncodeOptions{Mode: charref.ModeExtensive}, "a&period;b&NewLine;c"},
		{"extensive html4", "a.b", charref.EncodeOptions{Mode: charref.ModeExtensive, Level: charref.LevelHTML4}, "a&#46;b"},
		{"extensive keeps", "a-b c~9\r", charref.EncodeOptions{Mode: charref.ModeExtensive}, "a-b c~9\r"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, charref.Encode(tt.in, tt.opts))
		})
	}
}

func TestEncodeInvalidOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { charref.Encode("x", charref.EncodeOptions{Mode: charref.Mode(42)}) })
	assert.Panics(t, func() { charref.Encode("x", charref.EncodeOptions{Level: charref.Level(-1)}) })
	assert.Panics(t, func() { charref.Encode("x", charref.EncodeOptions{Numeric: charref.Numeric(7)}) })
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	levels := []charref.Level{charref.LevelXML, charref.LevelHTML4, charref.LevelHTML5, charref.LevelAll}
	input := "<p class=\"x\">Fish & Chips: 'café' — ∉ ⟨😀⟩   ∑.</p>\n"
	modes := []charref.Mode{
		charref.ModeSpecialChars,
		charref.ModeNonASCII,
		charref.ModeNonASCIIPrintable,
		charref.ModeExtensive,
	}
	for _, level := range levels {
		for _, mode := range modes {
			for _, numeric := range []charref.Numeric{charref.NumericDecimal, charref.NumericHexadecimal} {
				encoded := charref.Encode(input, charref.EncodeOptions{Mode: mode, Level: level, Numeric: numeric})
				decoded := charref.Decode(encoded, charref.DecodeOptions{Level: level})
				assert.Equalf(t, input, decoded, "level=%v mode=%v numeric=%v encoded=%q", level, mode, numeric, encoded)
			}
		}
	}
}
