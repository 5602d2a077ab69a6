package codepoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemap(t *testing.T) {
	tests := []struct {
		in   rune
		want rune
	}{
		{0x00, Replacement},
		{0x80, '€'},
		{0x81, 0x81},
		{0x82, '‚'},
		{0x8D, 0x8D},
		{0x91, '‘'},
		{0x92, '’'},
		{0x96, '–'},
		{0x9F, 'Ÿ'},
		{0xA0, 0xA0},
		{'A', 'A'},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, Remap(tt.in), "Remap(%#x)", tt.in)
	}
}

func TestLegacyCoverage(t *testing.T) {
	// 27 of the 32 C1 code points are reassigned by Windows-1252, plus NUL.
	assert.Len(t, legacy, 28)
	for r := range legacy {
		assert.True(t, r == 0 || (r >= 0x80 && r <= 0x9F), "unexpected key %#x", r)
	}
}

func TestSurrogates(t *testing.T) {
	high, low := Decompose(0x1F600)
	assert.Equal(t, rune(0xD83D), high)
	assert.Equal(t, rune(0xDE00), low)
	assert.True(t, IsHighSurrogate(high))
	assert.True(t, IsLowSurrogate(low))
	assert.False(t, IsHighSurrogate(low))
	assert.False(t, IsLowSurrogate(high))
	assert.True(t, IsSurrogate(high))
	assert.False(t, IsSurrogate('a'))
	assert.Equal(t, rune(0x1F600), Compose(high, low))
	assert.Equal(t, Replacement, Compose(low, high))

	high, low = Decompose('a')
	assert.Equal(t, Replacement, high)
	assert.Equal(t, Replacement, low)
}
