package charref_test

import (
	"encoding"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/charref"
)

func TestParseNames(t *testing.T) {
	level, err := charref.ParseLevel("HTML4")
	require.NoError(t, err)
	assert.Equal(t, charref.LevelHTML4, level)

	mode, err := charref.ParseMode("nonAsciiPrintable")
	require.NoError(t, err)
	assert.Equal(t, charref.ModeNonASCIIPrintable, mode)

	numeric, err := charref.ParseNumeric("hexadecimal")
	require.NoError(t, err)
	assert.Equal(t, charref.NumericHexadecimal, numeric)

	scope, err := charref.ParseScope("attribute")
	require.NoError(t, err)
	assert.Equal(t, charref.ScopeAttribute, scope)
}

func TestParseUnknown(t *testing.T) {
	_, err := charref.ParseLevel("sgml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, charref.ErrUnknownOption))
	assert.Contains(t, err.Error(), `level "sgml"`)

	_, err = charref.ParseMode("")
	assert.ErrorIs(t, err, charref.ErrUnknownOption)
	_, err = charref.ParseNumeric("octal")
	assert.ErrorIs(t, err, charref.ErrUnknownOption)
	_, err = charref.ParseScope("loose")
	assert.ErrorIs(t, err, charref.ErrUnknownOption)
}

func TestOptionTextRoundTrip(t *testing.T) {
	values := []interface {
		encoding.TextMarshaler
	}{
		charref.LevelAll, charref.LevelXML, charref.LevelHTML4, charref.LevelHTML5,
		charref.ModeSpecialChars, charref.ModeNonASCII, charref.ModeNonASCIIPrintable, charref.ModeExtensive,
		charref.NumericDecimal, charref.NumericHexadecimal,
		charref.ScopeDefault, charref.ScopeBody, charref.ScopeStrict, charref.ScopeAttribute,
	}
	for _, v := range values {
		text, err := v.MarshalText()
		require.NoError(t, err)

		var got encoding.TextUnmarshaler
		switch v.(type) {
		case charref.Level:
			got = new(charref.Level)
		case charref.Mode:
			got = new(charref.Mode)
		case charref.Numeric:
			got = new(charref.Numeric)
		case charref.Scope:
			got = new(charref.Scope)
		}
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, string(text), got.(interface{ String() string }).String())
	}
}

func TestOptionStrings(t *testing.T) {
	assert.Equal(t, "all", charref.LevelAll.String())
	assert.Equal(t, "nonAscii", charref.ModeNonASCII.String())
	assert.Equal(t, "decimal", charref.NumericDecimal.String())
	assert.Equal(t, "strict", charref.ScopeStrict.String())
	assert.Equal(t, "Level(12)", charref.Level(12).String())
	assert.Equal(t, "Scope(-1)", charref.Scope(-1).String())
}

func TestMarshalUnknown(t *testing.T) {
	_, err := charref.Mode(99).MarshalText()
	assert.ErrorIs(t, err, charref.ErrUnknownOption)

	var level charref.Level = charref.LevelHTML4
	assert.Error(t, level.UnmarshalText([]byte("nope")))
	assert.Equal(t, charref.LevelHTML4, level)
}
