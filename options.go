package charref

import (
	"fmt"
	"strings"
)

// Level selects the markup vocabulary: which named references exist and
// which of them may appear without a terminating semicolon.
type Level int

const (
	// LevelAll is an alias for LevelHTML5, the broadest named reference set.
	LevelAll Level = iota
	// LevelXML knows only lt, gt, quot, apos and amp.
	LevelXML
	// LevelHTML4 uses the HTML 4.01 entity set.
	LevelHTML4
	// LevelHTML5 uses the HTML5 named character references.
	LevelHTML5
)

// Mode selects which characters Encode replaces.
type Mode int

const (
	// ModeSpecialChars encodes only < > ' " and &.
	ModeSpecialChars Mode = iota
	// ModeNonASCII also encodes every character outside ASCII.
	ModeNonASCII
	// ModeNonASCIIPrintable also encodes ASCII control characters.
	ModeNonASCIIPrintable
	// ModeExtensive encodes everything except ASCII letters and digits,
	// space, carriage return, '-' and '~'.
	ModeExtensive
)

// Numeric selects the form of generated numeric references.
type Numeric int

const (
	// NumericDecimal produces references such as "&#60;".
	NumericDecimal Numeric = iota
	// NumericHexadecimal produces references such as "&#x3c;".
	NumericHexadecimal
)

// Scope selects how leniently Decode treats references.
type Scope int

const (
	// ScopeDefault is ScopeStrict for LevelXML and ScopeBody otherwise.
	ScopeDefault Scope = iota
	// ScopeBody accepts legacy references without a semicolon, as found in
	// running text.
	ScopeBody
	// ScopeStrict accepts only references terminated by a semicolon.
	ScopeStrict
	// ScopeAttribute accepts unterminated references but leaves a reference
	// followed by '=' untouched, as HTML5 does inside attribute values.
	ScopeAttribute
)

// EncodeOptions configures Encode. The zero value encodes special characters
// using the HTML5 table and decimal numeric references.
type EncodeOptions struct {
	Mode    Mode
	Level   Level
	Numeric Numeric
}

// DecodeOptions configures Decode. The zero value decodes HTML5 references in
// body scope.
type DecodeOptions struct {
	Level Level
	Scope Scope
}

// EntityOptions configures DecodeEntity. A zero Scope applies no leniency
// rule; ScopeStrict and ScopeAttribute reject references the same way Decode
// does.
type EntityOptions struct {
	Level Level
	Scope Scope
}

func (l Level) String() string {
	switch l {
	case LevelAll:
		return "all"
	case LevelXML:
		return "xml"
	case LevelHTML4:
		return "html4"
	case LevelHTML5:
		return "html5"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

func (m Mode) String() string {
	switch m {
	case ModeSpecialChars:
		return "specialChars"
	case ModeNonASCII:
		return "nonAscii"
	case ModeNonASCIIPrintable:
		return "nonAsciiPrintable"
	case ModeExtensive:
		return "extensive"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (n Numeric) String() string {
	switch n {
	case NumericDecimal:
		return "decimal"
	case NumericHexadecimal:
		return "hexadecimal"
	default:
		return fmt.Sprintf("Numeric(%d)", int(n))
	}
}

func (s Scope) String() string {
	switch s {
	case ScopeDefault:
		return "default"
	case ScopeBody:
		return "body"
	case ScopeStrict:
		return "strict"
	case ScopeAttribute:
		return "attribute"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

var (
	levels   = []Level{LevelAll, LevelXML, LevelHTML4, LevelHTML5}
	modes    = []Mode{ModeSpecialChars, ModeNonASCII, ModeNonASCIIPrintable, ModeExtensive}
	numerics = []Numeric{NumericDecimal, NumericHexadecimal}
	scopes   = []Scope{ScopeDefault, ScopeBody, ScopeStrict, ScopeAttribute}
)

func parseEnum[T fmt.Stringer](kind, name string, values []T) (T, error) {
	for _, v := range values {
		if strings.EqualFold(v.String(), name) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s %q: %w", kind, name, ErrUnknownOption)
}

// ParseLevel parses a level name: xml, html4, html5 or all.
func ParseLevel(name string) (Level, error) {
	return parseEnum("level", name, levels)
}

// ParseMode parses a mode name: specialChars, nonAscii, nonAsciiPrintable or
// extensive.
func ParseMode(name string) (Mode, error) {
	return parseEnum("mode", name, modes)
}

// ParseNumeric parses a numeric format name: decimal or hexadecimal.
func ParseNumeric(name string) (Numeric, error) {
	return parseEnum("numeric", name, numerics)
}

// ParseScope parses a scope name: body, strict, attribute or default.
func ParseScope(name string) (Scope, error) {
	return parseEnum("scope", name, scopes)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) { return marshalEnum("level", l, levels) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error { return unmarshalEnum(l, ParseLevel, text) }

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return marshalEnum("mode", m, modes) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error { return unmarshalEnum(m, ParseMode, text) }

// MarshalText implements encoding.TextMarshaler.
func (n Numeric) MarshalText() ([]byte, error) { return marshalEnum("numeric", n, numerics) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Numeric) UnmarshalText(text []byte) error { return unmarshalEnum(n, ParseNumeric, text) }

// MarshalText implements encoding.TextMarshaler.
func (s Scope) MarshalText() ([]byte, error) { return marshalEnum("scope", s, scopes) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scope) UnmarshalText(text []byte) error { return unmarshalEnum(s, ParseScope, text) }

func marshalEnum[T comparable](kind string, v T, values []T) ([]byte, error) {
	for _, known := range values {
		if known == v {
			return []byte(fmt.Sprint(v)), nil
		}
	}
	return nil, fmt.Errorf("%s %v: %w", kind, v, ErrUnknownOption)
}

func unmarshalEnum[T any](dst *T, parse func(string) (T, error), text []byte) error {
	v, err := parse(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
