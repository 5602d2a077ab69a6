package charref

import (
	"fmt"
	"regexp"

	"github.com/jacoelho/charref/internal/entities"
)

// Compiled patterns are shared by every call. A *regexp.Regexp keeps no match
// position between calls, so concurrent use needs no locking.
var (
	specialCharsPattern      = regexp.MustCompile(`[<>'"&]`)
	nonASCIIPattern          = regexp.MustCompile(`[<>'"&\x{80}-\x{D7FF}\x{E000}-\x{10FFFF}]`)
	nonASCIIPrintablePattern = regexp.MustCompile(`[<>'"&\x01-\x08\x11-\x15\x17-\x1F\x7F-\x{D7FF}\x{E000}-\x{10FFFF}]`)
	extensivePattern         = regexp.MustCompile(`[\x01-\x0C\x0E-\x1F\x21-\x2C\x2E-\x2F\x3A-\x40\x5B-\x60\x7B-\x7D\x7F-\x{D7FF}\x{E000}-\x{10FFFF}]`)

	strictPattern    = regexp.MustCompile(entities.StrictPattern())
	attributePattern = regexp.MustCompile(entities.AttributePattern())
	xmlBodyPattern   = regexp.MustCompile(entities.XML.BodyPattern())
	html4BodyPattern = regexp.MustCompile(entities.HTML4.BodyPattern())
	html5BodyPattern = regexp.MustCompile(entities.HTML5.BodyPattern())
)

func (m Mode) pattern() *regexp.Regexp {
	switch m {
	case ModeSpecialChars:
		return specialCharsPattern
	case ModeNonASCII:
		return nonASCIIPattern
	case ModeNonASCIIPrintable:
		return nonASCIIPrintablePattern
	case ModeExtensive:
		return extensivePattern
	default:
		panic(fmt.Sprintf("charref: invalid %v", m))
	}
}

func (l Level) table() *entities.Table {
	switch l {
	case LevelAll, LevelHTML5:
		return entities.HTML5
	case LevelHTML4:
		return entities.HTML4
	case LevelXML:
		return entities.XML
	default:
		panic(fmt.Sprintf("charref: invalid %v", l))
	}
}

// resolve replaces ScopeDefault with the scope that applies to level.
func (s Scope) resolve(level Level) Scope {
	if s != ScopeDefault {
		return s
	}
	if level == LevelXML {
		return ScopeStrict
	}
	return ScopeBody
}

func decodePattern(level Level, scope Scope) *regexp.Regexp {
	switch scope {
	case ScopeStrict:
		return strictPattern
	case ScopeAttribute:
		return attributePattern
	case ScopeBody:
	default:
		panic(fmt.Sprintf("charref: invalid %v", scope))
	}
	switch level {
	case LevelAll, LevelHTML5:
		return html5BodyPattern
	case LevelHTML4:
		return html4BodyPattern
	case LevelXML:
		return xmlBodyPattern
	default:
		panic(fmt.Sprintf("charref: invalid %v", level))
	}
}
