package entities

import (
	"go/format"
	"os"
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countTerminated(t *Table) int {
	n := 0
	t.Each(func(string, string) bool {
		n++
		return true
	})
	return n
}

func TestTableSizes(t *testing.T) {
	tests := []struct {
		name       string
		table      *Table
		terminated int
		legacy     int
	}{
		{"xml", XML, 5, 0},
		{"html4", HTML4, 252, 100},
		{"html5", HTML5, 2125, 106},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.terminated, countTerminated(tt.table))
			assert.Len(t, tt.table.Legacy(), tt.legacy)
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		table *Table
		char  string
		want  string
		ok    bool
	}{
		{XML, "<", "&lt;", true},
		{XML, "'", "&apos;", true},
		{XML, " ", "", false},
		{HTML4, "'", "", false},
		{HTML4, "\u00a0", "&nbsp;", true},
		{HTML4, "\u2329", "&lang;", true},
		{HTML5, "&", "&amp;", true},
		{HTML5, "\"", "&quot;", true},
		{HTML5, ">", "&gt;", true},
		{HTML5, "'", "&apos;", true},
		{HTML5, "\n", "&NewLine;", true},
		{HTML5, "\u00a0", "&nbsp;", true},
		{HTML5, "\u27e8", "&lang;", true},
		{HTML5, "a", "", false},
	}
	for _, tt := range tests {
		got, ok := tt.table.Name(tt.char)
		assert.Equalf(t, tt.ok, ok, "Name(%q)", tt.char)
		assert.Equalf(t, tt.want, got, "Name(%q)", tt.char)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		table *Table
		ref   string
		want  string
		ok    bool
	}{
		{XML, "&amp;", "&", true},
		{XML, "&amp", "", false},
		{XML, "&nbsp;", "", false},
		{HTML4, "&amp", "&", true},
		{HTML4, "&AMP;", "", false},
		{HTML4, "&apos;", "", false},
		{HTML4, "&euro", "", false},
		{HTML4, "&euro;", "€", true},
		{HTML5, "&AMP", "&", true},
		{HTML5, "&fjlig;", "fj", true},
		{HTML5, "&NotEqualTilde;", "\u2242\u0338", true},
		{HTML5, "&Afr;", "\U0001d504", true},
	}
	for _, tt := range tests {
		got, ok := tt.table.Resolve(tt.ref)
		assert.Equalf(t, tt.ok, ok, "Resolve(%q)", tt.ref)
		assert.Equalf(t, tt.want, got, "Resolve(%q)", tt.ref)
	}
}

func TestCharactersRoundTrip(t *testing.T) {
	for _, table := range []*Table{XML, HTML4, HTML5} {
		table.EachCharacter(func(chars, ref string) bool {
			value, ok := table.Resolve(ref)
			require.True(t, ok, "missing %s", ref)
			assert.Equal(t, chars, value, ref)
			assert.Equal(t, 1, utf8.RuneCountInString(chars))
			return true
		})
	}
}

func TestShortestNameWins(t *testing.T) {
	HTML5.Each(func(ref, value string) bool {
		chosen, ok := HTML5.Name(value)
		require.True(t, ok, "no name for %s", ref)
		assert.LessOrEqual(t, len(chosen), len(ref), "%s chosen over %s", chosen, ref)
		return true
	})
}

func TestBodyPattern(t *testing.T) {
	assert.Equal(t, `&(?:#\d+|#[xX][\da-fA-F]+|[0-9a-zA-Z]+);?`, XML.BodyPattern())
	assert.True(t, strings.HasPrefix(HTML4.BodyPattern(), "&notin;|&(?:AElig|Aacute|"))
	assert.True(t, strings.HasPrefix(HTML5.BodyPattern(), "&centerdot;|&copysr;|&divideontimes;|"))
	assert.Len(t, HTML5.shadowedByLegacy(), 40)

	body := regexp.MustCompile(HTML5.BodyPattern())
	tests := []struct {
		in   string
		want string
	}{
		{"&notin;", "&notin;"},
		{"&notit;", "&not"},
		{"&amp;", "&amp;"},
		{"&ampfoo", "&amp"},
		{"&unknown;", "&unknown;"},
		{"&#60", "&#60"},
		{"&#x3Cz", "&#x3C"},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, body.FindString(tt.in), "match in %q", tt.in)
	}
}

func TestStrictAndAttributePatterns(t *testing.T) {
	strict := regexp.MustCompile(StrictPattern())
	assert.Equal(t, "&amp;", strict.FindString("x&amp;y"))
	assert.Empty(t, strict.FindString("&amp"))

	attr := regexp.MustCompile(AttributePattern())
	assert.Equal(t, "&amp=", attr.FindString("&amp=1"))
	assert.Equal(t, "&amp;", attr.FindString("&amp;=1"))
	assert.Equal(t, "&amp", attr.FindString("&amp 1"))
}

func TestLegacyIsCopy(t *testing.T) {
	legacy := HTML5.Legacy()
	legacy[0] = "changed"
	assert.NotEqual(t, "changed", HTML5.Legacy()[0])
}

func TestGeneratedTablesAreFormatted(t *testing.T) {
	for _, name := range []string{"html4_table.go", "html5_table.go"} {
		src, err := os.ReadFile(name)
		require.NoError(t, err)
		formatted, err := format.Source(src)
		require.NoError(t, err)
		assert.True(t, string(src) == string(formatted), "%s is not gofmt-formatted", name)
	}
}
