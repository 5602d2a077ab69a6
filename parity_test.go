package charref_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"

	"github.com/jacoelho/charref"
	"github.com/jacoelho/charref/internal/entities"
)

func TestDecodeMatchesNetHTMLNamed(t *testing.T) {
	opts := charref.DecodeOptions{Level: charref.LevelHTML5, Scope: charref.ScopeStrict}
	var unknown []string
	entities.HTML5.Each(func(ref, value string) bool {
		got := charref.Decode(ref, opts)
		assert.Equal(t, value, got, ref)
		if want := html.UnescapeString(ref); want == ref {
			unknown = append(unknown, ref)
		} else {
			assert.Equal(t, want, got, ref)
		}
		return true
	})
	// x/net/html leaves &nGt; and &nLt; out of its table.
	assert.ElementsMatch(t, []string{"&nGt;", "&nLt;"}, unknown)
	assert.Equal(t, "\u226b\u20d2", charref.Decode("&nGt;", opts))
	assert.Equal(t, "\u226a\u20d2", charref.Decode("&nLt;", opts))
}

func TestDecodeMatchesNetHTMLNumeric(t *testing.T) {
	for r := 0; r < 0x11000; r++ {
		ref := fmt.Sprintf("&#%d;", r)
		if got, want := charref.Decode(ref, charref.DecodeOptions{}), html.UnescapeString(ref); got != want {
			t.Fatalf("Decode(%q) = %q, want %q", ref, got, want)
		}
	}
}

func TestEncodeEscapesLikeNetHTML(t *testing.T) {
	in := `<script>alert("x & 'y'")</script>`
	encoded := charref.Encode(in, charref.EncodeOptions{})
	assert.Equal(t, in, html.UnescapeString(encoded))
	assert.Equal(t, html.UnescapeString(html.EscapeString(in)), charref.Decode(encoded, charref.DecodeOptions{}))
}
