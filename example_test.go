package charref_test

import (
	"fmt"

	"github.com/jacoelho/charref"
)

func ExampleEncode() {
	fmt.Println(charref.Encode(`<a href="/">Tom & Jerry</a>`, charref.EncodeOptions{}))
	fmt.Println(charref.Encode("café 😀", charref.EncodeOptions{Mode: charref.ModeNonASCII}))
	fmt.Println(charref.Encode("café 😀", charref.EncodeOptions{
		Mode:    charref.ModeNonASCII,
		Level:   charref.LevelXML,
		Numeric: charref.NumericHexadecimal,
	}))
	// Output:
	// &lt;a href=&quot;/&quot;&gt;Tom &amp; Jerry&lt;/a&gt;
	// caf&eacute; &#128512;
	// caf&#xe9; &#x1f600;
}

func ExampleDecode() {
	fmt.Println(charref.Decode("&lt;p&gt;caf&eacute; &copy 2024&lt;/p&gt;", charref.DecodeOptions{}))
	fmt.Println(charref.Decode("&copy 2024", charref.DecodeOptions{Level: charref.LevelXML}))
	fmt.Println(charref.Decode("?a=1&copy=2&amp;b=3", charref.DecodeOptions{Scope: charref.ScopeAttribute}))
	// Output:
	// <p>café © 2024</p>
	// &copy 2024
	// ?a=1&copy=2&b=3
}

func ExampleDecodeEntity() {
	fmt.Println(charref.DecodeEntity("&hearts;", charref.EntityOptions{}))
	fmt.Println(charref.DecodeEntity("&#x2764;", charref.EntityOptions{}))
	fmt.Println(charref.DecodeEntity("&unknown;", charref.EntityOptions{}))
	// Output:
	// ♥
	// ❤
	// &unknown;
}
