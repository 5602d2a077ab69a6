// Package charref encodes text into markup-safe character references and
// decodes character references back into text, for XML, HTML4 and HTML5.
//
// Encode replaces reserved or unsafe characters with named references where
// the chosen level has one, and numeric references otherwise:
//
//	charref.Encode(`<a href="x">`, charref.EncodeOptions{})
//	// &lt;a href=&quot;x&quot;&gt;
//
// Decode resolves named and numeric references. The scope decides how
// leniently unterminated references are treated:
//
//	charref.Decode("&lt;b&gt; &amp", charref.DecodeOptions{})
//	// <b> &
//
// DecodeEntity resolves a single reference without scanning.
//
// All functions are safe for concurrent use. Malformed or unknown references
// never cause an error; they are copied through unchanged. Option values
// outside their enumerations panic.
package charref
