package incdom

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// Encode percent-encodes a script argument. The result consists of
// ASCII letters, digits and the characters "-_.~%" only, and may be
// embedded into any JavaScript string literal without escaping.
// The inverse in JavaScript is decodeURIComponent, which does not
// treat '+' as a space, so spaces are encoded as "%20".
//
// Invalid UTF-8 sequences are replaced by U+FFFD, as decodeURIComponent
// rejects them.
func Encode(raw string) string {
	if !utf8.ValidString(raw) {
		raw = strings.ToValidUTF8(raw, "\uFFFD")
	}
	return strings.ReplaceAll(url.QueryEscape(raw), "+", "%20")
}

// Decode reverses Encode.
func Decode(encoded string) (string, error) {
	return url.PathUnescape(encoded)
}
