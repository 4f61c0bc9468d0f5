// Package normalize provides deterministic text washing for canonicalization.
// Use these helpers instead of scattered strings.TrimSpace / html.UnescapeString
// calls so that every comparison path normalizes the same way.
//
// Washing never fails: any string, including empty, is valid input.
package normalize

import (
	"html"
	"regexp"
	"strings"
)

// nbsp is the UTF-8 non-breaking space (0xC2 0xA0). It sneaks into copy-pasted
// form input and breaks naive equality checks.
const nbsp = " "

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// comparePunctuation removes the punctuation that data-entry users sprinkle
// into telephone fields.
var comparePunctuation = strings.NewReplacer(
	"(", "", ")", "", "-", "", "_", "", "{", "", "}", "", "[", "", "]", "",
)

// Wash returns text with HTML entities decoded, markup tags stripped, NBSP
// sequences removed, and surrounding whitespace trimmed, in that order.
// Washing is idempotent: Wash(Wash(s)) == Wash(s).
func Wash(text string) string {
	out := html.UnescapeString(text)
	out = StripTags(out)
	out = strings.ReplaceAll(out, nbsp, "")
	return strings.TrimSpace(out)
}

// WashForComparison is Wash plus case folding. It is meant for name and
// telephone equality checks only, never for display.
func WashForComparison(text string) string {
	return strings.ToLower(Wash(text))
}

// StripPunctuationForCompare is WashForComparison plus removal of the literal
// characters ()-_{}[]. Telephone canonicalization uses it so that "(416)" and
// "416" collide.
func StripPunctuationForCompare(text string) string {
	return comparePunctuation.Replace(WashForComparison(text))
}

// StripTags removes anything that looks like a markup tag.
func StripTags(text string) string {
	return tagPattern.ReplaceAllString(text, "")
}

// Sanitize drops control characters that survive entity decoding.
// Printable text passes through untouched.
func Sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return -1
		}
		return r
	}, text)
}
