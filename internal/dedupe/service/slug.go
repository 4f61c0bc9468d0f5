package service

import (
	"html"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/normalize"
)

// MaxSlugLength bounds every slug candidate. A disambiguated candidate is
// truncated to MaxSlugLength-1 before its digit suffix so the bound holds.
const MaxSlugLength = 255

// encodedApostrophe shows up when titles round-trip through rich-text
// editors; it must vanish before slugifying, not decode into a hyphen.
const encodedApostrophe = "&#39;"

// asciiFolder decomposes accented characters and drops their combining
// marks, so "Café" slugifies to "cafe" rather than losing the rune.
var asciiFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify turns a title (or an explicitly supplied slug) into an ASCII,
// lowercase, hyphenated candidate of at most MaxSlugLength characters. The
// wash sequence is fixed: NBSP removal, encoded-apostrophe removal, HTML
// entity decoding, tag stripping, sanitizing, transliteration, slugging.
// Empty input yields an empty string, a valid but degenerate candidate.
func Slugify(text string) string {
	out := strings.ReplaceAll(text, " ", "")
	out = strings.ReplaceAll(out, encodedApostrophe, "")
	out = html.UnescapeString(out)
	out = normalize.StripTags(out)
	out = normalize.Sanitize(out)
	out = foldASCII(out)

	var b strings.Builder
	b.Grow(len(out))
	pendingHyphen := false
	for _, r := range strings.ToLower(out) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}

	return truncate(b.String(), MaxSlugLength)
}

func foldASCII(s string) string {
	folded, _, err := transform.String(asciiFolder, s)
	if err != nil {
		folded = s
	}
	// Anything still outside ASCII has no transliteration and is dropped.
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, folded)
}

// truncate cuts ASCII text to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
