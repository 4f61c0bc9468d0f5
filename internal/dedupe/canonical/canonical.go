// Package canonical builds deterministic comparison keys for composite
// entities. A canonical key is never displayed; it exists so two records that
// look the same to a human collide on equality even when they were entered
// with different punctuation or spacing. The formatting rules intentionally
// mirror what the admin UI renders.
package canonical

import (
	"strings"

	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/normalize"
)

// Keyer is implemented by every entity kind that can be canonicalized.
type Keyer interface {
	// Key returns the deterministic comparison key. Identical normalized
	// inputs always yield byte-identical keys; missing optional fields
	// contribute nothing.
	Key() string
}

// Address holds the raw postal address fields. Every field is optional.
type Address struct {
	Line1      string
	Line2      string
	Line3      string
	Line4      string
	City       string
	Province   string
	Country    string
	PostalCode string
}

// Key joins the present parts in fixed order, each trimmed and followed by
// ", " — except the country, which is followed by two spaces to match the
// UI's postal rendering. Trailing separator residue is trimmed.
func (a Address) Key() string {
	var b strings.Builder
	part := func(value, suffix string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		b.WriteString(value)
		b.WriteString(suffix)
	}

	part(a.Line1, ", ")
	part(a.Line2, ", ")
	part(a.Line3, ", ")
	part(a.Line4, ", ")
	part(a.City, ", ")
	part(a.Province, ", ")
	part(a.Country, "  ")
	part(a.PostalCode, "")

	return strings.TrimRight(b.String(), " ,")
}

// Person holds the raw name fields.
type Person struct {
	FirstName  string
	MiddleName string
	Surname    string
}

// Key is "first [middle] last", each part case-folded for comparison.
func (p Person) Key() string {
	parts := make([]string, 0, 3)
	for _, raw := range []string{p.FirstName, p.MiddleName, p.Surname} {
		if washed := normalize.WashForComparison(raw); washed != "" {
			parts = append(parts, washed)
		}
	}
	return strings.Join(parts, " ")
}

// Telephone holds the raw telephone fields.
type Telephone struct {
	CountryCode string
	AreaCode    string
	Number      string
	Extension   string
}

// Key is "cc (area) nnn-nnnn ext". The area code is parenthesized only when
// it is exactly 3 characters after punctuation stripping, and the subscriber
// number is hyphenated XXX-XXXX only when exactly 7; any other length passes
// through unformatted.
func (t Telephone) Key() string {
	parts := make([]string, 0, 4)

	if cc := strings.TrimSpace(t.CountryCode); cc != "" {
		parts = append(parts, cc)
	}
	if area := normalize.StripPunctuationForCompare(t.AreaCode); area != "" {
		if len(area) == 3 {
			area = "(" + area + ")"
		}
		parts = append(parts, area)
	}
	if number := normalize.StripPunctuationForCompare(t.Number); number != "" {
		if len(number) == 7 {
			number = number[:3] + "-" + number[3:]
		}
		parts = append(parts, number)
	}
	if ext := strings.TrimSpace(t.Extension); ext != "" {
		parts = append(parts, ext)
	}

	return strings.Join(parts, " ")
}
