package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWash(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text untouched",
			input:    "123 Main St",
			expected: "123 Main St",
		},
		{
			name:     "decodes html entities",
			input:    "Fish &amp; Chips",
			expected: "Fish & Chips",
		},
		{
			name:     "strips markup tags",
			input:    "<p>Springfield</p>",
			expected: "Springfield",
		},
		{
			name:     "removes nbsp bytes",
			input:    "Main Street",
			expected: "MainStreet",
		},
		{
			name:     "decodes entity nbsp then removes it",
			input:    "Main&nbsp;Street",
			expected: "MainStreet",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  Springfield \t",
			expected: "Springfield",
		},
		{
			name:     "whitespace only collapses to empty",
			input:    " \t   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Wash(tt.input))
		})
	}
}

// Washing a washed string changes nothing.
func TestWashIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"  padded  ",
		"Fish &amp; Chips",
		"<b>bold</b> claim",
		"Main&nbsp;Street West",
		"O'Malley &amp; Sons <em>Ltd.</em>",
	}
	for _, in := range inputs {
		once := Wash(in)
		assert.Equal(t, once, Wash(once), "input %q", in)
	}
}

func TestWashForComparison(t *testing.T) {
	assert.Equal(t, "jane", WashForComparison("  Jane "))
	assert.Equal(t, "o'malley", WashForComparison("O&#39;Malley"))
	assert.Equal(t, "", WashForComparison(""))
}

func TestStripPunctuationForCompare(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "parenthesized area code", input: "(416)", expected: "416"},
		{name: "hyphenated number", input: "555-1212", expected: "5551212"},
		{name: "underscores and brackets", input: "[555]_12{12}", expected: "5551212"},
		{name: "untouched digits", input: "5551212", expected: "5551212"},
		{name: "empty", input: "", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripPunctuationForCompare(tt.input))
		})
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "hello", Sanitize("he\x00l\x07lo"))
	assert.Equal(t, "line\nbreak", Sanitize("line\nbreak"))
}
