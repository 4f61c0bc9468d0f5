package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/domain-errors"
)

func TestAddressKey(t *testing.T) {
	tests := []struct {
		name     string
		address  Address
		expected string
	}{
		{
			name: "partial address skips missing parts",
			address: Address{
				Line1:      "123 Main St",
				City:       "Springfield",
				Country:    "USA",
				PostalCode: "00000",
			},
			expected: "123 Main St, Springfield, USA  00000",
		},
		{
			name: "full address in fixed order",
			address: Address{
				Line1:      "Unit 4",
				Line2:      "123 Main St",
				Line3:      "Rear entrance",
				Line4:      "Box 19",
				City:       "Springfield",
				Province:   "ON",
				Country:    "Canada",
				PostalCode: "A1A 1A1",
			},
			expected: "Unit 4, 123 Main St, Rear entrance, Box 19, Springfield, ON, Canada  A1A 1A1",
		},
		{
			name:     "parts are trimmed",
			address:  Address{Line1: "  123 Main St  ", City: " Springfield "},
			expected: "123 Main St, Springfield",
		},
		{
			name:     "country without postal code leaves no trailing spaces",
			address:  Address{City: "Springfield", Country: "USA"},
			expected: "Springfield, USA",
		},
		{
			name:     "empty address",
			address:  Address{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.address.Key())
			// Determinism: repeated evaluation is byte-identical.
			assert.Equal(t, tt.address.Key(), tt.address.Key())
		})
	}
}

func TestPersonKey(t *testing.T) {
	tests := []struct {
		name     string
		person   Person
		expected string
	}{
		{
			name:     "first middle last",
			person:   Person{FirstName: "Jane", MiddleName: "Q", Surname: "Public"},
			expected: "jane q public",
		},
		{
			name:     "missing middle name",
			person:   Person{FirstName: "Jane", Surname: "Public"},
			expected: "jane public",
		},
		{
			name:     "case and spacing do not matter",
			person:   Person{FirstName: "  JANE ", Surname: "public"},
			expected: "jane public",
		},
		{
			name:     "encoded apostrophe collides with literal",
			person:   Person{FirstName: "Sean", Surname: "O&#39;Malley"},
			expected: "sean o'malley",
		},
		{
			name:     "empty person",
			person:   Person{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.person.Key())
		})
	}
}

func TestPersonKeyCollision(t *testing.T) {
	entered := Person{FirstName: " Jane ", MiddleName: "", Surname: "PUBLIC"}
	stored := Person{FirstName: "jane", Surname: "Public"}
	assert.Equal(t, stored.Key(), entered.Key())
}

func TestTelephoneKey(t *testing.T) {
	tests := []struct {
		name     string
		phone    Telephone
		expected string
	}{
		{
			name:     "north american number",
			phone:    Telephone{CountryCode: "1", AreaCode: "(416)", Number: "555-1212"},
			expected: "1 (416) 555-1212",
		},
		{
			name:     "bare digits format identically",
			phone:    Telephone{CountryCode: "1", AreaCode: "416", Number: "5551212"},
			expected: "1 (416) 555-1212",
		},
		{
			name:     "extension appended after a space",
			phone:    Telephone{CountryCode: "1", AreaCode: "416", Number: "5551212", Extension: "88"},
			expected: "1 (416) 555-1212 88",
		},
		{
			name:     "non-3-char area code passes through",
			phone:    Telephone{CountryCode: "44", AreaCode: "20", Number: "79460000"},
			expected: "44 20 79460000",
		},
		{
			name:     "non-7-char number passes through",
			phone:    Telephone{CountryCode: "1", AreaCode: "416", Number: "555121"},
			expected: "1 (416) 555121",
		},
		{
			name:     "missing country code",
			phone:    Telephone{AreaCode: "416", Number: "5551212"},
			expected: "(416) 555-1212",
		},
		{
			name:     "empty telephone",
			phone:    Telephone{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phone.Key())
		})
	}
}

// Differently punctuated entries of the same real-world number collide.
func TestTelephoneKeyCollision(t *testing.T) {
	a := Telephone{CountryCode: "1", AreaCode: "(416)", Number: "555-1212"}
	b := Telephone{CountryCode: "1", AreaCode: "[416]", Number: "555_1212"}
	assert.Equal(t, a.Key(), b.Key())
}

func TestParseKind(t *testing.T) {
	for _, valid := range []string{"address", "person", "telephone"} {
		kind, err := ParseKind(valid)
		require.NoError(t, err)
		assert.Equal(t, Kind(valid), kind)
	}

	_, err := ParseKind("company")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestFromFields(t *testing.T) {
	t.Run("address", func(t *testing.T) {
		keyer, err := FromFields(KindAddress, map[string]string{
			"line1":       "123 Main St",
			"city":        "Springfield",
			"country":     "USA",
			"postal_code": "00000",
		})
		require.NoError(t, err)
		assert.Equal(t, "123 Main St, Springfield, USA  00000", keyer.Key())
	})

	t.Run("telephone", func(t *testing.T) {
		keyer, err := FromFields(KindTelephone, map[string]string{
			"country_code":     "1",
			"area_code":        "(416)",
			"telephone_number": "555-1212",
		})
		require.NoError(t, err)
		assert.Equal(t, "1 (416) 555-1212", keyer.Key())
	})

	t.Run("missing fields degrade to empty parts", func(t *testing.T) {
		keyer, err := FromFields(KindPerson, map[string]string{"surname": "Public"})
		require.NoError(t, err)
		assert.Equal(t, "public", keyer.Key())
	})
}
