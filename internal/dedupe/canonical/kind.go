package canonical

import (
	dErrors "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/domain-errors"
)

// Kind names an entity kind the key builder understands.
type Kind string

const (
	KindAddress   Kind = "address"
	KindPerson    Kind = "person"
	KindTelephone Kind = "telephone"
)

// ParseKind validates a kind received from the calling layer.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindAddress, KindPerson, KindTelephone:
		return Kind(s), nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, "unknown entity kind: "+s)
	}
}

// FromFields builds the Keyer for a kind from raw field values keyed by the
// field names the calling layer uses. Missing fields degrade to empty parts;
// unknown fields are ignored.
func FromFields(kind Kind, fields map[string]string) (Keyer, error) {
	switch kind {
	case KindAddress:
		return Address{
			Line1:      fields["line1"],
			Line2:      fields["line2"],
			Line3:      fields["line3"],
			Line4:      fields["line4"],
			City:       fields["city"],
			Province:   fields["province"],
			Country:    fields["country"],
			PostalCode: fields["postal_code"],
		}, nil
	case KindPerson:
		return Person{
			FirstName:  fields["first_name"],
			MiddleName: fields["middle_name"],
			Surname:    fields["surname"],
		}, nil
	case KindTelephone:
		return Telephone{
			CountryCode: fields["country_code"],
			AreaCode:    fields["area_code"],
			Number:      fields["telephone_number"],
			Extension:   fields["extension"],
		}, nil
	default:
		return nil, dErrors.New(dErrors.CodeValidation, "unknown entity kind: "+string(kind))
	}
}
