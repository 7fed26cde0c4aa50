// Package gender models gender as a deferred attribute.
//
// A Gender starts Unspecified and is resolved exactly once, optionally with a
// Bias, into Male or Female. NeverApplicable is a terminal state for beings
// where gender does not matter; it is never resolved. The zero value is
// Unspecified so constructing a record never consumes randomness.
package gender

import (
	"fmt"
	"strings"

	"github.com/louisbranch/rpgassist/internal/platform/dice"
	"github.com/louisbranch/rpgassist/internal/platform/encoding"
	apperrors "github.com/louisbranch/rpgassist/internal/platform/errors"
	"github.com/louisbranch/rpgassist/internal/platform/text"
)

// Gender is the resolution state of a gender attribute.
type Gender int

const (
	// Unspecified has not been resolved yet.
	Unspecified Gender = iota
	Male
	Female
	// NeverApplicable is absorbing: resolution leaves it alone.
	NeverApplicable
)

var genders = encoding.NewEnum[Gender]("gender", "Unspecified", "Male", "Female", "NeverApplicable")

// Threshold is the highest adjusted d20 total that resolves to Male.
const Threshold = 10

// Random rolls an unbiased gender.
func Random(r dice.Roller) Gender {
	return RandomBiased(r, NoBias)
}

// RandomBiased rolls d20, adds the bias offset, and returns Male when the
// total is at most Threshold and Female otherwise.
func RandomBiased(r dice.Roller, bias Bias) Gender {
	if r.Roll(20)+bias.Offset() <= Threshold {
		return Male
	}
	return Female
}

// Resolve settles an Unspecified gender in place without bias.
func (g *Gender) Resolve(r dice.Roller) {
	g.ResolveBiased(r, NoBias)
}

// ResolveBiased settles an Unspecified gender in place. Any other state is
// left untouched and no dice are rolled.
func (g *Gender) ResolveBiased(r dice.Roller, bias Bias) {
	if *g != Unspecified {
		return
	}
	*g = RandomBiased(r, bias)
}

// GetOrRandom returns g when it is already settled, or a fresh biased roll
// when it is Unspecified. g itself is not modified.
func (g Gender) GetOrRandom(r dice.Roller, bias Bias) Gender {
	if g != Unspecified {
		return g
	}
	return RandomBiased(r, bias)
}

// IsResolved reports whether g is Male or Female.
func (g Gender) IsResolved() bool {
	return g == Male || g == Female
}

// Compare orders genders for sorting contexts. Every gender ties with every
// other; gender is not an orderable trait.
func (g Gender) Compare(Gender) int {
	return 0
}

// Parse reads a gender from free text. Matching is case-insensitive:
// m, male, and mies are Male; f, n, female, nainen, t, tyttö, and tytto are
// Female; empty or blank text is Unspecified. Anything else is rejected
// with a GENDER_UNKNOWN_TOKEN error.
func Parse(s string) (Gender, error) {
	token := text.Fold(strings.TrimSpace(s))
	switch token {
	case "":
		return Unspecified, nil
	case "m", "male", "mies":
		return Male, nil
	case "f", "n", "female", "nainen", "t", "tyttö", "tytto":
		return Female, nil
	}
	return Unspecified, apperrors.WithMetadata(
		apperrors.CodeGenderUnknownToken,
		fmt.Sprintf("no such gender as %q defined", s),
		map[string]string{"value": s},
	)
}

// MustParse is Parse for trusted input; an unknown token panics with the
// coded error. Use errors.Guard to recover at a boundary.
func MustParse(s string) Gender {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// FromOptional parses s when present and returns Unspecified when absent.
func FromOptional(s *string) (Gender, error) {
	if s == nil {
		return Unspecified, nil
	}
	return Parse(*s)
}

// String returns the state tag.
func (g Gender) String() string {
	return genders.Name(g)
}

// MarshalText encodes the state tag.
func (g Gender) MarshalText() ([]byte, error) { return genders.MarshalText(g) }

// UnmarshalText decodes a state tag such as "Female". Free text goes through
// Parse instead.
func (g *Gender) UnmarshalText(b []byte) error { return genders.UnmarshalText(g, b) }
