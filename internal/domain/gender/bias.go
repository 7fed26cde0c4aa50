package gender

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/louisbranch/rpgassist/internal/platform/errors"
)

// MaxBias is the largest Bias10 magnitude.
const MaxBias = 10

// Bias10 is a bias magnitude in [0, MaxBias]. Out-of-range values are
// clamped, never rejected.
type Bias10 uint8

// NewBias10 clamps v into [0, MaxBias].
func NewBias10(v int) Bias10 {
	switch {
	case v < 0:
		return 0
	case v > MaxBias:
		return MaxBias
	default:
		return Bias10(v)
	}
}

// Value returns the magnitude.
func (b Bias10) Value() int {
	return int(b)
}

// UnmarshalJSON decodes a plain integer and clamps it. Integers too large
// for int64 saturate instead of failing.
func (b *Bias10) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	v, err := parseBias10(string(data))
	if err != nil {
		return fmt.Errorf("decode bias: %w", err)
	}
	*b = v
	return nil
}

// UnmarshalYAML decodes a plain integer scalar and clamps it.
func (b *Bias10) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("decode bias: line %d: want an integer", value.Line)
	}
	v, err := parseBias10(value.Value)
	if err != nil {
		return fmt.Errorf("decode bias: line %d: %w", value.Line, err)
	}
	*b = v
	return nil
}

// parseBias10 reads an integer of any size, saturating at the int64 bounds
// before clamping.
func parseBias10(s string) (Bias10, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
			return 0, err
		}
		if strings.HasPrefix(s, "-") {
			return 0, nil
		}
		return MaxBias, nil
	}
	return clamp64(v), nil
}

func clamp64(v int64) Bias10 {
	switch {
	case v < 0:
		return 0
	case v > MaxBias:
		return MaxBias
	default:
		return Bias10(v)
	}
}

// Toward names the side a Bias favors.
type Toward int

const (
	// Neither gives roughly even odds.
	Neither Toward = iota
	TowardMale
	TowardFemale
)

// Shorthand offsets approximating a two-thirds skew on a d20 against 10.
const (
	mostlyMaleOffset   = -3
	mostlyFemaleOffset = 4
)

// Bias skews gender resolution. The zero value is NoBias.
type Bias struct {
	toward    Toward
	magnitude Bias10
	shorthand bool
}

var (
	// NoBias leaves the d20 untouched.
	NoBias = Bias{}
	// MostlyMale resolves Male on about two thirds of rolls.
	MostlyMale = Bias{toward: TowardMale, shorthand: true}
	// MostlyFemale resolves Female on about two thirds of rolls.
	MostlyFemale = Bias{toward: TowardFemale, shorthand: true}
)

// FavorMale biases toward Male by magnitude.
func FavorMale(magnitude Bias10) Bias {
	return Bias{toward: TowardMale, magnitude: magnitude}
}

// FavorFemale biases toward Female by magnitude.
func FavorFemale(magnitude Bias10) Bias {
	return Bias{toward: TowardFemale, magnitude: magnitude}
}

// Toward returns the favored side.
func (b Bias) Toward() Toward {
	return b.toward
}

// Magnitude returns the numeric magnitude; shorthand biases report zero.
func (b Bias) Magnitude() Bias10 {
	return b.magnitude
}

// Offset returns the signed amount added to the d20 roll.
func (b Bias) Offset() int {
	switch {
	case b.toward == TowardMale && b.shorthand:
		return mostlyMaleOffset
	case b.toward == TowardFemale && b.shorthand:
		return mostlyFemaleOffset
	case b.toward == TowardMale:
		return -b.magnitude.Value()
	case b.toward == TowardFemale:
		return b.magnitude.Value()
	default:
		return 0
	}
}

// String renders the text form accepted by ParseBias: "none", "male23",
// "female23", "male:N", or "female:N".
func (b Bias) String() string {
	switch {
	case b.toward == TowardMale && b.shorthand:
		return "male23"
	case b.toward == TowardFemale && b.shorthand:
		return "female23"
	case b.toward == TowardMale:
		return "male:" + strconv.Itoa(b.magnitude.Value())
	case b.toward == TowardFemale:
		return "female:" + strconv.Itoa(b.magnitude.Value())
	default:
		return "none"
	}
}

// ParseBias reads the text form of a Bias. Magnitudes are clamped to
// [0, MaxBias]; a missing magnitude means MaxBias/2.
func ParseBias(s string) (Bias, error) {
	name, magnitude, hasMagnitude := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	value := MaxBias / 2
	if hasMagnitude {
		v, err := parseBias10(magnitude)
		if err != nil {
			return NoBias, apperrors.Wrap(apperrors.CodeGenderBiasInvalid, fmt.Sprintf("parse bias %q", s), err)
		}
		value = v.Value()
	}

	switch name {
	case "", "none":
		if hasMagnitude {
			break
		}
		return NoBias, nil
	case "male23", "m23":
		if hasMagnitude {
			break
		}
		return MostlyMale, nil
	case "female23", "f23":
		if hasMagnitude {
			break
		}
		return MostlyFemale, nil
	case "male", "m":
		return FavorMale(NewBias10(value)), nil
	case "female", "f":
		return FavorFemale(NewBias10(value)), nil
	}
	return NoBias, apperrors.WithMetadata(
		apperrors.CodeGenderBiasInvalid,
		fmt.Sprintf("unknown gender bias %q", s),
		map[string]string{"value": s},
	)
}

// MarshalText encodes the String form.
func (b Bias) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText decodes with ParseBias.
func (b *Bias) UnmarshalText(data []byte) error {
	v, err := ParseBias(string(data))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// HasBias is implemented by anything that carries a preferred gender bias.
type HasBias interface {
	GenderBias() Bias
}
