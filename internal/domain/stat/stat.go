// Package stat models typed numeric character attributes.
//
//   - Age (in whole years)
//   - App: appearance (comeliness)
//   - Cha: charisma (personal magnetism)
//   - Con: constitution
//   - Dex: manual dexterity
//   - Int: intelligence
//   - Mag: magical aptitude
//   - Str: physical strength
//   - Will: strength of mind
//
// Every kind belongs to a clamp class that bounds its arithmetic. Stats of
// different kinds never combine; doing so is a contract violation and panics.
package stat

import (
	"fmt"

	"github.com/louisbranch/rpgassist/internal/platform/encoding"
	apperrors "github.com/louisbranch/rpgassist/internal/platform/errors"
)

// Kind names a stat without its value.
type Kind int

const (
	Age Kind = iota + 1
	App
	Cha
	Con
	Dex
	Int
	Mag
	Str
	Will
)

var kinds = encoding.NewEnum[Kind]("stat kind", "", "Age", "App", "Cha", "Con", "Dex", "Int", "Mag", "Str", "Will")

// Kinds lists every stat kind.
func Kinds() []Kind { return kinds.Values() }

// ParseKind reads a kind tag such as "Str".
func ParseKind(s string) (Kind, error) {
	k, err := kinds.Parse(s)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeStatUnknownKind, fmt.Sprintf("parse stat kind %q", s), err)
	}
	return k, nil
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return kinds.Valid(k) }

// String returns the kind tag.
func (k Kind) String() string { return kinds.Name(k) }

// MarshalText encodes the kind tag.
func (k Kind) MarshalText() ([]byte, error) { return kinds.MarshalText(k) }

// UnmarshalText decodes a kind tag.
func (k *Kind) UnmarshalText(b []byte) error { return kinds.UnmarshalText(k, b) }

// ClampClass is the floor policy of a kind.
type ClampClass int

const (
	// Unclamped values are unbounded in both directions.
	Unclamped ClampClass = iota
	// FloorZero values never drop below 0.
	FloorZero
	// FloorOne values never drop below 1.
	FloorOne
)

// Clamp returns the clamp class of k.
func (k Kind) Clamp() ClampClass {
	switch k {
	case Age, Int, Mag, Will:
		return FloorZero
	case Con, Dex, Str:
		return FloorOne
	default:
		return Unclamped
	}
}

// apply bounds v by the class floor.
func (c ClampClass) apply(v int) int {
	switch c {
	case FloorZero:
		return max(v, 0)
	case FloorOne:
		return max(v, 1)
	default:
		return v
	}
}

// Stat is a kind with a value.
type Stat struct {
	kind  Kind
	value int
}

// New creates a stat. The value is stored as given; the floor applies on
// the first mutation.
func New(kind Kind, value int) Stat {
	return Stat{kind: kind, value: value}
}

// Kind returns the stat kind.
func (s Stat) Kind() Kind { return s.kind }

// Value returns the stat value.
func (s Stat) Value() int { return s.value }

// Add returns s with delta added and the kind's floor applied.
func (s Stat) Add(delta int) Stat {
	s.value = s.kind.Clamp().apply(s.value + delta)
	return s
}

// Sub returns s with delta subtracted and the kind's floor applied.
func (s Stat) Sub(delta int) Stat {
	s.value = s.kind.Clamp().apply(s.value - delta)
	return s
}

// AddStat adds another stat of the same kind. A different kind panics with a
// STAT_KIND_MISMATCH error.
func (s Stat) AddStat(other Stat) Stat {
	s.mustMatch(other, "add")
	return s.Add(other.value)
}

// SubStat subtracts another stat of the same kind. A different kind panics
// with a STAT_KIND_MISMATCH error.
func (s Stat) SubStat(other Stat) Stat {
	s.mustMatch(other, "subtract")
	return s.Sub(other.value)
}

// CheckedAddStat is AddStat returning the mismatch as an error.
func (s Stat) CheckedAddStat(other Stat) (Stat, error) {
	if err := s.match(other, "add"); err != nil {
		return s, err
	}
	return s.Add(other.value), nil
}

// CheckedSubStat is SubStat returning the mismatch as an error.
func (s Stat) CheckedSubStat(other Stat) (Stat, error) {
	if err := s.match(other, "subtract"); err != nil {
		return s, err
	}
	return s.Sub(other.value), nil
}

// Equal reports whether both kind and value match.
func (s Stat) Equal(other Stat) bool {
	return s == other
}

// String renders the stat, e.g. "Str 12".
func (s Stat) String() string {
	return fmt.Sprintf("%s %d", s.kind, s.value)
}

func (s Stat) mustMatch(other Stat, op string) {
	if err := s.match(other, op); err != nil {
		panic(err)
	}
}

func (s Stat) match(other Stat, op string) error {
	if s.kind == other.kind {
		return nil
	}
	return apperrors.WithMetadata(
		apperrors.CodeStatKindMismatch,
		fmt.Sprintf("cannot %s %s to %s", op, other.kind, s.kind),
		map[string]string{"left": s.kind.String(), "right": other.kind.String()},
	)
}
