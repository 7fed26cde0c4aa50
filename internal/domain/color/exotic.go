package color

import (
	"github.com/goccy/go-json"

	"github.com/louisbranch/rpgassist/internal/domain/table"
	"github.com/louisbranch/rpgassist/internal/platform/dice"
	"github.com/louisbranch/rpgassist/internal/platform/encoding"
)

// Tint modifies a hue. The zero value is no tint.
type Tint int

const (
	Dark Tint = iota + 1
	Pastel
)

var tints = encoding.NewEnum[Tint]("tint", "", "Dark", "Pastel")

// String renders the tint in lower case.
func (t Tint) String() string {
	switch t {
	case Dark:
		return "dark"
	case Pastel:
		return "pastel"
	default:
		return ""
	}
}

// MarshalText encodes the tag name. No tint encodes as "".
func (t Tint) MarshalText() ([]byte, error) { return tints.MarshalOptionalText(t) }

// UnmarshalText decodes a tag name; "" is no tint.
func (t *Tint) UnmarshalText(b []byte) error { return tints.UnmarshalOptionalText(t, b) }

var tintTable = table.Split("tints", 2, Dark, Pastel)

// TintChance is the die rolled to decide whether a hue is tinted; only a 1 tints.
const TintChance = 20

// Exotic is a hue with at most one tint.
type Exotic struct {
	Tint Tint `json:"tint,omitempty" yaml:"tint,omitempty"`
	Hue  Hue  `json:"hue" yaml:"hue"`
}

// Plain wraps a hue without a tint.
func Plain(h Hue) Exotic {
	return Exotic{Hue: h}
}

// Tinted wraps a hue in a tint.
func Tinted(t Tint, h Hue) Exotic {
	return Exotic{Tint: t, Hue: h}
}

// exoticRecord drops the tint key for plain hues.
type exoticRecord struct {
	Tint *Tint `json:"tint,omitempty"`
	Hue  Hue   `json:"hue"`
}

// MarshalJSON encodes {"tint": "Dark", "hue": "Red"}, leaving out an absent tint.
func (e Exotic) MarshalJSON() ([]byte, error) {
	rec := exoticRecord{Hue: e.Hue}
	if e.IsTinted() {
		tint := e.Tint
		rec.Tint = &tint
	}
	return json.Marshal(rec)
}

// IsTinted reports whether a tint wraps the hue.
func (e Exotic) IsTinted() bool {
	return e.Tint != 0
}

// String renders the color, e.g. "pastel lavender".
func (e Exotic) String() string {
	if e.IsTinted() {
		return e.Tint.String() + " " + e.Hue.String()
	}
	return e.Hue.String()
}

// Random rolls a hue, then on a 1 in 20 wraps it in a dark or pastel tint.
func Random(r dice.Roller) Exotic {
	return WithModifier(r, RandomHue(r))
}

// WithModifier applies the tint roll to an already resolved hue.
func WithModifier(r dice.Roller, h Hue) Exotic {
	if r.Roll(TintChance) != 1 {
		return Plain(h)
	}
	return Tinted(tintTable.Resolve(r), h)
}
