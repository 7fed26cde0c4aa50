package body

import (
	"github.com/louisbranch/rpgassist/internal/domain/color"
	"github.com/louisbranch/rpgassist/internal/domain/shape"
	"github.com/louisbranch/rpgassist/internal/platform/dice"
)

// Birthmark is a mark with a location, a shape, and sometimes an exotic color.
// A nil ExoticColor means the mark has a natural color.
type Birthmark struct {
	Location    Location      `json:"location" yaml:"location"`
	ExoticColor *color.Exotic `json:"exotic_color,omitempty" yaml:"exotic_color,omitempty"`
	Shape       shape.Shape   `json:"shape" yaml:"shape"`
}

// RandomBirthmark rolls location, then exotic color on a 1 in 20, then shape.
func RandomBirthmark(r dice.Roller) Birthmark {
	location := RandomLocation(r)
	var exotic *color.Exotic
	if r.Roll(20) == 1 {
		c := color.Random(r)
		exotic = &c
	}
	return Birthmark{
		Location:    location,
		ExoticColor: exotic,
		Shape:       shape.Random(r),
	}
}

// String renders the birthmark, e.g. "skull-shaped birthmark on the chest".
func (b Birthmark) String() string {
	s := b.Shape.String() + "-shaped birthmark"
	if b.ExoticColor != nil {
		s = b.ExoticColor.String() + " " + s
	}
	return s + " on the " + b.Location.String()
}
