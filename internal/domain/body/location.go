// Package body rolls body locations (table 867) and birthmarks (table 866).
package body

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/louisbranch/rpgassist/internal/domain/direction"
	"github.com/louisbranch/rpgassist/internal/domain/table"
	"github.com/louisbranch/rpgassist/internal/platform/dice"
	"github.com/louisbranch/rpgassist/internal/platform/encoding"
	"github.com/louisbranch/rpgassist/internal/platform/text"
)

// Part is a region of the body.
type Part int

const (
	Abdomen Part = iota + 1
	Arm
	Back
	Buttocks
	Chest
	Eye
	Face
	Fingers
	Foot
	Genitals
	Hand
	Head
	Leg
	Thumb
)

var parts = encoding.NewEnum[Part]("body part", "",
	"Abdomen", "Arm", "Back", "Buttocks", "Chest", "Eye", "Face", "Fingers",
	"Foot", "Genitals", "Hand", "Head", "Leg", "Thumb",
)

// Sided reports whether the part comes in left/right pairs.
func (p Part) Sided() bool {
	switch p {
	case Arm, Eye, Fingers, Foot, Hand, Leg, Thumb:
		return true
	default:
		return false
	}
}

// String renders the part in lower case.
func (p Part) String() string {
	if !parts.Valid(p) {
		return parts.Name(p)
	}
	return text.Humanize(parts.Name(p))
}

// MarshalText encodes the tag name.
func (p Part) MarshalText() ([]byte, error) { return parts.MarshalText(p) }

// UnmarshalText decodes a tag name.
func (p *Part) UnmarshalText(b []byte) error { return parts.UnmarshalText(p, b) }

// Location is a place on the body. Side is set for sided parts and Count only
// for fingers.
type Location struct {
	Part  Part                `json:"part" yaml:"part"`
	Side  direction.Bilateral `json:"side,omitempty" yaml:"side,omitempty"`
	Count uint8               `json:"count,omitempty" yaml:"count,omitempty"`
}

// locationRecord drops the side and count keys when they are unset.
type locationRecord struct {
	Part  Part                 `json:"part"`
	Side  *direction.Bilateral `json:"side,omitempty"`
	Count uint8                `json:"count,omitempty"`
}

// MarshalJSON encodes {"part": "Hand", "side": "Left"}, leaving out an absent
// side and a zero count.
func (l Location) MarshalJSON() ([]byte, error) {
	rec := locationRecord{Part: l.Part, Count: l.Count}
	if l.Side != 0 {
		side := l.Side
		rec.Side = &side
	}
	return json.Marshal(rec)
}

// At is an unsided location.
func At(part Part) Location {
	return Location{Part: part}
}

// On is a location on one side of the body.
func On(part Part, side direction.Bilateral) Location {
	return Location{Part: part, Side: side}
}

// FingersOn is a number of fingers on one hand.
func FingersOn(count uint8, side direction.Bilateral) Location {
	return Location{Part: Fingers, Side: side, Count: count}
}

// String renders the location, e.g. "right foot" or "2 fingers (left)".
func (l Location) String() string {
	switch {
	case l.Part == Fingers:
		return fmt.Sprintf("%d fingers (%s)", l.Count, l.Side)
	case l.Side != 0:
		return l.Side.String() + " " + l.Part.String()
	default:
		return l.Part.String()
	}
}

var locations = table.New("body-locations", 20,
	table.Is(1, On(Foot, direction.Right)),
	table.Is(2, On(Foot, direction.Left)),
	table.Is(3, On(Leg, direction.Right)),
	table.Is(4, On(Leg, direction.Left)),
	table.Is(6, At(Abdomen)),
	table.Is(7, At(Buttocks)),
	table.Roll(8, table.New("genitals-or-buttocks", 3,
		table.Is(1, At(Genitals)),
		table.Rest(At(Buttocks)),
	)),
	table.Is(9, At(Back)),
	table.Is(13, At(Chest)),
	table.Is(14, On(Arm, direction.Right)),
	table.Is(15, On(Arm, direction.Left)),
	table.Is(16, On(Hand, direction.Right)),
	table.Is(17, On(Hand, direction.Left)),
	table.Is(18, At(Head)),
	table.Rest(At(Face)),
)

// LocationTable returns the d20 body location table. Eyes, fingers, and
// thumbs exist as locations but are never rolled.
func LocationTable() table.Table[Location] { return locations }

// RandomLocation rolls a body location.
func RandomLocation(r dice.Roller) Location {
	return locations.Resolve(r)
}
