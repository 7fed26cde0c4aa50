// Package direction models bilateral sides: left/right and front/back.
package direction

import (
	"github.com/louisbranch/rpgassist/internal/domain/table"
	"github.com/louisbranch/rpgassist/internal/platform/dice"
	"github.com/louisbranch/rpgassist/internal/platform/encoding"
)

// Bilateral is one side of a left/right or front/back pair. The zero value
// means no side.
type Bilateral int

const (
	Left Bilateral = iota + 1
	Right
	Front
	Back
)

var sides = encoding.NewEnum[Bilateral]("side", "", "Left", "Right", "Front", "Back")

var (
	leftRight = table.Split("left-right", 2, Left, Right)
	frontBack = table.Split("front-back", 2, Front, Back)
)

// LeftRight is the d2 left/right table.
func LeftRight() table.Table[Bilateral] { return leftRight }

// FrontBack is the d2 front/back table.
func FrontBack() table.Table[Bilateral] { return frontBack }

// RandomLR picks left or right.
func RandomLR(r dice.Roller) Bilateral {
	return leftRight.Resolve(r)
}

// RandomFB picks front or back.
func RandomFB(r dice.Roller) Bilateral {
	return frontBack.Resolve(r)
}

// Values lists every side.
func Values() []Bilateral { return sides.Values() }

// Opposite returns the other side of the same pair.
func (b Bilateral) Opposite() Bilateral {
	switch b {
	case Left:
		return Right
	case Right:
		return Left
	case Front:
		return Back
	case Back:
		return Front
	default:
		return b
	}
}

// String renders the side in lower case, e.g. "left".
func (b Bilateral) String() string {
	switch b {
	case Left:
		return "left"
	case Right:
		return "right"
	case Front:
		return "front"
	case Back:
		return "back"
	default:
		return ""
	}
}

// MarshalText encodes the tag name, e.g. "Left". No side encodes as "".
func (b Bilateral) MarshalText() ([]byte, error) { return sides.MarshalOptionalText(b) }

// UnmarshalText decodes a tag name; "" is no side.
func (b *Bilateral) UnmarshalText(text []byte) error { return sides.UnmarshalOptionalText(b, text) }
