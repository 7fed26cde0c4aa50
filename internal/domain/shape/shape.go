// Package shape rolls shapes for birthmarks and similar markings.
package shape

import (
	"github.com/louisbranch/rpgassist/internal/domain/table"
	"github.com/louisbranch/rpgassist/internal/platform/dice"
	"github.com/louisbranch/rpgassist/internal/platform/encoding"
	"github.com/louisbranch/rpgassist/internal/platform/text"
)

// Shape is the outline of a mark.
type Shape int

const (
	// AnimalOfChoice stands in for any animal the player picks.
	AnimalOfChoice Shape = iota + 1
	Bat
	Claw
	CrescentMoon
	Dragon
	Eagle
	Fish
	Hand
	Hawk
	Skull
	Sword
)

var shapes = encoding.NewEnum[Shape]("shape", "",
	"AnimalOfChoice", "Bat", "Claw", "CrescentMoon", "Dragon", "Eagle", "Fish",
	"Hand", "Hawk", "Skull", "Sword",
)

var marks = table.New("shapes", 10,
	table.Is(1, Dragon),
	table.Is(2, Skull),
	table.Is(3, Bat),
	table.Is(4, Sword),
	table.Is(5, Hand),
	table.Is(6, CrescentMoon),
	table.Is(7, Claw),
	table.Roll(8, table.Split("birds", 2, Eagle, Hawk)),
	table.Is(9, Fish),
	table.Rest(AnimalOfChoice),
)

// Table returns the d10 shape table.
func Table() table.Table[Shape] { return marks }

// Random rolls a shape.
func Random(r dice.Roller) Shape {
	return marks.Resolve(r)
}

// Values lists every shape.
func Values() []Shape { return shapes.Values() }

// String renders the shape in lower case, e.g. "crescent moon".
func (s Shape) String() string {
	if !shapes.Valid(s) {
		return shapes.Name(s)
	}
	return text.Humanize(shapes.Name(s))
}

// MarshalText encodes the tag name.
func (s Shape) MarshalText() ([]byte, error) { return shapes.MarshalText(s) }

// UnmarshalText decodes a tag name.
func (s *Shape) UnmarshalText(b []byte) error { return shapes.UnmarshalText(s, b) }
