// Package animal rolls unusual pets (table 759).
package animal

import (
	"github.com/louisbranch/rpgassist/internal/domain/table"
	"github.com/louisbranch/rpgassist/internal/platform/dice"
	"github.com/louisbranch/rpgassist/internal/platform/encoding"
	"github.com/louisbranch/rpgassist/internal/platform/text"
)

// Animal is a kind of pet.
type Animal int

const (
	// BabyBear stays a baby bear indefinitely.
	BabyBear Animal = iota + 1
	// BigCat is a lion, tiger, or similar.
	BigCat
	Bunny
	Cat
	Kitten
	Dog
	Puppy
	Ferret
	// Fish is a variant the pet table never rolls.
	Fish
	// FishOutOfWater survives out of water indefinitely.
	FishOutOfWater
	Hawk
	Lizard
	// MiniDragon may be an actual dragon, or just something resembling one.
	MiniDragon
	Monkey
	Mouse
	Raccoon
	Rat
	// RodentOfChoice is a rodent of the player's choice.
	RodentOfChoice
	Snake
	// SomethingAlien is utterly alien.
	SomethingAlien
	Songbird
)

var animals = encoding.NewEnum[Animal]("animal", "",
	"BabyBear", "BigCat", "Bunny", "Cat", "Kitten", "Dog", "Puppy", "Ferret",
	"Fish", "FishOutOfWater", "Hawk", "Lizard", "MiniDragon", "Monkey", "Mouse",
	"Raccoon", "Rat", "RodentOfChoice", "Snake", "SomethingAlien", "Songbird",
)

var pets = table.New("unusual-pets", 20,
	table.Is(2, Dog),
	table.Is(3, Cat),
	table.Roll(4, table.Split("cat-or-kitten", 2, Cat, Kitten)),
	table.Is(5, Bunny),
	table.Is(6, Lizard),
	table.Is(7, Monkey),
	table.Is(8, Raccoon),
	table.Roll(9, table.Split("rat-or-mouse", 2, Rat, Mouse)),
	table.Is(10, Snake),
	table.Is(11, Hawk),
	table.Is(12, RodentOfChoice),
	table.Is(13, Ferret),
	table.Is(14, Songbird),
	table.Roll(15, table.New("fish", 6,
		table.Rest(FishOutOfWater),
	)),
	table.Is(16, Puppy),
	table.Is(17, MiniDragon),
	table.Is(18, BigCat),
	table.Is(19, BabyBear),
	table.Rest(SomethingAlien),
)

// Table returns the d20 unusual pets table.
func Table() table.Table[Animal] { return pets }

// Random rolls an unusual pet.
func Random(r dice.Roller) Animal {
	return pets.Resolve(r)
}

// Values lists every animal.
func Values() []Animal { return animals.Values() }

// String renders the animal for people, e.g. "mini dragon".
func (a Animal) String() string {
	if !animals.Valid(a) {
		return animals.Name(a)
	}
	return text.Humanize(animals.Name(a))
}

// MarshalText encodes the tag name.
func (a Animal) MarshalText() ([]byte, error) { return animals.MarshalText(a) }

// UnmarshalText decodes a tag name.
func (a *Animal) UnmarshalText(b []byte) error { return animals.UnmarshalText(a, b) }
