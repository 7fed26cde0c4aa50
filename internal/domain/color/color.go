// Package color rolls exotic colors (table 865).
//
// A Hue is a bare base color. An Exotic is a hue with an optional tint, so a
// tint always wraps exactly one bare hue and can never wrap another tint.
package color

import (
	"github.com/louisbranch/rpgassist/internal/domain/table"
	"github.com/louisbranch/rpgassist/internal/platform/dice"
	"github.com/louisbranch/rpgassist/internal/platform/encoding"
	"github.com/louisbranch/rpgassist/internal/platform/text"
)

// Hue is a bare base color.
type Hue int

const (
	Red Hue = iota + 1
	Crimson
	Scarlet
	BloodRed
	RedOrange
	SunsetOrange
	Orange
	YellowOrange
	Yellow
	YellowGreen
	Citrine
	Green
	BlueGreen
	Aquamarine
	Turquoise
	Blue
	BlueViolet
	RoyalBlue
	Violet
	Purple
	Lavender
	RedViolet
	Magenta
	HotPink
	Pink
	White
	SnowWhite
	OffWhite
	Ivory
	Black
	Ebony
	TrueBlack
	VantaBlack
	Gray
	Maroon
	ReddishBrown
	PurplishBrown
	Silver
	Gold
	Platinum
)

var hues = encoding.NewEnum[Hue]("hue", "",
	"Red", "Crimson", "Scarlet", "BloodRed",
	"RedOrange", "SunsetOrange",
	"Orange",
	"YellowOrange",
	"Yellow",
	"YellowGreen", "Citrine",
	"Green",
	"BlueGreen", "Aquamarine", "Turquoise",
	"Blue",
	"BlueViolet", "RoyalBlue",
	"Violet", "Purple", "Lavender",
	"RedViolet", "Magenta", "HotPink",
	"Pink",
	"White", "SnowWhite", "OffWhite", "Ivory",
	"Black", "Ebony", "TrueBlack", "VantaBlack",
	"Gray",
	"Maroon", "ReddishBrown", "PurplishBrown",
	"Silver",
	"Gold",
	"Platinum",
)

// String renders the hue in lower case, e.g. "sunset orange".
func (h Hue) String() string {
	if !hues.Valid(h) {
		return hues.Name(h)
	}
	return text.Humanize(hues.Name(h))
}

// MarshalText encodes the tag name.
func (h Hue) MarshalText() ([]byte, error) { return hues.MarshalText(h) }

// UnmarshalText decodes a tag name.
func (h *Hue) UnmarshalText(b []byte) error { return hues.UnmarshalText(h, b) }

// Hues lists every hue, including ones the table never rolls.
func Hues() []Hue { return hues.Values() }

// The base table uses a d19; sub-tables split color families.
var base = table.New("exotic-colors", 19,
	table.Roll(1, table.Split("reds", 4, Red, Crimson, Scarlet, BloodRed)),
	table.Roll(2, table.Split("red-oranges", 2, RedOrange, SunsetOrange)),
	table.Is(3, Orange),
	table.Is(4, YellowOrange),
	table.Is(5, Yellow),
	table.Roll(6, table.Split("yellow-greens", 2, YellowGreen, Citrine)),
	table.Is(7, Green),
	table.Roll(8, table.Split("blue-greens", 3, BlueGreen, Aquamarine, Turquoise)),
	table.Is(9, Blue),
	table.Roll(10, table.Split("blue-violets", 2, BlueViolet, RoyalBlue)),
	table.Roll(11, table.Split("violets", 3, Violet, Purple, Lavender)),
	table.Roll(12, table.Split("red-violets", 3, RedViolet, Magenta, HotPink)),
	table.Is(13, Pink),
	table.Roll(14, table.Split("whites", 4, White, SnowWhite, OffWhite, Ivory)),
	table.Roll(15, table.Split("blacks", 3, Black, Ebony, TrueBlack)),
	table.Is(16, Gray),
	table.Roll(17, table.Split("browns", 3, Maroon, ReddishBrown, PurplishBrown)),
	table.Roll(18, table.Split("metallics", 2, Silver, Platinum)),
	table.Rest(Gold),
)

// HueTable returns the d19 base color table.
func HueTable() table.Table[Hue] { return base }

// RandomHue rolls a bare base color.
func RandomHue(r dice.Roller) Hue {
	return base.Resolve(r)
}
