package stat

import (
	"fmt"

	"github.com/louisbranch/rpgassist/internal/platform/dice"
	"github.com/louisbranch/rpgassist/internal/platform/encoding"
	apperrors "github.com/louisbranch/rpgassist/internal/platform/errors"
)

// Sheet holds at most one stat per kind, in Kinds order.
type Sheet []Stat

// Roll rolls a starting stat: 15+d20 years for Age, 3d6 for everything else.
func Roll(r dice.Roller, kind Kind) Stat {
	if kind == Age {
		return New(kind, 15+r.Roll(20))
	}
	return New(kind, r.RollSum(3, 6))
}

// RollSheet rolls every kind in Kinds order.
func RollSheet(r dice.Roller) Sheet {
	sheet := make(Sheet, 0, len(kinds.Values()))
	for _, kind := range Kinds() {
		sheet = append(sheet, Roll(r, kind))
	}
	return sheet
}

// Get returns the stat of the given kind.
func (s Sheet) Get(kind Kind) (Stat, bool) {
	for _, st := range s {
		if st.kind == kind {
			return st, true
		}
	}
	return Stat{}, false
}

// Apply adds mod to the sheet stat of the same kind in place. It reports
// false when the sheet has no stat of that kind.
func (s Sheet) Apply(mod Stat) bool {
	for i := range s {
		if s[i].kind == mod.kind {
			s[i] = s[i].AddStat(mod)
			return true
		}
	}
	return false
}

// Modifier is a template adjustment to one rolled stat, e.g. Str -2.
type Modifier struct {
	Kind  Kind `json:"kind" yaml:"kind"`
	Delta int  `json:"delta" yaml:"delta"`
}

// Stat returns the modifier as an unclamped stat of its kind.
func (m Modifier) Stat() Stat { return New(m.Kind, m.Delta) }

// String renders the modifier, e.g. "Str -2".
func (m Modifier) String() string {
	return fmt.Sprintf("%s %+d", m.Kind, m.Delta)
}

// Check compares one stat against a threshold, e.g. Str Greater 12.
type Check struct {
	Kind     Kind              `json:"kind" yaml:"kind"`
	Ordering encoding.Ordering `json:"ordering" yaml:"ordering"`
	Value    int               `json:"value" yaml:"value"`
}

// String renders the check, e.g. "Str Greater 12".
func (c Check) String() string {
	return fmt.Sprintf("%s %s %d", c.Kind, c.Ordering, c.Value)
}

// Holds reports whether st satisfies the check. A stat of another kind
// panics with STAT_KIND_MISMATCH.
func (c Check) Holds(st Stat) bool {
	New(c.Kind, 0).mustMatch(st, "compare")
	return encoding.Compare(st.value, c.Value) == c.Ordering
}

// Evaluate applies the check to the matching stat of sheet.
func (c Check) Evaluate(sheet Sheet) (bool, error) {
	st, ok := sheet.Get(c.Kind)
	if !ok {
		return false, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("sheet has no %s", c.Kind))
	}
	return c.Holds(st), nil
}
