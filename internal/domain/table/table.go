// Package table resolves weighted discrete tables.
//
// A Table partitions the faces of a die into ordered, contiguous, inclusive
// ranges. Each range yields either a value or a nested sub-table rolled with an
// independent draw. The last entry absorbs every face above the previous bound,
// so a validated table resolves every possible draw.
package table

import (
	"fmt"
	"strings"

	"github.com/louisbranch/rpgassist/internal/platform/dice"
	apperrors "github.com/louisbranch/rpgassist/internal/platform/errors"
)

// Entry is one range of a partition. It covers the faces above the previous
// entry's bound up to and including Upto. The final entry ignores Upto.
type Entry[T any] struct {
	Upto  int
	Value T
	Sub   *Table[T]
}

// Table is a weighted partition over a Sides-sided die.
type Table[T any] struct {
	Name    string
	Sides   int
	Entries []Entry[T]
}

// Is maps every face up to and including upto to value.
func Is[T any](upto int, value T) Entry[T] {
	return Entry[T]{Upto: upto, Value: value}
}

// Roll maps every face up to and including upto to a sub-table roll.
func Roll[T any](upto int, sub Table[T]) Entry[T] {
	return Entry[T]{Upto: upto, Sub: &sub}
}

// Rest is the catch-all final entry.
func Rest[T any](value T) Entry[T] {
	return Entry[T]{Value: value}
}

// RestRoll is a catch-all final entry that rolls a sub-table.
func RestRoll[T any](sub Table[T]) Entry[T] {
	return Entry[T]{Sub: &sub}
}

// New builds a table and panics if it is not a total partition. Tables are
// package-level data, so an invalid one is a programming error caught at init.
func New[T any](name string, sides int, entries ...Entry[T]) Table[T] {
	t := Table[T]{Name: name, Sides: sides, Entries: entries}
	if err := t.Validate(); err != nil {
		panic(err)
	}
	return t
}

// Split builds an equal-odds sub-table: the first value on 1, the second on
// 2, and so on, with the last value taking the remaining faces.
func Split[T any](name string, sides int, values ...T) Table[T] {
	entries := make([]Entry[T], 0, len(values))
	for i, v := range values {
		if i == len(values)-1 {
			entries = append(entries, Rest(v))
			break
		}
		entries = append(entries, Is(i+1, v))
	}
	return New(name, sides, entries...)
}

// Resolve draws once on the table's die and returns the matching outcome,
// rolling a sub-table when the entry has one.
func (t Table[T]) Resolve(r dice.Roller) T {
	return t.Lookup(r.Roll(t.Sides), r)
}

// Lookup returns the outcome for a known primary draw. Draws below 1 land
// in the first entry and draws above the die land in the last, so every
// integer resolves. r is only consulted for sub-table rolls.
func (t Table[T]) Lookup(draw int, r dice.Roller) T {
	e := t.Entries[t.Index(draw)]
	if e.Sub != nil {
		return e.Sub.Resolve(r)
	}
	return e.Value
}

// Index returns the position of the entry that covers draw.
func (t Table[T]) Index(draw int) int {
	last := len(t.Entries) - 1
	for i, e := range t.Entries[:last] {
		if draw <= e.Upto {
			return i
		}
	}
	return last
}

// Values lists every value the table can produce, sub-tables included, in
// entry order. Duplicates are kept.
func (t Table[T]) Values() []T {
	var values []T
	for _, e := range t.Entries {
		if e.Sub != nil {
			values = append(values, e.Sub.Values()...)
			continue
		}
		values = append(values, e.Value)
	}
	return values
}

// Weight returns how many faces of the table's die select entry i.
func (t Table[T]) Weight(i int) int {
	lower := 1
	if i > 0 {
		lower = t.Entries[i-1].Upto + 1
	}
	upper := t.Sides
	if i < len(t.Entries)-1 {
		upper = t.Entries[i].Upto
	}
	return upper - lower + 1
}

// Validate checks the partition is total and that every entry is reachable:
// bounds strictly increase inside [1, Sides), the final entry is the
// catch-all, and sub-tables are valid themselves.
func (t Table[T]) Validate() error {
	var problems []string
	if t.Sides <= 0 {
		problems = append(problems, fmt.Sprintf("die must have positive sides, got %d", t.Sides))
	}
	if len(t.Entries) == 0 {
		problems = append(problems, "no entries")
	}
	prev := 0
	for i, e := range t.Entries {
		if i < len(t.Entries)-1 {
			if e.Upto <= prev {
				problems = append(problems, fmt.Sprintf("entry %d bound %d does not exceed %d", i, e.Upto, prev))
			}
			if e.Upto >= t.Sides {
				problems = append(problems, fmt.Sprintf("entry %d bound %d leaves the catch-all unreachable on d%d", i, e.Upto, t.Sides))
			}
			prev = e.Upto
		}
		if e.Sub != nil {
			if err := e.Sub.Validate(); err != nil {
				problems = append(problems, fmt.Sprintf("entry %d: %v", i, err))
			}
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return apperrors.WithMetadata(
		apperrors.CodeTableIncomplete,
		fmt.Sprintf("table %s: %s", t.Name, strings.Join(problems, "; ")),
		map[string]string{"table": t.Name},
	)
}
