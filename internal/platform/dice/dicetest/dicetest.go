// Package dicetest provides scripted dice.Roller implementations for tests.
package dicetest

import "fmt"

// Sequence returns scripted draws in order. It panics when exhausted or when a
// scripted draw does not fit the die being rolled.
type Sequence struct {
	draws []int
	next  int
	sides []int
}

// NewSequence creates a roller that returns draws in order.
func NewSequence(draws ...int) *Sequence {
	return &Sequence{draws: draws}
}

// Roll returns the next scripted draw.
func (s *Sequence) Roll(sides int) int {
	if s.next >= len(s.draws) {
		panic(fmt.Sprintf("dicetest: sequence exhausted after %d draws (rolling d%d)", len(s.draws), sides))
	}
	draw := s.draws[s.next]
	if draw < 1 || draw > sides {
		panic(fmt.Sprintf("dicetest: draw %d at position %d does not fit d%d", draw, s.next, sides))
	}
	s.next++
	s.sides = append(s.sides, sides)
	return draw
}

// RollSum sums the next count scripted draws.
func (s *Sequence) RollSum(count, sides int) int {
	total := 0
	for i := 0; i < count; i++ {
		total += s.Roll(sides)
	}
	return total
}

// Used returns how many draws have been consumed.
func (s *Sequence) Used() int {
	return s.next
}

// Remaining returns how many scripted draws are left.
func (s *Sequence) Remaining() int {
	return len(s.draws) - s.next
}

// Sides returns the die size of every draw consumed so far.
func (s *Sequence) Sides() []int {
	return append([]int(nil), s.sides...)
}

// Constant always returns the same face, capped to the die size.
type Constant int

// Roll returns the constant face, or sides when the constant is larger.
func (c Constant) Roll(sides int) int {
	if int(c) > sides {
		return sides
	}
	if c < 1 {
		return 1
	}
	return int(c)
}

// RollSum returns count constant faces.
func (c Constant) RollSum(count, sides int) int {
	return count * c.Roll(sides)
}

// Max is a roller that always returns the highest face.
type Max struct{}

// Roll returns sides.
func (Max) Roll(sides int) int { return sides }

// RollSum returns count * sides.
func (Max) RollSum(count, sides int) int { return count * sides }
