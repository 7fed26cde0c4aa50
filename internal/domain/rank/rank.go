// Package rank provides the generic rank used for skills and similar traits.
package rank

import "strconv"

// Rank is an unclamped signed level. The zero value is None.
type Rank int

const (
	// None is the starting rank.
	None Rank = 0
	// Average is the rank of an ordinary practitioner.
	Average Rank = 3
)

// Ranked is implemented by anything carrying a rank.
type Ranked interface {
	Rank() Rank
	SetRank(Rank)
}

// Add returns r raised by delta.
func (r Rank) Add(delta int) Rank { return r + Rank(delta) }

// Sub returns r lowered by delta.
func (r Rank) Sub(delta int) Rank { return r - Rank(delta) }

// String returns the bare number.
func (r Rank) String() string { return strconv.Itoa(int(r)) }

// Explain returns the display bucket: "Rank 0" for anything at or below
// zero, "Rank 1" through "Rank 10", and "Rank 11+" above that.
func (r Rank) Explain() string {
	switch {
	case r <= 0:
		return "Rank 0"
	case r > 10:
		return "Rank 11+"
	default:
		return "Rank " + strconv.Itoa(int(r))
	}
}

// Raise adds delta to the rank of x.
func Raise(x Ranked, delta int) {
	x.SetRank(x.Rank().Add(delta))
}
