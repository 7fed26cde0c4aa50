// Package dice provides the random source consumed by attribute generation.
//
// Every table, resolver, and generator takes a Roller rather than reaching for
// a global generator, so results are reproducible from a seed and tests can
// script exact draws.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

// Roller supplies uniformly distributed die results.
//
// A Roller is not safe for concurrent use; give each goroutine its own.
type Roller interface {
	// Roll returns an integer in [1, sides]. sides must be positive.
	Roll(sides int) int
	// RollSum returns the sum of count independent Roll(sides) draws.
	RollSum(count, sides int) int
}

// ErrMissingDice indicates a roll request had no dice specified.
var ErrMissingDice = errors.New("at least one die must be provided")

// ErrInvalidDiceSpec indicates a die specification has invalid fields.
var ErrInvalidDiceSpec = errors.New("dice must have positive sides and count")

// Spec describes a die to roll and how many times to roll it.
type Spec struct {
	Count    int
	Sides    int
	Modifier int
}

// String renders the spec in NdM+K notation.
func (s Spec) String() string {
	switch {
	case s.Modifier > 0:
		return fmt.Sprintf("%dd%d+%d", s.Count, s.Sides, s.Modifier)
	case s.Modifier < 0:
		return fmt.Sprintf("%dd%d%d", s.Count, s.Sides, s.Modifier)
	default:
		return fmt.Sprintf("%dd%d", s.Count, s.Sides)
	}
}

var specRe = regexp.MustCompile(`(?i)^\s*(\d+)?\s*d\s*(\d+)\s*(?:([+\-])\s*(\d+))?\s*$`)

// ParseSpec parses NdM, dM, and NdM±K expressions.
func ParseSpec(expr string) (Spec, error) {
	m := specRe.FindStringSubmatch(strings.TrimSpace(expr))
	if m == nil {
		return Spec{}, fmt.Errorf("parse dice %q: %w", expr, ErrInvalidDiceSpec)
	}
	spec := Spec{Count: 1}
	if m[1] != "" {
		spec.Count, _ = strconv.Atoi(m[1])
	}
	spec.Sides, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		spec.Modifier, _ = strconv.Atoi(m[4])
		if m[3] == "-" {
			spec.Modifier = -spec.Modifier
		}
	}
	if spec.Count <= 0 || spec.Sides <= 0 {
		return Spec{}, fmt.Errorf("parse dice %q: %w", expr, ErrInvalidDiceSpec)
	}
	return spec, nil
}

// DieRoll captures the results for a single dice spec.
type DieRoll struct {
	Spec    Spec
	Results []int
	Total   int
}

// RollResult captures the results from rolling multiple dice.
type RollResult struct {
	Rolls []DieRoll
	Total int
}

// RollDice rolls every spec in order with r.
//
// Each DieRoll.Total is the sum of its Results plus the spec modifier, and
// RollResult.Total is the sum of every DieRoll.Total.
func RollDice(r Roller, specs ...Spec) (RollResult, error) {
	if len(specs) == 0 {
		return RollResult{}, ErrMissingDice
	}

	rolls := make([]DieRoll, 0, len(specs))
	total := 0
	for _, spec := range specs {
		if spec.Sides <= 0 || spec.Count <= 0 {
			return RollResult{}, ErrInvalidDiceSpec
		}

		results := make([]int, spec.Count)
		rollTotal := spec.Modifier
		for i := 0; i < spec.Count; i++ {
			value := r.Roll(spec.Sides)
			results[i] = value
			rollTotal += value
		}

		rolls = append(rolls, DieRoll{
			Spec:    spec,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}

	return RollResult{
		Rolls: rolls,
		Total: total,
	}, nil
}

// Seeded is a Roller backed by a seeded math/rand source.
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// New creates a deterministic Roller from seed.
func New(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// NewRandom creates a Roller from a fresh cryptographic seed.
func NewRandom() (*Seeded, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return New(seed), nil
}

// Seed returns the seed the roller was created with.
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Roll returns an integer in [1, sides].
func (s *Seeded) Roll(sides int) int {
	if sides <= 0 {
		panic(fmt.Sprintf("dice: roll with %d sides", sides))
	}
	return s.rng.Intn(sides) + 1
}

// RollSum returns the sum of count rolls of a sides-sided die.
func (s *Seeded) RollSum(count, sides int) int {
	total := 0
	for i := 0; i < count; i++ {
		total += s.Roll(sides)
	}
	return total
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
