package numburs

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// Int is the set of base types for integral refinements.
// Only signed types are admitted: Euclidean division needs negative totals.
type Int interface {
	constraints.Signed
}

// Float is the set of base types for real refinements.
type Float interface {
	constraints.Float
}

var (
	ErrNotNatural    = errors.New("not a natural number")
	ErrNotPositive   = errors.New("not a positive number")
	ErrNotMany       = errors.New("not greater than one")
	ErrNotFractional = errors.New("not in [0, 1)")
)

// bounds returns the smallest and largest values of N.
func bounds[N Int]() (lo, hi N) {
	hi = 1
	for next := hi<<1 | 1; next > hi; next = hi<<1 | 1 {
		hi = next
	}
	lo = -hi - 1
	return lo, hi
}

// belowOne returns the largest value of F strictly less than one.
func belowOne[F Float]() F {
	if b := F(math.Nextafter(1, 0)); b < 1 {
		return b
	}
	return F(math.Nextafter32(1, 0))
}
