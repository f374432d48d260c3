package numburs

import (
	"fmt"
	"math"
	"strconv"
)

// Fractional is a floating point value in [0, 1).
type Fractional[F Float] struct {
	v F
}

// Real is an unconstrained floating point value.
type Real[F Float] struct {
	v F
}

// WithFraction pairs an integral part with the fractional part that was
// split off it.
type WithFraction[X any, F Float] struct {
	Whole    X
	Fraction Fractional[F]
}

// NewWithFraction returns a WithFraction from its parts.
func NewWithFraction[X any, F Float](whole X, fraction Fractional[F]) WithFraction[X, F] {
	return WithFraction[X, F]{Whole: whole, Fraction: fraction}
}

// NewFractional returns x as a Fractional, or ErrNotFractional when x is
// outside [0, 1).
func NewFractional[F Float](x F) (Fractional[F], error) {
	if !(0 <= x && x < 1) {
		return Fractional[F]{}, fmt.Errorf("%w: %v", ErrNotFractional, x)
	}
	return Fractional[F]{v: x}, nil
}

// FractionalClamped clamps x into [0, 1). NaN maps to zero.
func FractionalClamped[F Float](x F) Fractional[F] {
	switch {
	case x >= 1:
		return Fractional[F]{v: belowOne[F]()}
	case x > 0:
		return Fractional[F]{v: x}
	}
	return Fractional[F]{}
}

// NewReal returns x as a Real. It cannot fail.
func NewReal[F Float](x F) Real[F] {
	return Real[F]{v: x}
}

// Out returns the base value.
func (x Fractional[F]) Out() F {
	return x.v
}

// Out returns the base value.
func (x Real[F]) Out() F {
	return x.v
}

func (x Fractional[F]) String() string {
	return "F(" + strconv.FormatFloat(float64(x.v), 'f', -1, 64) + ")"
}

func (x Real[F]) String() string {
	return "R(" + strconv.FormatFloat(float64(x.v), 'f', -1, 64) + ")"
}

// Mul returns x * y; the unit interval is closed under multiplication.
func (x Fractional[F]) Mul(y Fractional[F]) Fractional[F] {
	return Fractional[F]{v: x.v * y.v}
}

// Real widens x.
func (x Fractional[F]) Real() Real[F] {
	return Real[F]{v: x.v}
}

// Add returns x + y.
func (x Real[F]) Add(y Real[F]) Real[F] {
	return Real[F]{v: x.v + y.v}
}

// Sub returns x - y.
func (x Real[F]) Sub(y Real[F]) Real[F] {
	return Real[F]{v: x.v - y.v}
}

// Mul returns x * y.
func (x Real[F]) Mul(y Real[F]) Real[F] {
	return Real[F]{v: x.v * y.v}
}

// Div returns x / y.
func (x Real[F]) Div(y Real[F]) Real[F] {
	return Real[F]{v: x.v / y.v}
}

// Neg returns -x.
func (x Real[F]) Neg() Real[F] {
	return Real[F]{v: -x.v}
}

// Scale returns x * k.
func (x Real[F]) Scale(k F) Real[F] {
	return Real[F]{v: x.v * k}
}

// Fractionalize splits r into floor(r) and r - floor(r).
//
// The whole part saturates at the bounds of N when floor(r) does not fit.
// NaN yields a zero whole part and a zero fraction.
func Fractionalize[N Int, F Float](r Real[F]) WithFraction[Integer[N], F] {
	x := float64(r.v)
	if math.IsNaN(x) {
		return WithFraction[Integer[N], F]{}
	}
	w := math.Floor(x)
	frac := r.v - F(w)
	if math.IsInf(x, 0) {
		frac = 0
	}
	if frac >= 1 {
		// x was below zero by less than the float spacing at one.
		w++
		frac = 0
	}

	lo, hi := bounds[N]()
	var whole N
	switch {
	case w <= float64(lo):
		whole = lo
	case w >= float64(hi):
		whole = hi
	default:
		whole = N(w)
	}
	return WithFraction[Integer[N], F]{
		Whole:    Integer[N]{v: whole},
		Fraction: FractionalClamped(frac),
	}
}
