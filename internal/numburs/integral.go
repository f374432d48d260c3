package numburs

import (
	"cmp"
	"fmt"
)

// Integer is an unconstrained integral value.
type Integer[N Int] struct {
	v N
}

// Natural is an integral value that is never negative.
type Natural[N Int] struct {
	v N
}

// Positive is an integral value that is at least one.
// The stored value is offset by one.
type Positive[N Int] struct {
	m N
}

// Many is an integral value that is strictly greater than one.
// The stored value is offset by two.
type Many[N Int] struct {
	m N
}

// NewInteger returns x as an Integer. It cannot fail.
func NewInteger[N Int](x N) Integer[N] {
	return Integer[N]{v: x}
}

// NewNatural returns x as a Natural, or ErrNotNatural when x < 0.
func NewNatural[N Int](x N) (Natural[N], error) {
	if x < 0 {
		return Natural[N]{}, fmt.Errorf("%w: %d", ErrNotNatural, x)
	}
	return Natural[N]{v: x}, nil
}

// NewPositive returns x as a Positive, or ErrNotPositive when x < 1.
func NewPositive[N Int](x N) (Positive[N], error) {
	if x < 1 {
		return Positive[N]{}, fmt.Errorf("%w: %d", ErrNotPositive, x)
	}
	return Positive[N]{m: x - 1}, nil
}

// NewMany returns x as a Many, or ErrNotMany when x <= 1.
func NewMany[N Int](x N) (Many[N], error) {
	if x <= 1 {
		return Many[N]{}, fmt.Errorf("%w: %d", ErrNotMany, x)
	}
	return Many[N]{m: x - 2}, nil
}

// NaturalAtLeast returns max(x, 0) as a Natural.
func NaturalAtLeast[N Int](x N) Natural[N] {
	if x < 0 {
		return Natural[N]{}
	}
	return Natural[N]{v: x}
}

// PositiveAtLeast returns max(x, 1) as a Positive.
func PositiveAtLeast[N Int](x N) Positive[N] {
	if x < 1 {
		return Positive[N]{}
	}
	return Positive[N]{m: x - 1}
}

// ManyAtLeast returns max(x, 2) as a Many.
func ManyAtLeast[N Int](x N) Many[N] {
	if x < 2 {
		return Many[N]{}
	}
	return Many[N]{m: x - 2}
}

// Out returns the base value.
func (x Integer[N]) Out() N {
	return x.v
}

// Out returns the base value.
func (x Natural[N]) Out() N {
	return x.v
}

// Out returns the base value.
func (x Positive[N]) Out() N {
	return x.m + 1
}

// Out returns the base value.
func (x Many[N]) Out() N {
	return x.m + 2
}

func (x Integer[N]) String() string {
	return fmt.Sprintf("I(%d)", x.Out())
}

func (x Natural[N]) String() string {
	return fmt.Sprintf("N(%d)", x.Out())
}

func (x Positive[N]) String() string {
	return fmt.Sprintf("P(%d)", x.Out())
}

func (x Many[N]) String() string {
	return fmt.Sprintf("M(%d)", x.Out())
}

// Integer widens x.
func (x Natural[N]) Integer() Integer[N] {
	return Integer[N]{v: x.v}
}

// Integer widens x.
func (x Positive[N]) Integer() Integer[N] {
	return Integer[N]{v: x.Out()}
}

// Natural widens x.
func (x Positive[N]) Natural() Natural[N] {
	return Natural[N]{v: x.Out()}
}

// Integer widens x.
func (x Many[N]) Integer() Integer[N] {
	return Integer[N]{v: x.Out()}
}

// Natural widens x.
func (x Many[N]) Natural() Natural[N] {
	return Natural[N]{v: x.Out()}
}

// Positive widens x.
func (x Many[N]) Positive() Positive[N] {
	return Positive[N]{m: x.m + 1}
}

// ZeroInteger returns 0 as an Integer.
func ZeroInteger[N Int]() Integer[N] {
	return Integer[N]{}
}

// ZeroNatural returns 0 as a Natural.
func ZeroNatural[N Int]() Natural[N] {
	return Natural[N]{}
}

// OneInteger returns 1 as an Integer.
func OneInteger[N Int]() Integer[N] {
	return Integer[N]{v: 1}
}

// OneNatural returns 1 as a Natural.
func OneNatural[N Int]() Natural[N] {
	return Natural[N]{v: 1}
}

// OnePositive returns 1 as a Positive.
func OnePositive[N Int]() Positive[N] {
	return Positive[N]{}
}

// Cmp returns -1, 0 or +1 comparing x with y.
func (x Integer[N]) Cmp(y Integer[N]) int {
	return cmp.Compare(x.Out(), y.Out())
}

// Cmp returns -1, 0 or +1 comparing x with y.
func (x Natural[N]) Cmp(y Natural[N]) int {
	return cmp.Compare(x.Out(), y.Out())
}

// Less reports whether x < y.
func (x Natural[N]) Less(y Natural[N]) bool {
	return x.Out() < y.Out()
}

// LessThan reports whether x is below the positive bound y.
func (x Natural[N]) LessThan(y Positive[N]) bool {
	return x.Out() < y.Out()
}

// Cmp returns -1, 0 or +1 comparing x with y.
func (x Positive[N]) Cmp(y Positive[N]) int {
	return cmp.Compare(x.Out(), y.Out())
}

// MapInteger applies f to the base value of x, moving it to another
// base type.
func MapInteger[U, L Int](x Integer[U], f func(U) L) Integer[L] {
	return Integer[L]{v: f(x.Out())}
}

// ConvertNatural converts x to the base type L. Conversion keeps the sign,
// so the result is natural whenever the value fits L.
func ConvertNatural[U, L Int](x Natural[U]) Natural[L] {
	return NaturalAtLeast(L(x.Out()))
}

// ConvertPositive converts x to the base type L, saturating at one if the
// value does not fit.
func ConvertPositive[U, L Int](x Positive[U]) Positive[L] {
	return PositiveAtLeast(L(x.Out()))
}
