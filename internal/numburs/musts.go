package numburs

import "fmt"

// MustNatural is like [NewNatural] but panics if x is negative.
func MustNatural[N Int](x N) Natural[N] {
	n, err := NewNatural(x)
	if err != nil {
		panic(fmt.Sprintf("MustNatural(%d) failed: %v", x, err))
	}
	return n
}

// MustPositive is like [NewPositive] but panics if x is below one.
func MustPositive[N Int](x N) Positive[N] {
	p, err := NewPositive(x)
	if err != nil {
		panic(fmt.Sprintf("MustPositive(%d) failed: %v", x, err))
	}
	return p
}

// MustMany is like [NewMany] but panics if x is not above one.
func MustMany[N Int](x N) Many[N] {
	m, err := NewMany(x)
	if err != nil {
		panic(fmt.Sprintf("MustMany(%d) failed: %v", x, err))
	}
	return m
}

// MustFractional is like [NewFractional] but panics if x is outside [0, 1).
func MustFractional[F Float](x F) Fractional[F] {
	f, err := NewFractional(x)
	if err != nil {
		panic(fmt.Sprintf("MustFractional(%v) failed: %v", x, err))
	}
	return f
}
