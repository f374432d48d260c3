package numburs

// Addition. Mixed-kind sums are symmetric; the receiver kind only picks
// the method name.

// Add returns x + y.
func (x Integer[N]) Add(y Integer[N]) Integer[N] {
	return Integer[N]{v: x.v + y.v}
}

// AddNatural returns x + y.
func (x Integer[N]) AddNatural(y Natural[N]) Integer[N] {
	return Integer[N]{v: x.v + y.Out()}
}

// AddPositive returns x + y.
func (x Integer[N]) AddPositive(y Positive[N]) Integer[N] {
	return Integer[N]{v: x.v + y.Out()}
}

// AddMany returns x + y.
func (x Integer[N]) AddMany(y Many[N]) Integer[N] {
	return Integer[N]{v: x.v + y.Out()}
}

// AddInteger returns x + y.
func (x Natural[N]) AddInteger(y Integer[N]) Integer[N] {
	return y.AddNatural(x)
}

// Add returns x + y.
func (x Natural[N]) Add(y Natural[N]) Natural[N] {
	return Natural[N]{v: x.v + y.v}
}

// AddPositive returns x + y, which is positive.
func (x Natural[N]) AddPositive(y Positive[N]) Positive[N] {
	return Positive[N]{m: x.v + y.m}
}

// AddMany returns x + y, which is many.
func (x Natural[N]) AddMany(y Many[N]) Many[N] {
	return Many[N]{m: x.v + y.m}
}

// AddInteger returns x + y.
func (x Positive[N]) AddInteger(y Integer[N]) Integer[N] {
	return y.AddPositive(x)
}

// AddNatural returns x + y.
func (x Positive[N]) AddNatural(y Natural[N]) Positive[N] {
	return y.AddPositive(x)
}

// Add returns x + y. Two positives sum to at least two, so the result is Many.
func (x Positive[N]) Add(y Positive[N]) Many[N] {
	return Many[N]{m: x.m + y.m}
}

// AddMany returns x + y.
func (x Positive[N]) AddMany(y Many[N]) Many[N] {
	return Many[N]{m: x.m + y.m + 1}
}

// AddInteger returns x + y.
func (x Many[N]) AddInteger(y Integer[N]) Integer[N] {
	return y.AddMany(x)
}

// AddNatural returns x + y.
func (x Many[N]) AddNatural(y Natural[N]) Many[N] {
	return y.AddMany(x)
}

// AddPositive returns x + y.
func (x Many[N]) AddPositive(y Positive[N]) Many[N] {
	return y.AddMany(x)
}

// Add returns x + y.
func (x Many[N]) Add(y Many[N]) Many[N] {
	return Many[N]{m: x.m + y.m + 2}
}

// Inc returns x + 1.
func (x Natural[N]) Inc() Positive[N] {
	return Positive[N]{m: x.v}
}

// Inc returns x + 1.
func (x Positive[N]) Inc() Many[N] {
	return Many[N]{m: x.m}
}

// Inc returns x + 1.
func (x Many[N]) Inc() Many[N] {
	return Many[N]{m: x.m + 1}
}

// Neg returns -x.
func (x Integer[N]) Neg() Integer[N] {
	return Integer[N]{v: -x.v}
}

// Sub returns x - y.
func (x Integer[N]) Sub(y Integer[N]) Integer[N] {
	return Integer[N]{v: x.v - y.v}
}

// Multiplication. Zero absorbs positivity, so any product with a Natural
// is at most Natural.

// Mul returns x * y.
func (x Integer[N]) Mul(y Integer[N]) Integer[N] {
	return Integer[N]{v: x.v * y.v}
}

// MulNatural returns x * y.
func (x Integer[N]) MulNatural(y Natural[N]) Integer[N] {
	return Integer[N]{v: x.v * y.Out()}
}

// MulPositive returns x * y.
func (x Integer[N]) MulPositive(y Positive[N]) Integer[N] {
	return Integer[N]{v: x.v * y.Out()}
}

// MulMany returns x * y.
func (x Integer[N]) MulMany(y Many[N]) Integer[N] {
	return Integer[N]{v: x.v * y.Out()}
}

// MulInteger returns x * y.
func (x Natural[N]) MulInteger(y Integer[N]) Integer[N] {
	return y.MulNatural(x)
}

// Mul returns x * y.
func (x Natural[N]) Mul(y Natural[N]) Natural[N] {
	return Natural[N]{v: x.v * y.v}
}

// MulPositive returns x * y.
func (x Natural[N]) MulPositive(y Positive[N]) Natural[N] {
	return Natural[N]{v: x.v * y.Out()}
}

// MulMany returns x * y.
func (x Natural[N]) MulMany(y Many[N]) Natural[N] {
	return Natural[N]{v: x.v * y.Out()}
}

// MulInteger returns x * y.
func (x Positive[N]) MulInteger(y Integer[N]) Integer[N] {
	return y.MulPositive(x)
}

// MulNatural returns x * y.
func (x Positive[N]) MulNatural(y Natural[N]) Natural[N] {
	return y.MulPositive(x)
}

// Mul returns x * y.
func (x Positive[N]) Mul(y Positive[N]) Positive[N] {
	return Positive[N]{m: x.Out()*y.Out() - 1}
}

// MulMany returns x * y.
func (x Positive[N]) MulMany(y Many[N]) Many[N] {
	return Many[N]{m: x.Out()*y.Out() - 2}
}

// MulInteger returns x * y.
func (x Many[N]) MulInteger(y Integer[N]) Integer[N] {
	return y.MulMany(x)
}

// MulNatural returns x * y.
func (x Many[N]) MulNatural(y Natural[N]) Natural[N] {
	return y.MulMany(x)
}

// MulPositive returns x * y.
func (x Many[N]) MulPositive(y Positive[N]) Many[N] {
	return y.MulMany(x)
}

// Mul returns x * y.
func (x Many[N]) Mul(y Many[N]) Many[N] {
	return Many[N]{m: x.Out()*y.Out() - 2}
}

// Division of naturals by strictly positive divisors keeps both quotient
// and remainder natural.

// Div returns x / y.
func (x Natural[N]) Div(y Positive[N]) Natural[N] {
	return Natural[N]{v: x.v / y.Out()}
}

// Rem returns x % y.
func (x Natural[N]) Rem(y Positive[N]) Natural[N] {
	return Natural[N]{v: x.v % y.Out()}
}

// DivMany returns x / y.
func (x Natural[N]) DivMany(y Many[N]) Natural[N] {
	return Natural[N]{v: x.v / y.Out()}
}

// RemMany returns x % y.
func (x Natural[N]) RemMany(y Many[N]) Natural[N] {
	return Natural[N]{v: x.v % y.Out()}
}

// Product returns the product of sizes, or one when sizes is empty.
func Product[N Int](sizes ...Positive[N]) Positive[N] {
	p := OnePositive[N]()
	for _, s := range sizes {
		p = p.Mul(s)
	}
	return p
}
