package mixedpoint

import "github.com/yvan-vivid/vivid-time/internal/numburs"

// LimitedCycle is a modulus that counts at most limit whole cycles.
//
// Once the count reaches limit the rest of the total stays in the phase,
// which may then exceed size. Unwinding is exact for every total.
type LimitedCycle[N numburs.Int] struct {
	size  numburs.Positive[N]
	limit numburs.Positive[N]
}

// NewLimitedCycle returns a cycle of the given size saturating after limit
// cycles.
func NewLimitedCycle[N numburs.Int](size, limit numburs.Positive[N]) LimitedCycle[N] {
	return LimitedCycle[N]{size: size, limit: limit}
}

// Size returns the size of one cycle.
func (c LimitedCycle[N]) Size() numburs.Positive[N] {
	return c.size
}

// Limit returns the largest cycle count the cycle produces.
func (c LimitedCycle[N]) Limit() numburs.Positive[N] {
	return c.limit
}

// IsNorm accepts a phase of size or more only at the limit.
func (c LimitedCycle[N]) IsNorm(p CyclePoint[N, numburs.Natural[N]]) bool {
	limit := c.limit.Natural()
	switch p.Cycle.Cmp(limit) {
	case -1:
		return p.Phase.LessThan(c.size)
	case 0:
		return true
	}
	return false
}

// WindInner counts whole cycles up to the limit and keeps the rest as the
// phase.
func (c LimitedCycle[N]) WindInner(total numburs.Natural[N]) CyclePoint[N, numburs.Natural[N]] {
	q := total.Div(c.size)
	if limit := c.limit.Natural(); limit.Less(q) {
		q = limit
	}
	return NewCyclePoint[N](q, numburs.NaturalAtLeast(total.Out()-q.Out()*c.size.Out()))
}

func (c LimitedCycle[N]) Unwind(p CyclePoint[N, numburs.Natural[N]]) numburs.Natural[N] {
	return p.Cycle.MulPositive(c.size).Add(p.Phase)
}

// Mul composes c as the inner cycle of outer: the result has size
// c.size*outer.size and saturates at outer's limit.
func (c LimitedCycle[N]) Mul(outer LimitedCycle[N]) LimitedCycle[N] {
	return NewLimitedCycle(c.size.Mul(outer.size), outer.limit)
}

// Wind decomposes total into a bound point.
func (c LimitedCycle[N]) Wind(total numburs.Natural[N]) BoundCyclePoint[N, numburs.Natural[N]] {
	return Wind[N, numburs.Natural[N]](c, total)
}

// Bind returns p bound to c, or false when p is not normal.
func (c LimitedCycle[N]) Bind(p CyclePoint[N, numburs.Natural[N]]) (BoundCyclePoint[N, numburs.Natural[N]], bool) {
	return Bind[N, numburs.Natural[N]](c, p)
}

// Point binds the point (cycle, phase).
func (c LimitedCycle[N]) Point(cycle, phase numburs.Natural[N]) (BoundCyclePoint[N, numburs.Natural[N]], bool) {
	return c.Bind(NewCyclePoint[N](cycle, phase))
}
