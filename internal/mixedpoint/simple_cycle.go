package mixedpoint

import "github.com/yvan-vivid/vivid-time/internal/numburs"

// SimpleCycle is an ordinary modulus over naturals.
type SimpleCycle[N numburs.Int] struct {
	size numburs.Positive[N]
}

// NewSimpleCycle returns a cycle of the given size.
func NewSimpleCycle[N numburs.Int](size numburs.Positive[N]) SimpleCycle[N] {
	return SimpleCycle[N]{size: size}
}

// Size returns the modulus.
func (c SimpleCycle[N]) Size() numburs.Positive[N] {
	return c.size
}

// IsNorm accepts phases below the size.
func (c SimpleCycle[N]) IsNorm(p CyclePoint[N, numburs.Natural[N]]) bool {
	return p.Phase.LessThan(c.size)
}

// WindInner splits total into whole cycles and the phase left over.
func (c SimpleCycle[N]) WindInner(total numburs.Natural[N]) CyclePoint[N, numburs.Natural[N]] {
	return NewCyclePoint[N](total.Div(c.size), total.Rem(c.size))
}

// Unwind recomposes the total of p.
func (c SimpleCycle[N]) Unwind(p CyclePoint[N, numburs.Natural[N]]) numburs.Natural[N] {
	return p.Cycle.MulPositive(c.size).Add(p.Phase)
}

// Wind decomposes total into a bound point.
func (c SimpleCycle[N]) Wind(total numburs.Natural[N]) BoundCyclePoint[N, numburs.Natural[N]] {
	return Wind[N, numburs.Natural[N]](c, total)
}

// Bind returns p bound to c, or false when p is not normal.
func (c SimpleCycle[N]) Bind(p CyclePoint[N, numburs.Natural[N]]) (BoundCyclePoint[N, numburs.Natural[N]], bool) {
	return Bind[N, numburs.Natural[N]](c, p)
}

// Point binds the point (cycle, phase).
func (c SimpleCycle[N]) Point(cycle, phase numburs.Natural[N]) (BoundCyclePoint[N, numburs.Natural[N]], bool) {
	return c.Bind(NewCyclePoint[N](cycle, phase))
}
