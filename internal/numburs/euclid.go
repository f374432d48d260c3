package numburs

// Euclid divides x by m, rounding the quotient toward negative infinity.
// The result satisfies x == q*m + r with 0 <= r < m for every sign of x.
func (m Positive[N]) Euclid(x Integer[N]) (q Integer[N], r Natural[N]) {
	d, n := m.Out(), x.Out()
	qv, rv := n/d, n%d
	if rv < 0 {
		qv--
		rv += d
	}
	return Integer[N]{v: qv}, Natural[N]{v: rv}
}
