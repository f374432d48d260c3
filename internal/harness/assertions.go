package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yvan-vivid/vivid-time/internal/scheme"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// evaluateAssertion dispatches on the assertion type.
func evaluateAssertion(s *scheme.Scheme, a Assertion) error {
	switch a.Type {
	case AssertRoundTrip:
		return assertRoundTrip(s, a.From, a.To)
	case AssertMonotone:
		return assertMonotone(s, a.From, a.To)
	case AssertRejects:
		return assertRejects(s, a.Points)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

// describeAssertion renders an assertion for the trace.
func describeAssertion(a Assertion) string {
	switch a.Type {
	case AssertRejects:
		return fmt.Sprintf("%s %d points", a.Type, len(a.Points))
	default:
		return fmt.Sprintf("%s [%d, %d]", a.Type, a.From, a.To)
	}
}

// eachTotal calls fn for every total in [from, to] until it returns an
// error.
func eachTotal(from, to int64, fn func(int64) error) error {
	for t := from; ; t++ {
		if err := fn(t); err != nil {
			return err
		}
		if t == to {
			return nil
		}
	}
}

// assertRoundTrip checks that every total survives Wind then Unwind.
func assertRoundTrip(s *scheme.Scheme, from, to int64) error {
	return eachTotal(from, to, func(t int64) error {
		p := s.Wind(t)
		got, err := s.Unwind(p)
		if err != nil {
			return &AssertionError{
				Type:     AssertRoundTrip,
				Expected: fmt.Sprintf("wind(%d) = %v binds", t, p),
				Actual:   err.Error(),
			}
		}
		if got != t {
			return &AssertionError{
				Type:     AssertRoundTrip,
				Expected: fmt.Sprintf("unwind(wind(%d)) = %d", t, t),
				Actual:   fmt.Sprintf("unwind(%v) = %d", p, got),
			}
		}
		return nil
	})
}

// assertMonotone checks that consecutive totals wind to strictly increasing
// points.
func assertMonotone(s *scheme.Scheme, from, to int64) error {
	var prev []int64
	return eachTotal(from, to, func(t int64) error {
		key := orderKey(s, s.Wind(t))
		if prev != nil && slices.Compare(prev, key) >= 0 {
			return &AssertionError{
				Type:     AssertMonotone,
				Expected: fmt.Sprintf("wind(%d) > wind(%d)", t, t-1),
				Actual:   fmt.Sprintf("%v then %v", prev, key),
			}
		}
		prev = key
		return nil
	})
}

// orderKey lists the coordinates of p from most to least significant.
func orderKey(s *scheme.Scheme, p scheme.Point) []int64 {
	key := make([]int64, 0, len(p.Phase)+2)
	key = append(key, p.Cycle)
	for i := len(p.Phase) - 1; i >= 0; i-- {
		key = append(key, p.Phase[i])
	}
	if s.Kind() == scheme.KindFilter {
		key = append(key, p.Remainder)
	}
	return key
}

// assertRejects checks that no listed point binds.
func assertRejects(s *scheme.Scheme, points []scheme.Point) error {
	for _, p := range points {
		if s.Bind(p) {
			return &AssertionError{
				Type:     AssertRejects,
				Expected: fmt.Sprintf("%v does not bind", p),
				Actual:   "bound",
			}
		}
	}
	return nil
}
