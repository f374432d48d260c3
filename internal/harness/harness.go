package harness

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/yvan-vivid/vivid-time/internal/format"
	"github.com/yvan-vivid/vivid-time/internal/scheme"
	"github.com/yvan-vivid/vivid-time/internal/systemn"
	"github.com/yvan-vivid/vivid-time/internal/testutil"
)

// Harness executes one scenario.
type Harness struct {
	scheme *scheme.Scheme
	clock  *testutil.FixedClock
	points format.PointFormatter
	times  *format.Formatter
	logger *slog.Logger
}

// Run executes a test scenario and returns the result.
//
// Execution flow:
// 1. Compile the scheme files and look up the scenario scheme
// 2. Stop a fixed clock at the scenario instant
// 3. Execute steps, checking expect clauses
// 4. Evaluate assertions
//
// Expectation and assertion failures are reported in the Result. The error
// is only non-nil when the scenario cannot be executed at all.
func Run(scenario *Scenario) (*Result, error) {
	h := &Harness{
		points: format.NewPointFormatter(""),
		times:  format.New(format.Options{}),
		logger: slog.Default().With("scenario", scenario.Name),
	}

	if scenario.Scheme != "" {
		s, err := loadScheme(scenario.Schemes, scenario.Scheme)
		if err != nil {
			return nil, err
		}
		h.scheme = s
	}

	if scenario.Clock != "" {
		clock, err := testutil.ParseFixedClock(scenario.Clock)
		if err != nil {
			return nil, fmt.Errorf("clock: %w", err)
		}
		h.clock = clock
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		if err := h.executeStep(i, step, result); err != nil {
			return nil, fmt.Errorf("steps[%d]: %w", i, err)
		}
	}

	for i, assertion := range scenario.Assertions {
		if h.scheme == nil {
			return nil, fmt.Errorf("assertions[%d]: no scheme loaded", i)
		}
		input := describeAssertion(assertion)
		if err := evaluateAssertion(h.scheme, assertion); err != nil {
			result.AddTrace(OpAssert, input, "fail")
			result.AddError(fmt.Sprintf("assertions[%d]: %v", i, err))
			continue
		}
		result.AddTrace(OpAssert, input, "ok")
	}

	h.logger.Debug("scenario finished", "pass", result.Pass, "events", len(result.Trace))
	return result, nil
}

// loadScheme compiles every path and returns the scheme called name.
func loadScheme(paths []string, name string) (*scheme.Scheme, error) {
	catalog := scheme.NewCatalog()
	for _, p := range paths {
		c, err := scheme.Load(p)
		if err != nil {
			return nil, fmt.Errorf("loading schemes: %w", err)
		}
		if err := catalog.Merge(c); err != nil {
			return nil, fmt.Errorf("loading schemes: %s: %w", p, err)
		}
	}
	return catalog.Lookup(name)
}

func (h *Harness) executeStep(index int, step Step, result *Result) error {
	if !step.Now && h.scheme == nil {
		return fmt.Errorf("no scheme loaded")
	}

	switch {
	case step.Wind != nil:
		h.wind(index, *step.Wind, step.Expect, result)
	case step.Unwind != nil:
		h.unwind(index, *step.Unwind, step.Expect, result)
	case step.Bind != nil:
		h.bind(index, *step.Bind, step.Expect, result)
	case step.Now:
		if h.clock == nil {
			return fmt.Errorf("no clock set")
		}
		h.now(index, step.Advance, step.Expect, result)
	default:
		return fmt.Errorf("empty step")
	}
	return nil
}

func (h *Harness) wind(index int, total int64, expect *Expect, result *Result) {
	got := h.scheme.Wind(total)
	input := strconv.FormatInt(total, 10)
	result.AddTrace(OpWind, input, h.points.Format(h.scheme, got))
	h.logger.Debug("wind", "total", total, "point", got)

	if expect == nil {
		return
	}
	want := got
	want.Phase = slices.Clone(got.Phase)
	if expect.Cycle != nil {
		want.Cycle = *expect.Cycle
	}
	if expect.Phase != nil {
		want.Phase = expect.Phase
	}
	if expect.Remainder != nil {
		want.Remainder = *expect.Remainder
	}
	if want.Cycle != got.Cycle || want.Remainder != got.Remainder || !slices.Equal(want.Phase, got.Phase) {
		result.AddError(fmt.Sprintf("steps[%d]: wind %s: expected %v, got %v", index, input, want, got))
	}
}

func (h *Harness) unwind(index int, p scheme.Point, expect *Expect, result *Result) {
	input := h.points.Format(h.scheme, p)
	total, err := h.scheme.Unwind(p)
	output := "invalid"
	if err == nil {
		output = strconv.FormatInt(total, 10)
	}
	result.AddTrace(OpUnwind, input, output)

	if expect == nil {
		return
	}
	if expect.Valid != nil && *expect.Valid != (err == nil) {
		result.AddError(fmt.Sprintf("steps[%d]: unwind %s: expected valid=%t, got %s", index, input, *expect.Valid, output))
		return
	}
	if expect.Total != nil && (err != nil || total != *expect.Total) {
		result.AddError(fmt.Sprintf("steps[%d]: unwind %s: expected %d, got %s", index, input, *expect.Total, output))
	}
}

func (h *Harness) bind(index int, p scheme.Point, expect *Expect, result *Result) {
	input := h.points.Format(h.scheme, p)
	ok := h.scheme.Bind(p)
	result.AddTrace(OpBind, input, strconv.FormatBool(ok))

	if expect != nil && expect.Valid != nil && *expect.Valid != ok {
		result.AddError(fmt.Sprintf("steps[%d]: bind %s: expected %t, got %t", index, input, *expect.Valid, ok))
	}
}

func (h *Harness) now(index int, advance time.Duration, expect *Expect, result *Result) {
	if advance != 0 {
		h.clock.Advance(advance)
	}
	input := h.clock.Now().UTC().Format(time.RFC3339Nano)
	got := h.times.Time(systemn.Now(h.clock).Time)
	result.AddTrace(OpNow, input, got)

	if expect != nil && expect.Text != nil && *expect.Text != got {
		result.AddError(fmt.Sprintf("steps[%d]: now %s: expected %q, got %q", index, input, *expect.Text, got))
	}
}
