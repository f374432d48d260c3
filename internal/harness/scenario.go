package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yvan-vivid/vivid-time/internal/scheme"
)

// maxAssertionSpan bounds the totals a single range assertion walks.
const maxAssertionSpan = 1_000_000

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Schemes lists CUE files or directories to compile.
	// Paths are relative to the scenario file location.
	Schemes []string `yaml:"schemes,omitempty"`

	// Scheme names the declared scheme that wind, unwind and bind steps
	// and all assertions run against.
	Scheme string `yaml:"scheme,omitempty"`

	// Clock is the RFC 3339 instant "now" steps start from.
	Clock string `yaml:"clock,omitempty"`

	// Steps run in order and are recorded in the trace.
	Steps []Step `yaml:"steps"`

	// Assertions run after the steps.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is a single operation. Exactly one of Wind, Unwind, Bind and Now is
// set.
type Step struct {
	// Wind decomposes a total.
	Wind *int64 `yaml:"wind,omitempty"`

	// Unwind recomposes a point.
	Unwind *scheme.Point `yaml:"unwind,omitempty"`

	// Bind checks a point without recomposing it.
	Bind *scheme.Point `yaml:"bind,omitempty"`

	// Now reads the System-N time from the scenario clock.
	Now bool `yaml:"now,omitempty"`

	// Advance moves the scenario clock before a now step reads it.
	Advance time.Duration `yaml:"advance,omitempty"`

	// Expect validates the step output. If nil, the step is only traced.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect holds the expected output of a step. Only the fields the step
// produces are compared; unset fields are ignored.
type Expect struct {
	// Cycle, Phase and Remainder describe the wound point (wind).
	Cycle     *int64  `yaml:"cycle,omitempty"`
	Phase     []int64 `yaml:"phase,omitempty"`
	Remainder *int64  `yaml:"remainder,omitempty"`

	// Total is the recomposed total (unwind).
	Total *int64 `yaml:"total,omitempty"`

	// Valid is whether the point binds (bind, unwind).
	Valid *bool `yaml:"valid,omitempty"`

	// Text is the formatted System-N time (now).
	Text *string `yaml:"text,omitempty"`
}

// Assertion validates a property over the scenario scheme.
type Assertion struct {
	// Type specifies the assertion type:
	// - "round_trip": unwinding the wind of each total in range gives it back
	// - "monotone": wound points increase strictly over the range
	// - "rejects": none of Points binds
	Type string `yaml:"type"`

	// From and To bound the totals, inclusive (round_trip, monotone).
	From int64 `yaml:"from,omitempty"`
	To   int64 `yaml:"to,omitempty"`

	// Points are the points expected not to bind (rejects).
	Points []scheme.Point `yaml:"points,omitempty"`
}

// Assertion type constants.
const (
	AssertRoundTrip = "round_trip"
	AssertMonotone  = "monotone"
	AssertRejects   = "rejects"
)

// LoadScenario reads and parses a scenario YAML file, resolving scheme paths
// relative to the file. Returns an error if the file doesn't exist, is
// malformed, contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "assertion:" vs "assertions:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Resolve scheme paths BEFORE validation
	base := filepath.Dir(path)
	for i, p := range scenario.Schemes {
		if !filepath.IsAbs(p) {
			scenario.Schemes[i] = filepath.Join(base, p)
		}
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 && len(s.Assertions) == 0 {
		return fmt.Errorf("at least one step or assertion is required")
	}

	needsScheme := len(s.Assertions) > 0
	needsClock := false
	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
		if step.Now {
			needsClock = true
		} else {
			needsScheme = true
		}
	}

	if needsScheme {
		if s.Scheme == "" {
			return fmt.Errorf("scheme is required for wind, unwind, bind and assertions")
		}
		if len(s.Schemes) == 0 {
			return fmt.Errorf("schemes list is required and must be non-empty")
		}
	}

	for _, p := range s.Schemes {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return fmt.Errorf("scheme path not found: %s", p)
		}
	}

	if needsClock {
		if s.Clock == "" {
			return fmt.Errorf("clock is required for now steps")
		}
		if _, err := time.Parse(time.RFC3339Nano, s.Clock); err != nil {
			return fmt.Errorf("clock: %w", err)
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateStep checks that exactly one operation is set.
func validateStep(index int, step *Step) error {
	ops := 0
	if step.Wind != nil {
		ops++
	}
	if step.Unwind != nil {
		ops++
	}
	if step.Bind != nil {
		ops++
	}
	if step.Now {
		ops++
	}
	if ops != 1 {
		return fmt.Errorf("steps[%d]: exactly one of wind, unwind, bind or now is required", index)
	}
	if step.Advance != 0 && !step.Now {
		return fmt.Errorf("steps[%d]: advance is only allowed on now steps", index)
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertRoundTrip, AssertMonotone:
		if a.From > a.To {
			return fmt.Errorf("assertions[%d]: from must not exceed to for %s", index, a.Type)
		}
		if a.To-a.From > maxAssertionSpan {
			return fmt.Errorf("assertions[%d]: range is wider than %d for %s", index, maxAssertionSpan, a.Type)
		}
	case AssertRejects:
		if len(a.Points) == 0 {
			return fmt.Errorf("assertions[%d]: points list is required for rejects", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
