// Package harness provides conformance testing for declared schemes and the
// System-N clock.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	schemes:
//	  - schemes/small.cue
//	scheme: pair
//	clock: "2024-02-01T09:41:15.041199Z"
//	steps:
//	  - wind: 7
//	    expect: { cycle: 1, phase: [1, 0] }
//	  - unwind: { cycle: -1, phase: [1, 1] }
//	    expect: { total: -3 }
//	  - bind: { cycle: 0, phase: [2, 0] }
//	    expect: { valid: false }
//	  - now: true
//	    expect: { text: "∆ 18: 2 ∘ 1 ∘ 2 ∘ 4 / 0 ∘ 1 ∘ 0 ∘ 0 ∘ 0" }
//	assertions:
//	  - type: round_trip
//	    from: -100
//	    to: 100
//
// Scheme paths are relative to the scenario file. Each path may be a CUE file
// or a directory of them.
//
// # Assertion Types
//
//   - round_trip: every total in [from, to] unwinds back from its wound point
//   - monotone: wound points over [from, to] increase strictly in digit order
//   - rejects: every listed point fails to bind
//
// # Deterministic Testing
//
// "now" steps read a testutil.FixedClock stopped at the scenario's clock and
// optionally advanced by the step, so traces are identical across runs and
// can be compared against golden files.
package harness
