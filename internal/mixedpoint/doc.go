// Package mixedpoint decomposes flat totals into mixed-radix points and
// recomposes them.
//
// The building block is a Cycle: a single digit position with a size. Winding
// a total through a cycle yields a CyclePoint (count of whole cycles plus the
// phase within the current one); unwinding reverses it. Three variants exist:
//
//   - SimpleCycle: ordinary modulus over naturals.
//   - LimitedCycle: a modulus that stops counting after limit cycles and folds
//     any excess into the phase, so unwinding stays exact past saturation.
//   - Period: a modulus over signed totals using floor division, with a
//     Representation moving phases between a narrow digit type and a wider
//     total type.
//
// SimpleMixed chains factors behind an outer Period to produce a fixed-width
// digit vector. Digit 0 is the least significant; the outer cycle count is
// the most significant.
//
// SimpleFilter runs the same chain for domains whose usable span is shorter
// than the declared period. Each factor contributes its cycle count rather
// than its phase, stored from the innermost factor at index 0, and the final
// phase is kept as a Remainder. Note the two index conventions differ.
//
// Points coming from outside the package are validated with Bind/Point, which
// return false when the coordinates are not normal for the scheme. Bound
// points are only produced by Wind and Bind, so holding one is evidence of
// validation.
//
// Schemes are immutable after construction and safe for concurrent use.
package mixedpoint
