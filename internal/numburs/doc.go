// Package numburs provides range-refined numeric wrappers over Go's signed
// integer and floating point types.
//
// Every refined value satisfies the predicate of its kind for its whole
// lifetime:
//   - Integer: no constraint
//   - Natural: x >= 0
//   - Positive: x >= 1
//   - Many: x > 1
//   - Fractional: 0 <= x < 1
//   - Real: no constraint
//
// Values are built with a fallible constructor (NewNatural, NewPositive, ...)
// that reports a sentinel error, or a saturating one (NaturalAtLeast,
// FractionalClamped, ...) that rounds to the nearest admissible value.
//
// Arithmetic is only defined where the result kind is known from the operand
// kinds alone, so results are never re-checked at runtime. The closure table:
//
//	+         Integer  Natural   Positive  Many
//	Integer   Integer  Integer   Integer   Integer
//	Natural   Integer  Natural   Positive  Many
//	Positive  Integer  Positive  Many      Many
//	Many      Integer  Many      Many      Many
//
//	*         Integer  Natural   Positive  Many
//	Integer   Integer  Integer   Integer   Integer
//	Natural   Integer  Natural   Natural   Natural
//	Positive  Integer  Natural   Positive  Many
//	Many      Integer  Natural   Many      Many
//
// Widening is always available along Many -> Positive -> Natural -> Integer.
//
// The zero value of every kind is valid: Positive and Many are stored offset
// from their lower bound, so a zero Positive is 1 and a zero Many is 2.
//
// Overflow of the base type is not detected, as with the built-in operators.
package numburs
