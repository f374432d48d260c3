// Package systemn implements the System-N calendar on top of mixedpoint.
//
// A day is split by the clock scheme into 2^20 edges
// (rhythm, beat, moment, event, edge). Days are grouped into years of 365
// or 366 days by a filter with leap cycles of 4, 8 and 128 years, and years
// are grouped into depth (aeon, hexade, octade, unade). Within a year the
// first 360 days form the calendar span (period, spoke, arc, point); the
// remaining days are the interstice.
//
// Day 0 is the epoch, Unix second 1122543000 (2005-07-28T09:30:00Z).
//
// Every scheme in the package is built once on first use and shared.
package systemn
