// Package unix holds the units of the Unix time scale, seconds and days
// counted from 1970-01-01T00:00:00Z, and the wall-clock source the rest of
// the module reads "now" from.
package unix
