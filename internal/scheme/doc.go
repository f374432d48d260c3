// Package scheme compiles declarative mixed-radix schemes written in CUE.
//
// A file declares any number of schemes under the top-level "scheme" field:
//
//	scheme: clock: {
//		cycle: "day"
//		factors: [
//			{name: "second", size: 60},
//			{name: "minute", size: 60},
//			{name: "hour", size: 24},
//		]
//	}
//
//	scheme: years: {
//		kind:      "filter"
//		cycle:     "aeon"
//		remainder: "day"
//		period:    93502
//		factors: [
//			{name: "hexade", size: 5844, limit: 15},
//			{name: "octade", size: 2922, limit: 1},
//			{name: "unade", size: 365, limit: 7},
//		]
//	}
//
// Mixed factors are listed least significant first and their period, when
// given, must equal the product of the sizes. Filter factors are listed in
// the order they are wound, outermost first, and need an explicit period.
// Limits are only allowed on filter factors.
//
// Compiled schemes work on int64 totals and wrap mixedpoint.SimpleMixed or
// mixedpoint.SimpleFilter.
package scheme
