package systemn

import (
	"sync"

	"github.com/yvan-vivid/vivid-time/internal/mixedpoint"
	"github.com/yvan-vivid/vivid-time/internal/numburs"
)

type (
	mixedScheme  = mixedpoint.SimpleMixed[int64, int64]
	filterScheme = mixedpoint.SimpleFilter[int64, int64]
)

func pos(x int64) numburs.Positive[int64] {
	return numburs.MustPositive(x)
}

func identityMixed(sizes ...int64) *mixedScheme {
	positives := make([]numburs.Positive[int64], len(sizes))
	for i, s := range sizes {
		positives[i] = pos(s)
	}
	return mixedpoint.FromSizes[int64, int64](mixedpoint.Identity[int64]{}, positives...)
}

// ClockScheme splits a day into edges.
var ClockScheme = sync.OnceValue(func() *mixedScheme {
	return identityMixed(2, 64, 64, 8, 16)
})

// CalendarScheme splits the first 360 days of a year.
var CalendarScheme = sync.OnceValue(func() *mixedScheme {
	return identityMixed(8, 3, 3, 5)
})

// DepthYearsScheme splits years into aeons of 256.
var DepthYearsScheme = sync.OnceValue(func() *mixedScheme {
	return identityMixed(8, 2, 16)
})

// DepthDaysScheme splits days into the leap cycles of an aeon, leaving the
// day of the year as the remainder.
//
// An aeon has 256 years and 93502 days. Each 5844-day hexade has two
// 2922-day octades of eight 365-day years, the last year of each octade
// taking the two spare days. The final hexade is two days short.
var DepthDaysScheme = sync.OnceValue(func() *filterScheme {
	return mixedpoint.NewSimpleFilter[int64, int64](
		mixedpoint.NewIdentityPeriod(pos(93502)),
		mixedpoint.NewLimitedCycle(pos(5844), pos(15)),
		mixedpoint.NewLimitedCycle(pos(2922), pos(1)),
		mixedpoint.NewLimitedCycle(pos(365), pos(7)),
	)
})

var (
	// ClockLegend names the clock digits, least significant first.
	ClockLegend = mixedpoint.NewPhaseLegend("edge", "event", "moment", "beat", "rhythm")

	// CalendarLegend names the calendar digits, least significant first.
	CalendarLegend = mixedpoint.NewPhaseLegend("point", "arc", "spoke", "period")

	// DepthLegend names the aeon count and the depth digits.
	DepthLegend = mixedpoint.NewMixedPointLegend("aeon", "unade", "octade", "hexade")
)
