package systemn

import (
	"math"
	"time"

	"github.com/yvan-vivid/vivid-time/internal/unix"
)

// EpochUnixSecond is day 0, 2005-07-28T05:30:00 in New York.
const EpochUnixSecond int64 = 1122543000

var epochUnixDay = unix.NewSecond(EpochUnixSecond).Real().Day()

// FromUnixDay shifts a real Unix day to the System-N epoch.
func FromUnixDay(d unix.RealDay) RealDay {
	return RealDay{d.Sub(epochUnixDay.Real)}
}

// FromUnixSecond returns the time of a real Unix second.
func FromUnixSecond(s unix.RealSecond) TimeWithFraction {
	return TimeWithFractionOf(FromUnixDay(s.Day()).Edge())
}

// FromInstant returns the time of t.
func FromInstant(t time.Time) TimeWithFraction {
	return FromUnixSecond(unix.FromTime(t))
}

// Now returns the current time read from c.
func Now(c unix.Clock) TimeWithFraction {
	return FromUnixSecond(unix.Now(c))
}

// ToUnixSecond returns the real Unix second of edge e.
func ToUnixSecond(e RealEdge) unix.RealSecond {
	days := e.Scale(1 / realEdgesPerDay)
	return unix.RealDay{Real: days.Add(epochUnixDay.Real)}.Seconds()
}

// ToInstant returns the instant of t in UTC, rounded to the microsecond.
func ToInstant(t TimeWithFraction) time.Time {
	edge := float64(t.Time.Edge().Out()) + t.Fraction.Out()
	micros := ToUnixSecond(NewRealEdge(edge)).Out() * 1_000_000
	return time.UnixMicro(int64(math.Round(micros))).UTC()
}
