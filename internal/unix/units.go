package unix

import (
	"time"

	"github.com/yvan-vivid/vivid-time/internal/numburs"
)

const (
	// DaySeconds is the number of seconds in a Unix day.
	DaySeconds int64 = 24 * 60 * 60

	realDaySeconds = float64(DaySeconds)
	realSecondDays = 1.0 / realDaySeconds
)

// Second is a whole second since the Unix epoch.
type Second struct {
	numburs.Integer[int64]
}

// RealSecond is a possibly fractional second since the Unix epoch.
type RealSecond struct {
	numburs.Real[float64]
}

// Day is a whole day since the Unix epoch.
type Day struct {
	numburs.Integer[int64]
}

// RealDay is a possibly fractional day since the Unix epoch.
type RealDay struct {
	numburs.Real[float64]
}

// NewSecond returns the whole second s.
func NewSecond(s int64) Second {
	return Second{numburs.NewInteger(s)}
}

// NewRealSecond returns the real second s.
func NewRealSecond(s float64) RealSecond {
	return RealSecond{numburs.NewReal(s)}
}

// NewRealDay returns the real day d.
func NewRealDay(d float64) RealDay {
	return RealDay{numburs.NewReal(d)}
}

// Real widens s to a RealSecond.
func (s Second) Real() RealSecond {
	return NewRealSecond(float64(s.Out()))
}

// Day converts s to days.
func (s RealSecond) Day() RealDay {
	return RealDay{s.Scale(realSecondDays)}
}

// Seconds converts d to seconds.
func (d RealDay) Seconds() RealSecond {
	return RealSecond{d.Scale(realDaySeconds)}
}

// Floor returns the whole day containing d.
func (d RealDay) Floor() Day {
	return Day{numburs.Fractionalize[int64](d.Real).Whole}
}

// FromTime returns the instant t as real Unix seconds at microsecond
// precision.
func FromTime(t time.Time) RealSecond {
	return NewRealSecond(microsToSeconds(t.UnixMicro()))
}

func microsToSeconds(micros int64) float64 {
	return float64(micros) / 1_000_000.0
}
