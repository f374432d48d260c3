package unix

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSecondToDay(t *testing.T) {
	tests := []struct {
		hours float64
		days  float64
	}{
		{3, 0.125},
		{24, 1.0},
		{60, 2.5},
		{-12, -0.5},
	}
	for _, tt := range tests {
		got := NewRealSecond(tt.hours * 3600).Day()
		assert.InDelta(t, tt.days, got.Out(), 1e-12, "hours=%v", tt.hours)
	}
}

func TestDayRoundTrip(t *testing.T) {
	d := NewRealDay(12992.395833)
	assert.InDelta(t, d.Out(), d.Seconds().Day().Out(), 1e-9)
}

func TestDayFloor(t *testing.T) {
	assert.Equal(t, int64(1), NewRealDay(1.75).Floor().Out())
	assert.Equal(t, int64(-1), NewRealDay(-0.25).Floor().Out())
}

func TestMicrosToSeconds(t *testing.T) {
	tests := []struct {
		micros  int64
		seconds float64
	}{
		{0, 0},
		{1, 0.000_001},
		{-1, -0.000_001},
		{1_234_567, 1.234_567},
		{-1_234_567, -1.234_567},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.seconds, microsToSeconds(tt.micros), 1e-15)
	}
}

func TestFromTime(t *testing.T) {
	at := time.Date(2005, time.July, 28, 9, 30, 0, 500_000_000, time.UTC)
	assert.InDelta(t, 1122543000.5, FromTime(at).Out(), 1e-6)
	assert.Equal(t, 1122543000.0, NewSecond(1122543000).Real().Out())
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

func TestNow(t *testing.T) {
	at := time.Unix(86400, 0)
	assert.Equal(t, 86400.0, Now(fixedClock(at)).Out())
	assert.WithinDuration(t, time.Now(), SystemClock{}.Now(), time.Minute)
}
