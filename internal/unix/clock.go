package unix

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the operating system clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Now returns the current instant of c as real Unix seconds.
func Now(c Clock) RealSecond {
	return FromTime(c.Now())
}
