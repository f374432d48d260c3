package systemn

// Date is a day written as depth, year and calendar position.
type Date struct {
	Depth    Depth
	Year     Year
	Calendar Calendar
}

// Time is an edge written as a date and a clock.
type Time struct {
	Date  Date
	Clock Clock
}

// TimeWithFraction is a Time plus the part of an edge below it.
type TimeWithFraction struct {
	Time     Time
	Fraction EdgeFraction
}

// DateOf returns the date of day.
func DateOf(day Day) Date {
	dd := DepthOfDay(day)
	return Date{
		Depth:    dd.Depth,
		Year:     dd.Depth.Year(),
		Calendar: CalendarOf(dd.Day),
	}
}

// Day returns the day d stands for.
func (d Date) Day() Day {
	return DepthWithDay{Depth: d.Depth, Day: YearDayOf(d.Calendar)}.EpochDay()
}

// TimeOf returns the time of edge.
func TimeOf(edge Edge) Time {
	cd := ClockAt(edge)
	return Time{Date: DateOf(cd.Day), Clock: cd.Clock}
}

// Edge returns the edge t stands for.
func (t Time) Edge() Edge {
	days := t.Date.Day().Integer.MulPositive(pos(EdgesPerDay))
	return Edge{days.Add(t.Clock.Edges().Integer)}
}

// TimeWithFractionOf returns the time of a real edge.
func TimeWithFractionOf(edge RealEdge) TimeWithFraction {
	split := edge.Split()
	return TimeWithFraction{Time: TimeOf(split.Edge), Fraction: split.Fraction}
}
