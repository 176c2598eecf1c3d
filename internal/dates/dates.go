package dates

import "time"

// DayFormat is the standard calendar-day format used throughout the application (YYYY-MM-DD)
const DayFormat = "2006-01-02"

// Clock abstracts the current time so day arithmetic is testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by the local wall clock.
func System() Clock { return systemClock{} }

// fixedClock always reports the same instant. Intended for tests.
type fixedClock struct {
	t time.Time
}

func (f fixedClock) Now() time.Time { return f.t }

// At returns a Clock frozen at the given instant.
func At(t time.Time) Clock { return fixedClock{t: t} }

// Day is a calendar day in the device's local timezone, in YYYY-MM-DD form.
// Days compare by string identity.
type Day string

// DayOf returns the calendar day containing t.
func DayOf(t time.Time) Day {
	return Day(t.Format(DayFormat))
}

// Today returns the current calendar day.
func Today(c Clock) Day {
	return DayOf(c.Now())
}

// Yesterday returns the calendar day before today. This is a calendar-aware
// day subtraction, not a minus-24h shift, so it behaves correctly across DST
// transitions and near midnight.
func Yesterday(c Clock) Day {
	return Today(c).Add(-1)
}

// Add returns the day n calendar days after d (n may be negative).
// An unparseable day is returned unchanged.
func (d Day) Add(n int) Day {
	t, err := time.Parse(DayFormat, string(d))
	if err != nil {
		return d
	}
	return Day(t.AddDate(0, 0, n).Format(DayFormat))
}

// Time returns the midnight instant of d in UTC.
func (d Day) Time() (time.Time, error) {
	return time.Parse(DayFormat, string(d))
}

// LastN returns the last n calendar days ending today, oldest first.
func LastN(c Clock, n int) []Day {
	today := Today(c)
	days := make([]Day, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, today.Add(-i))
	}
	return days
}
