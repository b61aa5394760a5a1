// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// IsPastDay reports whether the calendar day has fully elapsed at instant
// now. Both boundaries are taken in day's location, so a UTC-parsed booking
// date is not judged against the server's local midnight.
func IsPastDay(day, now time.Time) bool {
	return day.Before(BeginningOfDay(now.In(day.Location())))
}

// ParseDate parses a booking date accepting either a plain day or a full
// RFC 3339 timestamp, normalized to the start of the day.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return BeginningOfDay(t), nil
}
