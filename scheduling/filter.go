package scheduling

import "time"

// FilterAvailable removes candidates that have already started, that would
// run past closingHour:00, or that overlap any booked interval. Input order
// is preserved. An empty result means the day is fully booked; it is not an
// error.
func FilterAvailable(candidates, booked []Interval, closingHour int, now time.Time) []Interval {
	available := make([]Interval, 0, len(candidates))
	for _, c := range candidates {
		if c.Start.Before(now) {
			continue
		}
		// Working off the candidate's own day handles a salon closing at
		// midnight (closingHour 24 normalizes to next-day 00:00): a slot
		// spilling past it wraps to the next day and still compares after
		// the closing instant. Ending exactly at close is allowed.
		year, month, day := c.Start.Date()
		closing := time.Date(year, month, day, closingHour, 0, 0, 0, c.Start.Location())
		if c.End.After(closing) {
			continue
		}
		if OverlapsAny(c, booked) {
			continue
		}
		available = append(available, c)
	}
	return available
}
