package scheduling

import "time"

// SlotStep is the fixed granularity of candidate start times. The grid does
// not adapt to the service duration: a 45-minute service yields overlapping
// candidates (09:00-09:45 and 09:30-10:15). Both are offered; the filter
// only rejects candidates that collide with actual bookings.
const SlotStep = 30 * time.Minute

// GenerateSlots returns every candidate slot for the given calendar day.
// Candidate starts fall on each 30-minute boundary in
// [openingHour:00, closingHour:00); each candidate ends durationMinutes
// later. The result is deterministic and ordered by ascending start time.
//
// date carries the day and location; its clock component is ignored.
func GenerateSlots(date time.Time, openingHour, closingHour, durationMinutes int) []Interval {
	if durationMinutes <= 0 || closingHour <= openingHour {
		return nil
	}

	duration := time.Duration(durationMinutes) * time.Minute
	year, month, day := date.Date()
	open := time.Date(year, month, day, openingHour, 0, 0, 0, date.Location())
	close := time.Date(year, month, day, closingHour, 0, 0, 0, date.Location())

	var slots []Interval
	for start := open; start.Before(close); start = start.Add(SlotStep) {
		slots = append(slots, Interval{Start: start, End: start.Add(duration)})
	}
	return slots
}
