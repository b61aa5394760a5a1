// Package scheduling holds the pure booking-availability core: half-open
// time intervals, candidate slot generation over business hours, and the
// availability filter. Nothing here touches the database or the clock.
package scheduling

import "time"

// Interval is a half-open time range [Start, End). Callers must guarantee
// Start < End; zero-length or inverted intervals are not special-cased.
type Interval struct {
	Start time.Time `json:"startTime"`
	End   time.Time `json:"endTime"`
}

// Overlaps reports whether a and b share any instant. Half-open semantics:
// touching endpoints (a.End == b.Start) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Within reports whether t lies inside iv (start inclusive, end exclusive).
func Within(t time.Time, iv Interval) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// OverlapsAny reports whether iv overlaps at least one interval in set.
func OverlapsAny(iv Interval, set []Interval) bool {
	for _, b := range set {
		if Overlaps(iv, b) {
			return true
		}
	}
	return false
}
