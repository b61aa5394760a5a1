package scheduling

import (
	"testing"
	"time"
)

func TestFilterAvailable_OpenDayKeepsEverySlotEndingByClose(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := day.AddDate(0, 0, -1) // booking for tomorrow

	candidates := GenerateSlots(day, 9, 18, 60)
	available := FilterAvailable(candidates, nil, 18, now)

	// 09:00 through 17:00: the 17:30 candidate would end 18:30, past close.
	if len(available) != 17 {
		t.Fatalf("expected 17 slots, got %d", len(available))
	}
	if !available[0].Start.Equal(day.Add(9 * time.Hour)) {
		t.Fatalf("first slot should start 09:00, got %s", available[0].Start)
	}
	last := available[len(available)-1]
	if !last.Start.Equal(day.Add(17 * time.Hour)) {
		t.Fatalf("last slot should start 17:00, got %s", last.Start)
	}
	// Overlapping candidates (09:00-10:00 and 09:30-10:30) both survive on
	// an open day.
	if !available[1].Start.Equal(day.Add(9*time.Hour + 30*time.Minute)) {
		t.Fatalf("expected overlapping 09:30 candidate, got %s", available[1].Start)
	}
}

func TestFilterAvailable_ExcludesBookedAndKeepsTouching(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := day.AddDate(0, 0, -1)

	booked := []Interval{
		{Start: day.Add(14 * time.Hour), End: day.Add(15 * time.Hour)},
	}
	candidates := GenerateSlots(day, 9, 18, 60)
	available := FilterAvailable(candidates, booked, 18, now)

	for _, s := range available {
		if OverlapsAny(s, booked) {
			t.Fatalf("slot %s-%s overlaps a booking", s.Start, s.End)
		}
	}

	has := func(h, m int) bool {
		want := time.Date(2026, 9, 15, h, m, 0, 0, time.UTC)
		for _, s := range available {
			if s.Start.Equal(want) {
				return true
			}
		}
		return false
	}

	if has(13, 30) {
		t.Fatal("13:30-14:30 overlaps the booking and must be excluded")
	}
	if has(14, 0) {
		t.Fatal("14:00-15:00 is identical to the booking and must be excluded")
	}
	if !has(15, 0) {
		t.Fatal("15:00-16:00 only touches the booking and must be included")
	}
}

func TestFilterAvailable_DropsPastSlots(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := day.Add(12*time.Hour + 10*time.Minute) // 12:10 same day

	candidates := GenerateSlots(day, 9, 18, 30)
	available := FilterAvailable(candidates, nil, 18, now)

	for _, s := range available {
		if s.Start.Before(now) {
			t.Fatalf("slot starting %s is in the past", s.Start)
		}
	}
	if !available[0].Start.Equal(day.Add(12*time.Hour + 30*time.Minute)) {
		t.Fatalf("first future slot should be 12:30, got %s", available[0].Start)
	}
}

func TestFilterAvailable_DropsClosingSpillover(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := day.AddDate(0, 0, -1)

	candidates := GenerateSlots(day, 9, 18, 90)
	available := FilterAvailable(candidates, nil, 18, now)

	close := day.Add(18 * time.Hour)
	for _, s := range available {
		if s.End.After(close) {
			t.Fatalf("slot ending %s runs past closing", s.End)
		}
	}
	last := available[len(available)-1]
	if !last.End.Equal(close) {
		t.Fatalf("latest slot should end exactly at close, got %s", last.End)
	}
}

func TestFilterAvailable_MidnightClose(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := day.AddDate(0, 0, -1)

	candidates := GenerateSlots(day, 9, 24, 60)
	available := FilterAvailable(candidates, nil, 24, now)

	midnight := day.AddDate(0, 0, 1)
	for _, s := range available {
		if s.End.After(midnight) {
			t.Fatalf("slot ending %s runs past a midnight close", s.End)
		}
	}
	last := available[len(available)-1]
	if !last.Start.Equal(day.Add(23 * time.Hour)) {
		t.Fatalf("latest slot should start 23:00 and end at midnight, got %s", last.Start)
	}
	// The 23:30 candidate ends 00:30 next day and must be excluded even
	// though its end hour (0) is numerically below the closing hour.
	for _, s := range available {
		if s.Start.Equal(day.Add(23*time.Hour + 30*time.Minute)) {
			t.Fatal("23:30-00:30 spills past the midnight close and must be excluded")
		}
	}
}

func TestFilterAvailable_FullyBookedIsEmptyNotNilPanic(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := day.AddDate(0, 0, -1)

	booked := []Interval{
		{Start: day.Add(9 * time.Hour), End: day.Add(18 * time.Hour)},
	}
	candidates := GenerateSlots(day, 9, 18, 30)
	available := FilterAvailable(candidates, booked, 18, now)

	if len(available) != 0 {
		t.Fatalf("expected no slots on a fully booked day, got %d", len(available))
	}
}

func TestFilterAvailable_PreservesOrdering(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := day.AddDate(0, 0, -1)

	booked := []Interval{
		{Start: day.Add(11 * time.Hour), End: day.Add(12 * time.Hour)},
	}
	candidates := GenerateSlots(day, 9, 18, 30)
	available := FilterAvailable(candidates, booked, 18, now)

	for i := 1; i < len(available); i++ {
		if !available[i-1].Start.Before(available[i].Start) {
			t.Fatalf("slots out of order at index %d", i)
		}
	}
}
