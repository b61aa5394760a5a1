package scheduling

import (
	"testing"
	"time"
)

func TestGenerateSlots_FullDayGrid(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(day, 9, 18, 60)

	// One candidate per 30-minute boundary from 09:00 through 17:30.
	if len(slots) != 18 {
		t.Fatalf("expected 18 candidates, got %d", len(slots))
	}
	if !slots[0].Start.Equal(day.Add(9 * time.Hour)) {
		t.Fatalf("first candidate should start 09:00, got %s", slots[0].Start)
	}
	if !slots[0].End.Equal(day.Add(10 * time.Hour)) {
		t.Fatalf("first candidate should end 10:00, got %s", slots[0].End)
	}
	last := slots[len(slots)-1]
	if !last.Start.Equal(day.Add(17*time.Hour + 30*time.Minute)) {
		t.Fatalf("last candidate should start 17:30, got %s", last.Start)
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	first := GenerateSlots(day, 9, 18, 45)
	second := GenerateSlots(day, 9, 18, 45)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || !first[i].End.Equal(second[i].End) {
			t.Fatalf("slot %d differs between runs", i)
		}
	}
}

func TestGenerateSlots_OverlappingCandidatesForOffGridDuration(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(day, 9, 18, 45)

	// The grid stays at 30 minutes regardless of duration, so 09:00-09:45
	// and 09:30-10:15 are both emitted even though they cannot coexist.
	if !Overlaps(slots[0], slots[1]) {
		t.Fatal("adjacent 45-minute candidates on a 30-minute grid should overlap")
	}
}

func TestGenerateSlots_IgnoresClockComponent(t *testing.T) {
	midnight := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	afternoon := time.Date(2026, 9, 14, 15, 42, 7, 0, time.UTC)

	a := GenerateSlots(midnight, 9, 18, 30)
	b := GenerateSlots(afternoon, 9, 18, 30)

	if len(a) != len(b) || !a[0].Start.Equal(b[0].Start) {
		t.Fatal("the clock component of date must not affect the grid")
	}
}

func TestGenerateSlots_DegenerateInputs(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	if got := GenerateSlots(day, 18, 9, 30); got != nil {
		t.Fatalf("inverted hours should yield no candidates, got %d", len(got))
	}
	if got := GenerateSlots(day, 9, 18, 0); got != nil {
		t.Fatalf("zero duration should yield no candidates, got %d", len(got))
	}
}
