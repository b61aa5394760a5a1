package scheduling

import (
	"testing"
	"time"
)

func at(h, m int) time.Time {
	return time.Date(2026, 9, 14, h, m, 0, 0, time.UTC)
}

func TestOverlaps_Symmetric(t *testing.T) {
	a := Interval{Start: at(10, 0), End: at(11, 0)}
	b := Interval{Start: at(10, 30), End: at(11, 30)}

	if !Overlaps(a, b) || !Overlaps(b, a) {
		t.Fatalf("expected symmetric overlap, got %v and %v", Overlaps(a, b), Overlaps(b, a))
	}
}

func TestOverlaps_Self(t *testing.T) {
	a := Interval{Start: at(10, 0), End: at(10, 30)}
	if !Overlaps(a, a) {
		t.Fatal("a nonzero-length interval must overlap itself")
	}
}

func TestOverlaps_TouchingIsNotOverlap(t *testing.T) {
	a := Interval{Start: at(10, 0), End: at(10, 30)}
	b := Interval{Start: at(10, 30), End: at(11, 0)}

	if Overlaps(a, b) || Overlaps(b, a) {
		t.Fatal("half-open intervals sharing an endpoint must not overlap")
	}
}

func TestOverlaps_Containment(t *testing.T) {
	outer := Interval{Start: at(9, 0), End: at(12, 0)}
	inner := Interval{Start: at(10, 0), End: at(10, 30)}

	if !Overlaps(outer, inner) || !Overlaps(inner, outer) {
		t.Fatal("a contained interval must overlap its container")
	}
}

func TestOverlaps_Disjoint(t *testing.T) {
	a := Interval{Start: at(9, 0), End: at(9, 30)}
	b := Interval{Start: at(14, 0), End: at(15, 0)}

	if Overlaps(a, b) {
		t.Fatal("disjoint intervals must not overlap")
	}
}

func TestWithin(t *testing.T) {
	iv := Interval{Start: at(10, 0), End: at(11, 0)}

	if !Within(at(10, 0), iv) {
		t.Fatal("start is inclusive")
	}
	if !Within(at(10, 59), iv) {
		t.Fatal("instant inside the interval must be within")
	}
	if Within(at(11, 0), iv) {
		t.Fatal("end is exclusive")
	}
	if Within(at(9, 59), iv) {
		t.Fatal("instant before start must not be within")
	}
}

func TestOverlapsAny(t *testing.T) {
	busy := []Interval{
		{Start: at(9, 0), End: at(9, 30)},
		{Start: at(14, 0), End: at(15, 0)},
	}

	if !OverlapsAny(Interval{Start: at(14, 30), End: at(15, 30)}, busy) {
		t.Fatal("expected overlap with the 14:00-15:00 booking")
	}
	if OverlapsAny(Interval{Start: at(15, 0), End: at(16, 0)}, busy) {
		t.Fatal("touching the 14:00-15:00 booking is not an overlap")
	}
	if OverlapsAny(Interval{Start: at(10, 0), End: at(10, 30)}, nil) {
		t.Fatal("empty set can never overlap")
	}
}
