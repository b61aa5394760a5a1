package utils

import (
	"testing"
	"time"
)

func TestBeginningOfDay(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	in := time.Date(2026, 9, 14, 15, 42, 7, 123, loc)

	got := BeginningOfDay(in)
	want := time.Date(2026, 9, 14, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
	if got.Location() != loc {
		t.Fatal("location must be preserved")
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 9, 14, 23, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 16, 1, 0, 0, 0, time.UTC)

	if got := DaysBetween(start, end); got != 2 {
		t.Fatalf("got %d days, want 2", got)
	}
}

func TestIsPastDay(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	// Server clock west of UTC, mid-afternoon local on the same calendar
	// day: the UTC day has begun and must not count as past.
	west := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, west)
	if IsPastDay(day, now) {
		t.Fatal("today's UTC date must not be past on a server west of UTC")
	}

	if !IsPastDay(day, time.Date(2026, 9, 16, 0, 30, 0, 0, time.UTC)) {
		t.Fatal("a fully elapsed UTC day must be past")
	}
	if IsPastDay(day, time.Date(2026, 9, 15, 23, 59, 0, 0, time.UTC)) {
		t.Fatal("a day still in progress must not be past")
	}
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2026-09-14")
	if err != nil {
		t.Fatalf("plain date should parse: %v", err)
	}
	if day.Hour() != 0 || day.Day() != 14 {
		t.Fatalf("unexpected result %s", day)
	}

	stamped, err := ParseDate("2026-09-14T15:04:05Z")
	if err != nil {
		t.Fatalf("RFC 3339 should parse: %v", err)
	}
	if stamped.Hour() != 0 {
		t.Fatal("timestamp input must be normalized to start of day")
	}

	if _, err := ParseDate("14/09/2026"); err == nil {
		t.Fatal("unsupported format should fail")
	}
}
