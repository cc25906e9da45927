package attendance

import (
	"testing"
	"time"
)

func clock(hour, min, sec int) time.Time {
	return time.Date(2026, time.May, 20, hour, min, sec, 0, time.Local)
}

func TestLateCheckInBoundaries(t *testing.T) {
	if IsLate(clock(9, 30, 0)) {
		t.Fatal("09:30:00 exactly must not be late")
	}
	if !IsLate(clock(9, 30, 1)) {
		t.Fatal("09:30:01 must be late")
	}
	if !IsLate(clock(9, 31, 0)) {
		t.Fatal("09:31:00 must be late")
	}
	if IsLate(clock(9, 0, 0)) {
		t.Fatal("09:00:00 must not be late")
	}
}

func TestEarlyCheckOutBoundaries(t *testing.T) {
	if IsEarly(clock(18, 30, 0)) {
		t.Fatal("18:30:00 exactly must not be early")
	}
	if !IsEarly(clock(18, 29, 59)) {
		t.Fatal("18:29:59 must be early")
	}
	if !IsEarly(clock(18, 0, 0)) {
		t.Fatal("18:00:00 must be early")
	}
	if IsEarly(clock(19, 0, 0)) {
		t.Fatal("19:00:00 must not be early")
	}
}

func TestZeroTimestampNeverClassifies(t *testing.T) {
	if IsLate(time.Time{}) {
		t.Fatal("zero timestamp classified as late")
	}
	if IsEarly(time.Time{}) {
		t.Fatal("zero timestamp classified as early")
	}
}

func TestWorkingHoursFormat(t *testing.T) {
	got := formatWorkingHours(clock(9, 0, 0), clock(18, 30, 0))
	if got != "9h 30m" {
		t.Fatalf("expected 9h 30m, got %q", got)
	}
}

func TestWorkingHoursTruncatesSeconds(t *testing.T) {
	got := formatWorkingHours(clock(9, 0, 0), clock(17, 45, 59))
	if got != "8h 45m" {
		t.Fatalf("expected 8h 45m, got %q", got)
	}
}

func TestWorkingHoursNeverNegative(t *testing.T) {
	got := formatWorkingHours(clock(18, 0, 0), clock(9, 0, 0))
	if got != "0h 0m" {
		t.Fatalf("expected 0h 0m, got %q", got)
	}
}
