package attendance

import (
	"reflect"
	"testing"
	"time"
)

func TestMergeRemoteWins(t *testing.T) {
	remote := []RemoteRecord{{
		Date:     "2026-05-20",
		Day:      20,
		Month:    "May",
		Weekday:  "Wednesday",
		PunchIn:  "9:00 AM",
		PunchOut: "6:30 PM",
		Status:   StatusPresent,
	}}

	in := time.Date(2026, time.May, 20, 11, 0, 0, 0, time.Local)
	localIn := time.Date(2026, time.May, 21, 9, 5, 0, 0, time.Local)
	local := []Record{
		{ID: "a", Date: "2026-05-20", PunchInTime: &in, Status: StatusHalfDay, IsLateCheckIn: true},
		{ID: "b", Date: "2026-05-21", PunchInTime: &localIn, Status: StatusPresent},
	}

	merged := Merge(local, remote)
	if len(merged) != 2 {
		t.Fatalf("expected 2 merged records, got %d", len(merged))
	}

	// Descending by date: the local-only day first.
	if merged[0].Date != "2026-05-21" {
		t.Fatalf("expected most recent first, got %s", merged[0].Date)
	}
	if !merged[0].IsLocal {
		t.Fatal("local-only record not tagged")
	}
	if merged[0].PunchIn != "9:05 AM" {
		t.Fatalf("punch-in formatted as %q", merged[0].PunchIn)
	}
	if merged[0].PunchOut != "--" {
		t.Fatalf("missing punch-out rendered as %q", merged[0].PunchOut)
	}
	if merged[0].Day != 21 || merged[0].Month != "May" || merged[0].Weekday != "Thursday" {
		t.Fatalf("calendar fields wrong: %+v", merged[0])
	}

	// Shared date: remote record verbatim, nothing from the local copy.
	if !reflect.DeepEqual(merged[1], remote[0]) {
		t.Fatalf("remote record not taken verbatim: %+v", merged[1])
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	in := time.Date(2026, time.May, 21, 9, 0, 0, 0, time.Local)
	local := []Record{{ID: "b", Date: "2026-05-21", PunchInTime: &in, Status: StatusPresent}}
	remote := []RemoteRecord{{Date: "2026-05-20", Status: StatusPresent}}

	localCopy := make([]Record, len(local))
	copy(localCopy, local)
	remoteCopy := make([]RemoteRecord, len(remote))
	copy(remoteCopy, remote)

	Merge(local, remote)

	if !reflect.DeepEqual(local, localCopy) {
		t.Fatal("merge mutated local input")
	}
	if !reflect.DeepEqual(remote, remoteCopy) {
		t.Fatal("merge mutated remote input")
	}
}

func TestMergeSortsDescending(t *testing.T) {
	remote := []RemoteRecord{
		{Date: "2026-05-18", Status: StatusPresent},
		{Date: "2026-05-22", Status: StatusPresent},
	}
	local := []Record{
		{ID: "a", Date: "2026-05-20", Status: StatusPresent},
		{ID: "b", Date: "2026-05-25", Status: StatusPresent},
	}

	merged := Merge(local, remote)
	want := []string{"2026-05-25", "2026-05-22", "2026-05-20", "2026-05-18"}
	for i, date := range want {
		if merged[i].Date != date {
			t.Fatalf("position %d: expected %s, got %s", i, date, merged[i].Date)
		}
	}
}

func TestMergeCarriesDerivedFields(t *testing.T) {
	local := []Record{{
		ID:              "a",
		Date:            "2026-05-21",
		WorkingHours:    "7h 55m",
		Status:          StatusHalfDay,
		IsLateCheckIn:   true,
		IsEarlyCheckOut: true,
	}}

	merged := Merge(local, nil)
	if len(merged) != 1 {
		t.Fatalf("expected 1 record, got %d", len(merged))
	}
	rec := merged[0]
	if rec.WorkingHours != "7h 55m" || rec.Status != StatusHalfDay || !rec.IsLateCheckIn || !rec.IsEarlyCheckOut {
		t.Fatalf("derived fields dropped: %+v", rec)
	}
	if rec.PunchIn != "--" || rec.PunchOut != "--" {
		t.Fatalf("placeholders missing: %+v", rec)
	}
}
