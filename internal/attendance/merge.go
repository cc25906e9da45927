package attendance

import (
	"log"
	"sort"
	"time"
)

const clockLayout = "3:04 PM"

// timePlaceholder stands in for a punch that has not happened yet.
const timePlaceholder = "--"

// Merge combines authoritative remote records with local-only ones. A
// date present in both sets keeps the remote record verbatim; local
// records for dates the server does not know yet are synthesized into
// the remote shape and tagged IsLocal. The result is sorted by date,
// most recent first. Pure: neither input is mutated.
func Merge(local []Record, remote []RemoteRecord) []RemoteRecord {
	merged := make([]RemoteRecord, 0, len(local)+len(remote))
	seen := make(map[string]bool, len(remote))

	for _, rec := range remote {
		merged = append(merged, rec)
		seen[rec.Date] = true
	}
	for _, rec := range local {
		if seen[rec.Date] {
			continue
		}
		merged = append(merged, synthesize(rec))
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date > merged[j].Date
	})
	return merged
}

func synthesize(rec Record) RemoteRecord {
	out := RemoteRecord{
		Date:            rec.Date,
		PunchIn:         timePlaceholder,
		PunchOut:        timePlaceholder,
		WorkingHours:    rec.WorkingHours,
		Status:          rec.Status,
		IsLateCheckIn:   rec.IsLateCheckIn,
		IsEarlyCheckOut: rec.IsEarlyCheckOut,
		IsLocal:         true,
	}

	if day, err := time.Parse(DateLayout, rec.Date); err == nil {
		out.Day = day.Day()
		out.Month = day.Month().String()
		out.Weekday = day.Weekday().String()
	} else {
		log.Printf("attendance: unparsable local record date %q: %v", rec.Date, err)
	}

	if rec.PunchInTime != nil {
		out.PunchIn = rec.PunchInTime.Format(clockLayout)
	}
	if rec.PunchOutTime != nil {
		out.PunchOut = rec.PunchOutTime.Format(clockLayout)
	}
	return out
}
