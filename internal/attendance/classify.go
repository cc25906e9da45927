package attendance

import (
	"fmt"
	"log"
	"time"
)

// Office thresholds, in seconds since local midnight. A check-in is late
// strictly after 09:30:00; a check-out is early strictly before 18:30:00.
const (
	lateAfter   = 9*3600 + 30*60
	earlyBefore = 18*3600 + 30*60
)

func secondsIntoDay(ts time.Time) int {
	h, m, s := ts.Clock()
	return h*3600 + m*60 + s
}

// IsLate reports whether ts is a late check-in. A zero timestamp is
// treated as not late so a bad clock reading never blocks the write path.
func IsLate(ts time.Time) bool {
	if ts.IsZero() {
		log.Printf("attendance: refusing to classify zero check-in timestamp")
		return false
	}
	return secondsIntoDay(ts) > lateAfter
}

// IsEarly reports whether ts is an early check-out. A zero timestamp is
// treated as not early.
func IsEarly(ts time.Time) bool {
	if ts.IsZero() {
		log.Printf("attendance: refusing to classify zero check-out timestamp")
		return false
	}
	return secondsIntoDay(ts) < earlyBefore
}

// formatWorkingHours renders the elapsed time between punches, truncated
// to whole minutes.
func formatWorkingHours(in, out time.Time) string {
	d := out.Sub(in)
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}

// recompute refreshes every derived field from whichever punch times are
// present. Running it on both the IN and OUT write closes the gap where
// a backfilled punch-out would leave WorkingHours stale.
func (r *Record) recompute() {
	r.IsLateCheckIn = r.PunchInTime != nil && IsLate(*r.PunchInTime)
	r.IsEarlyCheckOut = r.PunchOutTime != nil && IsEarly(*r.PunchOutTime)
	if r.PunchInTime != nil && r.PunchOutTime != nil {
		r.WorkingHours = formatWorkingHours(*r.PunchInTime, *r.PunchOutTime)
	}
}
