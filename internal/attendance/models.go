// Package attendance owns per-user, per-day punch records: local-first
// writes, threshold classification and merging with server data.
package attendance

import "time"

// DateLayout is the calendar-date form used as the natural key within a
// user's record collection.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
)

// PunchKind distinguishes the two halves of an attendance day.
type PunchKind string

const (
	PunchIn  PunchKind = "IN"
	PunchOut PunchKind = "OUT"
)

// Location is a coordinate pair captured opportunistically with a punch.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Record is one user's attendance for one calendar date. Punch fields
// are pointers: absent until the corresponding punch event happens.
type Record struct {
	ID               string     `json:"id"`
	Date             string     `json:"date"` // DateLayout form
	PunchInTime      *time.Time `json:"punchInTime,omitempty"`
	PunchOutTime     *time.Time `json:"punchOutTime,omitempty"`
	PunchInLocation  *Location  `json:"punchInLocation,omitempty"`
	PunchOutLocation *Location  `json:"punchOutLocation,omitempty"`
	WorkingHours     string     `json:"workingHours,omitempty"`
	IsLateCheckIn    bool       `json:"isLateCheckIn"`
	IsEarlyCheckOut  bool       `json:"isEarlyCheckOut"`
	Status           Status     `json:"status"`
}

// RemoteRecord is the server's shape for one attendance day, also used
// for local-only records synthesized during a merge. IsLocal marks a
// record the server has not confirmed yet.
type RemoteRecord struct {
	Date            string `json:"date"`
	Day             int    `json:"day"`
	Month           string `json:"month"`
	Weekday         string `json:"weekday"`
	PunchIn         string `json:"punchIn"`  // "3:04 PM" or "--"
	PunchOut        string `json:"punchOut"` // "3:04 PM" or "--"
	WorkingHours    string `json:"workingHours,omitempty"`
	Status          Status `json:"status"`
	IsLateCheckIn   bool   `json:"isLateCheckIn"`
	IsEarlyCheckOut bool   `json:"isEarlyCheckOut"`
	IsLocal         bool   `json:"isLocalRecord"`
}
