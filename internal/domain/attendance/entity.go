package attendance

import (
	"time"
)

type Status string

const (
	StatusCheckedIn  Status = "checked_in"
	StatusOnBreak    Status = "on_break"
	StatusCheckedOut Status = "checked_out"
	StatusAbsent     Status = "absent"
)

func (s Status) Valid() bool {
	switch s {
	case StatusCheckedIn, StatusOnBreak, StatusCheckedOut, StatusAbsent:
		return true
	}
	return false
}

// IsActive reports a session that has checked in but not out yet.
func (s Status) IsActive() bool {
	return s == StatusCheckedIn || s == StatusOnBreak
}

// Attendance is one record per employee per company-local calendar date.
type Attendance struct {
	ID           string
	EmployeeID   string
	CompanyID    string
	Date         time.Time
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Status       Status
	// GraceMinutesConsumed is what the current check-in took from the late balance.
	// Nil on rows written before the engine tracked it.
	GraceMinutesConsumed *int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// MarkAbsent clears both timestamps as required for absent records.
func (a *Attendance) MarkAbsent() {
	a.Status = StatusAbsent
	a.CheckInTime = nil
	a.CheckOutTime = nil
	a.GraceMinutesConsumed = nil
}

// DateKey formats a calendar date the way records are keyed.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// CalendarDate truncates t to midnight UTC of its calendar date in loc.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
