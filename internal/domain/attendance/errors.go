package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound    = errors.New("attendance record not found")
	ErrAlreadyCheckedIn      = errors.New("employee has already checked in on this date")
	ErrNotCheckedIn          = errors.New("attendance record has no check-in time")
	ErrCheckOutBeforeCheckIn = errors.New("check-out time is before check-in time")
	ErrDateMismatch          = errors.New("time does not fall on the attendance date")
	ErrAttendanceAbsent      = errors.New("attendance record is marked absent")
)
