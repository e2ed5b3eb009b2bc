package payroll

import "errors"

var (
	ErrUnsupportedAction = errors.New("unsupported adjustment action")
	ErrNoCheckOut        = errors.New("attendance record has no check-out time")
)
