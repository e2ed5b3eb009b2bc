package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrBalanceConflict  = errors.New("late balance was changed concurrently")
)
