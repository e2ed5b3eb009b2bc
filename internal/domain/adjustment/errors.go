package adjustment

import "errors"

var (
	ErrDuplicateAutoRow    = errors.New("an auto-generated adjustment of this category already exists for the attendance record")
	ErrNegativeAmount      = errors.New("adjustment amounts must not be negative")
	ErrManualRowWithLogRef = errors.New("manual adjustments cannot reference an attendance record")
)
