package statistics

import "errors"

var ErrInvalidPeriod = errors.New("invalid statistics period")
