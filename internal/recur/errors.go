package recur

import "errors"

var (
	ErrInvalidUnit       = errors.New("invalid recurrence unit")
	ErrInvalidBasis      = errors.New("invalid recurrence basis")
	ErrInvalidScope      = errors.New("invalid recurrence scope")
	ErrInvalidInterval   = errors.New("recurrence interval must be at least 1")
	ErrInvalidCountLimit = errors.New("recurrence count limit must be at least 1")
)
