package notify

import "errors"

// ErrInvalidDailyTime reports a malformed HH:MM daily schedule string.
var ErrInvalidDailyTime = errors.New("invalid daily time")
