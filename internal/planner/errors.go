package planner

import "errors"

// ErrAmbiguousID reports an ID prefix matching more than one task.
var ErrAmbiguousID = errors.New("ambiguous task ID prefix")
