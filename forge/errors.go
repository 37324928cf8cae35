package forge

import "errors"

// ErrInvalidInput is returned when an idea is empty after trimming.
var ErrInvalidInput = errors.New("idea must not be empty")
