package gcontainer

import "errors"

// ErrUnderflow is returned when removing or peeking from an empty container.
// Packages built on gcontainer return this value (possibly wrapped)
// for the same condition, so callers can check with [errors.Is].
var ErrUnderflow = errors.New("underflow: container is empty")
