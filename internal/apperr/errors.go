package apperr

import "errors"

// ErrInvalid is returned when the input fails an admission check.
var ErrInvalid = errors.New("invalid input")

// ErrConflict signals a commit-time race loss: the input was fine when it
// was validated, but a concurrent commit took the slot first. Callers should
// re-run validation rather than report a user mistake.
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")
