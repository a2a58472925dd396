package kafka

import "errors"

// PermanentError marks a message as unprocessable: it is logged and
// skipped instead of retried.
type PermanentError struct {
	Err error
}

func (e PermanentError) Error() string {
	if e.Err == nil {
		return "permanent error"
	}
	return e.Err.Error()
}

func (e PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err as a permanent error.
func Permanent(err error) error {
	return PermanentError{Err: err}
}

// IsPermanent reports whether err is a permanent error.
func IsPermanent(err error) bool {
	var pe PermanentError
	return errors.As(err, &pe)
}
