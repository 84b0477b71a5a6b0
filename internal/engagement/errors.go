package engagement

import (
	"errors"
	"fmt"
)

// ErrRetryExhausted is wrapped in a PersistenceError when a guarded
// streak update keeps losing the conflict race.
var ErrRetryExhausted = errors.New("conflicting concurrent update, retries exhausted")

// ValidationError reports invalid caller input. It is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError reports a failed store operation. The original
// store error is preserved for errors.Is/As.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
