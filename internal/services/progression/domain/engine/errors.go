package engine

import "errors"

var (
	// ErrRegistriesRequired indicates a handler built without registries.
	ErrRegistriesRequired = errors.New("command and event registries are required")
	// ErrStoreRequired indicates a handler built without an event store.
	ErrStoreRequired = errors.New("event store is required")
	// ErrBindingMissing indicates a command for an aggregate type with no binding.
	ErrBindingMissing = errors.New("aggregate binding is not registered")
)

// nonRetryableError marks failures that happen after events were committed.
// Resubmitting the command would record its facts twice.
type nonRetryableError struct {
	err error
}

func (e *nonRetryableError) Error() string { return e.err.Error() }
func (e *nonRetryableError) Unwrap() error { return e.err }

// NonRetryable returns true from IsNonRetryable checks.
func (e *nonRetryableError) NonRetryable() bool { return true }

func wrapNonRetryable(err error) error {
	if err == nil {
		return nil
	}
	return &nonRetryableError{err: err}
}

// IsNonRetryable reports whether err, or any error it wraps, must not be
// answered by resubmitting the command.
func IsNonRetryable(err error) bool {
	var target interface{ NonRetryable() bool }
	if errors.As(err, &target) {
		return target.NonRetryable()
	}
	return false
}
