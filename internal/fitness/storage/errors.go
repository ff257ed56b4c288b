// Package storage defines the error surface of the persistence gateway.
// Every backend (postgres, local store) wraps its I/O failures in Error, so
// that callers can treat storage failures uniformly and must never assume a
// partial write succeeded.
package storage

import (
	"errors"
	"fmt"
)

// Error is a storage I/O failure: a failed query, a malformed stored
// payload, a write that could not be persisted.
type Error struct {
	Op  string
	Err error
}

func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage: %s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err is (or wraps) a storage Error.
func IsStorageError(err error) bool {
	var se *Error
	return errors.As(err, &se)
}
