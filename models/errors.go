package models

import "fmt"

// ReadError wraps a failed fetch from the document store.
type ReadError struct {
	Collection string
	Err        error
}

func (e ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Collection, e.Err)
}

func (e ReadError) Unwrap() error { return e.Err }

// WriteError wraps a failed write to the document store.
type WriteError struct {
	Collection string
	Err        error
}

func (e WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Collection, e.Err)
}

func (e WriteError) Unwrap() error { return e.Err }

// ValidationError rejects a record before any store call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
