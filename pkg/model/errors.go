package model

import "fmt"

// ValidationError reports a value that failed domain validation: a bad
// timezone ID, an unparseable date-time, a negative occurrence count, an
// unknown property name.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a lookup that matched nothing: an unknown
// calendar name, an unmatched event, a zero-match edit.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string { return e.Reason }

// NotFoundf builds a NotFoundError from a format string.
func NotFoundf(format string, args ...any) error {
	return &NotFoundError{Reason: fmt.Sprintf(format, args...)}
}

// ConflictError reports an insertion rejected because the event overlaps
// an existing one while autoDecline is in effect.
type ConflictError struct {
	Name string // name of the event that was declined
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("event conflict detected: %s", e.Name)
}
