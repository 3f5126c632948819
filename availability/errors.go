package availability

import (
	"errors"
	"fmt"
)

// ErrUnknownDay is returned when the submitted day is not one of the seven
// day field names.
var ErrUnknownDay = errors.New("unknown day name")

// PersistenceError wraps a storage failure. The previously persisted record
// is left untouched when this is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("availability %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when a patch targets a doctor profile that has
// no availability record, which only happens if the create path was bypassed.
type NotFoundError struct {
	DoctorProfileID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no availability record for doctor profile %q", e.DoctorProfileID)
}
