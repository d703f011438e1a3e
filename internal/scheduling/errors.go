package scheduling

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotTaken means the check-and-reserve found the slot occupied.
	// Retrying the identical request will not succeed; callers should
	// re-query availability and pick another slot.
	ErrSlotTaken = errors.New("scheduling: slot already booked")

	// ErrInvalidTransition means the requested status change is not
	// allowed from the appointment's current status.
	ErrInvalidTransition = errors.New("scheduling: invalid status transition")

	// ErrForbidden means the caller's role or ownership does not permit
	// the operation.
	ErrForbidden = errors.New("scheduling: operation not permitted")

	// ErrNotFound means the referenced appointment, doctor or department
	// does not exist.
	ErrNotFound = errors.New("scheduling: not found")
)

// ValidationError reports a malformed or missing request field. It is
// returned before the store is touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("scheduling: invalid %s: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
