package availability

import (
	"errors"
	"fmt"
)

// ErrMalformed wraps parse failures on dates and clock times so callers can
// map them to a validation response.
var ErrMalformed = errors.New("malformed input")

// ValidationError reports a malformed or conflicting template submission.
// Day and the offending slot indices are filled in for overlap conflicts.
type ValidationError struct {
	Day     int
	SlotA   int
	SlotB   int
	Message string
}

func (e *ValidationError) Error() string {
	if e.SlotA != e.SlotB {
		return fmt.Sprintf("day %d: slots %d and %d: %s", e.Day, e.SlotA, e.SlotB, e.Message)
	}
	return fmt.Sprintf("day %d: slot %d: %s", e.Day, e.SlotA, e.Message)
}

func newSlotError(day, slot int, msg string) error {
	return &ValidationError{Day: day, SlotA: slot, SlotB: slot, Message: msg}
}

func newOverlapError(day, a, b int) error {
	return &ValidationError{Day: day, SlotA: a, SlotB: b, Message: "time ranges overlap"}
}
