package booking

import "fmt"

// ConflictError signals that a requested schedule slot is not available.
// CreateBooking is all-or-nothing: the first conflict rejects the whole
// schedule.
type ConflictError struct {
	Date      string
	StartTime string
	EndTime   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %s %s-%s is not available", e.Date, e.StartTime, e.EndTime)
}

// TransitionError signals a status change the booking state machine forbids.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %q to %q", e.From, e.To)
}
