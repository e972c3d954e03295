package booking

import (
	"time"

	"alabraar/models"
	"alabraar/services/availability"
)

// CanTransition reports whether the booking status machine allows moving
// from one status to another. Transitions are forward-only: completed and
// cancelled are terminal.
func CanTransition(from, to string) bool {
	switch from {
	case models.BookingPending:
		return to == models.BookingConfirmed || to == models.BookingCancelled
	case models.BookingConfirmed:
		return to == models.BookingCompleted || to == models.BookingCancelled
	default:
		return false
	}
}

// IsTerminal reports whether a booking status accepts no further transitions.
func IsTerminal(status string) bool {
	return status == models.BookingCompleted || status == models.BookingCancelled
}

// EffectiveSlotStatus derives the status a schedule slot should present at
// the given instant. Stored non-scheduled statuses are authoritative; a slot
// still marked scheduled whose window has fully passed reads as missed until
// someone confirms it completed or the sweep persists the miss. Schedule
// dates and clock times are UTC wall clock; now is normalized accordingly.
func EffectiveSlotStatus(slot models.ScheduleSlot, now time.Time) string {
	if slot.Status != models.SlotScheduled {
		return slot.Status
	}
	now = now.UTC()
	day, err := availability.ParseDate(slot.Date)
	if err != nil {
		return slot.Status
	}
	end, err := availability.ParseClock(slot.EndTime)
	if err != nil {
		return slot.Status
	}
	slotEnd := day.Add(time.Duration(end) * time.Minute)
	if now.After(slotEnd) {
		return models.SlotMissed
	}
	return models.SlotScheduled
}
