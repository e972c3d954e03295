package booking

import (
	"testing"
	"time"

	"alabraar/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.BookingPending, models.BookingConfirmed, true},
		{models.BookingPending, models.BookingCancelled, true},
		{models.BookingPending, models.BookingCompleted, false},
		{models.BookingConfirmed, models.BookingCompleted, true},
		{models.BookingConfirmed, models.BookingCancelled, true},
		{models.BookingConfirmed, models.BookingPending, false},
		{models.BookingCancelled, models.BookingConfirmed, false},
		{models.BookingCompleted, models.BookingCancelled, false},
		{"bogus", models.BookingConfirmed, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(models.BookingPending) || IsTerminal(models.BookingConfirmed) {
		t.Error("pending/confirmed reported terminal")
	}
	if !IsTerminal(models.BookingCompleted) || !IsTerminal(models.BookingCancelled) {
		t.Error("completed/cancelled not reported terminal")
	}
}

func TestEffectiveSlotStatus(t *testing.T) {
	slot := models.ScheduleSlot{
		Date:      "2026-01-05",
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    models.SlotScheduled,
	}
	slotEnd := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	if got := EffectiveSlotStatus(slot, slotEnd.Add(-time.Hour)); got != models.SlotScheduled {
		t.Errorf("before window: %s, want scheduled", got)
	}
	if got := EffectiveSlotStatus(slot, slotEnd.Add(-time.Minute)); got != models.SlotScheduled {
		t.Errorf("inside window: %s, want scheduled", got)
	}
	if got := EffectiveSlotStatus(slot, slotEnd.Add(time.Minute)); got != models.SlotMissed {
		t.Errorf("after window: %s, want missed", got)
	}
}

func TestEffectiveSlotStatusNonUTCClock(t *testing.T) {
	slot := models.ScheduleSlot{
		Date:      "2026-01-05",
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    models.SlotScheduled,
	}

	// 12:30+03:00 is 09:30 UTC, inside the window.
	east := time.FixedZone("UTC+3", 3*3600)
	if got := EffectiveSlotStatus(slot, time.Date(2026, 1, 5, 12, 30, 0, 0, east)); got != models.SlotScheduled {
		t.Errorf("inside window from +03:00 clock: %s, want scheduled", got)
	}
	// 08:30-05:00 is 13:30 UTC, past the window.
	west := time.FixedZone("UTC-5", -5*3600)
	if got := EffectiveSlotStatus(slot, time.Date(2026, 1, 5, 8, 30, 0, 0, west)); got != models.SlotMissed {
		t.Errorf("past window from -05:00 clock: %s, want missed", got)
	}
}

func TestEffectiveSlotStatusKeepsStoredTerminalStates(t *testing.T) {
	longAgo := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, status := range []string{models.SlotCompleted, models.SlotCancelled, models.SlotMissed} {
		slot := models.ScheduleSlot{Date: "2026-01-05", EndTime: "10:00", Status: status}
		if got := EffectiveSlotStatus(slot, longAgo); got != status {
			t.Errorf("stored %s read back as %s", status, got)
		}
	}
}
