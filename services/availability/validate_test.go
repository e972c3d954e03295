package availability

import (
	"errors"
	"testing"

	"alabraar/models"
)

func slot(day int, start, end string) models.AvailabilitySlot {
	return models.AvailabilitySlot{DayOfWeek: day, StartTime: start, EndTime: end, IsAvailable: true}
}

func TestValidateTemplateAcceptsDisjointSlots(t *testing.T) {
	slots := []models.AvailabilitySlot{
		slot(1, "09:00", "11:00"),
		slot(1, "13:00", "15:00"),
		slot(3, "09:00", "11:00"),
	}
	if err := ValidateTemplate(slots); err != nil {
		t.Fatalf("ValidateTemplate: %v", err)
	}
}

func TestValidateTemplateAcceptsTouchingEdges(t *testing.T) {
	// Half-open ranges: a slot ending where the next begins does not overlap.
	slots := []models.AvailabilitySlot{
		slot(2, "09:00", "10:00"),
		slot(2, "10:00", "11:00"),
	}
	if err := ValidateTemplate(slots); err != nil {
		t.Fatalf("ValidateTemplate: %v", err)
	}
}

func TestValidateTemplateRejectsOverlap(t *testing.T) {
	slots := []models.AvailabilitySlot{
		slot(1, "09:00", "11:00"),
		slot(1, "10:30", "12:00"),
	}
	err := ValidateTemplate(slots)
	if err == nil {
		t.Fatal("ValidateTemplate accepted overlapping slots")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type %T, want *ValidationError", err)
	}
	if verr.Day != 1 {
		t.Errorf("Day = %d, want 1", verr.Day)
	}
	if verr.SlotA != 0 || verr.SlotB != 1 {
		t.Errorf("offending slots = (%d, %d), want (0, 1)", verr.SlotA, verr.SlotB)
	}
}

func TestValidateTemplateRejectsOverlapAcrossUnsortedInput(t *testing.T) {
	// Overlap detection must not depend on submission order.
	slots := []models.AvailabilitySlot{
		slot(5, "14:00", "16:00"),
		slot(5, "09:00", "15:00"),
	}
	err := ValidateTemplate(slots)
	if err == nil {
		t.Fatal("ValidateTemplate accepted overlapping slots")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type %T, want *ValidationError", err)
	}
	if verr.SlotA == verr.SlotB {
		t.Errorf("expected two distinct offending slots, got (%d, %d)", verr.SlotA, verr.SlotB)
	}
}

func TestValidateTemplateRejectsInvertedRange(t *testing.T) {
	for _, s := range []models.AvailabilitySlot{
		slot(0, "11:00", "09:00"),
		slot(0, "09:00", "09:00"),
	} {
		if err := ValidateTemplate([]models.AvailabilitySlot{s}); err == nil {
			t.Errorf("ValidateTemplate accepted %s-%s", s.StartTime, s.EndTime)
		}
	}
}

func TestValidateTemplateRejectsMalformedInput(t *testing.T) {
	cases := []models.AvailabilitySlot{
		slot(7, "09:00", "10:00"),
		slot(-1, "09:00", "10:00"),
		slot(1, "9am", "10:00"),
		slot(1, "09:00", "25:00"),
	}
	for _, s := range cases {
		if err := ValidateTemplate([]models.AvailabilitySlot{s}); err == nil {
			t.Errorf("ValidateTemplate accepted day=%d %s-%s", s.DayOfWeek, s.StartTime, s.EndTime)
		}
	}
}
