// File: services/booking/sweep.go
package booking

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"alabraar/models"
	"alabraar/utils"
)

// SweepMissedSlots persists the missed status for scheduled slots whose
// window has fully passed, and completes confirmed bookings whose period is
// over with no scheduled slots left. Run periodically by the worker.
func (s *DefaultBookingService) SweepMissedSlots(ctx context.Context, now time.Time) (int, error) {
	logger := utils.GetLogger()
	now = now.UTC()
	today := now.Format("2006-01-02")

	candidates, err := s.Repo.ListSweepCandidates(ctx, today)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, booking := range candidates {
		remaining := 0
		for _, slot := range booking.Schedule {
			if slot.Status != models.SlotScheduled {
				continue
			}
			if EffectiveSlotStatus(slot, now) != models.SlotMissed {
				remaining++
				continue
			}
			if err := s.Repo.UpdateSlotStatus(ctx, booking.ID, slot.ID, models.SlotMissed); err != nil {
				logger.Error("sweep: slot update failed",
					zap.String("bookingID", booking.ID), zap.String("slotID", slot.ID), zap.Error(err))
				remaining++
				continue
			}
			swept++
		}

		if remaining == 0 && booking.Status == models.BookingConfirmed {
			if end, err := time.Parse("2006-01-02", booking.EndDate); err == nil && now.After(end.AddDate(0, 0, 1)) {
				if err := s.Repo.UpdateFields(ctx, booking.ID, bson.M{"status": models.BookingCompleted}); err != nil {
					logger.Error("sweep: booking completion failed",
						zap.String("bookingID", booking.ID), zap.Error(err))
				}
			}
		}
	}

	if swept > 0 {
		logger.Info("sweep: marked slots missed", zap.Int("count", swept))
	}
	return swept, nil
}
