package booking

import (
	"time"

	"go.uber.org/zap"

	"alabraar/models"
	"alabraar/services/availability"
	"alabraar/services/tasks"
	"alabraar/utils"
)

const reminderLead = time.Hour

// scheduleReminders enqueues a pre-lesson reminder for both parties of every
// scheduled slot. Slots whose reminder time already passed are skipped.
func (s *DefaultBookingService) scheduleReminders(booking *models.Booking) {
	if s.AsynqClient == nil {
		return
	}
	logger := utils.GetLogger()

	for _, slot := range booking.Schedule {
		if slot.Status != models.SlotScheduled {
			continue
		}
		day, err := availability.ParseDate(slot.Date)
		if err != nil {
			continue
		}
		startMin, err := availability.ParseClock(slot.StartTime)
		if err != nil {
			continue
		}
		fireAt := day.Add(time.Duration(startMin)*time.Minute - reminderLead)
		if fireAt.Before(time.Now()) {
			continue
		}

		for _, target := range []struct {
			userID string
			role   string
			body   string
		}{
			{booking.StudentID, models.RoleStudent, "Your lesson starts in an hour."},
			{booking.UstaadhID, models.RoleUstaadh, "You teach a lesson in an hour."},
		} {
			payload := models.ReminderPayload{
				BookingID: booking.ID,
				SlotID:    slot.ID,
				UserID:    target.userID,
				Role:      target.role,
				Title:     "Upcoming lesson",
				Body:      target.body,
				FireDate:  fireAt.Format(time.RFC3339),
			}
			task, opts, err := tasks.NewReminderTask(payload, fireAt)
			if err != nil {
				continue
			}
			if _, err := s.AsynqClient.Enqueue(task, opts...); err != nil {
				logger.Error("failed to enqueue lesson reminder",
					zap.String("bookingID", booking.ID),
					zap.String("slotID", slot.ID),
					zap.Error(err))
			}
		}
	}
}
