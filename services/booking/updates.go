// File: services/booking/updates.go
package booking

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"alabraar/models"
	"alabraar/services/availability"
	"alabraar/utils"
)

// UpdateStatus moves the booking to a new status, enforcing the forward-only
// state machine.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(booking.Status, status) {
		return nil, &TransitionError{From: booking.Status, To: status}
	}
	if err := s.Repo.UpdateFields(ctx, id, bson.M{"status": status}); err != nil {
		return nil, err
	}
	booking.Status = status
	return booking, nil
}

// CancelBooking cancels a pending or confirmed booking and releases every
// reservation it held, so the ustaadh's calendar opens back up.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id, reason string) (*models.Booking, error) {
	logger := utils.GetLogger()

	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(booking.Status, models.BookingCancelled) {
		return nil, &TransitionError{From: booking.Status, To: models.BookingCancelled}
	}

	fields := bson.M{"status": models.BookingCancelled, "cancelReason": reason}
	if err := s.Repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	if err := s.Repo.ReleaseReservations(ctx, id); err != nil {
		logger.Error("CancelBooking: reservation release failed",
			zap.String("bookingID", id), zap.Error(err))
	}

	booking.Status = models.BookingCancelled
	booking.CancelReason = reason

	if s.Notifier != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = s.Notifier.SendPush(ctx, booking.UstaadhID, "Booking cancelled",
				fmt.Sprintf("Booking %s was cancelled: %s", booking.ID, reason),
				map[string]string{"bookingId": booking.ID, "type": "booking_cancelled"})
		}()
	}

	return booking, nil
}

// CompleteSlot records that a lesson actually happened. Only scheduled slots
// can complete.
func (s *DefaultBookingService) CompleteSlot(ctx context.Context, bookingID, slotID string) error {
	return s.transitionSlot(ctx, bookingID, slotID, models.SlotCompleted)
}

// CancelSlot cancels a single lesson and releases its reservation window.
func (s *DefaultBookingService) CancelSlot(ctx context.Context, bookingID, slotID string) error {
	booking, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	for _, slot := range booking.Schedule {
		if slot.ID != slotID {
			continue
		}
		if err := s.transitionSlot(ctx, bookingID, slotID, models.SlotCancelled); err != nil {
			return err
		}
		start, perr := availabilityStart(slot)
		if perr == nil {
			if err := s.Repo.ReleaseSlotReservation(ctx, bookingID, slot.Date, start); err != nil {
				utils.GetLogger().Error("CancelSlot: reservation release failed",
					zap.String("bookingID", bookingID), zap.String("slotID", slotID), zap.Error(err))
			}
		}
		return nil
	}
	return fmt.Errorf("slot %s not found on booking %s", slotID, bookingID)
}

func (s *DefaultBookingService) transitionSlot(ctx context.Context, bookingID, slotID, status string) error {
	booking, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	for _, slot := range booking.Schedule {
		if slot.ID == slotID {
			if slot.Status != models.SlotScheduled {
				return fmt.Errorf("slot %s is already %s", slotID, slot.Status)
			}
			return s.Repo.UpdateSlotStatus(ctx, bookingID, slotID, status)
		}
	}
	return fmt.Errorf("slot %s not found on booking %s", slotID, bookingID)
}

// CreatePaymentIntent opens a payment for a pending booking. A booking whose
// last attempt failed can open a fresh intent.
func (s *DefaultBookingService) CreatePaymentIntent(ctx context.Context, id string) (*models.Invoice, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	unpaid := booking.PaymentStatus == models.PaymentPending ||
		booking.PaymentStatus == models.PaymentFailed
	if booking.Status != models.BookingPending || !unpaid {
		return nil, fmt.Errorf("booking %s is not awaiting payment", id)
	}

	inv, err := s.Payments.CreateIntent(ctx, models.PaymentRequest{
		BookingID: booking.ID,
		UserID:    booking.StudentID,
		Amount:    booking.TotalAmount,
		Currency:  booking.Currency,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateFields(ctx, id, bson.M{"invoice": inv}); err != nil {
		return nil, err
	}
	return inv, nil
}

// SettlePayment records the outcome of a payment attempt. Success confirms
// the booking; failure leaves it pending with paymentStatus=failed so the
// student can retry.
func (s *DefaultBookingService) SettlePayment(ctx context.Context, id string, succeeded bool) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if IsTerminal(booking.Status) {
		return nil, &TransitionError{From: booking.Status, To: models.BookingConfirmed}
	}

	if !succeeded {
		if err := s.Repo.UpdateFields(ctx, id, bson.M{"paymentStatus": models.PaymentFailed}); err != nil {
			return nil, err
		}
		booking.PaymentStatus = models.PaymentFailed
		return booking, nil
	}

	fields := bson.M{
		"paymentStatus":     models.PaymentPaid,
		"status":            models.BookingConfirmed,
		"invoice.status":    models.PaymentPaid,
		"invoice.updatedAt": time.Now(),
	}
	if err := s.Repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	booking.PaymentStatus = models.PaymentPaid
	booking.Status = models.BookingConfirmed

	s.scheduleReminders(booking)

	if s.Notifier != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			body := fmt.Sprintf("Payment of %s %.2f received. Your lessons are confirmed.",
				booking.Currency, booking.TotalAmount)
			_ = s.Notifier.SendPush(ctx, booking.StudentID, "Booking confirmed", body,
				map[string]string{"bookingId": booking.ID, "type": "booking_confirmed"})
			_ = s.Notifier.SendPush(ctx, booking.UstaadhID, "Booking confirmed",
				"A booking on your calendar was paid and confirmed.",
				map[string]string{"bookingId": booking.ID, "type": "booking_confirmed"})
		}()
	}

	return booking, nil
}

func availabilityStart(slot models.ScheduleSlot) (int, error) {
	return availability.ParseClock(slot.StartTime)
}
