package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	bookingRepo "alabraar/database/repository/booking"
	userRepo "alabraar/database/repository/user"
	"alabraar/models"
	"alabraar/services/availability"
	"alabraar/services/notification"
	"alabraar/utils"
)

// ErrBookingNotFound is returned for unknown booking ids.
var ErrBookingNotFound = errors.New("booking not found")

// BookingService creates and mutates bookings and their schedules.
type BookingService interface {
	CreateBooking(ctx context.Context, studentID string, input models.BookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListForUser(ctx context.Context, userID, role string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
	CancelBooking(ctx context.Context, id, reason string) (*models.Booking, error)
	CompleteSlot(ctx context.Context, bookingID, slotID string) error
	CancelSlot(ctx context.Context, bookingID, slotID string) error
	CreatePaymentIntent(ctx context.Context, id string) (*models.Invoice, error)
	SettlePayment(ctx context.Context, id string, succeeded bool) (*models.Booking, error)
	SweepMissedSlots(ctx context.Context, now time.Time) (int, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	Users        userRepo.UserRepository
	Availability availability.AvailabilityService
	Payments     PaymentHandler
	Notifier     notification.NotificationService
	AsynqClient  *asynq.Client

	validate *validator.Validate
}

func (s *DefaultBookingService) validator() *validator.Validate {
	if s.validate == nil {
		s.validate = validator.New()
	}
	return s.validate
}

// CreateBooking validates the proposed schedule against the ustaadh's
// availability and persists the booking all-or-nothing: the first slot that
// fails the availability check rejects the entire request and nothing is
// reserved.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, studentID string, input models.BookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if err := s.validator().Struct(input); err != nil {
		return nil, fmt.Errorf("invalid booking input: %w", err)
	}
	start, err := availability.ParseDate(input.StartDate)
	if err != nil {
		return nil, fmt.Errorf("malformed startDate %q", input.StartDate)
	}
	end, err := availability.ParseDate(input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("malformed endDate %q", input.EndDate)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("endDate %q precedes startDate %q", input.EndDate, input.StartDate)
	}

	ustaadh, err := s.Users.GetByID(input.UstaadhID)
	if err != nil || ustaadh.Role != models.RoleUstaadh {
		return nil, availability.ErrUstaadhNotFound
	}
	if !ustaadh.Approved || ustaadh.Suspended {
		return nil, fmt.Errorf("ustaadh %s is not bookable", input.UstaadhID)
	}

	// Validate every proposed slot before touching storage.
	reservations := make([]models.SlotReservation, 0, len(input.Schedule))
	schedule := make([]models.ScheduleSlot, 0, len(input.Schedule))
	for i := range input.Schedule {
		slot := input.Schedule[i]
		day, err := availability.ParseDate(slot.Date)
		if err != nil {
			return nil, fmt.Errorf("malformed slot date %q", slot.Date)
		}
		if day.Before(start) || day.After(end) {
			return nil, fmt.Errorf("slot %s falls outside booking period", slot.Date)
		}

		ok, err := s.Availability.CheckSlotAvailability(ctx, input.UstaadhID, slot.Date, slot.StartTime, slot.EndTime)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &ConflictError{Date: slot.Date, StartTime: slot.StartTime, EndTime: slot.EndTime}
		}

		startMin, _ := availability.ParseClock(slot.StartTime)
		endMin, _ := availability.ParseClock(slot.EndTime)
		slot.ID = uuid.New().String()
		slot.Status = models.SlotScheduled
		schedule = append(schedule, slot)
		reservations = append(reservations, models.SlotReservation{
			UstaadhID: input.UstaadhID,
			Date:      slot.Date,
			Start:     startMin,
			End:       endMin,
		})
	}

	total, err := CalculateTotalAmount(input.PackageType, input.HoursPerDay, input.DaysPerWeek, input.SubscriptionMonths)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &models.Booking{
		ID:                 uuid.New().String(),
		StudentID:          studentID,
		UstaadhID:          input.UstaadhID,
		PackageType:        input.PackageType,
		HoursPerDay:        input.HoursPerDay,
		DaysPerWeek:        input.DaysPerWeek,
		SubscriptionMonths: input.SubscriptionMonths,
		TotalAmount:        total,
		Currency:           "usd",
		Status:             models.BookingPending,
		PaymentStatus:      models.PaymentPending,
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		Schedule:           schedule,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for i := range reservations {
		reservations[i].BookingID = booking.ID
	}

	if err := s.Repo.CreateBookingTransactionally(ctx, booking, reservations); err != nil {
		logger.Warn("CreateBooking: transactional insert failed",
			zap.String("ustaadhID", input.UstaadhID), zap.Error(err))
		return nil, fmt.Errorf("booking rejected: %w", err)
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("studentID", studentID),
		zap.String("ustaadhID", input.UstaadhID),
		zap.Int("slots", len(schedule)))

	if s.Notifier != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = s.Notifier.SendPush(ctx, input.UstaadhID, "New booking request",
				fmt.Sprintf("A student requested %d lessons starting %s.", len(schedule), input.StartDate),
				map[string]string{"bookingId": booking.ID, "type": "booking_created"})
		}()
	}

	return booking, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

// ListForUser returns the caller's bookings: the student side or the ustaadh
// side depending on role.
func (s *DefaultBookingService) ListForUser(ctx context.Context, userID, role string) ([]models.Booking, error) {
	if role == models.RoleUstaadh {
		return s.Repo.ListByUstaadh(ctx, userID)
	}
	return s.Repo.ListByStudent(ctx, userID)
}
