package availability

import (
	"context"
	"errors"
	"fmt"

	availabilityRepo "alabraar/database/repository/availability"
	bookingRepo "alabraar/database/repository/booking"
	userRepo "alabraar/database/repository/user"
	"alabraar/models"
	"alabraar/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrUstaadhNotFound is returned when the referenced teacher does not exist
// or is not a bookable ustaadh.
var ErrUstaadhNotFound = errors.New("ustaadh not found")

// AvailabilityService owns an ustaadh's weekly template and derives
// date-specific free windows from it.
type AvailabilityService interface {
	GetAvailability(ctx context.Context, ustaadhID string) ([]models.AvailabilitySlot, error)
	SetAvailability(ctx context.Context, ustaadhID string, slots []models.AvailabilitySlot) ([]models.AvailabilitySlot, error)
	GetAvailableTimeSlots(ctx context.Context, ustaadhID, date string) ([]models.TimeWindow, error)
	GetBookedSlots(ctx context.Context, ustaadhID, date string) ([]models.TimeWindow, error)
	CheckSlotAvailability(ctx context.Context, ustaadhID, date, startTime, endTime string) (bool, error)
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	Repo     availabilityRepo.AvailabilityRepository
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
}

func (s *DefaultAvailabilityService) GetAvailability(ctx context.Context, ustaadhID string) ([]models.AvailabilitySlot, error) {
	if err := s.ensureUstaadh(ustaadhID); err != nil {
		return nil, err
	}
	return s.Repo.GetByUstaadh(ctx, ustaadhID)
}

// SetAvailability replaces the ustaadh's entire weekly template. The batch is
// validated as a whole; on any violation nothing is written and the prior
// template stays in place.
func (s *DefaultAvailabilityService) SetAvailability(ctx context.Context, ustaadhID string, slots []models.AvailabilitySlot) ([]models.AvailabilitySlot, error) {
	logger := utils.GetLogger()

	if err := s.ensureUstaadh(ustaadhID); err != nil {
		return nil, err
	}
	if err := ValidateTemplate(slots); err != nil {
		return nil, err
	}
	if err := s.Repo.ReplaceAll(ctx, ustaadhID, slots); err != nil {
		logger.Error("SetAvailability: replace failed",
			zap.String("ustaadhID", ustaadhID), zap.Error(err))
		return nil, err
	}
	return s.Repo.GetByUstaadh(ctx, ustaadhID)
}

// GetAvailableTimeSlots derives the free windows for a concrete date: the
// template entries matching the date's weekday, minus every window already
// reserved by a booking on that date. Ascending by start time.
func (s *DefaultAvailabilityService) GetAvailableTimeSlots(ctx context.Context, ustaadhID, date string) ([]models.TimeWindow, error) {
	windows, reserved, err := s.dayIntervals(ctx, ustaadhID, date)
	if err != nil {
		return nil, err
	}
	return toWindows(date, subtractReserved(windows, reserved)), nil
}

// GetBookedSlots returns the reserved windows for a concrete date.
func (s *DefaultAvailabilityService) GetBookedSlots(ctx context.Context, ustaadhID, date string) ([]models.TimeWindow, error) {
	if err := s.ensureUstaadh(ustaadhID); err != nil {
		return nil, err
	}
	if _, err := ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: date %q", ErrMalformed, date)
	}
	reservations, err := s.Bookings.GetReservedWindows(ctx, ustaadhID, date)
	if err != nil {
		return nil, err
	}
	intervals := make([]interval, 0, len(reservations))
	for _, r := range reservations {
		intervals = append(intervals, interval{start: r.Start, end: r.End})
	}
	return toWindows(date, intervals), nil
}

// CheckSlotAvailability reports whether [startTime, endTime) on the given
// date is fully contained in one available window and clear of every
// existing reservation.
func (s *DefaultAvailabilityService) CheckSlotAvailability(ctx context.Context, ustaadhID, date, startTime, endTime string) (bool, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if start >= end {
		return false, fmt.Errorf("%w: start %q must be before end %q", ErrMalformed, startTime, endTime)
	}

	windows, reserved, err := s.dayIntervals(ctx, ustaadhID, date)
	if err != nil {
		return false, err
	}
	return contains(windows, reserved, start, end), nil
}

// dayIntervals loads the template windows for the date's weekday plus the
// reservations already held on that date, both as minute intervals.
func (s *DefaultAvailabilityService) dayIntervals(ctx context.Context, ustaadhID, date string) ([]interval, []interval, error) {
	if err := s.ensureUstaadh(ustaadhID); err != nil {
		return nil, nil, err
	}
	day, err := ParseDate(date)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: date %q", ErrMalformed, date)
	}
	weekday := int(day.Weekday())

	template, err := s.Repo.GetByUstaadh(ctx, ustaadhID)
	if err != nil {
		return nil, nil, err
	}
	var windows []interval
	for _, slot := range template {
		if slot.DayOfWeek != weekday || !slot.IsAvailable {
			continue
		}
		start, err := ParseClock(slot.StartTime)
		if err != nil {
			continue // tolerate stale rows; new writes are validated
		}
		end, err := ParseClock(slot.EndTime)
		if err != nil {
			continue
		}
		windows = append(windows, interval{start: start, end: end})
	}

	reservations, err := s.Bookings.GetReservedWindows(ctx, ustaadhID, date)
	if err != nil {
		return nil, nil, err
	}
	reserved := make([]interval, 0, len(reservations))
	for _, r := range reservations {
		reserved = append(reserved, interval{start: r.Start, end: r.End})
	}

	return windows, reserved, nil
}

func (s *DefaultAvailabilityService) ensureUstaadh(ustaadhID string) error {
	usr, err := s.Users.GetByID(ustaadhID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUstaadhNotFound
		}
		return err
	}
	if usr.Role != models.RoleUstaadh {
		return ErrUstaadhNotFound
	}
	return nil
}
