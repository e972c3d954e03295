// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"log"

	"alabraar/database"
	"alabraar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists bookings plus the per-slot reservation documents
// that guard against double-booking.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Booking, error)
	ListByUstaadh(ctx context.Context, ustaadhID string) ([]models.Booking, error)
	UpdateFields(ctx context.Context, id string, fields bson.M) error
	UpdateSlotStatus(ctx context.Context, bookingID, slotID, status string) error

	// GetReservedWindows returns the reserved [start,end) windows for an
	// ustaadh on a given date, ascending by start.
	GetReservedWindows(ctx context.Context, ustaadhID, date string) ([]models.SlotReservation, error)

	// CreateBookingTransactionally inserts the booking, one reservation per
	// schedule slot, and bumps the per-(ustaadh,date) guard documents inside
	// a single transaction. Concurrent creates against the same teacher-day
	// collide on the guard write and one of them aborts.
	CreateBookingTransactionally(ctx context.Context, booking *models.Booking, reservations []models.SlotReservation) error

	// ReleaseReservations drops the reservations held by a booking (full
	// cancellation) or a single slot of it.
	ReleaseReservations(ctx context.Context, bookingID string) error
	ReleaseSlotReservation(ctx context.Context, bookingID, date string, start int) error

	// ListSweepCandidates returns bookings that still carry scheduled slots
	// dated on or before the given date.
	ListSweepCandidates(ctx context.Context, date string) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	bookingColl     *mongo.Collection
	reservationColl *mongo.Collection
	guardColl       *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	r := &mongoBookingRepo{
		bookingColl:     db.Collection("bookings"),
		reservationColl: db.Collection("slot_reservations"),
		guardColl:       db.Collection("booking_guards"),
	}
	if err := r.EnsureIndexes(); err != nil {
		log.Printf("booking repo: %v", err)
	}
	return r
}
