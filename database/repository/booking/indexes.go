// FILE: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the booking collections.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bookingModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "studentId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("student_created_idx"),
		},
		{
			Keys:    bson.D{{Key: "ustaadhId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("ustaadh_created_idx"),
		},
	}
	if _, err := r.bookingColl.Indexes().CreateMany(ctx, bookingModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}

	reservationModels := []mongo.IndexModel{
		// Identical start times for the same teacher-day can never coexist;
		// overlap between different starts is rejected by the transactional
		// conflict check.
		{
			Keys:    bson.D{{Key: "ustaadhId", Value: 1}, {Key: "date", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_ustaadh_date_start"),
		},
		{
			Keys:    bson.D{{Key: "bookingId", Value: 1}},
			Options: options.Index().SetName("booking_idx"),
		},
	}
	if _, err := r.reservationColl.Indexes().CreateMany(ctx, reservationModels); err != nil {
		return fmt.Errorf("failed to create reservation indexes: %w", err)
	}

	return nil
}
