// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"log"

	"alabraar/database"
	"alabraar/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository stores the recurring weekly template per ustaadh.
type AvailabilityRepository interface {
	GetByUstaadh(ctx context.Context, ustaadhID string) ([]models.AvailabilitySlot, error)
	// ReplaceAll swaps the ustaadh's entire template in one transaction.
	ReplaceAll(ctx context.Context, ustaadhID string, slots []models.AvailabilitySlot) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	r := &mongoAvailabilityRepo{
		coll: database.DB().Collection("availability"),
	}
	if err := r.EnsureIndexes(); err != nil {
		log.Printf("availability repo: %v", err)
	}
	return r
}
