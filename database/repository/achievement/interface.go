// File: database/repository/achievement/interface.go
package achievementRepo

import (
	"context"
	"log"

	"alabraar/database"
	"alabraar/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AchievementRepository interface {
	// CreateIfAbsent inserts the achievement unless one with the same
	// (userId, type, title) already exists. Returns the stored record —
	// the existing one on a duplicate — and true when a new record was
	// written.
	CreateIfAbsent(ctx context.Context, achievement *models.Achievement) (*models.Achievement, bool, error)
	ListByUser(ctx context.Context, userID string) ([]models.Achievement, error)
}

type mongoAchievementRepo struct {
	coll *mongo.Collection
}

// NewMongoAchievementRepo constructs a new MongoDB AchievementRepository.
func NewMongoAchievementRepo() AchievementRepository {
	r := &mongoAchievementRepo{
		coll: database.DB().Collection("achievements"),
	}
	if err := r.EnsureIndexes(); err != nil {
		log.Printf("achievement repo: %v", err)
	}
	return r
}
