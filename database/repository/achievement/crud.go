// File: database/repository/achievement/crud.go
package achievementRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"alabraar/models"
)

func (r *mongoAchievementRepo) CreateIfAbsent(ctx context.Context, achievement *models.Achievement) (*models.Achievement, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"userId": achievement.UserID,
		"type":   achievement.Type,
		"title":  achievement.Title,
	}
	update := bson.M{"$setOnInsert": achievement}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored models.Achievement
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, false, err
	}
	return &stored, stored.ID == achievement.ID, nil
}

func (r *mongoAchievementRepo) ListByUser(ctx context.Context, userID string) ([]models.Achievement, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "earnedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var achievements []models.Achievement
	if err := cursor.All(ctx, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

// EnsureIndexes creates the necessary indexes on the achievements collection.
func (r *mongoAchievementRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "type", Value: 1}, {Key: "title", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_user_type_title"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "earnedAt", Value: -1}},
			Options: options.Index().SetName("user_earned_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create achievement indexes: %w", err)
	}
	return nil
}
