// File: database/repository/message/interface.go
package messageRepo

import (
	"context"
	"log"

	"alabraar/database"
	"alabraar/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	GetConversation(ctx context.Context, userA, userB string) ([]models.Message, error)
	MarkRead(ctx context.Context, receiverID, senderID string) error
	CountUnread(ctx context.Context, receiverID string) (int64, error)
}

type mongoMessageRepo struct {
	coll *mongo.Collection
}

// NewMongoMessageRepo constructs a new MongoDB MessageRepository.
func NewMongoMessageRepo() MessageRepository {
	r := &mongoMessageRepo{
		coll: database.DB().Collection("messages"),
	}
	if err := r.EnsureIndexes(); err != nil {
		log.Printf("message repo: %v", err)
	}
	return r
}
