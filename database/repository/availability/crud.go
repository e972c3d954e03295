// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"alabraar/models"
)

func (r *mongoAvailabilityRepo) GetByUstaadh(ctx context.Context, ustaadhID string) ([]models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"ustaadhId": ustaadhID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.AvailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// ReplaceAll deletes the ustaadh's current template and inserts the new one
// inside a single transaction, so a failed save never leaves a partial week.
func (r *mongoAvailabilityRepo) ReplaceAll(ctx context.Context, ustaadhID string, slots []models.AvailabilitySlot) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.coll.DeleteMany(sc, bson.M{"ustaadhId": ustaadhID}); err != nil {
			return fmt.Errorf("clear template failed: %w", err)
		}
		if len(slots) == 0 {
			return nil
		}
		docs := make([]interface{}, len(slots))
		for i, slot := range slots {
			if slot.ID == "" {
				slot.ID = uuid.New().String()
			}
			slot.UstaadhID = ustaadhID
			docs[i] = slot
		}
		if _, err := r.coll.InsertMany(sc, docs); err != nil {
			return fmt.Errorf("insert template failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("availability replace failed: %w", err)
	}

	return nil
}
