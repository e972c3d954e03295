// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"alabraar/models"
)

func (r *mongoBookingRepo) CreateBookingTransactionally(
	ctx context.Context,
	booking *models.Booking,
	reservations []models.SlotReservation,
) error {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		// Bump the guard document for every (ustaadh, date) this booking
		// touches. Two concurrent creates against the same teacher-day both
		// write the same guard doc, so one transaction aborts on write
		// conflict instead of both committing overlapping reservations.
		for _, date := range reservationDates(reservations) {
			guardFilter := bson.M{"_id": booking.UstaadhID + ":" + date}
			guardUpdate := bson.M{"$inc": bson.M{"version": 1}}
			if _, err := r.guardColl.UpdateOne(sc, guardFilter, guardUpdate,
				options.Update().SetUpsert(true)); err != nil {
				return fmt.Errorf("guard bump failed: %w", err)
			}
		}

		// Re-check overlap inside the transaction: reject if any requested
		// window intersects a reservation already on disk.
		for _, res := range reservations {
			conflictFilter := bson.M{
				"ustaadhId": res.UstaadhID,
				"date":      res.Date,
				"start":     bson.M{"$lt": res.End},
				"end":       bson.M{"$gt": res.Start},
			}
			n, err := r.reservationColl.CountDocuments(sc, conflictFilter)
			if err != nil {
				return fmt.Errorf("conflict check failed: %w", err)
			}
			if n > 0 {
				return fmt.Errorf("slot %s %d-%d already reserved", res.Date, res.Start, res.End)
			}
		}

		docs := make([]interface{}, len(reservations))
		for i, res := range reservations {
			docs[i] = res
		}
		if _, err := r.reservationColl.InsertMany(sc, docs); err != nil {
			return fmt.Errorf("insert reservations failed: %w", err)
		}

		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
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
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}

func (r *mongoBookingRepo) ReleaseReservations(ctx context.Context, bookingID string) error {
	_, err := r.reservationColl.DeleteMany(ctx, bson.M{"bookingId": bookingID})
	if err != nil {
		return fmt.Errorf("release reservations failed: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) ReleaseSlotReservation(ctx context.Context, bookingID, date string, start int) error {
	_, err := r.reservationColl.DeleteOne(ctx, bson.M{"bookingId": bookingID, "date": date, "start": start})
	if err != nil {
		return fmt.Errorf("release slot reservation failed: %w", err)
	}
	return nil
}

func reservationDates(reservations []models.SlotReservation) []string {
	seen := make(map[string]bool, len(reservations))
	var dates []string
	for _, res := range reservations {
		if !seen[res.Date] {
			seen[res.Date] = true
			dates = append(dates, res.Date)
		}
	}
	return dates
}
