// File: database/repository/establishment/availability.go
package establishmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"agendly/services/scheduling"
)

// UpdateWorkingHours replaces the establishment's weekly schedule.
func (r *mongoEstablishmentRepo) UpdateWorkingHours(ctx context.Context, id string, wh scheduling.WorkingHours) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"workingHours": wh, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AddBlockedDate appends a full-day exclusion. The filter keeps the list
// unique by date: a second block for the same date matches no document.
func (r *mongoEstablishmentRepo) AddBlockedDate(ctx context.Context, id string, blocked scheduling.BlockedDate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "blockedDates.date": bson.M{"$ne": blocked.Date}}
	update := bson.M{
		"$push": bson.M{"blockedDates": blocked},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
