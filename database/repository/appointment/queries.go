// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agendly/models"
)

func (r *mongoAppointmentRepo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *mongoAppointmentRepo) GetByClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"client.id": clientID})
}

func (r *mongoAppointmentRepo) GetByEstablishment(ctx context.Context, establishmentID string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"establishment.id": establishmentID})
}

// CountOccupiedInRange counts booked slots for an establishment inside a
// window, shown as the week load on the agenda page.
func (r *mongoAppointmentRepo) CountOccupiedInRange(ctx context.Context, establishmentID string, from, to time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"establishment.id": establishmentID,
		"status":           models.StatusOccupied,
		"date":             bson.M{"$gte": from, "$lt": to},
	}
	return r.coll.CountDocuments(ctx, filter)
}

// GetAll returns every appointment up to limit, the query behind the public
// establishment agenda view.
func (r *mongoAppointmentRepo) GetAll(ctx context.Context, limit int64) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.M{"date": 1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	return r.find(ctx, bson.M{}, opts)
}
