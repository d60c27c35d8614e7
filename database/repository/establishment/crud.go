// File: database/repository/establishment/crud.go
package establishmentRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"agendly/models"
)

func (r *mongoEstablishmentRepo) Create(ctx context.Context, est *models.EstablishmentProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if est.ID == "" {
		est.ID = uuid.New().String()
	}
	now := time.Now()
	est.CreatedAt = now
	est.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, est)
	return err
}

func (r *mongoEstablishmentRepo) GetByID(ctx context.Context, id string) (*models.EstablishmentProfile, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoEstablishmentRepo) GetByUserID(ctx context.Context, userID string) (*models.EstablishmentProfile, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

func (r *mongoEstablishmentRepo) findOne(ctx context.Context, filter bson.M) (*models.EstablishmentProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var est models.EstablishmentProfile
	if err := r.coll.FindOne(ctx, filter).Decode(&est); err != nil {
		return nil, err
	}
	return &est, nil
}

func (r *mongoEstablishmentRepo) Update(ctx context.Context, est *models.EstablishmentProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	est.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": est.ID}, est)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoEstablishmentRepo) SetPhotoURL(ctx context.Context, id, url string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"photoUrl": url, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
