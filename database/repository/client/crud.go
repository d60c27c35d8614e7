// File: database/repository/client/crud.go
package clientRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"agendly/models"
)

func (r *mongoClientRepo) Create(ctx context.Context, client *models.ClientProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, client)
	return err
}

func (r *mongoClientRepo) GetByID(ctx context.Context, id string) (*models.ClientProfile, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoClientRepo) GetByUserID(ctx context.Context, userID string) (*models.ClientProfile, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

func (r *mongoClientRepo) findOne(ctx context.Context, filter bson.M) (*models.ClientProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.ClientProfile
	if err := r.coll.FindOne(ctx, filter).Decode(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

// GetByIDs fetches profiles in bulk, the lookup behind the roster view.
func (r *mongoClientRepo) GetByIDs(ctx context.Context, ids []string) ([]models.ClientProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.ClientProfile
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *mongoClientRepo) Update(ctx context.Context, client *models.ClientProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": client.ID}, client)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoClientRepo) SetFCMToken(ctx context.Context, id, token string) error {
	return r.set(ctx, id, bson.M{"fcmToken": token})
}

func (r *mongoClientRepo) SetPhotoURL(ctx context.Context, id, url string) error {
	return r.set(ctx, id, bson.M{"photoUrl": url})
}

func (r *mongoClientRepo) set(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
