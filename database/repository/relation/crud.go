// File: database/repository/relation/crud.go
package relationRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"agendly/models"
)

func (r *mongoRelationRepo) Create(ctx context.Context, rel *models.Relation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rel.ID == "" {
		rel.ID = uuid.New().String()
	}
	if rel.Status == "" {
		rel.Status = models.RelationActive
	}
	rel.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, rel)
	return err
}

func (r *mongoRelationRepo) GetByPair(ctx context.Context, establishmentID, clientID string) (*models.Relation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"establishmentId": establishmentID, "clientId": clientID}
	var rel models.Relation
	if err := r.coll.FindOne(ctx, filter).Decode(&rel); err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *mongoRelationRepo) GetActiveByEstablishment(ctx context.Context, establishmentID string) ([]models.Relation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"establishmentId": establishmentID, "status": models.RelationActive}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var relations []models.Relation
	if err := cursor.All(ctx, &relations); err != nil {
		return nil, err
	}
	return relations, nil
}

func (r *mongoRelationRepo) Delete(ctx context.Context, establishmentID, clientID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"establishmentId": establishmentID, "clientId": clientID}
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoRelationRepo) CreateInterest(ctx context.Context, interest *models.Interest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if interest.ID == "" {
		interest.ID = uuid.New().String()
	}
	interest.CreatedAt = time.Now()
	_, err := r.interests.InsertOne(ctx, interest)
	return err
}

func (r *mongoRelationRepo) GetInterestsByEstablishment(ctx context.Context, establishmentID string) ([]models.Interest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.interests.Find(ctx, bson.M{"establishmentId": establishmentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var interests []models.Interest
	if err := cursor.All(ctx, &interests); err != nil {
		return nil, err
	}
	return interests, nil
}
