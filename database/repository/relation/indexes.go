// File: database/repository/relation/indexes.go
package relationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoRelationRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "establishmentId", Value: 1}, {Key: "clientId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "clientId", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create relation indexes: %w", err)
	}
	if _, err := r.interests.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "establishmentId", Value: 1}},
	}); err != nil {
		return fmt.Errorf("failed to create interest indexes: %w", err)
	}
	return nil
}
