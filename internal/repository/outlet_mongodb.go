package repository

import (
	"context"
	"fmt"

	"cyltrack-rest-api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoOutletRepository implements OutletRepository using MongoDB.
type MongoOutletRepository struct {
	collection *mongo.Collection
}

// GetByID loads an outlet by its identifier.
func (r *MongoOutletRepository) GetByID(ctx context.Context, id string) (*model.Outlet, error) {
	var outlet model.Outlet
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&outlet)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get outlet: %w", err)
	}
	return &outlet, nil
}

// Count returns the total number of outlets.
func (r *MongoOutletRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count outlets: %w", err)
	}
	return count, nil
}

// Ensure MongoOutletRepository implements OutletRepository
var _ OutletRepository = (*MongoOutletRepository)(nil)
