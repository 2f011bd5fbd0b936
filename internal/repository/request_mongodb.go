package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRequestRepository implements RequestRepository using MongoDB.
type MongoRequestRepository struct {
	collection *mongo.Collection
}

// Count returns the total number of requests.
func (r *MongoRequestRepository) Count(ctx context.Context) (int64, error) {
	return r.countDocuments(ctx, bson.M{})
}

// CountByUser counts requests filed by the given user.
func (r *MongoRequestRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.countDocuments(ctx, bson.M{"user": userID})
}

// CountByOutlet counts requests whose outlet field matches the given id.
func (r *MongoRequestRepository) CountByOutlet(ctx context.Context, outletID string) (int64, error) {
	return r.countDocuments(ctx, bson.M{"outlet": outletID})
}

func (r *MongoRequestRepository) countDocuments(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count requests: %w", err)
	}
	return count, nil
}

// Ensure MongoRequestRepository implements RequestRepository
var _ RequestRepository = (*MongoRequestRepository)(nil)
