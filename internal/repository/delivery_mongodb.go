package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDeliveryRepository implements DeliveryRepository using MongoDB.
type MongoDeliveryRepository struct {
	collection *mongo.Collection
}

// Count returns the total number of deliveries.
func (r *MongoDeliveryRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count deliveries: %w", err)
	}
	return count, nil
}

// CountByOutlet counts deliveries whose outlet field matches the given id.
func (r *MongoDeliveryRepository) CountByOutlet(ctx context.Context, outletID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"outlet": outletID})
	if err != nil {
		return 0, fmt.Errorf("failed to count deliveries: %w", err)
	}
	return count, nil
}

// Ensure MongoDeliveryRepository implements DeliveryRepository
var _ DeliveryRepository = (*MongoDeliveryRepository)(nil)
