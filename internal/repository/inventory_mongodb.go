package repository

import (
	"context"
	"fmt"

	"cyltrack-rest-api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoInventoryRepository implements InventoryRepository using MongoDB.
// The inventory lives in a single document holding the running stock total
// and the ordered history of additions.
type MongoInventoryRepository struct {
	collection *mongo.Collection
}

// Get retrieves the inventory record.
func (r *MongoInventoryRepository) Get(ctx context.Context) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&inv)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return &inv, nil
}

// AddEntry appends a history entry and adjusts the current stock in one
// update. The document is created on first use.
func (r *MongoInventoryRepository) AddEntry(ctx context.Context, entry model.InventoryEntry) error {
	update := bson.M{
		"$inc":  bson.M{"currentStock": entry.Quantity},
		"$push": bson.M{"history": entry},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{}, update, opts)
	if err != nil {
		return fmt.Errorf("failed to add inventory entry: %w", err)
	}
	return nil
}

// Close is a no-op; the connection belongs to the MongoStore.
func (r *MongoInventoryRepository) Close() error {
	return nil
}

// Ensure MongoInventoryRepository implements InventoryRepository
var _ InventoryRepository = (*MongoInventoryRepository)(nil)
