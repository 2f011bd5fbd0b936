package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names in the document store.
const (
	usersCollection      = "users"
	inventoryCollection  = "inventories"
	outletsCollection    = "outlets"
	requestsCollection   = "requests"
	deliveriesCollection = "deliveries"
)

// MongoStore owns the MongoDB client and hands out per-collection
// repositories. The connection pool is opened once at startup and drained
// at shutdown via Close.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(uri, database string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Printf("[MongoStore] Connected to %s", database)
	return &MongoStore{
		client: client,
		db:     client.Database(database),
	}, nil
}

// Users returns the user repository.
func (s *MongoStore) Users() *MongoUserRepository {
	return &MongoUserRepository{collection: s.db.Collection(usersCollection)}
}

// Inventory returns the inventory repository.
func (s *MongoStore) Inventory() *MongoInventoryRepository {
	return &MongoInventoryRepository{collection: s.db.Collection(inventoryCollection)}
}

// Outlets returns the outlet repository.
func (s *MongoStore) Outlets() *MongoOutletRepository {
	return &MongoOutletRepository{collection: s.db.Collection(outletsCollection)}
}

// Requests returns the request repository.
func (s *MongoStore) Requests() *MongoRequestRepository {
	return &MongoRequestRepository{collection: s.db.Collection(requestsCollection)}
}

// Deliveries returns the delivery repository.
func (s *MongoStore) Deliveries() *MongoDeliveryRepository {
	return &MongoDeliveryRepository{collection: s.db.Collection(deliveriesCollection)}
}

// Close drains the connection pool.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
