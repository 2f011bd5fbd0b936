package repository

import (
	"context"
	"errors"

	"cyltrack-rest-api/internal/model"
)

// ErrNotFound is returned when a referenced document does not exist.
var ErrNotFound = errors.New("not found")

// UserRepository defines user data access methods.
type UserRepository interface {
	// GetByID loads a user by its identifier.
	GetByID(ctx context.Context, id string) (*model.User, error)

	// GetByEmail loads a user by email address (login).
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// InventoryRepository defines access to the distributor's inventory record.
type InventoryRepository interface {
	// Get retrieves the inventory record. Returns ErrNotFound when no
	// stock has ever been added.
	Get(ctx context.Context) (*model.Inventory, error)

	// AddEntry appends a history entry and adjusts the current stock.
	AddEntry(ctx context.Context, entry model.InventoryEntry) error

	// Close closes the repository connection.
	Close() error
}

// OutletRepository defines outlet data access methods.
type OutletRepository interface {
	// GetByID loads an outlet by its identifier.
	GetByID(ctx context.Context, id string) (*model.Outlet, error)

	// Count returns the total number of outlets.
	Count(ctx context.Context) (int64, error)
}

// RequestRepository counts stock requests.
type RequestRepository interface {
	// Count returns the total number of requests.
	Count(ctx context.Context) (int64, error)

	// CountByUser counts requests filed by the given user.
	CountByUser(ctx context.Context, userID string) (int64, error)

	// CountByOutlet counts requests whose outlet field matches the given id.
	CountByOutlet(ctx context.Context, outletID string) (int64, error)
}

// DeliveryRepository counts deliveries.
type DeliveryRepository interface {
	// Count returns the total number of deliveries.
	Count(ctx context.Context) (int64, error)

	// CountByOutlet counts deliveries whose outlet field matches the given id.
	CountByOutlet(ctx context.Context, outletID string) (int64, error)
}
