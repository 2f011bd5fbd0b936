package service

import (
	"context"
	"errors"
	"time"

	"cyltrack-rest-api/internal/model"
	"cyltrack-rest-api/internal/repository"
)

// Inventory validation errors. Handlers map these to field-level responses.
var (
	ErrInvalidQuantity = errors.New("quantity must be a positive number")
	ErrInvalidDate     = errors.New("date added is required")
)

// InventoryService handles inventory reads and stock additions.
type InventoryService struct {
	repo repository.InventoryRepository
}

// NewInventoryService creates a new inventory service.
// Returns nil if repo is nil (required dependency).
func NewInventoryService(repo repository.InventoryRepository) *InventoryService {
	if repo == nil {
		return nil
	}
	return &InventoryService{repo: repo}
}

// GetInventory retrieves the current stock and history. When nothing has
// been added yet it returns zero stock and an empty history rather than an
// error.
func (s *InventoryService) GetInventory(ctx context.Context) (*model.Inventory, error) {
	inv, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return &model.Inventory{History: []model.InventoryEntry{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if inv.History == nil {
		inv.History = []model.InventoryEntry{}
	}
	return inv, nil
}

// AddStock validates and records a stock addition.
func (s *InventoryService) AddStock(ctx context.Context, quantity int64, dateAdded time.Time) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if dateAdded.IsZero() {
		return ErrInvalidDate
	}

	return s.repo.AddEntry(ctx, model.InventoryEntry{
		Quantity:  quantity,
		DateAdded: dateAdded,
	})
}
