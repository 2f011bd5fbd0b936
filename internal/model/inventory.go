package model

import "time"

// InventoryEntry is one stock addition in the inventory history.
type InventoryEntry struct {
	Quantity  int64     `bson:"quantity" json:"quantity"`
	DateAdded time.Time `bson:"dateAdded" json:"dateAdded"`
}

// Inventory is the distributor's stock record: a running total plus the
// ordered history of additions that produced it.
type Inventory struct {
	CurrentStock int64            `bson:"currentStock" json:"currentStock"`
	History      []InventoryEntry `bson:"history" json:"history"`
}
