package model

// Outlet is a retail point managed by an OUTLET_MANAGER user.
type Outlet struct {
	ID           string `bson:"_id" json:"id"`
	Name         string `bson:"name,omitempty" json:"name,omitempty"`
	CurrentStock int64  `bson:"currentStock" json:"currentStock"`
}
