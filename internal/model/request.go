package model

// StockRequest links a user or an outlet to a demand for cylinders.
// The dashboard only counts these.
type StockRequest struct {
	ID     string `bson:"_id" json:"id"`
	User   string `bson:"user,omitempty" json:"user,omitempty"`
	Outlet string `bson:"outlet,omitempty" json:"outlet,omitempty"`
}
