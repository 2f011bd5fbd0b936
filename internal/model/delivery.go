package model

// Delivery records a shipment to an outlet. The dashboard only counts these.
type Delivery struct {
	ID     string `bson:"_id" json:"id"`
	Outlet string `bson:"outlet" json:"outlet"`
}
