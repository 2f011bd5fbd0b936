package model

// Role classifies a user's access pattern and the data scope of their
// dashboard. The set is closed: the aggregator dispatches on the known
// constants and rejects anything else.
type Role string

const (
	RoleDistributor   Role = "DISTRIBUTOR"
	RoleOutletManager Role = "OUTLET_MANAGER"
	RoleCustomer      Role = "CUSTOMER"
	RoleBusiness      Role = "BUSINESS"
)

// User represents a registered account. Accounts are created elsewhere;
// this service only reads them.
type User struct {
	ID           string `bson:"_id" json:"id"`
	Email        string `bson:"email" json:"email"`
	Name         string `bson:"name,omitempty" json:"name,omitempty"`
	PasswordHash string `bson:"password" json:"-"`
	Role         Role   `bson:"userRole" json:"userRole"`
	Outlet       string `bson:"outlet,omitempty" json:"outlet,omitempty"`
}
