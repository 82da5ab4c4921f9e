package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AccountType is the role stored on a user document. Only the three values
// below ever appear; an unknown email resolves to the zero value.
type AccountType string

const (
	RoleAdmin  AccountType = "Admin"
	RoleSeller AccountType = "Seller"
	RoleBuyer  AccountType = "Buyer"
)

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	AccountType AccountType        `bson:"account_type" json:"account_type"`
}
