package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category is a top-level product grouping. Products reference it by name
// only; nothing enforces that the name exists.
type Category struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}
