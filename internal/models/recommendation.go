package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Recommendation is a read-only promotional entry shown on the home page.
type Recommendation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}
