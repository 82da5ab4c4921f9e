package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a resale listing. Email is the seller's address and doubles as
// the only link back to the seller account.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	CategoryName  string             `bson:"category_name" json:"category_name"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"original_price,omitempty" json:"original_price,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	YearsUsed     int                `bson:"years_used,omitempty" json:"years_used,omitempty"`
	PostedAt      time.Time          `bson:"posted_at,omitempty" json:"posted_at,omitempty"`
}
