package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking records a buyer's intent to purchase a product. Email is the
// buyer's address. Paid and TransactionID stay zero until a payment is
// recorded against the booking.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	ProductID     string             `bson:"productId,omitempty" json:"productId,omitempty"`
	ProductName   string             `bson:"product_name,omitempty" json:"product_name,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Paid          bool               `bson:"paid,omitempty" json:"paid,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
