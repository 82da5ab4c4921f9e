package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jewelry-resale-server/internal/models"
)

// PaymentResult reports both halves of recording a payment: the inserted
// payment document and how many bookings the follow-up update touched.
type PaymentResult struct {
	InsertedID      primitive.ObjectID
	BookingModified int64
}

// RecordPayment inserts the payment document, then marks the referenced
// booking paid and stamps the transaction id onto it. The two writes are
// sequential, not transactional: if the booking update fails the payment
// document already exists, so the error names the orphaned payment id.
func (s *Store) RecordPayment(ctx context.Context, payment models.Payment) (PaymentResult, error) {
	bookingID, err := parseID(payment.BookingID)
	if err != nil {
		return PaymentResult{}, err
	}

	insertedID, err := insertOne(ctx, s.payments, payment)
	if err != nil {
		return PaymentResult{}, err
	}

	update, err := s.bookings.UpdateOne(ctx,
		bson.M{"_id": bookingID},
		bson.M{"$set": bson.M{"paid": true, "transactionId": payment.TransactionID}},
	)
	if err != nil {
		return PaymentResult{}, fmt.Errorf("payment %s saved but booking update failed: %w", insertedID.Hex(), err)
	}

	return PaymentResult{InsertedID: insertedID, BookingModified: update.ModifiedCount}, nil
}
