package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"jewelry-resale-server/internal/models"
)

var (
	// ErrInvalidID means a path or body parameter was not a valid ObjectID hex.
	ErrInvalidID = errors.New("invalid document id")
	// ErrNotFound means an id-keyed lookup matched no document.
	ErrNotFound = errors.New("document not found")
)

// Store is the data-access object shared by every handler. It holds one
// handle per collection, all backed by the single client opened at startup.
type Store struct {
	categories      *mongo.Collection
	products        *mongo.Collection
	bookings        *mongo.Collection
	payments        *mongo.Collection
	recommendations *mongo.Collection
	users           *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		categories:      db.Collection("categories"),
		products:        db.Collection("products"),
		bookings:        db.Collection("bookings"),
		payments:        db.Collection("payments"),
		recommendations: db.Collection("recommendation"),
		users:           db.Collection("users"),
	}
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ProductsByCategory matches the category name exactly, case-sensitive.
// An unknown name yields an empty slice, not an error.
func (s *Store) ProductsByCategory(ctx context.Context, name string) ([]models.Product, error) {
	return s.findProducts(ctx, bson.M{"category_name": name})
}

// ListProducts returns every product, or only the given seller's when
// sellerEmail is non-empty.
func (s *Store) ListProducts(ctx context.Context, sellerEmail string) ([]models.Product, error) {
	filter := bson.M{}
	if sellerEmail != "" {
		filter["email"] = sellerEmail
	}
	return s.findProducts(ctx, filter)
}

func (s *Store) findProducts(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := s.products.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) InsertProduct(ctx context.Context, product models.Product) (primitive.ObjectID, error) {
	return insertOne(ctx, s.products, product)
}

func (s *Store) DeleteProduct(ctx context.Context, id string) (int64, error) {
	objectID, err := parseID(id)
	if err != nil {
		return 0, err
	}
	result, err := s.products.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (s *Store) InsertBooking(ctx context.Context, booking models.Booking) (primitive.ObjectID, error) {
	return insertOne(ctx, s.bookings, booking)
}

// ListBookings returns every booking, or only the given buyer's when
// buyerEmail is non-empty.
func (s *Store) ListBookings(ctx context.Context, buyerEmail string) ([]models.Booking, error) {
	filter := bson.M{}
	if buyerEmail != "" {
		filter["email"] = buyerEmail
	}
	cursor, err := s.bookings.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Store) BookingByID(ctx context.Context, id string) (models.Booking, error) {
	objectID, err := parseID(id)
	if err != nil {
		return models.Booking{}, err
	}
	var booking models.Booking
	err = s.bookings.FindOne(ctx, bson.M{"_id": objectID}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Booking{}, fmt.Errorf("%w: booking %s", ErrNotFound, id)
	}
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

func (s *Store) ListRecommendations(ctx context.Context) ([]models.Recommendation, error) {
	cursor, err := s.recommendations.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	recommendations := []models.Recommendation{}
	if err := cursor.All(ctx, &recommendations); err != nil {
		return nil, err
	}
	return recommendations, nil
}

func (s *Store) InsertUser(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	return insertOne(ctx, s.users, user)
}

// UserRole looks up the account type stored for an email. An unknown email
// is not an error; it resolves to the zero AccountType.
func (s *Store) UserRole(ctx context.Context, email string) (models.AccountType, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return user.AccountType, nil
}

func insertOne(ctx context.Context, collection *mongo.Collection, document any) (primitive.ObjectID, error) {
	result, err := collection.InsertOne(ctx, document)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id, nil
}

func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return objectID, nil
}
