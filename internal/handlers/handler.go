package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jewelry-resale-server/internal/httperr"
	"jewelry-resale-server/internal/models"
	"jewelry-resale-server/internal/store"
)

// Store is the slice of the data-access object the handlers use.
// *store.Store satisfies it; tests substitute stubs.
type Store interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ProductsByCategory(ctx context.Context, name string) ([]models.Product, error)
	ListProducts(ctx context.Context, sellerEmail string) ([]models.Product, error)
	InsertProduct(ctx context.Context, product models.Product) (primitive.ObjectID, error)
	DeleteProduct(ctx context.Context, id string) (int64, error)
	InsertBooking(ctx context.Context, booking models.Booking) (primitive.ObjectID, error)
	ListBookings(ctx context.Context, buyerEmail string) ([]models.Booking, error)
	BookingByID(ctx context.Context, id string) (models.Booking, error)
	RecordPayment(ctx context.Context, payment models.Payment) (store.PaymentResult, error)
	ListRecommendations(ctx context.Context) ([]models.Recommendation, error)
	InsertUser(ctx context.Context, user models.User) (primitive.ObjectID, error)
	UserRole(ctx context.Context, email string) (models.AccountType, error)
}

// IntentCreator requests a payment authorization from the provider and
// returns the client secret the frontend redeems.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64) (string, error)
}

type Handler struct {
	store    Store
	payments IntentCreator
}

func New(store Store, payments IntentCreator) *Handler {
	return &Handler{store: store, payments: payments}
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.Liveness)

	app.Get("/categories", h.ListCategories)
	app.Get("/categories/:name", h.ProductsByCategory)
	app.Post("/categories", h.AddProduct)

	app.Get("/products", h.ListProducts)
	app.Delete("/products/:id", h.DeleteProduct)

	app.Post("/bookings", h.AddBooking)
	app.Get("/bookings", h.ListBookings)
	app.Get("/bookings/:id", h.GetBooking)

	app.Post("/create-payment-intent", h.CreatePaymentIntent)
	app.Post("/payments", h.RecordPayment)

	app.Get("/recommendation", h.ListRecommendations)

	app.Post("/users", h.AddUser)
	app.Get("/users/admin/:email", h.IsAdmin)
	app.Get("/users/seller/:email", h.IsSeller)
	app.Get("/users/buyer/:email", h.IsBuyer)
}

func (h *Handler) Liveness(c *fiber.Ctx) error {
	return c.SendString("jewelry-resale")
}

// storeError maps store sentinels onto the envelope and status table.
func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return httperr.JSON(c, fiber.StatusBadRequest, httperr.KindData, err.Error())
	case errors.Is(err, store.ErrNotFound):
		return httperr.JSON(c, fiber.StatusNotFound, httperr.KindNotFound, err.Error())
	default:
		return httperr.JSON(c, fiber.StatusInternalServerError, httperr.KindInternal, err.Error())
	}
}

func insertResult(c *fiber.Ctx, id primitive.ObjectID) error {
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": id.Hex()})
}
