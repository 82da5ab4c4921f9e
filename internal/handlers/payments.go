package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"jewelry-resale-server/internal/httperr"
	"jewelry-resale-server/internal/models"
	"jewelry-resale-server/internal/payment"
)

// CreatePaymentIntent converts the price to minor currency units and asks
// the provider for a card PaymentIntent in USD. The frontend redeems the
// returned client secret.
func (h *Handler) CreatePaymentIntent(c *fiber.Ctx) error {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.BodyParser(&req); err != nil {
		return httperr.JSON(c, fiber.StatusBadRequest, httperr.KindData, "invalid request body")
	}

	clientSecret, err := h.payments.CreateIntent(c.Context(), payment.MinorUnits(req.Price))
	if err != nil {
		return httperr.JSON(c, fiber.StatusBadGateway, httperr.KindExternal, err.Error())
	}
	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}

// RecordPayment stores the completed payment and marks its booking paid.
// Both write outcomes are reported; a booking-update failure surfaces as an
// error instead of silently leaving the booking unpaid.
func (h *Handler) RecordPayment(c *fiber.Ctx) error {
	var pay models.Payment
	if err := c.BodyParser(&pay); err != nil {
		return httperr.JSON(c, fiber.StatusBadRequest, httperr.KindData, "invalid request body")
	}
	if pay.CreatedAt.IsZero() {
		pay.CreatedAt = time.Now()
	}

	result, err := h.store.RecordPayment(c.Context(), pay)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{
		"acknowledged":    true,
		"insertedId":      result.InsertedID.Hex(),
		"bookingModified": result.BookingModified,
	})
}
