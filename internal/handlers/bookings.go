package handlers

import (
	"github.com/gofiber/fiber/v2"

	"jewelry-resale-server/internal/httperr"
	"jewelry-resale-server/internal/models"
)

func (h *Handler) AddBooking(c *fiber.Ctx) error {
	var booking models.Booking
	if err := c.BodyParser(&booking); err != nil {
		return httperr.JSON(c, fiber.StatusBadRequest, httperr.KindData, "invalid request body")
	}
	id, err := h.store.InsertBooking(c.Context(), booking)
	if err != nil {
		return storeError(c, err)
	}
	return insertResult(c, id)
}

// ListBookings returns all bookings, or only one buyer's when the email
// query parameter is present.
func (h *Handler) ListBookings(c *fiber.Ctx) error {
	bookings, err := h.store.ListBookings(c.Context(), c.Query("email"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(bookings)
}

func (h *Handler) GetBooking(c *fiber.Ctx) error {
	booking, err := h.store.BookingByID(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(booking)
}
