package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// ListProducts returns all products, or only one seller's when the email
// query parameter is present.
func (h *Handler) ListProducts(c *fiber.Ctx) error {
	products, err := h.store.ListProducts(c.Context(), c.Query("email"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(products)
}

func (h *Handler) DeleteProduct(c *fiber.Ctx) error {
	deleted, err := h.store.DeleteProduct(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"acknowledged": true, "deletedCount": deleted})
}
