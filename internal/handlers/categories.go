package handlers

import (
	"github.com/gofiber/fiber/v2"

	"jewelry-resale-server/internal/httperr"
	"jewelry-resale-server/internal/models"
)

func (h *Handler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.store.ListCategories(c.Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(categories)
}

// ProductsByCategory lists the products filed under a category name.
// An unknown name returns an empty array.
func (h *Handler) ProductsByCategory(c *fiber.Ctx) error {
	products, err := h.store.ProductsByCategory(c.Context(), c.Params("name"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(products)
}

// AddProduct creates a product listing. The route lives under /categories
// because sellers post a product into a category.
func (h *Handler) AddProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return httperr.JSON(c, fiber.StatusBadRequest, httperr.KindData, "invalid request body")
	}
	id, err := h.store.InsertProduct(c.Context(), product)
	if err != nil {
		return storeError(c, err)
	}
	return insertResult(c, id)
}

func (h *Handler) ListRecommendations(c *fiber.Ctx) error {
	recommendations, err := h.store.ListRecommendations(c.Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(recommendations)
}
