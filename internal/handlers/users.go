package handlers

import (
	"github.com/gofiber/fiber/v2"

	"jewelry-resale-server/internal/httperr"
	"jewelry-resale-server/internal/models"
)

func (h *Handler) AddUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return httperr.JSON(c, fiber.StatusBadRequest, httperr.KindData, "invalid request body")
	}
	id, err := h.store.InsertUser(c.Context(), user)
	if err != nil {
		return storeError(c, err)
	}
	return insertResult(c, id)
}

// The three role endpoints are projections of one lookup. They are advisory
// checks for the frontend, not access-control gates, and an unknown email
// answers false rather than erroring.

func (h *Handler) IsAdmin(c *fiber.Ctx) error {
	return h.hasRole(c, models.RoleAdmin, "isAdmin")
}

func (h *Handler) IsSeller(c *fiber.Ctx) error {
	return h.hasRole(c, models.RoleSeller, "isSeller")
}

func (h *Handler) IsBuyer(c *fiber.Ctx) error {
	return h.hasRole(c, models.RoleBuyer, "isBuyer")
}

func (h *Handler) hasRole(c *fiber.Ctx, role models.AccountType, field string) error {
	got, err := h.store.UserRole(c.Context(), c.Params("email"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{field: got == role})
}
