// Package httperr defines the error envelope every endpoint returns on
// failure: a machine-readable kind plus a message, with a fixed status
// mapping (400 DataError, 404 NotFound, 502 ExternalServiceError).
package httperr

import "github.com/gofiber/fiber/v2"

const (
	KindData     = "DataError"
	KindNotFound = "NotFound"
	KindExternal = "ExternalServiceError"
	KindInternal = "InternalError"
)

type Envelope struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, kind, message string) error {
	return c.Status(status).JSON(Envelope{Kind: kind, Message: message})
}
