package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// StatusOf is the HTTP status FromFiberError will answer with for err.
func StatusOf(err error) int {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusUnprocessableEntity
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// FromFiberError renders err (usually a *fiber.Error returned out of a Transaction) with the
// standard envelope. Anything else becomes a 500 without leaking the storage message.
func FromFiberError(c *fiber.Ctx, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return JsonValidationError(c, ve.Message, ve.Fields)
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, "")
}

// ErrorHandler is the fiber.Config.ErrorHandler for the whole app.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromFiberError(c, err)
}
