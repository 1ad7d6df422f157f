package controller

import (
	"errors"

	"ocbs-be/internal/entity"
	"ocbs-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, entity.ErrInput):
		return fiber.StatusBadRequest
	case errors.Is(err, entity.ErrRegistrationNotFound), errors.Is(err, entity.ErrPlayerNotFound),
		errors.Is(err, entity.ErrNoPickList):
		return fiber.StatusNotFound
	case errors.Is(err, entity.ErrRegistrationExists):
		return fiber.StatusConflict
	case errors.Is(err, entity.ErrUpstream):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

func writeError(ctx *fiber.Ctx, err error) error {
	code := statusOf(err)
	return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
}
