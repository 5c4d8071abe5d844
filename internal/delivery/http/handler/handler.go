package handler

import (
	"errors"

	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/validate"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// mapUsecaseError is the uniform translation every resource handler
// uses: field errors become a 400 with the per-field message map as
// data, missing rows a 404, everything else a 500.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var fe validate.FieldErrors
	if errors.As(err, &fe) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", fe, err)
	}
	if errors.Is(err, usecase.ErrNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}

func parseIDParam(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	}
	return id, nil
}
