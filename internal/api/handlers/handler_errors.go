package handlers

import (
	"errors"

	"Go-Receitas-API/domain"
	"Go-Receitas-API/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
)

var errorStatuses = []struct {
	err     error
	status  int
	message string
}{
	{domain.ErrRecipeNotFound, fiber.StatusNotFound, domain.MessageRecipeNotFound},
	{domain.ErrNoRecipes, fiber.StatusNotFound, domain.MessageNoRecipes},
	{domain.ErrRecipeNameExists, fiber.StatusConflict, domain.MessageRecipeNameExists},
	{domain.ErrEmptySearchQuery, fiber.StatusUnprocessableEntity, domain.MessageEmptySearchQuery},
	{domain.ErrUserNotFound, fiber.StatusNotFound, domain.MessageUserNotFound},
	{domain.ErrEmailExists, fiber.StatusConflict, domain.MessageEmailExists},
	{domain.ErrInvalidID, fiber.StatusBadRequest, domain.MessageInvalidID},
}

// serviceError maps a domain error to its status and public message.
// Anything unknown is an internal error reported with fallback.
func serviceError(c *fiber.Ctx, fallback string, err error) error {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return presenters.ErrorResponse(c, e.status, e.message, err)
		}
	}
	return presenters.ErrorResponse(c, fiber.StatusInternalServerError, fallback, err)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, domain.ErrInvalidID
	}
	return uint(id), nil
}

// bindRequest parses the json body into req and runs the validator on it.
// On failure the error response has already been written and handled is true.
func bindRequest(c *fiber.Ctx, v validate, req any) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return true, presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := v.Struct(req); err != nil {
		return true, presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedValidation, err)
	}
	return false, nil
}

type validate interface {
	Struct(s any) error
}
