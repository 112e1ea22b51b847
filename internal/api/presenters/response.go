package presenters

import (
	"Go-Receitas-API/domain"
	"Go-Receitas-API/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type ErrorBody struct {
	Detail string                   `json:"detail"`
	Errors []domain.ValidationField `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int) error {
	return c.Status(statusCode).JSON(data)
}

// ErrorResponse writes {"detail": message}. Validator failures in err are
// listed under "errors".
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	body := ErrorBody{
		Detail: message,
		Errors: utils.ValidationFields(err),
	}

	if statusCode >= fiber.StatusInternalServerError {
		log.Errorw(message, "method", c.Method(), "path", c.Path(), "status", statusCode, "error", err)
	} else if err != nil {
		log.Debugw(message, "method", c.Method(), "path", c.Path(), "status", statusCode, "error", err)
	}

	return c.Status(statusCode).JSON(body)
}
