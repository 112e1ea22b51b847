package middleware

import (
	"errors"

	"Go-Receitas-API/domain"
	"Go-Receitas-API/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RequestIDMiddleware() fiber.Handler
		MetricsMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	})
}

func (m *middleware) RequestIDMiddleware() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator: uuid.NewString,
	})
}

// ErrorHandler renders errors that escape the handlers, such as unknown
// routes or recovered panics, in the API error shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := domain.MessageFailedProcessRequest

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		switch code {
		case fiber.StatusNotFound:
			message = domain.MessageRouteNotFound
		case fiber.StatusMethodNotAllowed:
			message = domain.MessageMethodNotAllowed
		default:
			message = fe.Message
		}
	}

	return presenters.ErrorResponse(c, code, message, err)
}
