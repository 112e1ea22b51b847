package handlers

import (
	"Go-Receitas-API/domain"

	"github.com/gofiber/fiber/v2"
)

type (
	RootHandler interface {
		Hello(c *fiber.Ctx) error
		GetStudent(c *fiber.Ctx) error
		Ping(c *fiber.Ctx) error
	}

	rootHandler struct{}
)

func NewRootHandler() RootHandler {
	return &rootHandler{}
}

func (h *rootHandler) Hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": domain.MessageHelloWorld})
}

func (h *rootHandler) GetStudent(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"aluno": c.Params("nome")})
}

func (h *rootHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "pong"})
}
