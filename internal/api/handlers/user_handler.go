package handlers

import (
	"Go-Receitas-API/domain"
	"Go-Receitas-API/internal/api/presenters"
	"Go-Receitas-API/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		CreateUser(c *fiber.Ctx) error
		GetUsers(c *fiber.Ctx) error
		GetUserByID(c *fiber.Ctx) error
		UpdateUser(c *fiber.Ctx) error
		DeleteUser(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) CreateUser(c *fiber.Ctx) error {
	req := new(domain.UserRequest)
	if handled, err := bindRequest(c, h.validator, req); handled {
		return err
	}

	res, err := h.userService.CreateUser(c.Context(), *req)
	if err != nil {
		return serviceError(c, domain.MessageFailedSaveUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *userHandler) GetUsers(c *fiber.Ctx) error {
	res, err := h.userService.GetUsers(c.Context())
	if err != nil {
		return serviceError(c, domain.MessageFailedGetUsers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *userHandler) GetUserByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return serviceError(c, domain.MessageFailedGetUsers, err)
	}

	res, err := h.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return serviceError(c, domain.MessageFailedGetUsers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *userHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return serviceError(c, domain.MessageFailedSaveUser, err)
	}

	req := new(domain.UserRequest)
	if handled, err := bindRequest(c, h.validator, req); handled {
		return err
	}

	res, err := h.userService.UpdateUser(c.Context(), id, *req)
	if err != nil {
		return serviceError(c, domain.MessageFailedSaveUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *userHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return serviceError(c, domain.MessageFailedSaveUser, err)
	}

	res, err := h.userService.DeleteUser(c.Context(), id)
	if err != nil {
		return serviceError(c, domain.MessageFailedSaveUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
