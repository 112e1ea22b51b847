package handlers

import (
	"Go-Receitas-API/domain"
	"Go-Receitas-API/internal/api/presenters"
	"Go-Receitas-API/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeByID(c *fiber.Ctx) error
		GetRecipeByName(c *fiber.Ctx) error
		SearchRecipes(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipes(c.Context())
	if err != nil {
		return serviceError(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) GetRecipeByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return serviceError(c, domain.MessageFailedGetRecipes, err)
	}

	res, err := h.recipeService.GetRecipeByID(c.Context(), id)
	if err != nil {
		return serviceError(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) GetRecipeByName(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipeByName(c.Context(), c.Params("nome"))
	if err != nil {
		return serviceError(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) SearchRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.SearchRecipes(c.Context(), c.Query("q"))
	if err != nil {
		return serviceError(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.RecipeRequest)
	if handled, err := bindRequest(c, h.validator, req); handled {
		return err
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return serviceError(c, domain.MessageFailedSaveRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return serviceError(c, domain.MessageFailedSaveRecipe, err)
	}

	req := new(domain.RecipeRequest)
	if handled, err := bindRequest(c, h.validator, req); handled {
		return err
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), id, *req)
	if err != nil {
		return serviceError(c, domain.MessageFailedSaveRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return serviceError(c, domain.MessageFailedSaveRecipe, err)
	}

	res, err := h.recipeService.DeleteRecipe(c.Context(), id)
	if err != nil {
		return serviceError(c, domain.MessageFailedSaveRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
