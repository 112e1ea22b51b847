package domain

import (
	"errors"
)

var (
	MessageRecipeNotFound         = "Receita não encontrada"
	MessageRecipeNameExists       = "Receita com este nome já existe"
	MessageNoRecipes              = "Não há receitas para excluir."
	MessageEmptySearchQuery       = "Informe o termo de busca"
	MessageFailedGetRecipes       = "Falha ao buscar receitas"
	MessageFailedSaveRecipe       = "Falha ao salvar a receita"
	MessageSuccessDeleteRecipeFmt = "Receita '%s' (ID: %d) foi deletada com sucesso."

	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrRecipeNameExists = errors.New("recipe name already exists")
	ErrNoRecipes        = errors.New("no recipes to delete")
	ErrEmptySearchQuery = errors.New("empty search query")
)

type (
	RecipeRequest struct {
		Name        string   `json:"nome" validate:"required,min=2,max=50"`
		Ingredients []string `json:"ingredientes" validate:"required,min=1,max=20,dive,required"`
		Preparation string   `json:"modo_de_preparo" validate:"required"`
	}

	RecipeResponse struct {
		ID          uint     `json:"id"`
		Name        string   `json:"nome"`
		Ingredients []string `json:"ingredientes"`
		Preparation string   `json:"modo_de_preparo"`
	}

	DeleteRecipeResponse struct {
		Message string `json:"message"`
	}
)
