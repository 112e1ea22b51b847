package recipe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Go-Receitas-API/domain"
	"Go-Receitas-API/entities"

	"github.com/gofiber/fiber/v2/log"
	"github.com/sahilm/fuzzy"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		GetRecipeByID(ctx context.Context, id uint) (domain.RecipeResponse, error)
		GetRecipeByName(ctx context.Context, name string) (domain.RecipeResponse, error)
		SearchRecipes(ctx context.Context, query string) ([]domain.RecipeResponse, error)
		CreateRecipe(ctx context.Context, req domain.RecipeRequest) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.RecipeRequest) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id uint) (domain.DeleteRecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
	}
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	ingredients := recipe.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return domain.RecipeResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Ingredients: ingredients,
		Preparation: recipe.Preparation,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, toRecipeResponse(recipe))
	}
	return res, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id uint) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipeByName(ctx context.Context, name string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByName(ctx, name)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

// recipeNames adapts a recipe list to fuzzy.Source.
type recipeNames []*entities.Recipe

func (r recipeNames) String(i int) string { return r[i].Name }
func (r recipeNames) Len() int            { return len(r) }

// SearchRecipes ranks recipes whose name fuzzily matches query, best first.
func (s *recipeService) SearchRecipes(ctx context.Context, query string) ([]domain.RecipeResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptySearchQuery
	}

	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	matches := fuzzy.FindFrom(query, recipeNames(recipes))
	res := make([]domain.RecipeResponse, 0, len(matches))
	for _, m := range matches {
		res = append(res, toRecipeResponse(recipes[m.Index]))
	}
	return res, nil
}

// ensureNameFree fails when a recipe other than selfID already uses name.
func (s *recipeService) ensureNameFree(ctx context.Context, name string, selfID uint) error {
	existing, err := s.recipeRepository.GetRecipeByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domain.ErrRecipeNameExists
	}
	return nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeRequest) (domain.RecipeResponse, error) {
	if err := s.ensureNameFree(ctx, req.Name, 0); err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		Name:        req.Name,
		Ingredients: req.Ingredients,
		Preparation: req.Preparation,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	log.Infow("recipe created", "id", recipe.ID, "name", recipe.Name)
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.RecipeRequest) (domain.RecipeResponse, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, id); err != nil {
		return domain.RecipeResponse{}, err
	}

	if err := s.ensureNameFree(ctx, req.Name, id); err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:          id,
		Name:        req.Name,
		Ingredients: req.Ingredients,
		Preparation: req.Preparation,
	}
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	log.Infow("recipe updated", "id", recipe.ID, "name", recipe.Name)
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) (domain.DeleteRecipeResponse, error) {
	count, err := s.recipeRepository.CountRecipes(ctx)
	if err != nil {
		return domain.DeleteRecipeResponse{}, err
	}
	if count == 0 {
		return domain.DeleteRecipeResponse{}, domain.ErrNoRecipes
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return domain.DeleteRecipeResponse{}, err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		return domain.DeleteRecipeResponse{}, err
	}

	log.Infow("recipe deleted", "id", recipe.ID, "name", recipe.Name)
	return domain.DeleteRecipeResponse{
		Message: fmt.Sprintf(domain.MessageSuccessDeleteRecipeFmt, recipe.Name, recipe.ID),
	}, nil
}
