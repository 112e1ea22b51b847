package recipe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Go-Receitas-API/domain"
	"Go-Receitas-API/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipeByName(ctx context.Context, name string) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id uint) error
		CountRecipes(ctx context.Context) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// NameKey is the form recipe names are compared in.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	recipe.NameKey = NameKey(recipe.Name)
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrRecipeNameExists
		}
		return fmt.Errorf("create recipe: %w", err)
	}
	return nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).Order("id asc").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("get recipe %d: %w", id, err)
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeByName(ctx context.Context, name string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("name_key = ?", NameKey(name)).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("get recipe by name: %w", err)
	}
	return &recipe, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	recipe.NameKey = NameKey(recipe.Name)
	res := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipe.ID).
		Select("name", "name_key", "ingredients", "preparation", "updated_at").
		Updates(recipe)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrRecipeNameExists
		}
		return fmt.Errorf("update recipe %d: %w", recipe.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{})
	if res.Error != nil {
		return fmt.Errorf("delete recipe %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (r *recipeRepository) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return count, nil
}
