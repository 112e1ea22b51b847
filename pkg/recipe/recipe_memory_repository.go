package recipe

import (
	"context"
	"sync"
	"time"

	"Go-Receitas-API/domain"
	"Go-Receitas-API/entities"
)

type memoryRecipeRepository struct {
	mu      sync.RWMutex
	recipes []entities.Recipe
}

// NewMemoryRecipeRepository keeps recipes in an ordered slice. A new recipe
// gets the id of the last element plus one, so deleting the tail frees its id.
func NewMemoryRecipeRepository(seed []entities.Recipe) RecipeRepository {
	r := &memoryRecipeRepository{
		recipes: make([]entities.Recipe, 0, len(seed)),
	}
	for _, s := range seed {
		r.recipes = append(r.recipes, clone(&s))
	}
	return r
}

func clone(recipe *entities.Recipe) entities.Recipe {
	c := *recipe
	c.NameKey = NameKey(recipe.Name)
	c.Ingredients = append([]string(nil), recipe.Ingredients...)
	return c
}

func (r *memoryRecipeRepository) indexOf(id uint) int {
	for i := range r.recipes {
		if r.recipes[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *memoryRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := NameKey(recipe.Name)
	for i := range r.recipes {
		if r.recipes[i].NameKey == key {
			return domain.ErrRecipeNameExists
		}
	}

	recipe.ID = 1
	if n := len(r.recipes); n > 0 {
		recipe.ID = r.recipes[n-1].ID + 1
	}
	now := time.Now()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	r.recipes = append(r.recipes, clone(recipe))
	recipe.NameKey = key
	return nil
}

func (r *memoryRecipeRepository) GetRecipes(_ context.Context) ([]*entities.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipes := make([]*entities.Recipe, 0, len(r.recipes))
	for i := range r.recipes {
		c := clone(&r.recipes[i])
		recipes = append(recipes, &c)
	}
	return recipes, nil
}

func (r *memoryRecipeRepository) GetRecipeByID(_ context.Context, id uint) (*entities.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrRecipeNotFound
	}
	c := clone(&r.recipes[i])
	return &c, nil
}

func (r *memoryRecipeRepository) GetRecipeByName(_ context.Context, name string) (*entities.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := NameKey(name)
	for i := range r.recipes {
		if r.recipes[i].NameKey == key {
			c := clone(&r.recipes[i])
			return &c, nil
		}
	}
	return nil, domain.ErrRecipeNotFound
}

func (r *memoryRecipeRepository) UpdateRecipe(_ context.Context, recipe *entities.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(recipe.ID)
	if i < 0 {
		return domain.ErrRecipeNotFound
	}

	key := NameKey(recipe.Name)
	for j := range r.recipes {
		if j != i && r.recipes[j].NameKey == key {
			return domain.ErrRecipeNameExists
		}
	}

	recipe.CreatedAt = r.recipes[i].CreatedAt
	recipe.UpdatedAt = time.Now()
	r.recipes[i] = clone(recipe)
	recipe.NameKey = key
	return nil
}

func (r *memoryRecipeRepository) DeleteRecipe(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrRecipeNotFound
	}
	r.recipes = append(r.recipes[:i], r.recipes[i+1:]...)
	return nil
}

func (r *memoryRecipeRepository) CountRecipes(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.recipes)), nil
}
