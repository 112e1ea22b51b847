package recipe

import (
	"context"
	"testing"

	"Go-Receitas-API/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stores runs each service test against both repository implementations,
// seeded with the default catalogue.
func stores() map[string]func(t *testing.T) RecipeService {
	return map[string]func(t *testing.T) RecipeService{
		"memory": func(t *testing.T) RecipeService {
			return NewRecipeService(NewMemoryRecipeRepository(DefaultRecipes()))
		},
		"database": func(t *testing.T) RecipeService {
			repo := NewRecipeRepository(newTestDB(t))
			seedRepository(t, repo)
			return NewRecipeService(repo)
		},
	}
}

func newRequest(name string) domain.RecipeRequest {
	return domain.RecipeRequest{
		Name:        name,
		Ingredients: []string{"mandioca", "manteiga", "sal"},
		Preparation: "Cozinhe e amasse.",
	}
}

func TestRecipeServiceCreate(t *testing.T) {
	for store, newService := range stores() {
		t.Run(store, func(t *testing.T) {
			ctx := context.Background()
			s := newService(t)

			created, err := s.CreateRecipe(ctx, newRequest("Purê de Mandioca"))
			require.NoError(t, err)
			assert.Equal(t, uint(7), created.ID)
			assert.Equal(t, "Purê de Mandioca", created.Name)

			_, err = s.CreateRecipe(ctx, newRequest("purê de mandioca"))
			assert.ErrorIs(t, err, domain.ErrRecipeNameExists)

			all, err := s.GetRecipes(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 7)
		})
	}
}

func TestRecipeServiceUpdate(t *testing.T) {
	for store, newService := range stores() {
		t.Run(store, func(t *testing.T) {
			ctx := context.Background()
			s := newService(t)

			updated, err := s.UpdateRecipe(ctx, 1, newRequest("BOLO DE CHOCOLATE"))
			require.NoError(t, err)
			assert.Equal(t, uint(1), updated.ID)
			assert.Equal(t, "BOLO DE CHOCOLATE", updated.Name)

			got, err := s.GetRecipeByID(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, []string{"mandioca", "manteiga", "sal"}, got.Ingredients)

			_, err = s.UpdateRecipe(ctx, 1, newRequest("Brigadeiro"))
			assert.ErrorIs(t, err, domain.ErrRecipeNameExists)

			_, err = s.UpdateRecipe(ctx, 99, newRequest("Qualquer"))
			assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
		})
	}
}

func TestRecipeServiceDelete(t *testing.T) {
	for store, newService := range stores() {
		t.Run(store, func(t *testing.T) {
			ctx := context.Background()
			s := newService(t)

			res, err := s.DeleteRecipe(ctx, 2)
			require.NoError(t, err)
			assert.Equal(t, "Receita 'Brigadeiro' (ID: 2) foi deletada com sucesso.", res.Message)

			_, err = s.GetRecipeByID(ctx, 2)
			assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

			_, err = s.DeleteRecipe(ctx, 2)
			assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

			for _, id := range []uint{1, 3, 4, 5, 6} {
				_, err := s.DeleteRecipe(ctx, id)
				require.NoError(t, err)
			}

			_, err = s.DeleteRecipe(ctx, 1)
			assert.ErrorIs(t, err, domain.ErrNoRecipes)

			all, err := s.GetRecipes(ctx)
			require.NoError(t, err)
			assert.NotNil(t, all)
			assert.Empty(t, all)
		})
	}
}

func TestRecipeServiceLookupByName(t *testing.T) {
	for store, newService := range stores() {
		t.Run(store, func(t *testing.T) {
			ctx := context.Background()
			s := newService(t)

			got, err := s.GetRecipeByName(ctx, "pão de queijo")
			require.NoError(t, err)
			assert.Equal(t, "Pão de Queijo", got.Name)

			_, err = s.GetRecipeByName(ctx, "Lasanha")
			assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
		})
	}
}

func TestRecipeServiceSearch(t *testing.T) {
	for store, newService := range stores() {
		t.Run(store, func(t *testing.T) {
			ctx := context.Background()
			s := newService(t)

			found, err := s.SearchRecipes(ctx, "brig")
			require.NoError(t, err)
			require.NotEmpty(t, found)
			assert.Equal(t, "Brigadeiro", found[0].Name)

			found, err = s.SearchRecipes(ctx, "xyzw")
			require.NoError(t, err)
			assert.Empty(t, found)

			_, err = s.SearchRecipes(ctx, "   ")
			assert.ErrorIs(t, err, domain.ErrEmptySearchQuery)
		})
	}
}
