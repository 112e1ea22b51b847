package migration

import (
	"context"
	"fmt"

	"Go-Receitas-API/entities"
	"Go-Receitas-API/pkg/recipe"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		return fmt.Errorf("error migrating recipe table: %w", err)
	}
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		return fmt.Errorf("error migrating user table: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}

// SeedRecipes inserts the default catalogue when the recipe table is empty
// and reports how many rows it wrote.
func SeedRecipes(ctx context.Context, db *gorm.DB) (int, error) {
	repo := recipe.NewRecipeRepository(db)

	count, err := repo.CountRecipes(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	seeded := 0
	for _, r := range recipe.DefaultRecipes() {
		r.ID = 0 // ids come from the table sequence
		if err := repo.CreateRecipe(ctx, &r); err != nil {
			return seeded, fmt.Errorf("seed recipe %q: %w", r.Name, err)
		}
		seeded++
	}

	log.Infow("recipes seeded", "count", seeded)
	return seeded, nil
}
