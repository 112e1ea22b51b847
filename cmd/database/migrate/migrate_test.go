package migration

import (
	"context"
	"path/filepath"
	"testing"

	"Go-Receitas-API/entities"
	"Go-Receitas-API/pkg/recipe"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "migrate.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestMigrateCreatesTables(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	assert.True(t, db.Migrator().HasTable(&entities.Recipe{}))
	assert.True(t, db.Migrator().HasTable(&entities.User{}))

	// running twice is harmless
	require.NoError(t, Migrate(db))
}

func TestSeedRecipesOnlyOnce(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	n, err := SeedRecipes(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, len(recipe.DefaultRecipes()), n)

	n, err = SeedRecipes(ctx, db)
	require.NoError(t, err)
	assert.Zero(t, n)

	var count int64
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&count).Error)
	assert.Equal(t, int64(len(recipe.DefaultRecipes())), count)

	var first entities.Recipe
	require.NoError(t, db.Order("id asc").First(&first).Error)
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, "Bolo de Chocolate", first.Name)
}
