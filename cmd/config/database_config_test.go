package config

import (
	"bytes"
	"path/filepath"
	"testing"

	"Go-Receitas-API/entities"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormLoggerSkipsRecordNotFound(t *testing.T) {
	var out bytes.Buffer
	db, err := openDB(sqlite.Open(filepath.Join(t.TempDir(), "log.db")), &out)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	require.NoError(t, db.AutoMigrate(&entities.User{}))

	var user entities.User
	err = db.Where("email = ?", "ninguem@email.com").First(&user).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, out.String())

	err = db.Exec("SELECT * FROM tabela_inexistente").Error
	require.Error(t, err)
	assert.Contains(t, out.String(), "tabela_inexistente")
}

func TestDialectorFromConfig(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	_, err := dialectorFromConfig()
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")

	t.Setenv("DB_DRIVER", "sqlite")
	dir := filepath.Join(t.TempDir(), "nested")
	t.Setenv("DB_PATH", filepath.Join(dir, "receitas.db"))
	d, err := dialectorFromConfig()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())
	assert.DirExists(t, dir)
}
