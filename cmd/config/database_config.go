package config

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"Go-Receitas-API/internal/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB opens the database selected by DB_DRIVER ("postgres" or "sqlite").
func ConnectDB() (*gorm.DB, error) {
	dialector, err := dialectorFromConfig()
	if err != nil {
		return nil, err
	}
	return OpenDB(dialector)
}

// OpenDB opens dialector with the settings every connection shares.
// Duplicate-key errors are translated to gorm.ErrDuplicatedKey.
func OpenDB(dialector gorm.Dialector) (*gorm.DB, error) {
	return openDB(dialector, os.Stdout)
}

func openDB(dialector gorm.Dialector, logOutput io.Writer) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(logOutput),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}

// newGormLogger reports slow queries and errors. Lookups that find nothing
// are answered with domain errors and stay out of the log.
func newGormLogger(w io.Writer) logger.Interface {
	return logger.New(stdlog.New(w, "\r\n", stdlog.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  w == os.Stdout,
	})
}

func dialectorFromConfig() (gorm.Dialector, error) {
	switch driver := utils.GetConfig("DB_DRIVER"); driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
			utils.GetConfig("TIME_ZONE"),
		)
		return postgres.Open(dsn), nil
	case "sqlite":
		path := utils.GetConfig("DB_PATH")
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}
