package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"Go-Receitas-API/internal/api/handlers"
	"Go-Receitas-API/internal/api/routes"
	"Go-Receitas-API/internal/middleware"
	"Go-Receitas-API/internal/utils"
	"Go-Receitas-API/internal/utils/mailing"
	"Go-Receitas-API/pkg/recipe"
	"Go-Receitas-API/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

const (
	RecipeStoreMemory   = "memory"
	RecipeStoreDatabase = "database"
)

type AppOptions struct {
	// LogOutput receives the access log; nil opens LogFile.
	LogOutput    io.Writer
	LogFile      string
	TimeZone     string
	RateLimitMax int // 0 disables the limiter
	RecipeStore  string
	AppURL       string
	Mailer       mailing.Mailer
}

func LoadAppOptions() AppOptions {
	return AppOptions{
		LogFile:      utils.GetConfig("LOG_FILE"),
		TimeZone:     utils.GetConfig("TIME_ZONE"),
		RateLimitMax: utils.GetConfigInt("RATE_LIMIT_MAX", 10),
		RecipeStore:  utils.GetConfig("RECIPE_STORE"),
		AppURL:       utils.GetConfig("APP_URL"),
		Mailer:       mailing.NewMailer(mailing.LoadMailConfig()),
	}
}

func NewApp(db *gorm.DB, opts AppOptions) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:      "Receitas API",
		UnescapePath: true,
		ErrorHandler: middleware.ErrorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	output := opts.LogOutput
	if output == nil {
		file, err := openLogFile(opts.LogFile)
		if err != nil {
			return nil, err
		}
		output = file
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} ${path} | ${locals:requestid}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   opts.TimeZone,
		Output:     output,
	}))

	if opts.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        opts.RateLimitMax,
			Expiration: 1 * time.Second,
		}))
	}

	mailer := opts.Mailer
	if mailer == nil {
		mailer = mailing.NewMailer(mailing.MailConfig{})
	}

	// Repository
	recipeRepository, err := newRecipeRepository(db, opts.RecipeStore)
	if err != nil {
		return nil, err
	}
	userRepository := user.NewUserRepository(db)

	// Service
	recipeService := recipe.NewRecipeService(recipeRepository)
	userService := user.NewUserService(userRepository, mailer, opts.AppURL)

	// Handler
	rootHandler := handlers.NewRootHandler()
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	userHandler := handlers.NewUserHandler(userService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		RootHandler:   rootHandler,
		RecipeHandler: recipeHandler,
		UserHandler:   userHandler,
		Middleware:    middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

func newRecipeRepository(db *gorm.DB, store string) (recipe.RecipeRepository, error) {
	switch store {
	case "", RecipeStoreMemory:
		return recipe.NewMemoryRecipeRepository(recipe.DefaultRecipes()), nil
	case RecipeStoreDatabase:
		return recipe.NewRecipeRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported RECIPE_STORE %q", store)
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	return file, nil
}
