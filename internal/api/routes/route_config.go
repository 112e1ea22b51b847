package routes

import (
	"Go-Receitas-API/internal/api/handlers"
	"Go-Receitas-API/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App           *fiber.App
	RootHandler   handlers.RootHandler
	RecipeHandler handlers.RecipeHandler
	UserHandler   handlers.UserHandler
	Middleware    middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.RequestIDMiddleware())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.MetricsMiddleware())
	c.GuestRoute()
	c.Recipes()
	c.Users()
}

func (c *Config) GuestRoute() {
	c.App.Get("/", c.RootHandler.Hello)
	c.App.Get("/alunos/:nome", c.RootHandler.GetStudent)
	c.App.Get("/api/ping", c.RootHandler.Ping)
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/receitas")

	// static segments first, ":id" would swallow them
	recipes.Get("/busca", c.RecipeHandler.SearchRecipes)
	recipes.Get("/nome/:nome", c.RecipeHandler.GetRecipeByName)

	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeByID)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Users() {
	users := c.App.Group("/usuarios")

	users.Get("", c.UserHandler.GetUsers)
	users.Post("", c.UserHandler.CreateUser)
	users.Get("/:id", c.UserHandler.GetUserByID)
	users.Put("/:id", c.UserHandler.UpdateUser)
	users.Delete("/:id", c.UserHandler.DeleteUser)
}
