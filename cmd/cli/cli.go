package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"Go-Receitas-API/cmd/config"
	migration "Go-Receitas-API/cmd/database/migrate"
	"Go-Receitas-API/internal/utils"

	"github.com/gofiber/fiber/v2/log"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"
)

const name = "receitas"

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := NewCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: "HTTP API for recipes and users",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the YAML configuration file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error); overrides LOG_LEVEL",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := utils.LoadConfig(cmd.String("config")); err != nil {
				return ctx, fmt.Errorf("error loading config: %w", err)
			}
			level := cmd.String("log-level")
			if level == "" {
				level = utils.GetConfig("LOG_LEVEL")
			}
			log.SetLevel(ParseLevel(level))
			return ctx, nil
		},
		Commands: []*cli.Command{
			serveCmd(),
			migrateCmd(),
			seedCmd(),
		},
		DefaultCommand: "serve",
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP server",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			db, err := openAndMigrate()
			if err != nil {
				return err
			}

			opts := config.LoadAppOptions()
			if opts.RecipeStore == config.RecipeStoreDatabase {
				if _, err := migration.SeedRecipes(ctx, db); err != nil {
					return err
				}
			}

			app, err := config.NewApp(db, opts)
			if err != nil {
				return err
			}

			address := fmt.Sprintf("%s:%s", utils.GetConfig("APP_HOST"), utils.GetConfig("APP_PORT"))
			errCh := make(chan error, 1)
			go func() {
				log.Infow("starting server", "address", address, "recipe_store", opts.RecipeStore)
				errCh <- app.Listen(address)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := app.ShutdownWithContext(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown: %w", err)
			}
			return closeDB(db)
		},
	}
}

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update the database tables",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			db, err := openAndMigrate()
			if err != nil {
				return err
			}
			return closeDB(db)
		},
	}
}

func seedCmd() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Insert the default recipes into an empty recipe table",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			db, err := openAndMigrate()
			if err != nil {
				return err
			}
			n, err := migration.SeedRecipes(ctx, db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.Root().Writer, "%d recipes seeded\n", n)
			return closeDB(db)
		},
	}
}

func openAndMigrate() (*gorm.DB, error) {
	db, err := config.ConnectDB()
	if err != nil {
		return nil, err
	}
	if err := migration.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ParseLevel maps a level name to a fiber log level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
