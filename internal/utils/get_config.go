package utils

import (
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppHost      string `yaml:"APP_HOST"`
	AppPort      string `yaml:"APP_PORT"`
	AppURL       string `yaml:"APP_URL"`
	RateLimitMax string `yaml:"RATE_LIMIT_MAX"`

	// Logging configuration
	LogFile  string `yaml:"LOG_FILE"`
	LogLevel string `yaml:"LOG_LEVEL"`
	TimeZone string `yaml:"TIME_ZONE"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBPath     string `yaml:"DB_PATH"`

	// Recipes are kept in memory or in the database
	RecipeStore string `yaml:"RECIPE_STORE"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
}

var config Config

var defaults = map[string]string{
	"APP_PORT":       "8000",
	"RATE_LIMIT_MAX": "10",
	"LOG_FILE":       "./logs/app.log",
	"LOG_LEVEL":      "info",
	"TIME_ZONE":      "America/Sao_Paulo",
	"DB_DRIVER":      "sqlite",
	"DB_PATH":        "./data/receitas.db",
	"RECIPE_STORE":   "memory",
}

// LoadConfig reads the YAML file at path. A missing file is not an error:
// every key can also come from the environment.
func LoadConfig(path string) error {
	config = Config{}

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warnw("config file not found, using environment", "path", path)
			return nil
		}
		return err
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return err
	}
	return nil
}

// GetConfig returns the value for key from the loaded file, then the
// environment, then the built-in default.
func GetConfig(key string) string {
	if v := fromFile(key); v != "" {
		return v
	}
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaults[key]
}

// GetConfigInt is GetConfig for numeric keys; fallback is returned when the
// value does not parse.
func GetConfigInt(key string, fallback int) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return fallback
	}
	return n
}

func fromFile(key string) string {
	switch key {
	case "APP_HOST":
		return config.AppHost
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "RATE_LIMIT_MAX":
		return config.RateLimitMax
	case "LOG_FILE":
		return config.LogFile
	case "LOG_LEVEL":
		return config.LogLevel
	case "TIME_ZONE":
		return config.TimeZone
	case "DB_DRIVER":
		return config.DBDriver
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_PATH":
		return config.DBPath
	case "RECIPE_STORE":
		return config.RecipeStore
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	default:
		return ""
	}
}
