package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                   string
	DBUrl                  string
	JWTSecret              string
	JWTTTL                 time.Duration
	AppEnv                 string
	CORSAllowOrigins       string
	SentryDSN              string
	SeedDefaultAccounts    bool
	DefaultAdminPassword   string
	DefaultTrainerPassword string
	DefaultUserPassword    string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret, exists := os.LookupEnv("JWT_SECRET")
	if !exists || jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		Port:                   getEnv("PORT", "8080"),
		DBUrl:                  getEnv("DB_URL", ""),
		JWTSecret:              jwtSecret,
		JWTTTL:                 time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		AppEnv:                 normalizeEnv(getEnv("APP_ENV", "production")),
		CORSAllowOrigins:       getEnv("CORS_ALLOW_ORIGINS", "*"),
		SentryDSN:              getEnv("SENTRY_DSN", ""),
		SeedDefaultAccounts:    getEnvBool("SEED_DEFAULT_ACCOUNTS", false),
		DefaultAdminPassword:   getEnv("DEFAULT_ADMIN_PASSWORD", ""),
		DefaultTrainerPassword: getEnv("DEFAULT_TRAINER_PASSWORD", ""),
		DefaultUserPassword:    getEnv("DEFAULT_USER_PASSWORD", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func (c *Config) IsDevelopment() bool {
	return c != nil && c.AppEnv == "development"
}

// SeedPasswords returns the configured password for each default account.
// Roles without a password are skipped by the seeder.
func (c *Config) SeedPasswords() map[string]string {
	return map[string]string{
		"ADMIN":   c.DefaultAdminPassword,
		"TRAINER": c.DefaultTrainerPassword,
		"USER":    c.DefaultUserPassword,
	}
}
