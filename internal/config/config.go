package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the development placeholder. Running with it is allowed
// but logged loudly at startup.
const DefaultJWTSecret = "change-me-in-prod-please"

type Config struct {
	Port     string
	GinMode  string
	BaseURL  string
	LogLevel string
	Database DatabaseConfig
	JWT      JWTConfig
	Fees     FeeConfig
	Auth     AuthConfig
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
}

type FeeConfig struct {
	ServiceFeeBps int64
}

type AuthConfig struct {
	BcryptCost int
}

func Load() (*Config, error) {
	godotenv.Load()

	secret := getEnv("JWT_SECRET", DefaultJWTSecret)
	if len(secret) < 16 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 16 characters, got %d", len(secret))
	}

	feeBps, err := strconv.ParseInt(getEnv("SERVICE_FEE_BPS", "250"), 10, 64)
	if err != nil || feeBps < 0 || feeBps > 10000 {
		return nil, fmt.Errorf("invalid SERVICE_FEE_BPS: %q", os.Getenv("SERVICE_FEE_BPS"))
	}

	return &Config{
		Port:     getEnv("PORT", "3000"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		BaseURL:  getEnv("BASE_URL", "http://localhost:3000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		JWT: JWTConfig{
			Secret: secret,
		},
		Fees: FeeConfig{
			ServiceFeeBps: feeBps,
		},
		Auth: AuthConfig{
			BcryptCost: getEnvAsInt("BCRYPT_COST", 10),
		},
	}, nil
}

// UsingPlaceholderSecret reports whether the unsafe development secret is in use.
func (c *Config) UsingPlaceholderSecret() bool {
	return c.JWT.Secret == DefaultJWTSecret
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
