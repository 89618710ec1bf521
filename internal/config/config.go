package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Database    DatabaseConfig
	Platform    PlatformConfig
}

type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

type PlatformConfig struct {
	FeePercent        float64 // platform cut of the gross amount
	TaxPercent        float64 // tax charged on the platform fee
	Currency          string
	PaymentProvider   string
	SupportDaysUsage  int
	SupportDaysSource int
}

func Load() (*Config, error) {
	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Database: DatabaseConfig{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("DB_LOG_LEVEL", "silent"),
		},
		Platform: PlatformConfig{
			FeePercent:        getEnvAsFloat("PLATFORM_FEE_PERCENT", 16.0),
			TaxPercent:        getEnvAsFloat("PLATFORM_TAX_PERCENT", 18.0),
			Currency:          getEnv("PLATFORM_CURRENCY", "INR"),
			PaymentProvider:   getEnv("PAYMENT_PROVIDER", "razorpay"),
			SupportDaysUsage:  getEnvAsInt("SUPPORT_DAYS_USAGE", 90),
			SupportDaysSource: getEnvAsInt("SUPPORT_DAYS_SOURCE", 180),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}
	return nil
}

// LoadEnvFile resolves and loads the first existing .env.local from the
// candidate locations, in order: alongside the binary's working directory,
// the repository root, then the web app. Missing everywhere is fatal for
// the operational tools, which need DATABASE_URL from one of them.
func LoadEnvFile() (string, error) {
	return loadEnvFrom(EnvFileCandidates())
}

func EnvFileCandidates() []string {
	return []string{
		".env.local",
		"../../.env.local",
		"../../apps/web/.env.local",
	}
}

func loadEnvFrom(candidates []string) (string, error) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return "", fmt.Errorf("failed to load %s: %w", path, err)
			}
			return path, nil
		}
	}
	return "", &ErrNoEnvFile{Checked: candidates}
}

// ErrNoEnvFile reports every location that was checked so the operator can
// see where to put the file.
type ErrNoEnvFile struct {
	Checked []string
}

func (e *ErrNoEnvFile) Error() string {
	msg := "no .env.local file found, checked:"
	for _, path := range e.Checked {
		msg += "\n  - " + path
	}
	return msg
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
