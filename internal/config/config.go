package config

import (
	"os"
	"strconv"
)

type Config struct {
	Database DatabaseConfig
	Admin    AdminConfig
	Seed     SeedConfig
	LogDir   string
	QRSecret string
}

type DatabaseConfig struct {
	Path string
}

// AdminConfig holds the bootstrap administrator account. The defaults are
// well known; a deployment must rotate them.
type AdminConfig struct {
	Username string
	Password string
	Fullname string
}

type SeedConfig struct {
	SampleCruises bool
}

func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: getEnv("CRUISE_DB_PATH", "cruise.db"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
			Fullname: getEnv("ADMIN_FULLNAME", "Administrator"),
		},
		Seed: SeedConfig{
			SampleCruises: getEnvBool("SEED_SAMPLE_CRUISES", true),
		},
		LogDir:   getEnv("LOG_DIR", "logs"),
		QRSecret: getEnv("QR_SECRET_KEY", "cruisedesk-dev-secret"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
