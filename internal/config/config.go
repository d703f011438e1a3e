package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for our application
type Config struct {
	Port                 string
	Origin               string
	Environment          string
	JWTSecret            string
	JWTExpirationMinutes int
	Database             DatabaseConfig
	Clinic               ClinicConfig
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// ClinicConfig holds the business-hours policy the slot grid is built
// from. Break hours are a half-open interval excluded from the grid.
type ClinicConfig struct {
	OpenHour           int
	CloseHour          int
	BreakStartHour     int
	BreakEndHour       int
	GranularityMinutes int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load database configuration
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hospital"),
	}

	// Build DSN (Data Source Name) for MySQL connection
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	jwtExpMinutes, err := getEnvInt("JWT_EXPIRATION_MINUTES", 15)
	if err != nil {
		return nil, err
	}

	clinic, err := loadClinicConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:                 getEnv("PORT", "3001"),
		Origin:               getEnv("ORIGIN", "http://localhost:4200"),
		Environment:          getEnv("APP_ENV", "development"),
		JWTSecret:            getEnv("JWT_SECRET", "default_jwt_secret"),
		JWTExpirationMinutes: jwtExpMinutes,
		Database:             dbConfig,
		Clinic:               clinic,
	}, nil
}

func loadClinicConfig() (ClinicConfig, error) {
	var (
		clinic ClinicConfig
		err    error
	)
	if clinic.OpenHour, err = getEnvInt("CLINIC_OPEN_HOUR", 9); err != nil {
		return clinic, err
	}
	if clinic.CloseHour, err = getEnvInt("CLINIC_CLOSE_HOUR", 21); err != nil {
		return clinic, err
	}
	if clinic.BreakStartHour, err = getEnvInt("CLINIC_BREAK_START_HOUR", 13); err != nil {
		return clinic, err
	}
	if clinic.BreakEndHour, err = getEnvInt("CLINIC_BREAK_END_HOUR", 14); err != nil {
		return clinic, err
	}
	if clinic.GranularityMinutes, err = getEnvInt("SLOT_MINUTES", 15); err != nil {
		return clinic, err
	}
	if clinic.OpenHour >= clinic.CloseHour {
		return clinic, fmt.Errorf("CLINIC_OPEN_HOUR must be before CLINIC_CLOSE_HOUR")
	}
	if clinic.GranularityMinutes <= 0 {
		return clinic, fmt.Errorf("SLOT_MINUTES must be positive")
	}
	return clinic, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
