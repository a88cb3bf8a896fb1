package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	Approval ApprovalConfig
	Osm      OsmConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// ApprovalConfig holds the review approval configuration
type ApprovalConfig struct {
	// MinCount is the number of approvals a review needs to be approved.
	// It has no default: a missing value is a deployment error.
	MinCount int
}

// OsmConfig holds the OpenStreetMap API configuration
type OsmConfig struct {
	BaseURL string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	approval, err := loadApprovalConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Database: loadDatabaseConfig(appMode),
		Approval: approval,
		Osm: OsmConfig{
			BaseURL: getEnv("OSM_API_BASE_URL", ""),
		},
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "campuscoffee"),
	}
}

// loadApprovalConfig loads the approval quorum. APPROVAL_MIN_COUNT must be set
// to a positive integer; there is no sensible default.
func loadApprovalConfig() (ApprovalConfig, error) {
	raw := os.Getenv("APPROVAL_MIN_COUNT")
	if raw == "" {
		return ApprovalConfig{}, fmt.Errorf("APPROVAL_MIN_COUNT is not set")
	}
	minCount, err := strconv.Atoi(raw)
	if err != nil || minCount < 1 {
		return ApprovalConfig{}, fmt.Errorf("invalid APPROVAL_MIN_COUNT: '%s' (must be a positive integer)", raw)
	}
	return ApprovalConfig{MinCount: minCount}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" && c.IsDev() {
		return "*"
	}
	return origins
}
