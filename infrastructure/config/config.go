package config

import (
	"fmt"
	"os"
	"strconv"

	"hai-backend/pkg/dates"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string
	GSI1IndexName string // list-by-type queries
	GSI2IndexName string // inverted parent lookups
	GSI3IndexName string // reservation-by-property-and-stay lookups

	// Lambda configuration
	IsLambda bool

	// Email ingestion
	EmailBucket   string
	EmailQueueURL string
	EmailGroupID  string

	// API behavior
	WireDateFormat         dates.Format
	ReservationNaturalKeys bool

	// Logging
	LogLevel string

	// Authentication
	JWTSecret string
	JWTIssuer string

	// Feature flags
	EnableTracing bool
	EnableCORS    bool
	EnableAuth    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "eu-west-1"),
		DynamoDBTable: getEnv("TABLE_NAME", "hai-pms"),
		GSI1IndexName: getEnv("GSI1_INDEX_NAME", "GSI1"),
		GSI2IndexName: getEnv("GSI2_INDEX_NAME", "GSI2"),
		GSI3IndexName: getEnv("GSI3_INDEX_NAME", "GSI3"),

		IsLambda: getEnvBool("IS_LAMBDA", os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""),

		EmailBucket:   getEnv("EMAIL_BUCKET", ""),
		EmailQueueURL: getEnv("EMAIL_QUEUE_URL", ""),
		EmailGroupID:  getEnv("EMAIL_GROUP_ID", "inbound-email"),

		WireDateFormat:         dates.Format(getEnv("WIRE_DATE_FORMAT", string(dates.FormatDdmmyyyy))),
		ReservationNaturalKeys: getEnvBool("RESERVATION_NATURAL_KEYS", false),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "hai-backend"),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableTracing: getEnvBool("ENABLE_TRACING", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
		EnableAuth:    getEnvBool("ENABLE_AUTH", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

// IndexNames returns the secondary index names in GSI order.
func (c *Config) IndexNames() []string {
	return []string{c.GSI1IndexName, c.GSI2IndexName, c.GSI3IndexName}
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	switch c.WireDateFormat {
	case dates.FormatDdmmyyyy, dates.FormatYyyymmdd:
	default:
		return fmt.Errorf("WIRE_DATE_FORMAT must be %q or %q, got %q",
			dates.FormatDdmmyyyy, dates.FormatYyyymmdd, c.WireDateFormat)
	}
	if c.IsProduction() {
		if c.DynamoDBTable == "" {
			return fmt.Errorf("TABLE_NAME is required")
		}
		if c.EnableAuth && c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when auth is enabled in production")
		}
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
