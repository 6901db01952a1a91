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

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// DynamoDB configuration
	Dynamo DynamoConfig

	// Session configuration
	Session SessionConfig

	// Access policy configuration
	Policy PolicyConfig

	// CORS configuration
	CORS CORSConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DynamoConfig holds DynamoDB-related configuration
type DynamoConfig struct {
	Region          string
	Endpoint        string // optional, for DynamoDB Local
	AccessKeyID     string // optional, static credentials for local use
	SecretAccessKey string
	UserTable       string
	WishlistTable   string
	RequestTimeout  time.Duration
}

// SessionConfig holds session cookie configuration
type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
}

// PolicyConfig controls which browse-only routes require a session.
// The exhibition and quiz pages can be opened to anonymous visitors.
type PolicyConfig struct {
	ExhibitionRequireAuth bool
	QuizRequireAuth       bool
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file
	if err := godotenv.Load("../.env"); err != nil {
		// Try loading from current directory if not found in parent
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Warning: .env file not found: %v", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Dynamo: DynamoConfig{
			Region:          getEnv("AWS_REGION", "ap-south-1"),
			Endpoint:        getEnv("DYNAMO_ENDPOINT", ""),
			AccessKeyID:     getEnv("DYNAMO_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("DYNAMO_SECRET_ACCESS_KEY", ""),
			UserTable:       getEnv("DYNAMO_USER_TABLE", "UserTable"),
			WishlistTable:   getEnv("DYNAMO_WISHLIST_TABLE", "WishlistTable"),
			RequestTimeout:  getDurationEnv("DYNAMO_REQUEST_TIMEOUT", 10*time.Second),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
			TTL:        getDurationEnv("SESSION_TTL", 24*time.Hour),
			CookieName: getEnv("SESSION_COOKIE_NAME", "jv_session"),
		},
		Policy: PolicyConfig{
			ExhibitionRequireAuth: getBoolEnv("EXHIBITION_REQUIRE_AUTH", true),
			QuizRequireAuth:       getBoolEnv("QUIZ_REQUIRE_AUTH", true),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getStringSliceEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "OPTIONS"}),
			AllowedHeaders:   getStringSliceEnv("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getBoolEnv("CORS_ALLOW_CREDENTIALS", true),
		},
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Dynamo.UserTable == "" || c.Dynamo.WishlistTable == "" {
		return fmt.Errorf("DYNAMO_USER_TABLE and DYNAMO_WISHLIST_TABLE are required")
	}

	if c.Session.Secret == "your-secret-key-change-in-production" {
		log.Println("Warning: SESSION_SECRET not configured. Using default development secret.")
	}

	if c.Dynamo.Endpoint != "" {
		log.Printf("DynamoDB endpoint override active: %s", c.Dynamo.Endpoint)
	}

	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := []string{}
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}
