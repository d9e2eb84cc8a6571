package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Embedded database configuration
	DBPath string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT configuration
	JWTSecret string

	// Generative AI configuration
	AIAPIKey         string
	AIAPIURL         string
	AITimeoutSeconds int

	// Static catalog files (optional; built-in fallback used when absent)
	RecipeCSVPath  string
	WorkoutCSVPath string

	// Optional S3 bucket for meal-log export uploads
	ExportBucket string
}

// LoadConfig creates a new Config instance from the process environment.
// A .env file in the working directory is loaded first when present.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Not an error: deployed environments set real variables.
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		ServerHost:     getEnv("SERVER_HOST", "0.0.0.0"),
		DBPath:         getEnv("DB_PATH", "healthtrack.db"),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AIAPIKey:       os.Getenv("AI_API_KEY"),
		AIAPIURL:       getEnv("AI_API_URL", "https://api.deepseek.com/v1/chat/completions"),
		RecipeCSVPath:  getEnv("RECIPE_CSV_PATH", "meals.csv"),
		WorkoutCSVPath: getEnv("WORKOUT_CSV_PATH", "workouts.csv"),
		ExportBucket:   os.Getenv("EXPORT_S3_BUCKET"),
	}

	cfg.RedisDB = 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	cfg.AITimeoutSeconds = 30
	if s := os.Getenv("AI_TIMEOUT_SECONDS"); s != "" {
		t, err := strconv.Atoi(s)
		if err != nil || t <= 0 {
			return nil, fmt.Errorf("invalid AI_TIMEOUT_SECONDS %q", s)
		}
		cfg.AITimeoutSeconds = t
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// RedisAddr returns the host:port address of the redis instance.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
