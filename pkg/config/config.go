package config

import (
	"os"

	"github.com/joho/godotenv"
)

// RedisConfiguration holds the Redis connection values.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// DatabaseConfiguration holds the Postgres connection values.
type DatabaseConfiguration struct {
	DSN string
}

// BucketConfiguration holds the S3 values used for the log upload.
type BucketConfiguration struct {
	Region       string
	Endpoint     string
	AccessKey    string
	AccessSecret string
	LogBucket    string
}

// RecapConfiguration holds the values for the recap backend collaborator.
type RecapConfiguration struct {
	BaseURL string
}

// Config is the full application configuration.
type Config struct {
	Redis    RedisConfiguration
	Database DatabaseConfiguration
	Bucket   BucketConfiguration
	Recap    RecapConfiguration
	Port     string
}

// Load reads the environment and returns the configuration.
// The .env file is optional, the environment may already be set.
func Load() (*Config, error) {
	if os.Getenv("ENVIRONMENT") != "docker" {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Redis: RedisConfiguration{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     os.Getenv("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Database: DatabaseConfiguration{
			DSN: os.Getenv("DATABASE_DSN"),
		},
		Bucket: BucketConfiguration{
			Region:       os.Getenv("BUCKET_REGION"),
			Endpoint:     os.Getenv("BUCKET_ENDPOINT"),
			AccessKey:    os.Getenv("BUCKET_ACCESS_KEY"),
			AccessSecret: os.Getenv("BUCKET_ACCESS_SECRET"),
			LogBucket:    os.Getenv("BUCKET_LOG_NAME"),
		},
		Recap: RecapConfiguration{
			BaseURL: os.Getenv("RECAP_BACKEND_URL"),
		},
		Port: getEnvOrDefault("PORT", "8080"),
	}

	return cfg, nil
}

// Return the environment value if set, else the default.
func getEnvOrDefault(key string, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
