package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	AppEnv string

	// Store selection: "postgres" (default when DB config present) or "memory"
	Store string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers string
	KafkaTopic   string

	RateLimitPerMinute int
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	rateLimit, _ := strconv.Atoi(os.Getenv("RATE_LIMIT_PER_MINUTE"))

	cfg := &Config{
		Port:   os.Getenv("PORT"),
		AppEnv: os.Getenv("APP_ENV"),

		Store: os.Getenv("STORE"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      os.Getenv("DB_PORT"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   os.Getenv("KAFKA_TOPIC"),

		RateLimitPerMinute: rateLimit,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = "event-notifications"
	}
	if cfg.RateLimitPerMinute <= 0 {
		cfg.RateLimitPerMinute = 100
	}

	return cfg
}

// UseMemoryStore reports whether the in-memory store should back the API.
// Explicit STORE=memory wins; otherwise it is implied by missing DB config.
func (c *Config) UseMemoryStore() bool {
	if c.Store == "memory" {
		return true
	}
	if c.Store == "postgres" {
		return false
	}
	return c.DatabaseURL == "" && c.DBHost == ""
}
