package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port string

	StoreBackend string // "memory" (default) or "mongo"
	MongoURI     string
	MongoDB      string

	RedisAddr     string
	RedisPassword string

	OpenAIToken   string
	InsightTTLMin int

	BaseURL string // public URL used in deep links and QR payloads
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	port := getEnv("PORT", ":8080")
	if port[0] != ':' {
		port = ":" + port
	}

	return &Config{
		Port: port,

		StoreBackend: getEnv("STORE_BACKEND", "memory"),
		MongoURI:     getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGODB_DB", "staymate"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		OpenAIToken:   getEnv("OPENAI_API_KEY", ""),
		InsightTTLMin: getEnvInt("INSIGHT_TTL_MIN", 30),

		BaseURL: getEnv("BASE_URL", "http://localhost:8080"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
