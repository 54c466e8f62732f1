package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	MongoURI   string
	MongoDB    string

	// StoreDriver selects the event repository backend: "mongo" or "memory".
	StoreDriver string

	// AllowWipe gates DELETE /api/events (collection wipe). Intended for
	// development/reset use; disable in anything resembling production.
	AllowWipe bool
}

func Load() *Config {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	return &Config{
		ServerPort:  getEnv("PORT", "3000"),
		MongoURI:    getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGODB_DB", "calendar_clone"),
		StoreDriver: getEnv("STORE_DRIVER", "mongo"),
		AllowWipe:   getBoolEnv("ALLOW_WIPE", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
