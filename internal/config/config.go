package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	MongoURI   string
	MongoDB    string
	RedisAddr  string
	RedisPass  string
	SessionTTL time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:    getEnv("MONGO_DB", "movie_watchlist"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:  getEnv("REDIS_PASSWORD", ""),
		SessionTTL: time.Duration(getInt("SESSION_TTL_HOURS", 24*7)) * time.Hour,
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		slog.Debug("config key not set, using default", "key", key)
		return def
	}
	return v
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("config key is not a positive integer, using default", "key", key, "value", v)
		return def
	}
	return n
}
