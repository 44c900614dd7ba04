package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	StorePath string

	NATSURL         string
	NATSConnTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	GeminiAPIKey   string
	GeminiModel    string
	ExtractTimeout time.Duration

	OTLPCollectorURL string
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		HTTPAddr:        getEnvString("HTTP_ADDR", ":8080"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		StorePath: getEnvString("STORE_PATH", "data/talentdesk.json"),

		NATSURL:         getEnvString("NATS_URL", ""),
		NATSConnTimeout: getEnvDuration("NATS_CONN_TIMEOUT", 10*time.Second),

		RedisAddr:     getEnvString("REDIS_ADDR", ""),
		RedisPassword: getEnvString("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		CacheTTL:      getEnvDuration("CACHE_TTL", 24*time.Hour),

		GeminiAPIKey:   getEnvString("GOOGLE_API_KEY", ""),
		GeminiModel:    getEnvString("GEMINI_MODEL", "gemini-2.5-flash"),
		ExtractTimeout: getEnvDuration("EXTRACT_TIMEOUT", 30*time.Second),

		OTLPCollectorURL: getEnvString("OTLP_COLLECTOR_URL", ""),
	}

	return config, nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
