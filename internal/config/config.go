package config

import (
	"os"
	"strconv"
)

type Config struct {
	APIPort  string
	LogLevel string

	StoragePath string

	LanguageURL            string
	LanguageEnabled        bool
	LanguageTimeoutSeconds int

	TopEntities int
	TopWords    int

	MaxUploadBytes int64

	APIRateLimitRPS   int
	APIRateLimitBurst int
}

func Load() Config {
	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		StoragePath: mustEnv("STORAGE_PATH", "./local_storage"),

		LanguageURL:            mustEnv("LANGUAGE_URL", "http://localhost:8090"),
		LanguageEnabled:        mustEnvBool("LANGUAGE_ENABLED", true),
		LanguageTimeoutSeconds: mustEnvInt("LANGUAGE_TIMEOUT_SECONDS", 60),

		TopEntities: mustEnvInt("TOP_ENTITIES", 5),
		TopWords:    mustEnvInt("TOP_WORDS", 10),

		MaxUploadBytes: int64(mustEnvInt("MAX_UPLOAD_BYTES", 32<<20)),

		APIRateLimitRPS:   mustEnvInt("API_RATE_LIMIT_RPS", 0),
		APIRateLimitBurst: mustEnvInt("API_RATE_LIMIT_BURST", 0),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
