package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port            string
	JWTSecret       string
	AllowedOrigins  []string
	SeedFile        string
	ProcessingDelay time.Duration
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8081"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		SeedFile:        getEnv("SEED_FILE", ""),
		ProcessingDelay: time.Duration(getEnvInt("PROCESSING_DELAY_MS", 1500)) * time.Millisecond,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
