package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration

	// AdminPasswordHash is the PHC-encoded argon2id hash checked on login,
	// produced with `passforge hash`. Empty disables admin logins.
	AdminPasswordHash string

	// WordlistPath and WordlistURL override the embedded default wordlist.
	// The file path wins when both are set.
	WordlistPath string
	WordlistURL  string
}

func Load() Config {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		DatabaseDSN:       getEnv("DATABASE_DSN", ""),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry:         24 * time.Hour,
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		WordlistPath:      getEnv("WORDLIST_PATH", ""),
		WordlistURL:       getEnv("WORDLIST_URL", ""),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
