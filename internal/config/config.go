package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	// SessionTTL is the session lifetime in hours.
	SessionTTL int

	TemplateGlob string
	StaticDir    string

	// AllowedOrigins enables the CSRF origin check on form posts
	// when non-empty.
	AllowedOrigins []string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		AppPort: getenv("APP_PORT", "8080"),

		// clientFoundRows makes UPDATE report matched rows instead of
		// changed rows, so an ownership-scoped update of unchanged
		// content is not mistaken for a denial.
		DatabaseDSN: getenv("DATABASE_DSN", "root@tcp(localhost:3306)/erasmusblog?parseTime=true&clientFoundRows=true"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SessionTTL: getenvInt("SESSION_TTL_HOURS", 24),

		TemplateGlob: getenv("TEMPLATE_GLOB", "./ui/html/*.html"),
		StaticDir:    getenv("STATIC_DIR", "./ui/static"),
	}

	if origin := os.Getenv("ALLOWED_ORIGIN"); origin != "" {
		cfg.AllowedOrigins = []string{origin}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
