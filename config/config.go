package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Addr          string
	MongoURI      string
	MongoDatabase string
	JWTSecret     []byte
	AdminPhone    string
	AdminPassword string
}

// Load reads .env if present, then the environment, falling back to
// local-development defaults.
func Load() *Config {
	// .env is optional — in production everything comes from real env vars
	_ = godotenv.Load()

	return &Config{
		Addr:          ":" + getEnv("PORT", "8080"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DB", "zippida"),
		JWTSecret:     []byte(getEnv("JWT_SECRET", "zippida_super_secret_2024")),
		AdminPhone:    getEnv("ADMIN_PHONE", "+998901234567"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin_password_change_me"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
