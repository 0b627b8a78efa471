package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	BaseURL       string
	RequestOrigin string
	UploadDir     string
	CookieDomain  string
	SecureCookies bool
	AutoMigrate   bool
}

// Load reads the environment (optionally seeded from a .env file) into a
// Config, filling in development defaults for anything unset.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("error load env %s", err)
	}

	cfg := Config{
		Port:          getenv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RequestOrigin: getenv("REQUEST_ORIGIN", "http://localhost:5173"),
		UploadDir:     getenv("UPLOAD_DIR", "public/profile-pics"),
		CookieDomain:  os.Getenv("COOKIE_DOMAIN"),
		SecureCookies: os.Getenv("COOKIE_SECURE") != "false",
		AutoMigrate:   os.Getenv("AUTO_MIGRATE") == "true",
	}
	cfg.BaseURL = getenv("BASE_URL", "http://localhost:"+cfg.Port)
	return cfg
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
