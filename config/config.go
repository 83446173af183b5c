package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Settings holds every environment-sourced knob. The defaults are for local
// development only and must not ship to production.
type Settings struct {
	Port         string
	AllowOrigins string

	SecretKey          string
	TokenExpireMinutes int

	ScrapeBaseURL  string
	ScrapeMode     string // session | legacy
	ScrapeUsername string
	ScrapePassword string

	WhatsAppBaseURL string
	WhatsAppAPIKey  string
	WhatsAppPhone   string
}

func Load() Settings {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment only")
	}

	return Settings{
		Port:         getEnv("PORT", "8000"),
		AllowOrigins: os.Getenv("ALLOW_ORIGINS"),

		SecretKey:          getEnv("SECRET_KEY", "your-secret-key-here"),
		TokenExpireMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60*24*7),

		ScrapeBaseURL:  getEnv("BELCORP_BASE_URL", "https://www.somosbelcorp.com"),
		ScrapeMode:     getEnv("SCRAPE_MODE", "session"),
		ScrapeUsername: os.Getenv("BELCORP_USERNAME"),
		ScrapePassword: os.Getenv("BELCORP_PASSWORD"),

		WhatsAppBaseURL: getEnv("WHATSAPP_BASE_URL", "https://graph.facebook.com/v17.0"),
		WhatsAppAPIKey:  os.Getenv("WHATSAPP_API_KEY"),
		WhatsAppPhone:   os.Getenv("WHATSAPP_PHONE_NUMBER"),
	}
}

// LegacyMode reports whether product listing should scrape the public brand
// storefronts instead of the authenticated catalog.
func (s Settings) LegacyMode() bool {
	return s.ScrapeMode == "legacy"
}

func (s Settings) TokenExpiry() time.Duration {
	return time.Duration(s.TokenExpireMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.WithField("key", key).Warn("invalid integer in environment, using default")
		return fallback
	}
	return n
}
