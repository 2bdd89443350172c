// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseSSL   bool
}

type Config struct {
	Port     string
	Env      string
	LogLevel string

	DatabaseURL string
	RedisURL    string

	JWTSecret   string
	JWTTTL      time.Duration
	CORSOrigins []string

	AIProvider           string
	GeminiAPIKey         string
	GeminiModel          string
	GeminiEmbeddingModel string
	OpenAIAPIKey         string
	OpenAIModel          string
	OpenAIEmbeddingModel string
	AIRateLimitRPS       float64
	AIRateLimitBurst     int
	AuthRateLimitRPS     float64
	AuthRateLimitBurst   int

	GooglePlacesAPIKey  string
	PlacesBaseURL       string
	GoogleOAuthClientID string
	PhotoCacheSize      int
	PhotoCacheTTL       time.Duration

	GeocodingURL string
	ForecastURL  string

	MediaUploadURL    string
	MediaUploadPreset string
	MediaMaxBytes     int64

	SMTP       SMTPConfig
	AppName    string
	AppBaseURL string
}

// IsProduction reports whether APP_ENV is "production".
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads an optional .env file and then the process environment.
// It returns an error naming every required variable that is missing.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabaseURL: getEnv("DATABASE_URL", os.Getenv("POSTGRES_URL")),
		RedisURL:    os.Getenv("REDIS_URL"),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      getDuration("JWT_TTL", 60*time.Minute),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "*")),

		AIProvider:           strings.ToLower(getEnv("AI_PROVIDER", "gemini")),
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		GeminiModel:          getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiEmbeddingModel: getEnv("GEMINI_EMBEDDING_MODEL", "text-embedding-004"),
		OpenAIAPIKey:         os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:          getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIEmbeddingModel: getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
		AIRateLimitRPS:       getFloat("AI_RATE_LIMIT_RPS", 1),
		AIRateLimitBurst:     getInt("AI_RATE_LIMIT_BURST", 3),
		AuthRateLimitRPS:     getFloat("AUTH_RATE_LIMIT_RPS", 0.2),
		AuthRateLimitBurst:   getInt("AUTH_RATE_LIMIT_BURST", 5),

		GooglePlacesAPIKey:  os.Getenv("GOOGLE_PLACES_API_KEY"),
		PlacesBaseURL:       getEnv("PLACES_BASE_URL", "https://places.googleapis.com/v1"),
		GoogleOAuthClientID: os.Getenv("GOOGLE_OAUTH_CLIENT_ID"),
		PhotoCacheSize:      getInt("PHOTO_CACHE_SIZE", 512),
		PhotoCacheTTL:       getDuration("PHOTO_CACHE_TTL", 24*time.Hour),

		GeocodingURL: getEnv("GEOCODING_URL", "https://geocoding-api.open-meteo.com/v1/search"),
		ForecastURL:  getEnv("FORECAST_URL", "https://api.open-meteo.com/v1/forecast"),

		MediaUploadURL:    os.Getenv("MEDIA_UPLOAD_URL"),
		MediaUploadPreset: os.Getenv("MEDIA_UPLOAD_PRESET"),
		MediaMaxBytes:     int64(getInt("MEDIA_MAX_BYTES", 10<<20)),

		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnv("SMTP_FROM", os.Getenv("SMTP_USERNAME")),
			FromName: getEnv("SMTP_FROM_NAME", "New Life"),
			UseSSL:   getBool("SMTP_USE_SSL", false),
		},
		AppName:    getEnv("APP_NAME", "New Life"),
		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:3000"),
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	switch cfg.AIProvider {
	case "gemini", "openai":
	default:
		return Config{}, fmt.Errorf("unsupported AI_PROVIDER %q: use 'gemini' or 'openai'", cfg.AIProvider)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
