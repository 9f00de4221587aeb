package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port        string
	Env         string
	LogLevel    string
	DatabaseURL string

	// SendGrid email configuration. Notifications are disabled when the
	// API key is absent; destination and sender are both required at
	// send time.
	SendGridAPIKey  string
	NotifyToEmail   string
	NotifyFromEmail string
	NotifyFromName  string

	CORSAllowedOrigins []string

	SubmitRateLimit float64
	SubmitRateBurst int
}

// defaultAllowedOrigins covers the production marketing site, its www
// variant, and the local development origin.
var defaultAllowedOrigins = []string{
	"https://wavecrest.io",
	"https://www.wavecrest.io",
	"http://localhost:3000",
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "5001"),
		Env:         getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		SendGridAPIKey:  getEnv("SENDGRID_API_KEY", ""),
		NotifyToEmail:   getEnv("NOTIFY_TO_EMAIL", ""),
		NotifyFromEmail: getEnv("NOTIFY_FROM_EMAIL", ""),
		NotifyFromName:  getEnv("NOTIFY_FROM_NAME", "Lead Intake"),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),

		SubmitRateLimit: getEnvAsFloat("SUBMIT_RATE_LIMIT", 5),
		SubmitRateBurst: getEnvAsInt("SUBMIT_RATE_BURST", 10),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated environment variable, dropping
// empty entries.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
