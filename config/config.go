package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	SiteURL  string
	DBUrl    string
	// SMTP Configuration (Brevo)
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string // Verified sender email (different from SMTP login)
	ContactEmailTo string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitContactLimit    int
	RateLimitGlobalThreshold int
	// Contact submission policy
	ContactSubmitTimeout   time.Duration
	ContactRetryBackoff    time.Duration
	ContactSimulatedDelay  time.Duration
	ContactArchiveToDB     bool
	FlashSecret            string
	AllowedOrigins         []string
	SecurityServiceName    string
	SecurityLogEnvironment string
}

func LoadConfig() (*Config, error) {
	// Only effective locally; production injects the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		// Strip trailing slash so links never end up as https://site//contact
		SiteURL: strings.TrimRight(getEnv("SITE_URL", "http://localhost:8080"), "/"),
		DBUrl:   getEnv("DATABASE_URL", ""),
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", "noreply@roopetroleum.com.au"),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "melbourne@roopetroleum.com.au"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitContactLimit:    getEnvInt("RATE_LIMIT_CONTACT_LIMIT", 5),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 300),
		// Contact submission policy
		ContactSubmitTimeout:  getEnvDuration("CONTACT_SUBMIT_TIMEOUT", 10*time.Second),
		ContactRetryBackoff:   getEnvDuration("CONTACT_RETRY_BACKOFF", 500*time.Millisecond),
		ContactSimulatedDelay: getEnvDuration("CONTACT_SIMULATED_DELAY", time.Second),
		ContactArchiveToDB:    getEnvBool("CONTACT_ARCHIVE_TO_DB", true),
		FlashSecret:           getEnv("FLASH_SECRET", ""),
		AllowedOrigins:        getEnvList("ALLOWED_ORIGINS", []string{"https://roopetroleum.com.au", "https://www.roopetroleum.com.au"}),
		SecurityServiceName:   getEnv("SECURITY_SERVICE_NAME", "roo-petroleum-web"),
	}

	if cfg.GinMode == "release" {
		cfg.SecurityLogEnvironment = "production"
	} else {
		cfg.SecurityLogEnvironment = "development"
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Contact inquiries will not be archived.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether the server runs in gin release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// SMTPConfigured reports whether outbound notification email is possible
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUsername != "" && c.SMTPPassword != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration parses values like "10s" or "500ms"
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil && d >= 0 {
			return d
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty entries
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.TrimRight(p, "/"))
		}
	}
	return out
}
