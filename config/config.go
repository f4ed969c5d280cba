package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Drive    DriveConfig
	Contact  ContactConfig
	App      AppConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
	// TrustedProxies lists IPs/CIDRs allowed to set X-Forwarded-For; empty trusts none.
	TrustedProxies []string
}

type DatabaseConfig struct {
	// Driver selects the project store: "postgres" or "memory".
	Driver   string
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns DATABASE_URL when set, otherwise a URL assembled from the DB_* parts.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type RedisConfig struct {
	URL string
}

type DriveConfig struct {
	APIKey   string
	FolderID string
	// Schedule is a 6-field cron expression; empty disables scheduled sync.
	Schedule string
}

type ContactConfig struct {
	APIKey     string
	BaseURL    string
	From       string
	To         string
	RatePerMin int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
	MetricsAddr string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			CORSOrigins:    getEnvAsList("CORS_ORIGINS", []string{"*"}),
			TrustedProxies: getEnvAsList("TRUSTED_PROXIES", nil),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("STORE_DRIVER", "postgres"),
			URL:      getEnv("DATABASE_URL", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "portfolio"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
		Drive: DriveConfig{
			APIKey:   getEnv("GOOGLE_DRIVE_API_KEY", ""),
			FolderID: getEnv("GOOGLE_DRIVE_FOLDER_ID", ""),
			Schedule: getEnv("SYNC_SCHEDULE", ""),
		},
		Contact: ContactConfig{
			APIKey:     getEnv("RESEND_API_KEY", ""),
			BaseURL:    getEnv("RESEND_BASE_URL", "https://api.resend.com"),
			From:       getEnv("CONTACT_FROM", "Studio Website <onboarding@resend.dev>"),
			To:         getEnv("CONTACT_TO", "hello@example.com"),
			RatePerMin: getEnvAsInt("CONTACT_RATE_PER_MIN", 5),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			MetricsAddr: getEnv("METRICS_ADDR", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	for _, p := range c.Server.TrustedProxies {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return fmt.Errorf("TRUSTED_PROXIES: %q is not an IP or CIDR", p)
			}
		}
	}

	switch c.Database.Driver {
	case "postgres":
		if c.Database.URL == "" && c.Database.Host == "" {
			return fmt.Errorf("DATABASE_URL or DB_HOST is required")
		}
	case "memory":
	default:
		return fmt.Errorf("STORE_DRIVER must be postgres or memory, got %q", c.Database.Driver)
	}

	if c.Drive.Schedule != "" && (c.Drive.APIKey == "" || c.Drive.FolderID == "") {
		return fmt.Errorf("SYNC_SCHEDULE requires GOOGLE_DRIVE_API_KEY and GOOGLE_DRIVE_FOLDER_ID")
	}

	if c.Contact.RatePerMin < 0 {
		return fmt.Errorf("CONTACT_RATE_PER_MIN must not be negative")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Int("default", defaultValue).Msg("invalid integer, using default")
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	out := make([]string, 0, 4)
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
