package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Site identity.
	SiteURL        string `mapstructure:"SITE_URL"`
	ClinicName     string `mapstructure:"CLINIC_NAME"`
	WhatsAppNumber string `mapstructure:"WHATSAPP_NUMBER"`
	ContentDir     string `mapstructure:"CONTENT_DIR"`

	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Booking endpoint rate limiting.
	BookingRateLimit  int           `mapstructure:"BOOKING_RATE_LIMIT"`
	BookingRateWindow time.Duration `mapstructure:"BOOKING_RATE_WINDOW"`
	RateLimitStore    string        `mapstructure:"RATE_LIMIT_STORE"`

	// Page throttling.
	PageRatePerMin int `mapstructure:"PAGE_RATE_PER_MIN"`
	PageRateBurst  int `mapstructure:"PAGE_RATE_BURST"`

	JanitorSchedule string `mapstructure:"JANITOR_SCHEDULE"`
	MetricsEnabled  bool   `mapstructure:"METRICS_ENABLED"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisRateLimitDB int    `mapstructure:"REDIS_RATE_LIMIT_DB"`

	// Media delivery.
	CloudinaryURL    string `mapstructure:"CLOUDINARY_URL"`
	CloudinaryFolder string `mapstructure:"CLOUDINARY_FOLDER"`

	// Staff alerts.
	TwilioAccountSID  string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber  string `mapstructure:"TWILIO_FROM_NUMBER"`
	TwilioStaffNumber string `mapstructure:"TWILIO_STAFF_NUMBER"`

	SendGridAPIKey     string `mapstructure:"SENDGRID_API_KEY"`
	SendGridFromEmail  string `mapstructure:"SENDGRID_FROM_EMAIL"`
	SendGridFromName   string `mapstructure:"SENDGRID_FROM_NAME"`
	SendGridStaffEmail string `mapstructure:"SENDGRID_STAFF_EMAIL"`
}

var AppConfig Config

// SetDefaults registers every known key so AutomaticEnv values reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SITE_URL", "https://bestdental.co.ke")
	v.SetDefault("CLINIC_NAME", "Best Dental")
	v.SetDefault("WHATSAPP_NUMBER", "254724124735")
	v.SetDefault("CONTENT_DIR", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("BOOKING_RATE_LIMIT", 10)
	v.SetDefault("BOOKING_RATE_WINDOW", time.Minute)
	v.SetDefault("RATE_LIMIT_STORE", "memory")
	v.SetDefault("PAGE_RATE_PER_MIN", 200)
	v.SetDefault("PAGE_RATE_BURST", 200)
	v.SetDefault("JANITOR_SCHEDULE", "@every 5m")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_RATE_LIMIT_DB", 0)
	v.SetDefault("CLOUDINARY_URL", "")
	v.SetDefault("CLOUDINARY_FOLDER", "bestdental")
	v.SetDefault("TWILIO_ACCOUNT_SID", "")
	v.SetDefault("TWILIO_AUTH_TOKEN", "")
	v.SetDefault("TWILIO_FROM_NUMBER", "")
	v.SetDefault("TWILIO_STAFF_NUMBER", "")
	v.SetDefault("SENDGRID_API_KEY", "")
	v.SetDefault("SENDGRID_FROM_EMAIL", "")
	v.SetDefault("SENDGRID_FROM_NAME", "Best Dental Website")
	v.SetDefault("SENDGRID_STAFF_EMAIL", "")
}

// Load unmarshals v into a Config and checks the values the server cannot run without.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config.Load: %w", err)
	}
	cfg.RateLimitStore = strings.ToLower(strings.TrimSpace(cfg.RateLimitStore))
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")

	if cfg.BookingRateLimit <= 0 {
		return cfg, fmt.Errorf("config.Load: BOOKING_RATE_LIMIT must be positive, got %d", cfg.BookingRateLimit)
	}
	if cfg.BookingRateWindow <= 0 {
		return cfg, fmt.Errorf("config.Load: BOOKING_RATE_WINDOW must be positive, got %s", cfg.BookingRateWindow)
	}
	switch cfg.RateLimitStore {
	case "memory", "redis":
	default:
		return cfg, fmt.Errorf("config.Load: unknown RATE_LIMIT_STORE %q", cfg.RateLimitStore)
	}
	if cfg.WhatsAppNumber == "" {
		return cfg, fmt.Errorf("config.Load: WHATSAPP_NUMBER is required")
	}
	return cfg, nil
}

// LoadConfig reads .env, config.yaml and the environment into AppConfig.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, skipping")
	}

	v := viper.GetViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	cfg, err := Load(v)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
	return cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
