package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr          = ":8080"
	defaultDatabaseURL       = "gestidogs.db"
	defaultJWTSecret         = "change-me-jwt-secret"
	defaultJWTAccessTTL      = "24h"
	defaultBcryptCost        = 10
	defaultRedisAddr         = "localhost:6379"
	defaultRateLimitCapacity = 60
	defaultRateLimitInterval = "1s"
	defaultRateLimitTTL      = "10m"
	defaultEventsExchange    = "gestidogs.events"
	defaultMetricsPath       = "/metrics"
	defaultPaymentBaseURL    = "https://auth.robokassa.kz/Merchant/Index.aspx"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string

	JWTSecret    string
	JWTAccessTTL time.Duration
	BcryptCost   int

	// CORSAllowedOrigins extends the local front-end dev servers.
	CORSAllowedOrigins []string

	Redis     RedisConfig
	RateLimit RateLimitConfig
	Events    EventsConfig
	Metrics   MetricsConfig
	Payment   PaymentConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillInterval time.Duration
	TTL            time.Duration
	Prefix         string
}

type EventsConfig struct {
	AMQPURL  string
	Exchange string
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

type PaymentConfig struct {
	MerchantLogin string
	Password1     string
	Password2     string
	BaseURL       string
	IsTest        bool
}

// Load reads the process environment, after merging an optional .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	cfg := &Config{
		AppEnv:      strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", "dev"))),
		HTTPAddr:    strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr)),
		DatabaseURL: strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL)),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		Redis: RedisConfig{
			Addr:     strings.TrimSpace(getEnv("REDIS_ADDR", defaultRedisAddr)),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		RateLimit: RateLimitConfig{
			Enabled: parseBoolEnv("RATE_LIMIT_ENABLED", "false"),
			Prefix:  getEnv("RATE_LIMIT_PREFIX", "rl"),
		},
		Events: EventsConfig{
			AMQPURL:  strings.TrimSpace(os.Getenv("AMQP_URL")),
			Exchange: getEnv("AMQP_EXCHANGE", defaultEventsExchange),
		},
		Metrics: MetricsConfig{
			Enabled: parseBoolEnv("METRICS_ENABLED", "true"),
			Path:    getEnv("METRICS_PATH", defaultMetricsPath),
		},
		Payment: PaymentConfig{
			MerchantLogin: os.Getenv("PAYMENT_MERCHANT_LOGIN"),
			Password1:     os.Getenv("PAYMENT_PASSWORD1"),
			Password2:     os.Getenv("PAYMENT_PASSWORD2"),
			BaseURL:       getEnv("PAYMENT_BASE_URL", defaultPaymentBaseURL),
			IsTest:        parseBoolEnv("PAYMENT_IS_TEST", "true"),
		},
	}

	// CORS_ALLOWED_ORIGINS=https://app.gestidogs.fr,https://admin.gestidogs.fr
	cfg.CORSAllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))

	var err error
	if cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL); err != nil {
		return nil, err
	}
	if cfg.BcryptCost, err = parseIntEnv("BCRYPT_COST", defaultBcryptCost); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = parseIntEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Capacity, err = parseIntEnv("RATE_LIMIT_CAPACITY", defaultRateLimitCapacity); err != nil {
		return nil, err
	}
	if cfg.RateLimit.RefillInterval, err = parseDurationEnv("RATE_LIMIT_REFILL_INTERVAL", defaultRateLimitInterval); err != nil {
		return nil, err
	}
	if cfg.RateLimit.TTL, err = parseDurationEnv("RATE_LIMIT_TTL", defaultRateLimitTTL); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s addr=%s rate_limit=%t events=%t metrics=%t",
		cfg.AppEnv, cfg.HTTPAddr, cfg.RateLimit.Enabled, cfg.Events.AMQPURL != "", cfg.Metrics.Enabled)

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	if cfg.RateLimit.Capacity < 1 {
		return fmt.Errorf("RATE_LIMIT_CAPACITY must be >= 1")
	}
	if cfg.RateLimit.RefillInterval <= 0 {
		return fmt.Errorf("RATE_LIMIT_REFILL_INTERVAL must be > 0")
	}
	if minTTL := 5 * cfg.RateLimit.RefillInterval; cfg.RateLimit.TTL < minTTL {
		cfg.RateLimit.TTL = minTTL
	}
	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("METRICS_PATH must start with /")
	}

	if IsProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.Payment.IsTest {
			return fmt.Errorf("in prod/release PAYMENT_IS_TEST must be false")
		}
	}

	return nil
}

func IsProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
