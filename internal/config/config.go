package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Provider credentials. Все опциональны: несконфигурированный
	// провайдер просто пропускается в fallback-цепочке.
	ACLEDEmail       string `env:"ACLED_EMAIL"`
	ACLEDAPIKey      string `env:"ACLED_API_KEY"`
	MediaStackAPIKey string `env:"MEDIASTACK_API_KEY"`

	UserAgent string `env:"APP_USER_AGENT" envDefault:"TourOpsSecurityIntel/1.0"`

	// Network timeouts per provider class
	ACLEDTimeout      time.Duration `env:"ACLED_TIMEOUT" envDefault:"30s"`
	GDELTTimeout      time.Duration `env:"GDELT_TIMEOUT" envDefault:"30s"`
	MediaStackTimeout time.Duration `env:"MEDIASTACK_TIMEOUT" envDefault:"30s"`
	RSSTimeout        time.Duration `env:"RSS_TIMEOUT" envDefault:"20s"`
	OfficialTimeout   time.Duration `env:"OFFICIAL_TIMEOUT" envDefault:"15s"`
	GeocodeTimeout    time.Duration `env:"GEOCODE_TIMEOUT" envDefault:"10s"`

	// Cache TTL: первичный структурированный источник живет дольше новостного
	PrimaryCacheTTL time.Duration `env:"PRIMARY_CACHE_TTL" envDefault:"12h"`
	NewsCacheTTL    time.Duration `env:"NEWS_CACHE_TTL" envDefault:"6h"`

	// Lookback windows
	IncidentDays int `env:"INCIDENT_DAYS" envDefault:"30"`
	DemoDays     int `env:"DEMO_DAYS" envDefault:"14"`

	// Webhook Config (алерты по High-риску)
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"2s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// ACLEDConfigured проверяет, заданы ли креденшелы первичного провайдера
func (c *Config) ACLEDConfigured() bool {
	return c.ACLEDEmail != "" && c.ACLEDAPIKey != ""
}

// MediaStackConfigured проверяет, задан ли ключ платного новостного провайдера
func (c *Config) MediaStackConfigured() bool {
	return c.MediaStackAPIKey != ""
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		ACLEDEmail:        strings.TrimSpace(os.Getenv("ACLED_EMAIL")),
		ACLEDAPIKey:       strings.TrimSpace(os.Getenv("ACLED_API_KEY")),
		MediaStackAPIKey:  strings.TrimSpace(os.Getenv("MEDIASTACK_API_KEY")),
		UserAgent:         getEnv("APP_USER_AGENT", "TourOpsSecurityIntel/1.0"),
		ACLEDTimeout:      getEnvAsDuration("ACLED_TIMEOUT", 30*time.Second),
		GDELTTimeout:      getEnvAsDuration("GDELT_TIMEOUT", 30*time.Second),
		MediaStackTimeout: getEnvAsDuration("MEDIASTACK_TIMEOUT", 30*time.Second),
		RSSTimeout:        getEnvAsDuration("RSS_TIMEOUT", 20*time.Second),
		OfficialTimeout:   getEnvAsDuration("OFFICIAL_TIMEOUT", 15*time.Second),
		GeocodeTimeout:    getEnvAsDuration("GEOCODE_TIMEOUT", 10*time.Second),
		PrimaryCacheTTL:   getEnvAsDuration("PRIMARY_CACHE_TTL", 12*time.Hour),
		NewsCacheTTL:      getEnvAsDuration("NEWS_CACHE_TTL", 6*time.Hour),
		IncidentDays:      getEnvAsInt("INCIDENT_DAYS", 30),
		DemoDays:          getEnvAsInt("DEMO_DAYS", 14),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", 2*time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
