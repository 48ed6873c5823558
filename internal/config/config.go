package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Значения по умолчанию
const (
	defaultEnvironment  = "development"
	defaultHTTPAddr     = ":8080"
	defaultAPITimeout   = 10 * time.Second
	defaultReminderLead = 2 * time.Hour
	defaultSessionIdle  = 30 * time.Minute
	defaultTimezone     = "UTC"
)

type Config struct {
	TelegramToken string
	DBDSN         string
	Environment   string
	LogLevel      string // пусто - уровень по умолчанию для окружения

	APIBaseURL string        // базовый URL сервиса бронирований, например https://host/api
	APITimeout time.Duration // таймаут одного запроса к сервису

	HTTPAddr     string         // адрес health-сервера
	ReminderLead time.Duration  // за сколько до начала брони напоминать
	SessionIdle  time.Duration  // через сколько простоя сбрасывать выбор слотов
	Location     *time.Location // часовой пояс ресторана
}

// Load читает конфигурацию из .env и переменных окружения
func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DBDSN:         os.Getenv("DB_DSN"),
		Environment:   os.Getenv("ENV"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		HTTPAddr:      os.Getenv("HTTP_ADDR"),
	}

	if cfg.Environment == "" {
		cfg.Environment = defaultEnvironment
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = defaultHTTPAddr
	}

	var err error
	if cfg.APITimeout, err = durationEnv("API_TIMEOUT", defaultAPITimeout); err != nil {
		return nil, err
	}
	if cfg.ReminderLead, err = durationEnv("REMINDER_LEAD", defaultReminderLead); err != nil {
		return nil, err
	}
	if cfg.SessionIdle, err = durationEnv("SESSION_IDLE", defaultSessionIdle); err != nil {
		return nil, err
	}

	tz := os.Getenv("RESTAURANT_TZ")
	if tz == "" {
		tz = defaultTimezone
	}
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("RESTAURANT_TZ: %w", err)
	}

	// Проверяем обязательные поля
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required but not set")
	}

	log.Printf("Config loaded (env=%s, api=%s)\n", cfg.Environment, cfg.APIBaseURL)

	return cfg, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
