package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"fastfeet/internal/jobs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	JWTTTL    time.Duration
	RedisURL  string

	// KafkaHost is a comma separated broker list. Empty disables the notification relay.
	KafkaHost                 string
	KafkaNotificationTopic    string
	NotificationRelaySchedule string
	NotificationRelayBatch    int

	BootstrapAdminName     string
	BootstrapAdminCPF      string
	BootstrapAdminPassword string

	LogLevel slog.Level
}

// LoadConfig reads .env when present, then the environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "fastfeet"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		RedisURL:  getEnv("REDIS_URL", "redis://localhost:6379/0"),

		KafkaHost:                 os.Getenv("KAFKA_HOST"),
		KafkaNotificationTopic:    getEnv("KAFKA_NOTIFICATION_TOPIC", "delivery-notifications"),
		NotificationRelaySchedule: getEnv("NOTIFICATION_RELAY_SCHEDULE", jobs.DefaultRelaySchedule),

		BootstrapAdminName:     getEnv("BOOTSTRAP_ADMIN_NAME", "Administrator"),
		BootstrapAdminCPF:      os.Getenv("BOOTSTRAP_ADMIN_CPF"),
		BootstrapAdminPassword: os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	batch, err := strconv.Atoi(getEnv("NOTIFICATION_RELAY_BATCH", "100"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFICATION_RELAY_BATCH: %w", err)
	}
	cfg.NotificationRelayBatch = batch

	if err = cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "INFO"))); err != nil {
		return Config{}, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// KafkaBrokers splits KafkaHost into broker addresses.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func getEnv(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
