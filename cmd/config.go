package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

const (
	EventBrokerNone     = "none"
	EventBrokerKafka    = "kafka"
	EventBrokerRabbitMQ = "rabbitmq"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   slog.Level
	MenuFile   string

	EventBroker           string
	KafkaBrokers          string
	KafkaOrderEventsTopic string
	RabbitMQHost          string
	RabbitMQPort          int
	RabbitMQUser          string
	RabbitMQPassword      string
	RabbitMQExchange      string

	CartIdleTTL  time.Duration
	HistoryLimit int
}

// ConfigFromEnv reads the configuration through getenv, falling back to defaults for unset
// keys. Malformed values are reported together.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:              get("HTTP_PORT", "8080"),
		DBHost:                get("DB_HOST", "localhost"),
		DBPort:                get("DB_PORT", "5432"),
		DBUser:                get("DB_USER", "postgres"),
		DBPassword:            get("DB_PASSWORD", "postgres"),
		DBName:                get("DB_NAME", "tableorders"),
		DBSslMode:             get("DB_SSLMODE", "disable"),
		MenuFile:              get("MENU_FILE", "configs/menu.yaml"),
		EventBroker:           strings.ToLower(get("EVENT_BROKER", EventBrokerNone)),
		KafkaBrokers:          get("KAFKA_BROKERS", "localhost:9092"),
		KafkaOrderEventsTopic: get("KAFKA_ORDER_EVENTS_TOPIC", "orders.events"),
		RabbitMQHost:          get("RABBITMQ_HOST", "localhost"),
		RabbitMQUser:          get("RABBITMQ_USER", "guest"),
		RabbitMQPassword:      get("RABBITMQ_PASSWORD", "guest"),
		RabbitMQExchange:      get("RABBITMQ_EXCHANGE", "orders"),
	}

	var errList []error

	if err := cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		errList = append(errList, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	switch cfg.EventBroker {
	case EventBrokerNone, EventBrokerKafka, EventBrokerRabbitMQ:
	default:
		errList = append(errList, fmt.Errorf("EVENT_BROKER: unknown broker %q", cfg.EventBroker))
	}

	port, err := strconv.Atoi(get("RABBITMQ_PORT", "5672"))
	if err != nil {
		errList = append(errList, fmt.Errorf("RABBITMQ_PORT: %w", err))
	}
	cfg.RabbitMQPort = port

	ttl, err := time.ParseDuration(get("CART_IDLE_TTL", "2h"))
	if err == nil && ttl <= 0 {
		err = errors.New("must be positive")
	}
	if err != nil {
		errList = append(errList, fmt.Errorf("CART_IDLE_TTL: %w", err))
	}
	cfg.CartIdleTTL = ttl

	limit, err := strconv.Atoi(get("HISTORY_LIMIT", "6"))
	if err == nil && limit < 1 {
		err = errors.New("must be at least 1")
	}
	if err != nil {
		errList = append(errList, fmt.Errorf("HISTORY_LIMIT: %w", err))
	}
	cfg.HistoryLimit = limit

	if err = errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
