package config

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

type Config struct {
	Port              string
	JWTSecret         string
	LowStockThreshold int
	Redis             Redis
	Kafka             Kafka
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

// Kafka is optional: with no brokers configured, order events are simply
// not published.
type Kafka struct {
	Brokers []string
	Topic   string
}

func Load(log *zap.Logger) *Config {
	return &Config{
		Port:              envDefault("APP_PORT", ":8080"),
		JWTSecret:         getEnv("JWT_SECRET", log),
		LowStockThreshold: atoiDefault(os.Getenv("LOW_STOCK_THRESHOLD"), 10),
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       atoiDefault(os.Getenv("REDIS_DB"), 0),
		},
		Kafka: Kafka{
			Brokers: splitAndTrim(os.Getenv("KAFKA_BROKERS")),
			Topic:   envDefault("KAFKA_TOPIC_ORDERS", "orders.events"),
		},
	}
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("required environment variable is not set", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func envDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
