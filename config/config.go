package config

import (
	"fmt"
	"os"
)

// Config holds the infrastructure settings of the catalog service,
// all read from environment variables.
type Config struct {
	// Database (PostgreSQL) config
	DB_USER     string
	DB_PASSWORD string
	DB_NAME     string
	DB_HOST     string
	DB_PORT     string

	// Kafka config
	KAFKA_BROKER      string
	KAFKA_EVENT_TOPIC string // catalog events out (resource.merged, ...)
	KAFKA_SYNC_TOPIC  string // sync requests in (catalog.sync.requested)

	// RabbitMQ config (merchant alert jobs)
	RABBITMQ_USER     string
	RABBITMQ_PASSWORD string
	RABBITMQ_HOST     string
	RABBITMQ_PORT     string

	// Carrier API config
	SHIPPO_API_URL string
}

// LoadConfig reads the environment and returns a Config struct.
func LoadConfig() *Config {
	cfg := &Config{
		DB_USER:     os.Getenv("DB_USER"),
		DB_PASSWORD: os.Getenv("DB_PASSWORD"),
		DB_HOST:     os.Getenv("DB_HOST"),
		DB_PORT:     os.Getenv("DB_PORT"),
		DB_NAME:     os.Getenv("DB_NAME"),

		KAFKA_BROKER:      os.Getenv("KAFKA_BROKER"),
		KAFKA_EVENT_TOPIC: os.Getenv("KAFKA_EVENT_TOPIC"),
		KAFKA_SYNC_TOPIC:  os.Getenv("KAFKA_SYNC_TOPIC"),

		RABBITMQ_USER:     os.Getenv("RABBITMQ_USER"),
		RABBITMQ_PASSWORD: os.Getenv("RABBITMQ_PASSWORD"),
		RABBITMQ_HOST:     os.Getenv("RABBITMQ_HOST"),
		RABBITMQ_PORT:     os.Getenv("RABBITMQ_PORT"),

		SHIPPO_API_URL: os.Getenv("SHIPPO_API_URL"),
	}
	if cfg.SHIPPO_API_URL == "" {
		cfg.SHIPPO_API_URL = "https://api.goshippo.com"
	}
	return cfg
}

// GetDBURL formats the config into a PostgreSQL connection string.
func (c *Config) GetDBURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", c.DB_USER, c.DB_PASSWORD, c.DB_HOST, c.DB_PORT, c.DB_NAME)
}

// GetRabbitMQURL formats the config into a RabbitMQ connection string.
// Defaults to standard host/port if missing, prevents crashes in dev setups.
func (c *Config) GetRabbitMQURL() string {
	host := c.RABBITMQ_HOST
	if host == "" {
		host = "localhost"
	}
	port := c.RABBITMQ_PORT
	if port == "" {
		port = "5672"
	}
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", c.RABBITMQ_USER, c.RABBITMQ_PASSWORD, host, port)
}
