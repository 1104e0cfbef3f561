package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Stripe       StripeConfig
	Email        EmailConfig
	Kafka        KafkaConfig
	Storage      StorageConfig
	Confirmation ConfirmationConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	// Tracing installs the OpenTelemetry gorm plugin
	Tracing bool
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// DSN returns the key/value connection string understood by lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig holds Redis configuration. An empty URL runs without redis.
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds the auth provider's token verification settings
type JWTConfig struct {
	Secret   string
	Audience string
}

// StripeConfig holds payment provider credentials
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	// APIURL overrides the provider base URL (local mocks)
	APIURL string
}

// EmailConfig holds transactional email API settings
type EmailConfig struct {
	APIURL  string
	APIKey  string
	From    string
	ReplyTo string
}

// KafkaConfig holds event publishing settings. No brokers disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// StorageConfig holds invoice archive settings. No bucket disables archiving.
type StorageConfig struct {
	InvoiceBucket   string
	CredentialsJSON string
}

// ConfirmationConfig bounds the payment confirmation flow
type ConfirmationConfig struct {
	CallTimeout time.Duration
	LockTTL     time.Duration
	LockRetries int

	// Reconciliation re-checks pending payments whose confirmation never arrived
	ReconcileEnabled  bool
	ReconcileInterval time.Duration
	ReconcileMinAge   time.Duration
	ReconcileMaxAge   time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Env:            getEnv("SERVER_ENV", "development"),
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "rugcare"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Tracing:  getEnvAsBool("DB_TRACING_ENABLED", false),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", "change-this-in-production"),
			Audience: getEnv("JWT_AUDIENCE", "authenticated"),
		},
		Stripe: StripeConfig{
			SecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
			WebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
			APIURL:        getEnv("STRIPE_API_URL", ""),
		},
		Email: EmailConfig{
			APIURL:  getEnv("EMAIL_API_URL", "https://api.resend.com/emails"),
			APIKey:  getEnv("EMAIL_API_KEY", ""),
			From:    getEnv("EMAIL_FROM", "RugCare <notifications@rugcare.app>"),
			ReplyTo: getEnv("EMAIL_REPLY_TO", ""),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvAsSlice("KAFKA_BROKERS", nil),
			Topic:   getEnv("KAFKA_PAYMENT_TOPIC", "payment.confirmed"),
		},
		Storage: StorageConfig{
			InvoiceBucket:   getEnv("GCS_INVOICE_BUCKET", ""),
			CredentialsJSON: getEnv("GCS_CREDENTIALS_JSON", ""),
		},
		Confirmation: ConfirmationConfig{
			CallTimeout: getEnvAsDuration("CONFIRMATION_CALL_TIMEOUT", 10*time.Second),
			LockTTL:     getEnvAsDuration("CONFIRMATION_LOCK_TTL", 60*time.Second),
			LockRetries: getEnvAsInt("CONFIRMATION_LOCK_RETRIES", 20),

			ReconcileEnabled:  getEnvAsBool("RECONCILE_ENABLED", true),
			ReconcileInterval: getEnvAsDuration("RECONCILE_INTERVAL", 5*time.Minute),
			ReconcileMinAge:   getEnvAsDuration("RECONCILE_MIN_AGE", 10*time.Minute),
			ReconcileMaxAge:   getEnvAsDuration("RECONCILE_MAX_AGE", 24*time.Hour),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

// getEnvAsSlice splits a comma separated value, dropping blanks
func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
