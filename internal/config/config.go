package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	// Timezone is the IANA name of the reference civil timezone every stored
	// reminder date/time is interpreted in. The display device has no clock
	// configuration of its own, so this is a deployment constant, never the
	// server's local zone.
	Timezone string

	// ScreenBufferMinutes is the grace interval added to "now" when deciding
	// whether a same-day reminder is still upcoming. It absorbs the display
	// device's polling latency.
	ScreenBufferMinutes int

	// StoreBackend selects the reminder repository: "memory" or "dynamo".
	StoreBackend string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	// DefaultNotificationEmail receives completion alerts for reminders
	// created without a custom notification email.
	DefaultNotificationEmail string

	// FamilySMSNumber, when set, additionally receives completion alerts by SMS.
	FamilySMSNumber string
	SNSRegion       string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Reminders string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		Timezone:            getEnv("TIMEZONE", "America/New_York"),
		ScreenBufferMinutes: getEnvInt("SCREEN_BUFFER_MINUTES", 5),

		StoreBackend: getEnv("STORE_BACKEND", "memory"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Reminders: getEnv("DYNAMO_TABLE_REMINDERS", "reminders"),
		},

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@example.com"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		DefaultNotificationEmail: getEnv("DEFAULT_NOTIFICATION_EMAIL", "family@example.com"),

		FamilySMSNumber: getEnv("FAMILY_SMS_NUMBER", ""),
		SNSRegion:       getEnv("SNS_REGION", "us-east-1"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
