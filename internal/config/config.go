package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds all application configuration.
// Values are loaded from environment variables (.env is autoloaded by main).
type Config struct {
	// Server
	Port     int
	LogLevel string

	// Storage
	StorageBackend          string // drafts: dynamodb | memory
	LedgerBackend           string // ledger: dynamodb | postgres | memory
	DBSource                string
	AWSRegion               string
	DynamoDBEndpoint        string
	CreditTransactionsTable string
	CreditAccountsTable     string
	DraftsTable             string

	// Payments
	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	PaymentNotificationURL string
	PaymentWindow          time.Duration
	PaymentTimeout         time.Duration
	RecursoPrice           decimal.Decimal

	// Credits
	LowBalanceThreshold decimal.Decimal

	// Document extraction (OCR)
	ExtractionServiceURL string
	ExtractionTimeout    time.Duration

	// Resilience
	MaxRetries     int
	InitialBackoff time.Duration
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	price, err := getEnvDecimal("RECURSO_PRICE", "49.90")
	if err != nil {
		return nil, err
	}
	threshold, err := getEnvDecimal("LOW_BALANCE_THRESHOLD", "50.00")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StorageBackend:          strings.ToLower(getEnv("STORAGE_BACKEND", BackendDynamoDB)),
		LedgerBackend:           strings.ToLower(getEnv("LEDGER_BACKEND", getEnv("STORAGE_BACKEND", BackendDynamoDB))),
		DBSource:                getEnv("DB_SOURCE", ""),
		AWSRegion:               getEnv("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:        getEnv("DYNAMODB_ENDPOINT", ""),
		CreditTransactionsTable: getEnv("CREDIT_TRANSACTIONS_TABLE", "credit_transactions"),
		CreditAccountsTable:     getEnv("CREDIT_ACCOUNTS_TABLE", "credit_accounts"),
		DraftsTable:             getEnv("DRAFTS_TABLE", "service_order_drafts"),

		MercadoPagoAccessToken: getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
		PaymentGatewayMock:     getEnvBool("PAYMENT_GATEWAY_MOCK") || getEnvBool("MERCADOPAGO_MOCK"),
		PaymentNotificationURL: getEnv("PAYMENT_NOTIFICATION_URL", ""),
		PaymentWindow:          getEnvDuration("PAYMENT_WINDOW", 30*time.Minute),
		PaymentTimeout:         getEnvDuration("PAYMENT_TIMEOUT", 10*time.Second),
		RecursoPrice:           price,

		LowBalanceThreshold: threshold,

		ExtractionServiceURL: getEnv("EXTRACTION_SERVICE_URL", ""),
		ExtractionTimeout:    getEnvDuration("EXTRACTION_TIMEOUT", 20*time.Second),

		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		InitialBackoff: getEnvDuration("INITIAL_BACKOFF", 100*time.Millisecond),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case BackendDynamoDB, BackendMemory:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", BackendDynamoDB, BackendMemory, c.StorageBackend)
	}
	switch c.LedgerBackend {
	case BackendDynamoDB, BackendMemory:
	case BackendPostgres:
		if c.DBSource == "" {
			return fmt.Errorf("DB_SOURCE environment variable is required when LEDGER_BACKEND=postgres")
		}
	default:
		return fmt.Errorf("LEDGER_BACKEND must be one of dynamodb, postgres, memory, got %q", c.LedgerBackend)
	}
	if !c.RecursoPrice.IsPositive() {
		return fmt.Errorf("RECURSO_PRICE must be positive")
	}
	if c.PaymentWindow <= 0 {
		return fmt.Errorf("PAYMENT_WINDOW must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getEnvDecimal(key, fallback string) (decimal.Decimal, error) {
	raw := getEnv(key, fallback)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: invalid decimal %q: %w", key, raw, err)
	}
	return d, nil
}
