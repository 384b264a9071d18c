package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is read once at startup. A .env file, when present, is loaded into the
// environment by cmd/api before Load runs.
type Config struct {
	AppEnv   string
	LogLevel string
	HTTPPort int

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	QuoteRequestsTable string
	LeadPaymentsTable  string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
}

func Load() Config {
	return Config{
		AppEnv:   getenvDefault("APP_ENV", "dev"),
		LogLevel: getenvDefault("LOG_LEVEL", "info"),
		HTTPPort: getenvInt("HTTP_PORT", 8080),

		AWSRegion:          getenvDefault("AWS_REGION", "eu-west-2"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),

		QuoteRequestsTable: getenvDefault("QUOTE_REQUESTS_TABLE", "quote_requests"),
		LeadPaymentsTable:  getenvDefault("LEAD_PAYMENTS_TABLE", "lead_payments"),

		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentGatewayMock:     getenvBool("PAYMENT_GATEWAY_MOCK"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
