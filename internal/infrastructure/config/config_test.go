package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "LOG_LEVEL", "HTTP_PORT", "QUOTE_REQUESTS_TABLE", "LEAD_PAYMENTS_TABLE", "PAYMENT_GATEWAY_MOCK", "DYNAMODB_ENDPOINT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.AppEnv != "dev" || cfg.LogLevel != "info" || cfg.HTTPPort != 8080 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.QuoteRequestsTable != "quote_requests" || cfg.LeadPaymentsTable != "lead_payments" {
		t.Fatalf("unexpected tables: %+v", cfg)
	}
	if cfg.PaymentGatewayMock {
		t.Fatalf("expected mock disabled")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PAYMENT_GATEWAY_MOCK", " Yes ")
	t.Setenv("QUOTE_REQUESTS_TABLE", "qr-test")

	cfg := Load()
	if cfg.HTTPPort != 9090 || !cfg.PaymentGatewayMock || cfg.QuoteRequestsTable != "qr-test" {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	t.Setenv("HTTP_PORT", "not-a-port")
	if got := Load().HTTPPort; got != 8080 {
		t.Fatalf("expected fallback port, got %d", got)
	}
}
