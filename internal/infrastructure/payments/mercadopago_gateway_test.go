package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNewMercadoPagoGateway_RequiresTokenOutsideMockMode(t *testing.T) {
	if _, err := NewMercadoPagoGateway("", false, zap.NewNop()); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.MockMode() {
		t.Fatalf("expected mock mode")
	}
	fixed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":20,"external_reference":"qr-1"}`))
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if status != "approved" {
		t.Fatalf("expected approved, got %s", status)
	}
	if id == "" {
		t.Fatalf("expected provider id")
	}

	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["external_reference"] != "qr-1" || resp["status_detail"] != "accredited" {
		t.Fatalf("unexpected response %v", resp)
	}
	if resp["date_approved"] != fixed.Format(time.RFC3339Nano) {
		t.Fatalf("unexpected date_approved %v", resp["date_approved"])
	}
}

func TestMercadoPagoGateway_NilClient(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
