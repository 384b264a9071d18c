package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"quote_service/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
)

func TestLeadPaymentDynamoRepository(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewLeadPaymentDynamoRepository(ddb, "lead_payments")
	date := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	p := entities.LeadPayment{
		ID:                 "pay-1",
		QuoteRequestID:     "qr-1",
		VendorID:           "vendor-1",
		Amount:             20,
		Date:               date,
		Status:             entities.LeadPaymentStatusApproved,
		ProviderPayloadRaw: json.RawMessage(`{"id":"pay-1","status":"approved"}`),
		ProviderPayload:    map[string]any{"id": "pay-1", "status": "approved"},
	}
	if _, err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("create: %v", err)
	}
	other := p
	other.ID = "pay-2"
	other.VendorID = "vendor-2"
	other.ProviderPayloadRaw = nil
	other.ProviderPayload = nil
	if _, err := repo.Create(context.Background(), other); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(context.Background(), "pay-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if diff := cmp.Diff(p, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	missing, err := repo.GetByID(context.Background(), "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero value, got %+v err=%v", missing, err)
	}

	items, err := repo.ListByQuoteRequestID(context.Background(), "qr-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].ID != "pay-1" || items[1].ID != "pay-2" {
		t.Fatalf("unexpected items: %+v", items)
	}
	if items[1].ProviderPayloadRaw != nil {
		t.Fatalf("expected no raw payload, got %s", items[1].ProviderPayloadRaw)
	}
}
