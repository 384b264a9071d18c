package entities

import (
	"encoding/json"
	"time"
)

type LeadPaymentStatus string

const (
	LeadPaymentStatusPending  LeadPaymentStatus = "pending"
	LeadPaymentStatusApproved LeadPaymentStatus = "approved"
	LeadPaymentStatusDenied   LeadPaymentStatus = "denied"
)

// LeadPayment records a vendor buying access to a quote request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_request_id-index): quote_request_id
//
// ProviderPayloadRaw keeps the payment provider response body for audit;
// ProviderPayload is its parsed form.
type LeadPayment struct {
	ID             string            `json:"id"`
	QuoteRequestID string            `json:"quote_request_id"`
	VendorID       string            `json:"vendor_id"`
	Amount         float64           `json:"amount"`
	Date           time.Time         `json:"date"`
	Status         LeadPaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any  `json:"provider_payload,omitempty"`
}
