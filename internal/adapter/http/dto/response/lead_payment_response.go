package response

import (
	"time"

	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quoteform"
)

type LeadPaymentResponse struct {
	PaymentID      string    `json:"payment_id"`
	QuoteRequestID string    `json:"quote_request_id"`
	VendorID       string    `json:"vendor_id"`
	Amount         float64   `json:"amount"`
	AmountLabel    string    `json:"amount_label"`
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`

	ProviderPayloadRaw string         `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any `json:"provider_payload,omitempty"`
}

func FromLeadPayment(p entities.LeadPayment) LeadPaymentResponse {
	return LeadPaymentResponse{
		PaymentID:          p.ID,
		QuoteRequestID:     p.QuoteRequestID,
		VendorID:           p.VendorID,
		Amount:             p.Amount,
		AmountLabel:        quoteform.FormatCurrency(p.Amount),
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
