package request

import "encoding/json"

// LeadPaymentCreateRequest is the envelope for buying a lead.
//
// `provider_payload` is forwarded to the payment provider as raw JSON so that
// provider-specific fields (card token, payer, installments) pass through.
type LeadPaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
