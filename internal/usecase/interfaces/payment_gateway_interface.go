package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the payment provider that charges vendors for leads.
//
// The provider response is persisted with the lead payment for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
