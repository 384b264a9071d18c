package interfaces

import (
	"context"

	"quote_service/internal/domain/entities"
)

// ILeadPaymentRepository abstracts DynamoDB persistence for LeadPayment.
type ILeadPaymentRepository interface {
	Create(ctx context.Context, p entities.LeadPayment) (entities.LeadPayment, error)
	GetByID(ctx context.Context, id string) (entities.LeadPayment, error)
	ListByQuoteRequestID(ctx context.Context, quoteRequestID string) ([]entities.LeadPayment, error)
}
