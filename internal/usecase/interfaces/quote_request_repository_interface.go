package interfaces

import (
	"context"
	"time"

	"quote_service/internal/domain/entities"
)

// IQuoteRequestRepository abstracts DynamoDB persistence for QuoteRequest.
//
// Lookups return the zero QuoteRequest (empty ID) when nothing matches.
type IQuoteRequestRepository interface {
	Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	ListByRequesterID(ctx context.Context, requesterID string) ([]entities.QuoteRequest, error)
	// UpdateStatus only succeeds while the stored status equals from, and stamps
	// updated_at with at. A lost race yields the zero QuoteRequest and no error.
	UpdateStatus(ctx context.Context, id string, from, to entities.QuoteRequestStatus, at time.Time) (entities.QuoteRequest, error)
}
