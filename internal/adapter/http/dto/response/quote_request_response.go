package response

import (
	"time"

	"quote_service/internal/domain/entities"
)

type QuoteRequestResponse struct {
	ID          string              `json:"id"`
	RequesterID string              `json:"requester_id"`
	Status      string              `json:"status"`
	Submission  entities.Submission `json:"submission"`
	Warnings    []string            `json:"warnings"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`

	ContactRedacted bool `json:"contact_redacted,omitempty"`
}

func FromQuoteRequest(q entities.QuoteRequest) QuoteRequestResponse {
	warnings := q.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return QuoteRequestResponse{
		ID:          q.ID,
		RequesterID: q.RequesterID,
		Status:      string(q.Status),
		Submission:  q.Submission,
		Warnings:    warnings,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,

		ContactRedacted: q.ContactRedacted,
	}
}

func FromQuoteRequests(items []entities.QuoteRequest) []QuoteRequestResponse {
	out := make([]QuoteRequestResponse, 0, len(items))
	for _, q := range items {
		out = append(out, FromQuoteRequest(q))
	}
	return out
}
