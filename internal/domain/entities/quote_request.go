package entities

import "time"

// QuoteRequestStatus represents the lifecycle of a submitted quote request.
//
// Domain notes:
//   - A request is created pending and stays open for vendor leads until the
//     buyer accepts a quote, declines all quotes or cancels it.
//   - accepted, declined and cancelled are terminal.

type QuoteRequestStatus string

const (
	QuoteRequestStatusPending   QuoteRequestStatus = "pending"
	QuoteRequestStatusAccepted  QuoteRequestStatus = "accepted"
	QuoteRequestStatusDeclined  QuoteRequestStatus = "declined"
	QuoteRequestStatusCancelled QuoteRequestStatus = "cancelled"
)

func (s QuoteRequestStatus) Terminal() bool {
	return s == QuoteRequestStatusAccepted || s == QuoteRequestStatusDeclined || s == QuoteRequestStatusCancelled
}

// QuoteRequest is a finalised quote request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (requester_id-index): requester_id
//
// Submission is stored as its pruned JSON encoding; Warnings are the advisory
// findings computed at submission time.
type QuoteRequest struct {
	ID          string             `json:"id"`
	RequesterID string             `json:"requester_id"`
	Status      QuoteRequestStatus `json:"status"`
	Submission  Submission         `json:"submission"`
	Warnings    []string           `json:"warnings"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`

	// ContactRedacted is set on views built by WithoutContact. It is never stored.
	ContactRedacted bool `json:"contact_redacted,omitempty"`
}

// WithoutContact returns q with the buyer's company name and contact details
// cleared. Vendors see this view until they have bought the lead.
func (q QuoteRequest) WithoutContact() QuoteRequest {
	q.Submission.CompanyName = ""
	q.Submission.ContactName = ""
	q.Submission.Email = ""
	q.Submission.Phone = ""
	q.Submission.Postcode = ""
	q.ContactRedacted = true
	return q
}
