package request

import (
	"strings"
	"time"

	"quote_service/internal/domain/entities"
)

// QuoteFormRequest is the quote request form as posted by the client. Enum
// fields are checked by the industry_type, paper_size and priority binding tags.
type QuoteFormRequest struct {
	entities.QuoteRequestForm
}

// ToForm trims free-text fields and drops repeated feature tags. The request is
// left untouched.
func (r QuoteFormRequest) ToForm() entities.QuoteRequestForm {
	f := r.QuoteRequestForm.Clone()
	f.CompanyName = strings.TrimSpace(f.CompanyName)
	f.ContactName = strings.TrimSpace(f.ContactName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Postcode = strings.ToUpper(strings.TrimSpace(f.Postcode))
	f.AdditionalNotes = strings.TrimSpace(f.AdditionalNotes)
	f.Requirements.EssentialFeatures = uniqueTrimmed(f.Requirements.EssentialFeatures)
	f.AdditionalServices = uniqueTrimmed(f.AdditionalServices)
	return f
}

func uniqueTrimmed(in []string) []string {
	if in == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// StepURI binds the :step path parameter.
type StepURI struct {
	Step int `uri:"step" binding:"required,min=1"`
}

// VolumeQuery binds ?mono=&colour= for the volume calculator.
type VolumeQuery struct {
	Mono   int `form:"mono" binding:"gte=0"`
	Colour int `form:"colour" binding:"gte=0"`
}

type BuyoutRequest struct {
	QuarterlyLease  *float64       `json:"quarterlyLease" binding:"omitempty,gte=0"`
	ContractEndDate *entities.Date `json:"contractEndDate"`
}

func (r BuyoutRequest) EndTime() *time.Time {
	if r.ContractEndDate == nil || r.ContractEndDate.IsZero() {
		return nil
	}
	t := r.ContractEndDate.Time
	return &t
}
