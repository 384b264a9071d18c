package request

import (
	"testing"
	"time"

	"quote_service/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
)

func TestQuoteFormRequest_ToForm(t *testing.T) {
	r := QuoteFormRequest{QuoteRequestForm: entities.QuoteRequestForm{
		CompanyName:        "  Acme Ltd ",
		Postcode:           " sw1a 1aa",
		AdditionalServices: []string{"Managed print", "", "Managed print"},
		Requirements: entities.Requirements{
			EssentialFeatures: []string{" Duplex Printing", "Duplex Printing", "Scanning "},
		},
	}}

	f := r.ToForm()
	if f.CompanyName != "Acme Ltd" || f.Postcode != "SW1A 1AA" {
		t.Fatalf("unexpected trimmed fields: %q %q", f.CompanyName, f.Postcode)
	}
	if diff := cmp.Diff([]string{"Duplex Printing", "Scanning"}, f.Requirements.EssentialFeatures); diff != "" {
		t.Fatalf("features mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Managed print"}, f.AdditionalServices); diff != "" {
		t.Fatalf("services mismatch (-want +got):\n%s", diff)
	}
	if r.Requirements.EssentialFeatures[0] != " Duplex Printing" {
		t.Fatalf("request was mutated")
	}
}

func TestQuoteFormRequest_ToForm_KeepsNilSlices(t *testing.T) {
	f := QuoteFormRequest{}.ToForm()
	if f.Requirements.EssentialFeatures != nil || f.AdditionalServices != nil {
		t.Fatalf("expected nil slices, got %+v", f)
	}
}

func TestBuyoutRequest_EndTime(t *testing.T) {
	if (BuyoutRequest{}).EndTime() != nil {
		t.Fatalf("expected nil end time")
	}
	d := entities.NewDate(2026, time.January, 31)
	got := BuyoutRequest{ContractEndDate: &d}.EndTime()
	if got == nil || !got.Equal(time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end time %v", got)
	}
}
