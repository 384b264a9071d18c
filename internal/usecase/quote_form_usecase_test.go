package usecase

import (
	"errors"
	"testing"
	"time"

	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quoteform"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func newQuoteFormUseCase(now time.Time) *QuoteFormUseCase {
	uc := NewQuoteFormUseCase(zap.NewNop())
	uc.now = func() time.Time { return now }
	return uc
}

func TestQuoteFormUseCase_ValidateStep(t *testing.T) {
	uc := newQuoteFormUseCase(time.Now())

	form := submittableForm()
	form.Budget.MaxLeasePrice = -1

	if res := uc.ValidateStep(quoteform.StepCompanyDetails, form); !res.IsValid {
		t.Fatalf("expected step 1 valid, got %+v", res.Errors)
	}
	res := uc.ValidateStep(quoteform.StepBudget, form)
	if res.IsValid || res.Errors["maxLeasePrice"] == "" {
		t.Fatalf("expected maxLeasePrice error, got %+v", res)
	}
	if res := uc.ValidateStep(quoteform.Step(9), form); !res.IsValid {
		t.Fatalf("unknown steps should be valid, got %+v", res.Errors)
	}
}

func TestQuoteFormUseCase_Analyze(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	uc := newQuoteFormUseCase(now)

	form := submittableForm()
	end := entities.Date{Time: now.AddDate(0, 0, 60)}
	form.CurrentSetup.ContractEndDate = &end

	got := uc.Analyze(form)

	if got.VolumeRange != "6k-13k" || got.SuggestedSpeed != 25 {
		t.Fatalf("unexpected volume profile: %s / %d", got.VolumeRange, got.SuggestedSpeed)
	}
	wantCost := quoteform.MonthlyCost{CPC: 184, Lease: 150, Service: 30, Total: 364}
	if diff := cmp.Diff(wantCost, got.MonthlyCost); diff != "" {
		t.Fatalf("monthly cost mismatch (-want +got):\n%s", diff)
	}
	if got.MonthlyCostLabel != "£364.00" {
		t.Fatalf("unexpected label %q", got.MonthlyCostLabel)
	}
	if got.Buyout != "£180.00" {
		t.Fatalf("unexpected buyout %q", got.Buyout)
	}
	if len(got.BudgetWarnings) != 0 || len(got.VolumeWarnings) != 0 || len(got.BusinessLogic.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %+v", got)
	}
}

func TestQuoteFormUseCase_Analyze_NoLease(t *testing.T) {
	uc := newQuoteFormUseCase(time.Now())
	form := submittableForm()
	form.CurrentSetup.CurrentCosts.QuarterlyLease = 0

	if got := uc.Analyze(form).Buyout; got != quoteform.BuyoutNotAvailable {
		t.Fatalf("expected %q, got %q", quoteform.BuyoutNotAvailable, got)
	}
}

func TestQuoteFormUseCase_Assist(t *testing.T) {
	uc := newQuoteFormUseCase(time.Now())

	t.Run("paper step adds duplex for A4", func(t *testing.T) {
		form := submittableForm()
		form.Requirements.EssentialFeatures = []string{"Advanced Security"}

		got := uc.Assist(quoteform.StepPaper, form)
		want := []string{"Advanced Security", "Duplex Printing"}
		if diff := cmp.Diff(want, got.Defaults.EssentialFeatures); diff != "" {
			t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(want, got.Form.Requirements.EssentialFeatures); diff != "" {
			t.Fatalf("applied form mismatch (-want +got):\n%s", diff)
		}
		if len(form.Requirements.EssentialFeatures) != 1 {
			t.Fatalf("input form was mutated")
		}
		if got.Predictions.BudgetSuggestion != nil {
			t.Fatalf("no predictions expected before step 5")
		}
	})

	t.Run("requirements step predicts budget", func(t *testing.T) {
		got := uc.Assist(quoteform.StepRequirements, submittableForm())
		if got.Predictions.BudgetSuggestion == nil {
			t.Fatalf("expected budget suggestion")
		}
		if !got.Defaults.Empty() {
			t.Fatalf("expected no defaults at step 5, got %+v", got.Defaults)
		}
	})
}

func TestQuoteFormUseCase_VolumeProfile(t *testing.T) {
	uc := newQuoteFormUseCase(time.Now())

	got, err := uc.VolumeProfile(8000, 2000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := VolumeProfile{Total: 10000, TotalLabel: "10,000", VolumeRange: "6k-13k", SuggestedSpeed: 25, LeadFee: 20}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}

	if _, err := uc.VolumeProfile(-1, 0); !errors.Is(err, ErrInvalidVolume) {
		t.Fatalf("expected ErrInvalidVolume, got %v", err)
	}
}

func TestQuoteFormUseCase_Buyout(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	uc := newQuoteFormUseCase(now)

	end := now.AddDate(0, 0, 90)
	if got := uc.Buyout(ptr(600.0), &end); got != "£360.00" {
		t.Fatalf("expected £360.00, got %q", got)
	}
	past := now.AddDate(0, 0, -1)
	if got := uc.Buyout(ptr(600.0), &past); got != quoteform.BuyoutContractEnded {
		t.Fatalf("expected %q, got %q", quoteform.BuyoutContractEnded, got)
	}
	if got := uc.Buyout(nil, &end); got != quoteform.BuyoutNotAvailable {
		t.Fatalf("expected %q, got %q", quoteform.BuyoutNotAvailable, got)
	}
}
