package quoteform

import (
	"testing"

	"quote_service/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
)

func TestSuggestFeatures(t *testing.T) {
	t.Run("healthcare small A4 dedupes duplex", func(t *testing.T) {
		got := SuggestFeatures(entities.IndustryHealthcare, Range0To6k, entities.PaperA4)
		want := []string{"Advanced Security", "Duplex Printing", "Large Paper Trays", "Secure Print Release"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("unexpected features (-want +got):\n%s", diff)
		}
	})

	t.Run("volume buckets above 6k add trays", func(t *testing.T) {
		got := SuggestFeatures(entities.IndustryOther, Range6kTo13k, "")
		want := []string{"Large Paper Trays", "High Capacity Toner"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("unexpected features (-want +got):\n%s", diff)
		}
	})

	t.Run("volume buckets above 30k add finishing", func(t *testing.T) {
		got := SuggestFeatures(entities.IndustryLegal, Range50kPlus, entities.PaperSRA3)
		want := []string{
			"Booklet Making", "Advanced Security", "Duplex Printing", "Stapling",
			"Large Paper Trays", "High Capacity Toner", "Finishing Unit",
			"SRA3 Printing", "Large Format Printing",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("unexpected features (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown everything", func(t *testing.T) {
		got := SuggestFeatures("", "bogus", "")
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil list, got %#v", got)
		}
	})
}

func TestSuggestBudgetRange(t *testing.T) {
	got := SuggestBudgetRange(Range6kTo13k, []string{"Duplex Printing", "Stapling"}, entities.PrioritySpeed)
	want := BudgetSuggestion{
		Suggested:   372,
		Range:       "£298.00 - £484.00",
		Explanation: "Based on a 6k-13k monthly volume, 2 essential features and a speed priority",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected suggestion (-want +got):\n%s", diff)
	}
}

func TestSuggestBudgetRange_LookupMissesUseOne(t *testing.T) {
	got := SuggestBudgetRange("", nil, "")
	if got.Suggested != 200 {
		t.Fatalf("expected base budget 200, got %v", got.Suggested)
	}
	if got.Range != "£160.00 - £260.00" {
		t.Fatalf("unexpected range %q", got.Range)
	}
}

func TestGetWarningsForCombination(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		if got := GetWarningsForCombination(validForm()); len(got) != 0 {
			t.Fatalf("expected no warnings, got %v", got)
		}
	})

	t.Run("all three", func(t *testing.T) {
		form := validForm()
		form.MonthlyVolume = entities.MonthlyVolume{Mono: 20000, Colour: 5000}
		form.Budget.MaxLeasePrice = 200
		form.Requirements.EssentialFeatures = []string{"a", "b", "c", "d", "e", "f"}
		form.Requirements.MinSpeed = ptr(75)

		got := GetWarningsForCombination(form)
		want := []string{
			"High volume on A4 only - an A3 capable device gives more flexibility at this volume",
			"Many essential features with a low budget - consider prioritising the most important ones",
			"Requested speed of 75 PPM is more than double the 35 PPM your volume needs",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("unexpected warnings (-want +got):\n%s", diff)
		}
	})

	t.Run("A3 secondary size clears A4-only warning", func(t *testing.T) {
		form := validForm()
		form.MonthlyVolume = entities.MonthlyVolume{Mono: 30000}
		form.PaperRequirements.AdditionalSizes = []entities.PaperSize{entities.PaperA3}
		if got := GetWarningsForCombination(form); len(got) != 0 {
			t.Fatalf("expected no warnings, got %v", got)
		}
	})
}
