package quoteform

import (
	"testing"

	"quote_service/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
)

func TestSetSmartDefaults(t *testing.T) {
	form := validForm()
	form.Requirements.EssentialFeatures = []string{"Stapling"}

	t.Run("volume step sets min speed", func(t *testing.T) {
		d := SetSmartDefaults(form, StepVolume)
		if d.MinSpeed == nil || *d.MinSpeed != 25 {
			t.Fatalf("expected 25 PPM, got %v", d.MinSpeed)
		}
		if d.EssentialFeatures != nil || d.SuggestedFeatures != nil {
			t.Fatalf("unexpected defaults: %+v", d)
		}
	})

	t.Run("paper step adds duplex for A4", func(t *testing.T) {
		d := SetSmartDefaults(form, StepPaper)
		if diff := cmp.Diff([]string{"Stapling", "Duplex Printing"}, d.EssentialFeatures); diff != "" {
			t.Fatalf("unexpected features (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"Stapling"}, form.Requirements.EssentialFeatures); diff != "" {
			t.Fatalf("form was modified (-want +got):\n%s", diff)
		}
	})

	t.Run("paper step leaves A3 alone", func(t *testing.T) {
		a3 := form
		a3.PaperRequirements.PrimarySize = entities.PaperA3
		if d := SetSmartDefaults(a3, StepPaper); !d.Empty() {
			t.Fatalf("expected no defaults, got %+v", d)
		}
	})

	t.Run("paper step skips duplex already chosen", func(t *testing.T) {
		chosen := validForm()
		if d := SetSmartDefaults(chosen, StepPaper); !d.Empty() {
			t.Fatalf("expected no defaults, got %+v", d)
		}
	})

	t.Run("current setup step suggests features", func(t *testing.T) {
		d := SetSmartDefaults(form, StepCurrentSetup)
		want := SuggestFeatures(entities.IndustryHealthcare, Range6kTo13k, entities.PaperA4)
		if diff := cmp.Diff(want, d.SuggestedFeatures); diff != "" {
			t.Fatalf("unexpected suggestions (-want +got):\n%s", diff)
		}
	})

	t.Run("other steps", func(t *testing.T) {
		for _, s := range []Step{StepCompanyDetails, StepRequirements, StepBudget, Step(42)} {
			if d := SetSmartDefaults(form, s); !d.Empty() {
				t.Fatalf("step %d: expected no defaults, got %+v", s, d)
			}
		}
	})
}

func TestSmartDefaultsApplyTo(t *testing.T) {
	form := validForm()
	d := SmartDefaults{MinSpeed: ptr(30), EssentialFeatures: []string{"Fax"}, SuggestedFeatures: []string{"Stapling"}}

	out := d.ApplyTo(form)
	if *out.Requirements.MinSpeed != 30 {
		t.Fatalf("expected min speed 30")
	}
	if diff := cmp.Diff([]string{"Fax"}, out.Requirements.EssentialFeatures); diff != "" {
		t.Fatalf("unexpected features (-want +got):\n%s", diff)
	}
	if form.Requirements.MinSpeed != nil {
		t.Fatalf("input form was modified")
	}
}

func TestPredictNextFields(t *testing.T) {
	form := validForm()
	if p := PredictNextFields(form, StepPaper); p.BudgetSuggestion != nil {
		t.Fatalf("expected no prediction before requirements step")
	}

	p := PredictNextFields(form, StepRequirements)
	if p.BudgetSuggestion == nil {
		t.Fatalf("expected budget suggestion")
	}
	want := SuggestBudgetRange(Range6kTo13k, form.Requirements.EssentialFeatures, form.Requirements.Priority)
	if diff := cmp.Diff(want, *p.BudgetSuggestion); diff != "" {
		t.Fatalf("unexpected suggestion (-want +got):\n%s", diff)
	}
}
