package quoteform

import "quote_service/internal/domain/entities"

// SmartDefaults is a partial update proposed for the form when the user reaches a
// step. Nil fields propose nothing.
type SmartDefaults struct {
	MinSpeed          *int     `json:"minSpeed,omitempty"`
	EssentialFeatures []string `json:"essentialFeatures,omitempty"`
	SuggestedFeatures []string `json:"suggestedFeatures,omitempty"`
}

func (d SmartDefaults) Empty() bool {
	return d.MinSpeed == nil && d.EssentialFeatures == nil && d.SuggestedFeatures == nil
}

// ApplyTo returns a copy of form with the defaults written in. SuggestedFeatures
// are advisory and never copied into the form.
func (d SmartDefaults) ApplyTo(form entities.QuoteRequestForm) entities.QuoteRequestForm {
	out := form.Clone()
	if d.MinSpeed != nil {
		v := *d.MinSpeed
		out.Requirements.MinSpeed = &v
	}
	if d.EssentialFeatures != nil {
		out.Requirements.EssentialFeatures = append([]string(nil), d.EssentialFeatures...)
	}
	return out
}

// Predictions are values computed ahead of the step that needs them.
type Predictions struct {
	BudgetSuggestion *BudgetSuggestion `json:"budgetSuggestion,omitempty"`
}

// SetSmartDefaults proposes defaults for the step being entered. The form is not
// modified.
func SetSmartDefaults(form entities.QuoteRequestForm, step Step) SmartDefaults {
	var d SmartDefaults
	switch step {
	case StepVolume:
		speed := SuggestMinSpeed(form.MonthlyVolume.Sum())
		d.MinSpeed = &speed
	case StepPaper:
		if form.PaperRequirements.PrimarySize == entities.PaperA4 && !form.Requirements.HasFeature(featureDuplex) {
			d.EssentialFeatures = append(append([]string{}, form.Requirements.EssentialFeatures...), featureDuplex)
		}
	case StepCurrentSetup:
		volumeRange := CalculateVolumeRange(form.MonthlyVolume.Mono, form.MonthlyVolume.Colour)
		d.SuggestedFeatures = SuggestFeatures(form.IndustryType, volumeRange, form.PaperRequirements.PrimarySize)
	}
	return d
}

// PredictNextFields precomputes the budget suggestion once the requirements step
// is reached.
func PredictNextFields(form entities.QuoteRequestForm, currentStep Step) Predictions {
	if currentStep != StepRequirements {
		return Predictions{}
	}
	volumeRange := CalculateVolumeRange(form.MonthlyVolume.Mono, form.MonthlyVolume.Colour)
	s := SuggestBudgetRange(volumeRange, form.Requirements.EssentialFeatures, form.Requirements.Priority)
	return Predictions{BudgetSuggestion: &s}
}
