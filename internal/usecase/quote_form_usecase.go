package usecase

import (
	"errors"
	"time"

	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quoteform"

	"go.uber.org/zap"
)

var ErrInvalidVolume = errors.New("invalid monthly volume")

// FormAnalysis gathers every advisory computation over a form in progress.
type FormAnalysis struct {
	VolumeRange         string                        `json:"volumeRange"`
	SuggestedSpeed      int                           `json:"suggestedSpeed"`
	BusinessLogic       quoteform.BusinessLogicResult `json:"businessLogic"`
	CombinationWarnings []string                      `json:"combinationWarnings"`
	VolumeWarnings      []string                      `json:"volumeWarnings"`
	BudgetWarnings      []string                      `json:"budgetWarnings"`
	MonthlyCost         quoteform.MonthlyCost         `json:"monthlyCost"`
	MonthlyCostLabel    string                        `json:"monthlyCostLabel"`
	Buyout              string                        `json:"buyout"`
}

// Assistance is what the form offers when a step is entered: the proposed
// defaults, the predictions for later steps and the form with the defaults applied.
type Assistance struct {
	Defaults    quoteform.SmartDefaults   `json:"defaults"`
	Predictions quoteform.Predictions     `json:"predictions"`
	Form        entities.QuoteRequestForm `json:"form"`
}

type VolumeProfile struct {
	Total          int     `json:"total"`
	TotalLabel     string  `json:"totalLabel"`
	VolumeRange    string  `json:"volumeRange"`
	SuggestedSpeed int     `json:"suggestedSpeed"`
	LeadFee        float64 `json:"leadFee"`
}

// IQuoteFormUseCase exposes the stateless form helpers. Nothing here touches
// storage, so no session is needed.
type IQuoteFormUseCase interface {
	ValidateStep(step quoteform.Step, form entities.QuoteRequestForm) quoteform.StepResult
	Analyze(form entities.QuoteRequestForm) FormAnalysis
	Assist(step quoteform.Step, form entities.QuoteRequestForm) Assistance
	VolumeProfile(mono, colour int) (VolumeProfile, error)
	Buyout(quarterlyLease *float64, contractEnd *time.Time) string
}

type QuoteFormUseCase struct {
	log *zap.Logger
	now func() time.Time
}

var _ IQuoteFormUseCase = (*QuoteFormUseCase)(nil)

func NewQuoteFormUseCase(log *zap.Logger) *QuoteFormUseCase {
	return &QuoteFormUseCase{log: log.Named("form.usecase"), now: time.Now}
}

func (u *QuoteFormUseCase) ValidateStep(step quoteform.Step, form entities.QuoteRequestForm) quoteform.StepResult {
	res := quoteform.ValidateStep(step, form)
	u.log.Debug("step validated", zap.Int("step", int(step)), zap.Bool("valid", res.IsValid), zap.Int("errors", len(res.Errors)))
	return res
}

func (u *QuoteFormUseCase) Analyze(form entities.QuoteRequestForm) FormAnalysis {
	total := form.MonthlyVolume.Sum()
	suggested := quoteform.SuggestMinSpeed(total)
	actual := 0
	if form.Requirements.MinSpeed != nil {
		actual = *form.Requirements.MinSpeed
	}
	monthly := quoteform.CalculateTotalMonthlyCost(form.MonthlyVolume, form.CurrentSetup.CurrentCosts)

	var lease *float64
	if form.CurrentSetup.CurrentCosts.QuarterlyLease > 0 {
		v := form.CurrentSetup.CurrentCosts.QuarterlyLease
		lease = &v
	}
	var end *time.Time
	if form.CurrentSetup.ContractEndDate != nil {
		t := form.CurrentSetup.ContractEndDate.Time
		end = &t
	}

	return FormAnalysis{
		VolumeRange:         quoteform.CalculateVolumeRange(form.MonthlyVolume.Mono, form.MonthlyVolume.Colour),
		SuggestedSpeed:      suggested,
		BusinessLogic:       quoteform.ValidateBusinessLogic(form),
		CombinationWarnings: quoteform.GetWarningsForCombination(form),
		VolumeWarnings:      quoteform.ValidateVolumeAlignment(total, suggested, actual),
		BudgetWarnings:      quoteform.ValidateBudget(form.Budget.MaxLeasePrice, monthly),
		MonthlyCost:         monthly,
		MonthlyCostLabel:    quoteform.FormatCurrency(monthly.Total),
		Buyout:              quoteform.CalculateBuyoutAt(lease, end, u.now()),
	}
}

func (u *QuoteFormUseCase) Assist(step quoteform.Step, form entities.QuoteRequestForm) Assistance {
	defaults := quoteform.SetSmartDefaults(form, step)
	return Assistance{
		Defaults:    defaults,
		Predictions: quoteform.PredictNextFields(form, step),
		Form:        defaults.ApplyTo(form),
	}
}

func (u *QuoteFormUseCase) VolumeProfile(mono, colour int) (VolumeProfile, error) {
	if mono < 0 || colour < 0 {
		return VolumeProfile{}, ErrInvalidVolume
	}
	total := mono + colour
	volumeRange := quoteform.CalculateVolumeRange(mono, colour)
	return VolumeProfile{
		Total:          total,
		TotalLabel:     quoteform.FormatNumber(float64(total)),
		VolumeRange:    volumeRange,
		SuggestedSpeed: quoteform.SuggestMinSpeed(total),
		LeadFee:        quoteform.LeadFee(volumeRange),
	}, nil
}

func (u *QuoteFormUseCase) Buyout(quarterlyLease *float64, contractEnd *time.Time) string {
	return quoteform.CalculateBuyoutAt(quarterlyLease, contractEnd, u.now())
}
