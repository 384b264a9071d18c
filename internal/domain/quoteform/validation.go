package quoteform

import (
	"fmt"
	"strings"

	"quote_service/internal/domain/entities"
)

// Step is a page of the quote request form, numbered from 1.
type Step int

const (
	StepCompanyDetails Step = iota + 1
	StepVolume
	StepPaper
	StepCurrentSetup
	StepRequirements
	StepBudget
)

var stepNames = map[Step]string{
	StepCompanyDetails: "Company Details",
	StepVolume:         "Volume",
	StepPaper:          "Paper",
	StepCurrentSetup:   "Current Setup",
	StepRequirements:   "Requirements",
	StepBudget:         "Budget",
}

// Steps returns the form steps in order.
func Steps() []Step {
	return []Step{StepCompanyDetails, StepVolume, StepPaper, StepCurrentSetup, StepRequirements, StepBudget}
}

func (s Step) Valid() bool {
	_, ok := stepNames[s]
	return ok
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

const (
	minMonthlyVolume = 50
	maxMonthlyVolume = 200000
)

// StepResult carries the hard validation errors of one step keyed by field.
type StepResult struct {
	IsValid bool              `json:"isValid"`
	Errors  map[string]string `json:"errors"`
}

// BusinessLogicResult carries cross-field findings. Errors is reserved for hard
// cross-field constraints and is currently always empty.
type BusinessLogicResult struct {
	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`
}

type stepValidator func(form entities.QuoteRequestForm, errs map[string]string)

var stepValidators = map[Step]stepValidator{
	StepCompanyDetails: validateCompanyDetails,
	StepVolume:         validateVolume,
	StepPaper:          validatePaper,
	StepCurrentSetup:   validateCurrentSetup,
	StepRequirements:   validateRequirements,
	StepBudget:         validateBudgetStep,
}

// ValidateStep checks required fields and numeric bounds of a single step. Steps
// outside the form are always valid.
func ValidateStep(step Step, form entities.QuoteRequestForm) StepResult {
	errs := map[string]string{}
	if v, ok := stepValidators[step]; ok {
		v(form, errs)
	}
	return StepResult{IsValid: len(errs) == 0, Errors: errs}
}

// ValidateAllSteps runs ValidateStep for every step.
func ValidateAllSteps(form entities.QuoteRequestForm) map[Step]StepResult {
	out := make(map[Step]StepResult, len(stepValidators))
	for _, s := range Steps() {
		out[s] = ValidateStep(s, form)
	}
	return out
}

func validateCompanyDetails(form entities.QuoteRequestForm, errs map[string]string) {
	if strings.TrimSpace(form.CompanyName) == "" {
		errs["companyName"] = "Company name is required"
	}
	if form.IndustryType == "" {
		errs["industryType"] = "Industry type is required"
	} else if !form.IndustryType.Valid() {
		errs["industryType"] = "Industry type is not recognised"
	}
	if form.NumEmployees <= 0 {
		errs["numEmployees"] = "Number of employees is required"
	}
	if form.NumLocations < 1 {
		errs["numLocations"] = "At least one location is required"
	}
}

func validateVolume(form entities.QuoteRequestForm, errs map[string]string) {
	if form.MonthlyVolume.Mono < 0 || form.MonthlyVolume.Colour < 0 {
		errs["monthlyVolume"] = "Monthly volumes cannot be negative"
		return
	}
	total := form.MonthlyVolume.Sum()
	switch {
	case total < minMonthlyVolume:
		errs["monthlyVolume"] = fmt.Sprintf("Total monthly volume must be at least %d pages", minMonthlyVolume)
	case total > maxMonthlyVolume:
		errs["monthlyVolume"] = fmt.Sprintf("Total monthly volume cannot exceed %d pages - contact us for production print", maxMonthlyVolume)
	}
}

func validatePaper(form entities.QuoteRequestForm, errs map[string]string) {
	if form.PaperRequirements.PrimarySize == "" {
		errs["primarySize"] = "Primary paper size is required"
	} else if !form.PaperRequirements.PrimarySize.Valid() {
		errs["primarySize"] = "Primary paper size is not supported"
	}
}

func validateCurrentSetup(form entities.QuoteRequestForm, errs map[string]string) {
	setup := form.CurrentSetup
	if setup.MachineAge == nil {
		errs["machineAge"] = "Current machine age is required"
	} else if *setup.MachineAge < 0 {
		errs["machineAge"] = "Machine age cannot be negative"
	}
	if setup.CurrentCosts.MonoRate < 0 {
		errs["monoRate"] = "Mono rate cannot be negative"
	}
	if setup.CurrentCosts.ColourRate < 0 {
		errs["colourRate"] = "Colour rate cannot be negative"
	}
}

func validateRequirements(form entities.QuoteRequestForm, errs map[string]string) {
	req := form.Requirements
	if req.Priority == "" {
		errs["priority"] = "Please select a priority"
	} else if !req.Priority.Valid() {
		errs["priority"] = "Priority is not recognised"
	}
	if req.MinSpeed != nil && *req.MinSpeed <= 0 {
		errs["minSpeed"] = "Minimum speed must be greater than zero"
	}
}

func validateBudgetStep(form entities.QuoteRequestForm, errs map[string]string) {
	if form.Budget.MaxLeasePrice <= 0 {
		errs["maxLeasePrice"] = "Maximum quarterly lease price must be greater than zero"
	}
}

const (
	featureLargeFormat      = "Large Format Printing"
	featureAdvancedSecurity = "Advanced Security"
	featureBookletMaking    = "Booklet Making"
	featureDuplex           = "Duplex Printing"
)

// ValidateBusinessLogic returns advisory cross-field findings. None of them block
// submission.
func ValidateBusinessLogic(form entities.QuoteRequestForm) BusinessLogicResult {
	warnings := []string{}
	total := form.MonthlyVolume.Sum()
	suggested := SuggestMinSpeed(total)
	req := form.Requirements
	budget := form.Budget.MaxLeasePrice

	if req.MinSpeed != nil && float64(*req.MinSpeed) < float64(suggested)*0.7 {
		warnings = append(warnings, fmt.Sprintf("Minimum speed of %d PPM is low for %d pages per month. We suggest at least %d PPM", *req.MinSpeed, total, suggested))
	}
	if form.PaperRequirements.PrimarySize == entities.PaperA4 && req.HasFeature(featureLargeFormat) {
		warnings = append(warnings, "Large format printing needs an A3 or larger device, but A4 is your primary paper size")
	}
	if budget < 300 && (req.Priority == entities.PrioritySpeed || req.Priority == entities.PriorityQuality) {
		warnings = append(warnings, fmt.Sprintf("A budget under £300 per quarter may not cover a device optimised for %s", req.Priority))
	}
	if budget < 500 && len(req.EssentialFeatures) > 5 {
		warnings = append(warnings, fmt.Sprintf("%d essential features may not fit a budget under £500 per quarter", len(req.EssentialFeatures)))
	}
	switch form.IndustryType {
	case entities.IndustryHealthcare:
		if !req.HasFeature(featureAdvancedSecurity) {
			warnings = append(warnings, "Healthcare organisations usually need Advanced Security to protect patient data")
		}
	case entities.IndustryLegal:
		if !req.HasFeature(featureBookletMaking) {
			warnings = append(warnings, "Legal firms often benefit from Booklet Making for bundles and court documents")
		}
	}

	return BusinessLogicResult{Warnings: warnings, Errors: []string{}}
}
