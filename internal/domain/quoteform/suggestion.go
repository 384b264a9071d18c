package quoteform

import (
	"fmt"
	"math"

	"quote_service/internal/domain/entities"
)

var industryFeatures = map[entities.IndustryType][]string{
	entities.IndustryHealthcare: {featureAdvancedSecurity, featureDuplex, "Large Paper Trays", "Secure Print Release"},
	entities.IndustryLegal:      {featureBookletMaking, featureAdvancedSecurity, featureDuplex, "Stapling"},
	entities.IndustryEducation:  {featureDuplex, "Mobile Printing", "Large Paper Trays", "Scan to Email"},
	entities.IndustryFinance:    {featureAdvancedSecurity, "Secure Print Release", featureDuplex},
	entities.IndustryGovernment: {featureAdvancedSecurity, "Secure Print Release", "Audit Trail"},
}

type volumeFeatures struct {
	from     string
	features []string
}

// volumeFeatureTable applies to every bucket at or above from.
var volumeFeatureTable = []volumeFeatures{
	{Range6kTo13k, []string{"Large Paper Trays", "High Capacity Toner"}},
	{Range30To40k, []string{"Finishing Unit", "Stapling"}},
}

var paperFeatures = map[entities.PaperSize][]string{
	entities.PaperA4:   {featureDuplex},
	entities.PaperA3:   {"A3 Printing", featureDuplex},
	entities.PaperSRA3: {"SRA3 Printing", featureLargeFormat, featureBookletMaking},
}

const (
	baseQuarterlyBudget = 200.0
	perFeatureBudget    = 25.0
)

var volumeBudgetMultiplier = map[string]float64{
	Range0To6k:   1.0,
	Range6kTo13k: 1.3,
	Range13To20k: 1.6,
	Range20To30k: 2.0,
	Range30To40k: 2.5,
	Range40To50k: 3.0,
	Range50kPlus: 3.5,
}

var priorityBudgetMultiplier = map[entities.Priority]float64{
	entities.PrioritySpeed:       1.2,
	entities.PriorityQuality:     1.15,
	entities.PriorityReliability: 1.1,
	entities.PriorityCost:        0.9,
	entities.PriorityBalanced:    1.0,
}

// BudgetSuggestion is a suggested quarterly lease budget in GBP with an
// 80%-130% band.
type BudgetSuggestion struct {
	Suggested   float64 `json:"suggested"`
	Range       string  `json:"range"`
	Explanation string  `json:"explanation"`
}

// SuggestFeatures unions the industry, volume and paper size feature tables,
// keeping first-seen order and dropping duplicates.
func SuggestFeatures(industry entities.IndustryType, volumeRange string, primarySize entities.PaperSize) []string {
	seen := map[string]bool{}
	out := []string{}
	add := func(features []string) {
		for _, f := range features {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}

	add(industryFeatures[industry])
	if idx := volumeRangeIndex(volumeRange); idx >= 0 {
		for _, vf := range volumeFeatureTable {
			if idx >= volumeRangeIndex(vf.from) {
				add(vf.features)
			}
		}
	}
	add(paperFeatures[primarySize])
	return out
}

func SuggestBudgetRange(volumeRange string, features []string, priority entities.Priority) BudgetSuggestion {
	budget := baseQuarterlyBudget * multiplierOr(volumeBudgetMultiplier[volumeRange])
	budget += perFeatureBudget * float64(len(features))
	budget *= multiplierOr(priorityBudgetMultiplier[priority])

	suggested := math.Round(budget)
	label := string(priority)
	if label == "" {
		label = string(entities.PriorityBalanced)
	}
	rangeLabel := volumeRange
	if rangeLabel == "" {
		rangeLabel = "unknown"
	}

	return BudgetSuggestion{
		Suggested:   suggested,
		Range:       FormatCurrency(math.Round(suggested*0.8)) + " - " + FormatCurrency(math.Round(suggested*1.3)),
		Explanation: fmt.Sprintf("Based on a %s monthly volume, %d essential features and a %s priority", rangeLabel, len(features), label),
	}
}

// multiplierOr maps a lookup miss (zero) to 1.0.
func multiplierOr(m float64) float64 {
	if m == 0 {
		return 1.0
	}
	return m
}

// GetWarningsForCombination flags field combinations that rarely work together.
func GetWarningsForCombination(form entities.QuoteRequestForm) []string {
	warnings := []string{}
	total := form.MonthlyVolume.Sum()
	req := form.Requirements

	if total > 20000 && a4Only(form.PaperRequirements) {
		warnings = append(warnings, "High volume on A4 only - an A3 capable device gives more flexibility at this volume")
	}
	if form.Budget.MaxLeasePrice < 300 && len(req.EssentialFeatures) > 5 {
		warnings = append(warnings, "Many essential features with a low budget - consider prioritising the most important ones")
	}
	if req.MinSpeed != nil {
		suggested := SuggestMinSpeed(total)
		if *req.MinSpeed > suggested*2 {
			warnings = append(warnings, fmt.Sprintf("Requested speed of %d PPM is more than double the %d PPM your volume needs", *req.MinSpeed, suggested))
		}
	}
	return warnings
}

func a4Only(p entities.PaperRequirements) bool {
	if p.PrimarySize != entities.PaperA4 {
		return false
	}
	for _, s := range p.AdditionalSizes {
		if s != entities.PaperA4 {
			return false
		}
	}
	return true
}
