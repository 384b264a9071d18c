package quoteform

import (
	"fmt"
	"math"
	"time"

	"quote_service/internal/domain/entities"
)

const (
	BuyoutNotAvailable  = "N/A"
	BuyoutContractEnded = "Contract Ended"

	buyoutFactor = 0.6
	daysPerMonth = 30
)

// MonthlyCost is the monthly equivalent of a buyer's running costs in GBP.
type MonthlyCost struct {
	CPC     float64 `json:"cpc"`
	Lease   float64 `json:"lease"`
	Service float64 `json:"service"`
	Total   float64 `json:"total"`
}

// CalculateBuyout estimates the lump sum to leave a lease early, as of now.
func CalculateBuyout(quarterlyLease *float64, contractEnd *time.Time) string {
	return CalculateBuyoutAt(quarterlyLease, contractEnd, time.Now())
}

// CalculateBuyoutAt is CalculateBuyout evaluated at now. A missing or zero lease,
// or a missing end date, yields BuyoutNotAvailable. Any other lease on a past end
// date is BuyoutContractEnded.
func CalculateBuyoutAt(quarterlyLease *float64, contractEnd *time.Time, now time.Time) string {
	if quarterlyLease == nil || *quarterlyLease == 0 || contractEnd == nil || contractEnd.IsZero() {
		return BuyoutNotAvailable
	}
	if now.After(*contractEnd) {
		return BuyoutContractEnded
	}

	days := contractEnd.Sub(now).Hours() / 24
	months := math.Ceil(days / daysPerMonth)
	monthly := *quarterlyLease / 3
	return fmt.Sprintf("£%.2f", monthly*months*buyoutFactor)
}

func CalculateTotalMonthlyCost(volume entities.MonthlyVolume, costs entities.CurrentCosts) MonthlyCost {
	cpc := (float64(volume.Mono)*costs.MonoRate + float64(volume.Colour)*costs.ColourRate) / 100
	lease := costs.QuarterlyLease / 3
	service := costs.QuarterlyService / 3
	return MonthlyCost{
		CPC:     cpc,
		Lease:   lease,
		Service: service,
		Total:   cpc + lease + service,
	}
}

func ValidateBudget(maxLeasePrice float64, estimated MonthlyCost) []string {
	warnings := []string{}
	if maxLeasePrice < 100 {
		warnings = append(warnings, "Budget may be too low for business-grade equipment")
	}
	if estimated.Total > maxLeasePrice {
		warnings = append(warnings, fmt.Sprintf("Estimated costs (£%.2f) exceed your budget by £%.2f", estimated.Total, estimated.Total-maxLeasePrice))
	}
	return warnings
}
