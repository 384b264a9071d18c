package quoteform

import "fmt"

// Volume bucket labels, smallest first.
const (
	Range0To6k   = "0-6k"
	Range6kTo13k = "6k-13k"
	Range13To20k = "13k-20k"
	Range20To30k = "20k-30k"
	Range30To40k = "30k-40k"
	Range40To50k = "40k-50k"
	Range50kPlus = "50k+"
)

type volumeBucket struct {
	max   int
	label string
}

// volumeBuckets is ordered; a total belongs to the first bucket whose max it does
// not exceed. Totals above the last max fall into Range50kPlus.
var volumeBuckets = []volumeBucket{
	{6000, Range0To6k},
	{13000, Range6kTo13k},
	{20000, Range13To20k},
	{30000, Range20To30k},
	{40000, Range30To40k},
	{50000, Range40To50k},
}

type speedTier struct {
	max int
	ppm int
}

var speedTiers = []speedTier{
	{6000, 20},
	{13000, 25},
	{20000, 30},
	{30000, 35},
	{40000, 45},
	{50000, 55},
	{60000, 65},
}

const topSpeed = 75

// VolumeRanges returns every bucket label in ascending order.
func VolumeRanges() []string {
	out := make([]string, 0, len(volumeBuckets)+1)
	for _, b := range volumeBuckets {
		out = append(out, b.label)
	}
	return append(out, Range50kPlus)
}

// volumeRangeIndex is the position of label in VolumeRanges, or -1.
func volumeRangeIndex(label string) int {
	for i, r := range VolumeRanges() {
		if r == label {
			return i
		}
	}
	return -1
}

func CalculateVolumeRange(mono, colour int) string {
	total := mono + colour
	for _, b := range volumeBuckets {
		if total <= b.max {
			return b.label
		}
	}
	return Range50kPlus
}

// SuggestMinSpeed returns the minimum device speed in pages per minute for a
// monthly page volume.
func SuggestMinSpeed(totalVolume int) int {
	for _, t := range speedTiers {
		if totalVolume <= t.max {
			return t.ppm
		}
	}
	return topSpeed
}

// CalculateCurrentMonthlyCost converts a page volume and a pence-per-page rate to
// pounds.
func CalculateCurrentMonthlyCost(volume int, ratePence float64) float64 {
	return float64(volume) * ratePence / 100
}

func ValidateVolumeAlignment(total, suggestedSpeed, actualSpeed int) []string {
	warnings := []string{}
	if total < 100 {
		warnings = append(warnings, "Very low monthly volume - a shared or desktop device may be more cost-effective")
	}
	if total > 100000 {
		warnings = append(warnings, "Very high monthly volume - consider multiple devices or a production printer")
	}
	if actualSpeed > 0 {
		if float64(actualSpeed) < float64(suggestedSpeed)*0.7 {
			warnings = append(warnings, fmt.Sprintf("Selected speed (%d PPM) may be too slow for your volume. Recommended: %d PPM", actualSpeed, suggestedSpeed))
		}
		if actualSpeed > suggestedSpeed*3 {
			warnings = append(warnings, fmt.Sprintf("Selected speed (%d PPM) may be more than you need. A %d PPM device would cost less", actualSpeed, suggestedSpeed))
		}
	}
	return warnings
}
