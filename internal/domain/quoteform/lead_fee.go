package quoteform

type leadFee struct {
	volumeRange string
	gbp         float64
}

// leadFees is the price a vendor pays to unlock a quote request, by volume bucket.
var leadFees = []leadFee{
	{Range0To6k, 15},
	{Range6kTo13k, 20},
	{Range13To20k, 25},
	{Range20To30k, 30},
	{Range30To40k, 40},
	{Range40To50k, 50},
	{Range50kPlus, 60},
}

const defaultLeadFee = 15.0

// LeadFee returns the lead price in GBP for a volume bucket. Unknown buckets pay
// the smallest fee.
func LeadFee(volumeRange string) float64 {
	for _, f := range leadFees {
		if f.volumeRange == volumeRange {
			return f.gbp
		}
	}
	return defaultLeadFee
}
