package quoteform

import (
	"time"

	"quote_service/internal/domain/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	SubmissionSource  = "quote-request-form"
	SubmissionVersion = "2.0"
)

var gbPrinter = message.NewPrinter(language.BritishEnglish)

// FormatForSubmission finalises a form for sending, stamping it with the current
// time.
func FormatForSubmission(form entities.QuoteRequestForm) entities.Submission {
	return FormatForSubmissionAt(form, time.Now())
}

// FormatForSubmissionAt derives total, volume range and speeds, defaults minSpeed
// when absent and attaches submission metadata. Re-applying it to its own output
// yields the same derived fields; only the timestamp moves.
func FormatForSubmissionAt(form entities.QuoteRequestForm, now time.Time) entities.Submission {
	out := form.Clone()

	total := out.MonthlyVolume.Sum()
	out.MonthlyVolume.Total = total
	out.MonthlyVolume.VolumeRange = CalculateVolumeRange(out.MonthlyVolume.Mono, out.MonthlyVolume.Colour)

	suggested := SuggestMinSpeed(total)
	if out.Requirements.MinSpeed == nil {
		out.Requirements.MinSpeed = &suggested
	}
	out.Requirements.SuggestedSpeed = suggested

	return entities.Submission{
		QuoteRequestForm: out,
		Submission: entities.SubmissionMeta{
			Timestamp: now.UTC().Format(time.RFC3339Nano),
			Source:    SubmissionSource,
			Version:   SubmissionVersion,
		},
	}
}

// FormatCurrency renders pounds as "£1,234.50".
func FormatCurrency(v float64) string {
	if v < 0 {
		return "-£" + gbPrinter.Sprintf("%.2f", -v)
	}
	return "£" + gbPrinter.Sprintf("%.2f", v)
}

// FormatNumber renders v with British digit grouping and at most two decimals.
func FormatNumber(v float64) string {
	return gbPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatPercentage renders a value already expressed in percent, e.g. 12.5 as
// "12.5%".
func FormatPercentage(v float64) string {
	return gbPrinter.Sprintf("%.1f%%", v)
}
