package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// IndustryType is the buyer's sector. It drives feature suggestions and the
// industry-specific business rules.
type IndustryType string

const (
	IndustryHealthcare IndustryType = "Healthcare"
	IndustryLegal      IndustryType = "Legal"
	IndustryEducation  IndustryType = "Education"
	IndustryFinance    IndustryType = "Finance"
	IndustryGovernment IndustryType = "Government"
	IndustryOther      IndustryType = "Other"
)

func (i IndustryType) Valid() bool {
	switch i {
	case IndustryHealthcare, IndustryLegal, IndustryEducation, IndustryFinance, IndustryGovernment, IndustryOther:
		return true
	}
	return false
}

type PaperSize string

const (
	PaperA4     PaperSize = "A4"
	PaperA3     PaperSize = "A3"
	PaperSRA3   PaperSize = "SRA3"
	PaperA5     PaperSize = "A5"
	PaperLetter PaperSize = "Letter"
)

func (p PaperSize) Valid() bool {
	switch p {
	case PaperA4, PaperA3, PaperSRA3, PaperA5, PaperLetter:
		return true
	}
	return false
}

// Priority is what the buyer values most in the replacement device.
type Priority string

const (
	PrioritySpeed       Priority = "speed"
	PriorityQuality     Priority = "quality"
	PriorityReliability Priority = "reliability"
	PriorityCost        Priority = "cost"
	PriorityBalanced    Priority = "balanced"
)

func (p Priority) Valid() bool {
	switch p {
	case PrioritySpeed, PriorityQuality, PriorityReliability, PriorityCost, PriorityBalanced:
		return true
	}
	return false
}

// Date is a calendar date sent by the form as "2006-01-02". RFC3339 timestamps are
// accepted too.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.UTC().Format(dateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}
	d.Time = t.UTC()
	return nil
}

// MonthlyVolume holds page counts per month. Total and VolumeRange are derived
// from Mono and Colour and are overwritten on submission.
type MonthlyVolume struct {
	Mono        int    `json:"mono"`
	Colour      int    `json:"colour"`
	Total       int    `json:"total,omitempty"`
	VolumeRange string `json:"volumeRange,omitempty"`
}

func (v MonthlyVolume) Sum() int {
	return v.Mono + v.Colour
}

type PaperRequirements struct {
	PrimarySize     PaperSize   `json:"primarySize" binding:"omitempty,paper_size"`
	AdditionalSizes []PaperSize `json:"additionalSizes,omitempty" binding:"omitempty,dive,paper_size"`
}

// CurrentCosts are the buyer's existing running costs. Rates are pence per page;
// lease and service are quarterly GBP figures.
type CurrentCosts struct {
	MonoRate         float64 `json:"monoRate"`
	ColourRate       float64 `json:"colourRate"`
	QuarterlyLease   float64 `json:"quarterlyLease,omitempty"`
	QuarterlyService float64 `json:"quarterlyService,omitempty"`
}

type CurrentSetup struct {
	MachineAge      *float64     `json:"machineAge,omitempty"`
	CurrentCosts    CurrentCosts `json:"currentCosts"`
	ContractEndDate *Date        `json:"contractEndDate,omitempty"`
}

type Requirements struct {
	Priority          Priority `json:"priority" binding:"omitempty,priority"`
	MinSpeed          *int     `json:"minSpeed,omitempty"`
	SuggestedSpeed    int      `json:"suggestedSpeed,omitempty"`
	EssentialFeatures []string `json:"essentialFeatures"`
}

func (r Requirements) HasFeature(feature string) bool {
	for _, f := range r.EssentialFeatures {
		if f == feature {
			return true
		}
	}
	return false
}

type Budget struct {
	MaxLeasePrice float64 `json:"maxLeasePrice"`
}

// QuoteRequestForm is the six-step quote request a buyer fills in. It is passed by
// value; callers get back derived copies, never shared references.
type QuoteRequestForm struct {
	CompanyName  string       `json:"companyName"`
	IndustryType IndustryType `json:"industryType" binding:"omitempty,industry_type"`
	NumEmployees int          `json:"numEmployees"`
	NumLocations int          `json:"numLocations"`

	ContactName     string `json:"contactName,omitempty"`
	Email           string `json:"email,omitempty" binding:"omitempty,email"`
	Phone           string `json:"phone,omitempty"`
	Postcode        string `json:"postcode,omitempty"`
	AdditionalNotes string `json:"additionalNotes,omitempty"`

	AdditionalServices []string `json:"additionalServices,omitempty"`

	MonthlyVolume     MonthlyVolume     `json:"monthlyVolume"`
	PaperRequirements PaperRequirements `json:"paperRequirements"`
	CurrentSetup      CurrentSetup      `json:"currentSetup"`
	Requirements      Requirements      `json:"requirements"`
	Budget            Budget            `json:"budget"`
}

// Clone returns a deep copy so derived values never alias the caller's slices or
// pointers.
func (f QuoteRequestForm) Clone() QuoteRequestForm {
	out := f
	if f.AdditionalServices != nil {
		out.AdditionalServices = append([]string(nil), f.AdditionalServices...)
	}
	if f.PaperRequirements.AdditionalSizes != nil {
		out.PaperRequirements.AdditionalSizes = append([]PaperSize(nil), f.PaperRequirements.AdditionalSizes...)
	}
	if f.Requirements.EssentialFeatures != nil {
		out.Requirements.EssentialFeatures = append([]string(nil), f.Requirements.EssentialFeatures...)
	}
	if f.Requirements.MinSpeed != nil {
		v := *f.Requirements.MinSpeed
		out.Requirements.MinSpeed = &v
	}
	if f.CurrentSetup.MachineAge != nil {
		v := *f.CurrentSetup.MachineAge
		out.CurrentSetup.MachineAge = &v
	}
	if f.CurrentSetup.ContractEndDate != nil {
		v := *f.CurrentSetup.ContractEndDate
		out.CurrentSetup.ContractEndDate = &v
	}
	return out
}
