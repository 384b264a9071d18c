package quoteform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCalculateVolumeRange(t *testing.T) {
	cases := []struct {
		mono, colour int
		want         string
	}{
		{0, 0, Range0To6k},
		{6000, 0, Range0To6k},
		{5000, 1001, Range6kTo13k},
		{13000, 0, Range6kTo13k},
		{13001, 0, Range13To20k},
		{10000, 10000, Range13To20k},
		{20001, 0, Range20To30k},
		{30000, 0, Range20To30k},
		{40000, 0, Range30To40k},
		{45000, 5000, Range40To50k},
		{50001, 0, Range50kPlus},
		{150000, 50000, Range50kPlus},
	}
	for _, tc := range cases {
		if got := CalculateVolumeRange(tc.mono, tc.colour); got != tc.want {
			t.Fatalf("CalculateVolumeRange(%d, %d): expected %q, got %q", tc.mono, tc.colour, tc.want, got)
		}
	}
}

func TestCalculateVolumeRange_AlwaysAKnownBucket(t *testing.T) {
	known := map[string]bool{}
	for _, r := range VolumeRanges() {
		known[r] = true
	}
	if len(known) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(known))
	}
	for total := 0; total <= 70000; total += 250 {
		if r := CalculateVolumeRange(total, 0); !known[r] {
			t.Fatalf("unexpected bucket %q for %d", r, total)
		}
	}
}

func TestSuggestMinSpeed(t *testing.T) {
	cases := map[int]int{
		0:      20,
		6000:   20,
		6001:   25,
		13000:  25,
		20000:  30,
		30000:  35,
		40000:  45,
		50000:  55,
		60000:  65,
		60001:  75,
		500000: 75,
	}
	for total, want := range cases {
		if got := SuggestMinSpeed(total); got != want {
			t.Fatalf("SuggestMinSpeed(%d): expected %d, got %d", total, want, got)
		}
	}
}

func TestSuggestMinSpeed_Monotonic(t *testing.T) {
	prev := SuggestMinSpeed(0)
	for total := 1; total <= 80000; total += 37 {
		got := SuggestMinSpeed(total)
		if got < prev {
			t.Fatalf("speed decreased at %d: %d < %d", total, got, prev)
		}
		prev = got
	}
}

func TestCalculateCurrentMonthlyCost(t *testing.T) {
	if got := CalculateCurrentMonthlyCost(10000, 0.8); got != 80 {
		t.Fatalf("expected 80, got %v", got)
	}
	if got := CalculateCurrentMonthlyCost(0, 5); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestValidateVolumeAlignment(t *testing.T) {
	t.Run("aligned", func(t *testing.T) {
		if got := ValidateVolumeAlignment(10000, 25, 25); len(got) != 0 {
			t.Fatalf("expected no warnings, got %v", got)
		}
	})

	t.Run("no speed selected", func(t *testing.T) {
		if got := ValidateVolumeAlignment(10000, 25, 0); len(got) != 0 {
			t.Fatalf("expected no warnings, got %v", got)
		}
	})

	t.Run("low volume and slow", func(t *testing.T) {
		got := ValidateVolumeAlignment(50, 20, 10)
		want := []string{
			"Very low monthly volume - a shared or desktop device may be more cost-effective",
			"Selected speed (10 PPM) may be too slow for your volume. Recommended: 20 PPM",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("unexpected warnings (-want +got):\n%s", diff)
		}
	})

	t.Run("high volume and oversized", func(t *testing.T) {
		got := ValidateVolumeAlignment(120000, 20, 61)
		if len(got) != 2 {
			t.Fatalf("expected 2 warnings, got %v", got)
		}
		if got[0] != "Very high monthly volume - consider multiple devices or a production printer" {
			t.Fatalf("unexpected first warning: %q", got[0])
		}
	})

	t.Run("band edges are accepted", func(t *testing.T) {
		if got := ValidateVolumeAlignment(1000, 20, 14); len(got) != 0 {
			t.Fatalf("expected 14 PPM (0.7x) to pass, got %v", got)
		}
		if got := ValidateVolumeAlignment(1000, 20, 60); len(got) != 0 {
			t.Fatalf("expected 60 PPM (3x) to pass, got %v", got)
		}
	})
}

func TestLeadFee(t *testing.T) {
	if got := LeadFee(Range20To30k); got != 30 {
		t.Fatalf("expected 30, got %v", got)
	}
	if got := LeadFee("bogus"); got != defaultLeadFee {
		t.Fatalf("expected default fee, got %v", got)
	}
	prev := 0.0
	for _, r := range VolumeRanges() {
		fee := LeadFee(r)
		if fee < prev {
			t.Fatalf("fee for %s decreased", r)
		}
		prev = fee
	}
}
