package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.34, "$2.34"},
		{-1.23, "-$1.23"},
		{0, "$0.00"},
		{448.7, "$448.70"},
		{12345.678, "$12,345.68"},
		{-9876.5, "-$9,876.50"},
	}

	for _, tt := range tests {
		if got := Currency(tt.in); got != tt.want {
			t.Errorf("Currency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.48, "+0.48%"},
		{-0.30, "-0.30%"},
		{0, "+0.00%"},
		{12.345, "+12.35%"},
	}

	for _, tt := range tests {
		if got := Percent(tt.in); got != tt.want {
			t.Errorf("Percent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVolume(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{45678900, "45.7M"},
		{1000000, "1.0M"},
		{250000, "0.3M"},
		{0, "0.0M"},
	}

	for _, tt := range tests {
		if got := Volume(tt.in); got != tt.want {
			t.Errorf("Volume(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.87, "87%"},
		{0.5, "50%"},
		{1, "100%"},
		{0.004, "0%"},
	}

	for _, tt := range tests {
		if got := Confidence(tt.in); got != tt.want {
			t.Errorf("Confidence(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestImpliedVol(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.12, "12.0%"},
		{0.135, "13.5%"},
		{0, "0.0%"},
	}

	for _, tt := range tests {
		if got := ImpliedVol(tt.in); got != tt.want {
			t.Errorf("ImpliedVol(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestChangeClass(t *testing.T) {
	if got := ChangeClass(0); got != "positive" {
		t.Errorf("ChangeClass(0) = %q, want positive", got)
	}
	if got := ChangeClass(1.5); got != "positive" {
		t.Errorf("ChangeClass(1.5) = %q, want positive", got)
	}
	if got := ChangeClass(-0.01); got != "negative" {
		t.Errorf("ChangeClass(-0.01) = %q, want negative", got)
	}
}

func TestBadgeVariant(t *testing.T) {
	if got := BadgeVariant(0); got != "success" {
		t.Errorf("BadgeVariant(0) = %q, want success", got)
	}
	if got := BadgeVariant(-2); got != "destructive" {
		t.Errorf("BadgeVariant(-2) = %q, want destructive", got)
	}
}
