package market

import (
	"testing"
	"time"
)

func TestSession_IsOpen(t *testing.T) {
	sess, err := NewSession("09:30", "16:00", "America/New_York")
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	ny, _ := time.LoadLocation("America/New_York")

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"mid-session", time.Date(2025, 6, 2, 11, 0, 0, 0, ny), true}, // Monday
		{"at open", time.Date(2025, 6, 2, 9, 30, 0, 0, ny), true},
		{"before open", time.Date(2025, 6, 2, 9, 29, 0, 0, ny), false},
		{"at close", time.Date(2025, 6, 2, 16, 0, 0, 0, ny), false},
		{"saturday", time.Date(2025, 6, 7, 11, 0, 0, 0, ny), false},
		{"sunday", time.Date(2025, 6, 8, 11, 0, 0, 0, ny), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sess.IsOpen(tt.t); got != tt.want {
				t.Errorf("IsOpen(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestSession_IsOpenConvertsTimezone(t *testing.T) {
	sess, err := NewSession("09:30", "16:00", "America/New_York")
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	// 15:00 UTC on a Monday is 11:00 in New York (EDT).
	utc := time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)
	if !sess.IsOpen(utc) {
		t.Error("expected session open for UTC time inside NY hours")
	}
}

func TestNewSession_Invalid(t *testing.T) {
	if _, err := NewSession("09:30", "16:00", "Not/AZone"); err == nil {
		t.Error("expected error for bad timezone")
	}
	if _, err := NewSession("nope", "16:00", "UTC"); err == nil {
		t.Error("expected error for bad open time")
	}
	if _, err := NewSession("16:00", "09:30", "UTC"); err == nil {
		t.Error("expected error for close before open")
	}
}
