package utils

import (
	"testing"
	"time"
)

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0 seconds"},
		{500 * time.Millisecond, "0 seconds"},
		{time.Second, "1 second"},
		{3*time.Minute + 12*time.Second, "3 minutes 12 seconds"},
		{time.Hour, "1 hour"},
		{15*24*time.Hour + 7*time.Hour + 5*time.Minute, "15 days 7 hours"},
		{24*time.Hour + 30*time.Minute, "1 day 30 minutes"},
		{20*24*time.Hour + 3*time.Hour, "20 days 3 hours"},
		{2*time.Minute + 1500*time.Millisecond, "2 minutes 1 second"},
	}

	for _, tt := range tests {
		if got := FormatUptime(tt.in); got != tt.want {
			t.Errorf("FormatUptime(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCutPrefixFold(t *testing.T) {
	rest, ok := CutPrefixFold("SAY Hello World", "say ")
	if !ok || rest != "Hello World" {
		t.Errorf("Expected cut to keep %q, got %q (%v)", "Hello World", rest, ok)
	}

	if _, ok := CutPrefixFold("sa", "say "); ok {
		t.Errorf("Expected no match for a shorter input")
	}
	if _, ok := CutPrefixFold("saying", "say "); ok {
		t.Errorf("Expected no match without the separator")
	}
}
