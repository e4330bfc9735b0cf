package domain

import (
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		text   string
		scaled int64
	}{
		{"1.2", 12000},
		{"1.2345", 12345},
		{"1.00", 10000},
		{"1", 10000},
		{"12345.12345678", 123451234},
		{"0.0001", 1},
		{"0", 0},
		{"-1.23456789", -12345},
		{" 2.5 ", 25000},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			amount, err := ParseAmount(tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if amount.Scaled() != tt.scaled {
				t.Errorf("expected %d, got %d", tt.scaled, amount.Scaled())
			}
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, text := range []string{"", "abc", "1.2.3"} {
		t.Run(text, func(t *testing.T) {
			if _, err := ParseAmount(text); err == nil {
				t.Errorf("expected error for %q", text)
			}
		})
	}
}

func TestAmount_String(t *testing.T) {
	tests := []struct {
		scaled   int64
		expected string
	}{
		{12000, "1.2"},
		{12345, "1.2345"},
		{10000, "1.0"},
		{12340000, "1234.0"},
		{1234, "0.1234"},
		{0, "0.0"},
		{-100000, "-10.0"},
		{123451234, "12345.1234"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := NewAmount(tt.scaled).String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestAmount_RoundTrip(t *testing.T) {
	// Truncation at the fourth digit, then back to text.
	amount, err := ParseAmount("12345.12345678")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if amount.Scaled() != 123451234 {
		t.Fatalf("expected 123451234, got %d", amount.Scaled())
	}
	if amount.String() != "12345.1234" {
		t.Errorf("expected %q, got %q", "12345.1234", amount.String())
	}

	// Two amounts from the same text always compare equal.
	other, _ := ParseAmount("12345.12345678")
	if amount != other {
		t.Error("amounts from identical text differ")
	}
}

func TestAmount_Arithmetic(t *testing.T) {
	a := NewAmount(15000)
	b := NewAmount(2500)

	if got := a.Add(b).Scaled(); got != 17500 {
		t.Errorf("Add: expected 17500, got %d", got)
	}
	if got := a.Sub(b).Scaled(); got != 12500 {
		t.Errorf("Sub: expected 12500, got %d", got)
	}
	if !b.Sub(a).IsNegative() {
		t.Error("expected negative result")
	}
	if !a.GreaterThan(b) {
		t.Error("expected a > b")
	}
}
