package util

import (
	"testing"
	"time"
	"unicode"
)

func TestGenerateNumericCode(t *testing.T) {
	t.Parallel()

	for range 200 {
		code, err := GenerateNumericCode()
		if err != nil {
			t.Fatalf("GenerateNumericCode() error = %v", err)
		}

		if len(code) != 6 {
			t.Fatalf("GenerateNumericCode() = %q, want 6 digits", code)
		}

		if code[0] == '0' {
			t.Fatalf("GenerateNumericCode() = %q, leading zero", code)
		}

		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("GenerateNumericCode() = %q, non-digit %q", code, r)
			}
		}
	}
}

func TestGenerateTempPassword(t *testing.T) {
	t.Parallel()

	for range 50 {
		password, err := GenerateTempPassword()
		if err != nil {
			t.Fatalf("GenerateTempPassword() error = %v", err)
		}

		if len(password) != tempPasswordLength {
			t.Fatalf("GenerateTempPassword() length = %d, want %d", len(password), tempPasswordLength)
		}

		var hasUpper, hasLower, hasDigit bool
		for _, r := range password {
			switch {
			case unicode.IsUpper(r):
				hasUpper = true
			case unicode.IsLower(r):
				hasLower = true
			case unicode.IsDigit(r):
				hasDigit = true
			}
		}

		if !hasUpper || !hasLower || !hasDigit {
			t.Fatalf("GenerateTempPassword() = %q, missing required character class", password)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "seconds only", duration: 45 * time.Second, expected: "45s"},
		{name: "whole minutes", duration: 15 * time.Minute, expected: "15m"},
		{name: "minutes and seconds", duration: 5*time.Minute + 10*time.Second, expected: "5m10s"},
		{name: "hours and minutes", duration: 90 * time.Minute, expected: "1h30m"},
		{name: "whole hours", duration: 24 * time.Hour, expected: "24h0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.duration, got, tt.expected)
			}
		})
	}
}
