package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "Php 0.00"},
		{"4.5", "Php 4.50"},
		{"999", "Php 999.00"},
		{"1234.5", "Php 1,234.50"},
		{"1234567.891", "Php 1,234,567.89"},
		{"-42.10", "-Php 42.10"},
	}
	for _, tc := range cases {
		got := FormatAmount(decimal.RequireFromString(tc.in))
		if got != tc.want {
			t.Errorf("FormatAmount(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.June, 1, 15, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2025-06-01 Sun" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDate(time.Time{}); got != "-" {
		t.Errorf("FormatDate(zero) = %q, want %q", got, "-")
	}
}

func TestFormatMonthDay(t *testing.T) {
	d := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)
	if got := FormatMonthDay(d); got != "06-03" {
		t.Errorf("FormatMonthDay = %q", got)
	}
}
