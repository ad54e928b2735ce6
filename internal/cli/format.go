// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyLabel prefixes every rendered amount.
const CurrencyLabel = "Php"

// FormatAmount renders a peso amount with two decimals and comma grouping.
// e.g. 1234.5 -> "Php 1,234.50"
func FormatAmount(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(s, ".")
	grouped := groupThousands(whole)

	out := CurrencyLabel + " " + grouped + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}

// FormatDate renders a row date as a calendar timestamp.
// e.g. "2025-06-01 Sun"
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 Mon")
}

// FormatMonthDay renders a chart axis label. e.g. "06-01"
func FormatMonthDay(t time.Time) string {
	return t.Format("01-02")
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
