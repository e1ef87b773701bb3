// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatAmount renders an amount with its currency symbol.
// e.g., 2500 -> "€2,500", -2000 -> "-€2,000"
func FormatAmount(n int64, currency string) string {
	if n < 0 {
		return "-" + currency + FormatNumber(-n)
	}
	return currency + FormatNumber(n)
}

// FormatSigned always carries an explicit sign, for ledger rows.
// e.g., 2500 -> "+€2,500", 0 -> "+€0"
func FormatSigned(n int64, currency string) string {
	if n < 0 {
		return "-" + currency + FormatNumber(-n)
	}
	return "+" + currency + FormatNumber(n)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDate renders an entry timestamp, with a dash for entries whose
// date could not be recovered.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
