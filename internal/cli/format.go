// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/model"
)

// FormatMoney formats an amount with the currency symbol, two decimals and
// comma grouping.
// e.g., (1234.5, "₹") -> "₹1,234.50", (-12, "$") -> "-$12.00"
func FormatMoney(amount decimal.Decimal, symbol string) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		// Too large to group; show it plain.
		return sign + symbol + fixed
	}
	return sign + symbol + FormatNumber(n) + "." + frac
}

// FormatSigned formats a transaction amount with "+" for income and "-" for
// expenses.
func FormatSigned(t model.Transaction, symbol string) string {
	if t.Type == model.TypeIncome {
		return "+" + FormatMoney(t.Amount, symbol)
	}
	return "-" + FormatMoney(t.Amount, symbol)
}

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

// FormatPercent formats a 0-100 value as a percentage string.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatMonth renders a YYYY-MM key as e.g. "Mar 2024". Invalid keys are
// returned unchanged.
func FormatMonth(key string) string {
	y, m, ok := strings.Cut(key, "-")
	if !ok {
		return key
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return key
	}
	month, err := strconv.Atoi(m)
	if err != nil || month < 1 || month > 12 {
		return key
	}
	return fmt.Sprintf("%.3s %d", time.Month(month), year)
}

// Truncate shortens s to at most n runes, marking the cut with "…".
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
