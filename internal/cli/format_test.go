package cli

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/model"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-98765, "-98,765"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		symbol string
		want   string
	}{
		{"0", "₹", "₹0.00"},
		{"42.1", "₹", "₹42.10"},
		{"1234.5", "$", "$1,234.50"},
		{"1000000", "€", "€1,000,000.00"},
		{"0.005", "$", "$0.01"},
		{"-12", "$", "-$12.00"},
		{"99.999", "USD ", "USD 100.00"},
	}
	for _, tt := range tests {
		got := FormatMoney(decimal.RequireFromString(tt.amount), tt.symbol)
		if got != tt.want {
			t.Errorf("FormatMoney(%s, %q) = %q, want %q", tt.amount, tt.symbol, got, tt.want)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	in := model.Transaction{Type: model.TypeIncome, Amount: decimal.NewFromInt(5000)}
	if got := FormatSigned(in, "₹"); got != "+₹5,000.00" {
		t.Errorf("FormatSigned(income) = %q, want +₹5,000.00", got)
	}
	out := model.Transaction{Type: model.TypeExpense, Amount: decimal.RequireFromString("12.5")}
	if got := FormatSigned(out, "₹"); got != "-₹12.50" {
		t.Errorf("FormatSigned(expense) = %q, want -₹12.50", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(72.345); got != "72.3%" {
		t.Errorf("FormatPercent(72.345) = %q, want 72.3%%", got)
	}
	if got := FormatPercent(100); got != "100.0%" {
		t.Errorf("FormatPercent(100) = %q, want 100.0%%", got)
	}
}

func TestFormatMonth(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-03", "Mar 2024"},
		{"2023-12", "Dec 2023"},
		{"2024-13", "2024-13"},
		{"march", "march"},
	}
	for _, tt := range tests {
		if got := FormatMonth(tt.in); got != tt.want {
			t.Errorf("FormatMonth(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"weekly shop", 20, "weekly shop"},
		{"weekly shop", 6, "weekl…"},
		{"🛒 Groceries", 4, "🛒 G…"},
		{"abc", 1, "…"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
