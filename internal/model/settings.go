package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Settings holds the user's display and budget preferences.
type Settings struct {
	Currency      string           `json:"currency"`
	MonthlyBudget *decimal.Decimal `json:"monthlyBudget"`
}

// Theme is the persisted color preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, bool) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeLight, ThemeDark:
		return t, true
	}
	return "", false
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

var defaultCategories = map[Type][]string{
	TypeIncome: {
		"💰 Salary", "💼 Freelance", "🏢 Business", "📈 Investment", "🎁 Gift", "💵 Other Income",
	},
	TypeExpense: {
		"🍔 Food & Dining", "🚗 Transportation", "🛍️ Shopping", "🎬 Entertainment",
		"💡 Bills & Utilities", "⚕️ Healthcare", "📚 Education", "✈️ Travel",
		"🛒 Groceries", "💸 Other Expense",
	},
}

// DefaultCategories returns the suggested categories for a type.
// The returned slice is a copy.
func DefaultCategories(t Type) []string {
	return append([]string(nil), defaultCategories[t]...)
}
