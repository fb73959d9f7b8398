package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Totals holds income, expenses and their difference.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// MonthBucket holds income and expense sums for one calendar month.
type MonthBucket struct {
	Label    string // "Jan 2024"
	Year     int
	Month    time.Month
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Net returns income minus expenses for the month.
func (b MonthBucket) Net() decimal.Decimal {
	return b.Income.Sub(b.Expenses)
}

// CategoryStats holds the expense total for one category.
type CategoryStats struct {
	Category     string
	Amount       decimal.Decimal
	Count        int
	SharePercent float64
}

// BudgetLevel classifies how much of the budget has been used.
type BudgetLevel string

const (
	BudgetOK       BudgetLevel = "ok"
	BudgetWarning  BudgetLevel = "warning"
	BudgetCritical BudgetLevel = "critical"
)

// BudgetStatus holds monthly budget tracking data.
type BudgetStatus struct {
	Budget      decimal.Decimal
	Spent       decimal.Decimal
	Remaining   decimal.Decimal // never negative
	UsedPercent float64         // capped at 100
	Level       BudgetLevel
}
