// Package pipeline derives totals, category sums and monthly series from a
// transaction list. Every function recomputes from scratch over its input.
package pipeline

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/model"
)

// DefaultMonths is the monthly series lookback used when none is configured.
const DefaultMonths = 6

// Totals sums amounts by type. balance = income - expenses.
func Totals(txs []model.Transaction) model.Totals {
	totals := model.Totals{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}
	for _, t := range txs {
		switch t.Type {
		case model.TypeIncome:
			totals.Income = totals.Income.Add(t.Amount)
		case model.TypeExpense:
			totals.Expenses = totals.Expenses.Add(t.Amount)
		}
	}
	totals.Balance = totals.Income.Sub(totals.Expenses)
	return totals
}

// ByCategory sums expense amounts per category. Income is ignored, and a
// category only appears if it has at least one expense.
func ByCategory(txs []model.Transaction) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if t.Type != model.TypeExpense {
			continue
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}
	return sums
}

// CategoryBreakdown returns per-category expense stats sorted by amount
// descending, then by name.
func CategoryBreakdown(txs []model.Transaction) []model.CategoryStats {
	catMap := make(map[string]*model.CategoryStats)
	total := decimal.Zero

	for _, t := range txs {
		if t.Type != model.TypeExpense {
			continue
		}
		cs, ok := catMap[t.Category]
		if !ok {
			cs = &model.CategoryStats{Category: t.Category, Amount: decimal.Zero}
			catMap[t.Category] = cs
		}
		cs.Amount = cs.Amount.Add(t.Amount)
		cs.Count++
		total = total.Add(t.Amount)
	}

	cats := make([]model.CategoryStats, 0, len(catMap))
	for _, cs := range catMap {
		if total.IsPositive() {
			cs.SharePercent = cs.Amount.Div(total).InexactFloat64() * 100
		}
		cats = append(cats, *cs)
	}
	sort.Slice(cats, func(i, j int) bool {
		if c := cats[i].Amount.Cmp(cats[j].Amount); c != 0 {
			return c > 0
		}
		return cats[i].Category < cats[j].Category
	})
	return cats
}

// MonthlySeries builds exactly months consecutive calendar-month buckets
// ending with ref's month, oldest first. Transactions outside the window are
// ignored. A non-positive months uses DefaultMonths.
func MonthlySeries(txs []model.Transaction, months int, ref time.Time) []model.MonthBucket {
	if months <= 0 {
		months = DefaultMonths
	}

	buckets := make([]model.MonthBucket, months)
	index := make(map[int]int, months)
	anchor := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < months; i++ {
		m := anchor.AddDate(0, i-(months-1), 0)
		buckets[i] = model.MonthBucket{
			Label:    m.Format("Jan 2006"),
			Year:     m.Year(),
			Month:    m.Month(),
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
		}
		index[monthKey(m.Year(), m.Month())] = i
	}

	for _, t := range txs {
		i, ok := index[monthKey(t.Date.Year(), t.Date.Month())]
		if !ok {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			buckets[i].Income = buckets[i].Income.Add(t.Amount)
		case model.TypeExpense:
			buckets[i].Expenses = buckets[i].Expenses.Add(t.Amount)
		}
	}

	return buckets
}

func monthKey(year int, month time.Month) int {
	return year*12 + int(month) - 1
}
