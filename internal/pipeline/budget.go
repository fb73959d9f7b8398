package pipeline

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/model"
)

// Budget usage thresholds, as a percent of the monthly budget.
const (
	WarningPercent  = 70
	CriticalPercent = 90
)

// Budget measures the current calendar month's expenses against the monthly
// budget in settings. ok is false when no budget is set.
func Budget(settings model.Settings, txs []model.Transaction, now time.Time) (model.BudgetStatus, bool) {
	if settings.MonthlyBudget == nil || !settings.MonthlyBudget.IsPositive() {
		return model.BudgetStatus{}, false
	}
	budget := *settings.MonthlyBudget

	spent := MonthlySeries(txs, 1, now)[0].Expenses

	pct := spent.Div(budget).InexactFloat64() * 100
	if pct > 100 {
		pct = 100
	}
	remaining := budget.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	level := model.BudgetOK
	switch {
	case pct >= CriticalPercent:
		level = model.BudgetCritical
	case pct >= WarningPercent:
		level = model.BudgetWarning
	}

	return model.BudgetStatus{
		Budget:      budget,
		Spent:       spent,
		Remaining:   remaining,
		UsedPercent: pct,
		Level:       level,
	}, true
}
