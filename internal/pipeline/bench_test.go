package pipeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/model"
)

// syntheticHistory builds n transactions spread over the two years before ref.
func syntheticHistory(n int, ref time.Time) []model.Transaction {
	txs := make([]model.Transaction, n)
	for i := range txs {
		typ := model.TypeExpense
		if i%5 == 0 {
			typ = model.TypeIncome
		}
		txs[i] = model.Transaction{
			ID:       fmt.Sprintf("%d", i),
			Type:     typ,
			Category: fmt.Sprintf("cat-%d", i%12),
			Amount:   decimal.NewFromInt(int64(i%500 + 1)),
			Date:     model.DateOf(ref.AddDate(0, 0, -(i % 730))),
		}
	}
	return txs
}

func BenchmarkTotals(b *testing.B) {
	txs := syntheticHistory(20_000, time.Now())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Totals(txs)
	}
}

func BenchmarkMonthlySeries(b *testing.B) {
	ref := time.Now()
	txs := syntheticHistory(20_000, ref)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = MonthlySeries(txs, 12, ref)
	}
}

func BenchmarkCategoryBreakdown(b *testing.B) {
	txs := syntheticHistory(20_000, time.Now())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CategoryBreakdown(txs)
	}
}
