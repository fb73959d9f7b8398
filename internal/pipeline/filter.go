package pipeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/theirongolddev/fintrack/internal/model"
)

// ParseMonth parses a YYYY-MM month filter.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (want YYYY-MM): %w", s, err)
	}
	return t.Year(), t.Month(), nil
}

// Filter returns the transactions matching every set field of f. The input
// slice is not modified. An invalid month matches nothing.
func Filter(txs []model.Transaction, f model.Filter) []model.Transaction {
	var year int
	var month time.Month
	if f.Month != "" {
		var err error
		year, month, err = ParseMonth(f.Month)
		if err != nil {
			return []model.Transaction{}
		}
	}

	result := make([]model.Transaction, 0, len(txs))
	for _, t := range txs {
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.Month != "" && (t.Date.Year() != year || t.Date.Month() != month) {
			continue
		}
		result = append(result, t)
	}
	return result
}

// SortByDateDesc returns a copy of txs ordered newest first. Transactions on
// the same date keep the most recently created first.
func SortByDateDesc(txs []model.Transaction) []model.Transaction {
	sorted := append([]model.Transaction(nil), txs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date.Time) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// Recent returns up to n of the newest transactions.
func Recent(txs []model.Transaction, n int) []model.Transaction {
	sorted := SortByDateDesc(txs)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// UsedCategories returns each distinct category in order of first use.
func UsedCategories(txs []model.Transaction) []string {
	seen := make(map[string]struct{})
	var cats []string
	for _, t := range txs {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		cats = append(cats, t.Category)
	}
	return cats
}
