package csvcodec

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/fintrack/internal/model"
)

var importTime = time.Date(2024, time.June, 20, 9, 0, 0, 0, time.UTC)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func tx(typ model.Type, category, amount, date, desc string) model.Transaction {
	d, err := model.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{
		ID:          "orig-" + date,
		Type:        typ,
		Category:    category,
		Amount:      decimal.RequireFromString(amount),
		Date:        d,
		Description: desc,
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestEncode_Empty(t *testing.T) {
	out, err := Encode(nil)
	assert.ErrorIs(t, err, ErrNothingToExport)
	assert.Empty(t, out)
}

func TestEncode_Format(t *testing.T) {
	out, err := Encode([]model.Transaction{
		tx(model.TypeIncome, "💰 Salary", "2500", "2024-05-31", "May"),
		tx(model.TypeExpense, "🛒 Groceries", "42.10", "2024-06-01", ""),
	})
	require.NoError(t, err)

	want := strings.Join([]string{
		"Date,Type,Category,Amount,Description",
		`"2024-05-31","income","💰 Salary","2500","May"`,
		`"2024-06-01","expense","🛒 Groceries","42.1",""`,
	}, "\n")
	assert.Equal(t, want, out)
}

func TestRoundTrip(t *testing.T) {
	orig := []model.Transaction{
		tx(model.TypeIncome, "💰 Salary", "2500", "2024-05-31", "May salary"),
		tx(model.TypeExpense, "🍔 Food & Dining", "12.75", "2024-06-02", "lunch, with team"),
		tx(model.TypeExpense, "💡 Bills & Utilities", "99.99", "2024-06-03", ""),
	}

	text, err := Encode(orig)
	require.NoError(t, err)

	got, res := Decode(text, seqIDs(), importTime)
	assert.Equal(t, Result{Imported: 3}, res)
	require.Len(t, got, len(orig))

	for i := range orig {
		assert.Equal(t, orig[i].Type, got[i].Type)
		assert.Equal(t, orig[i].Category, got[i].Category)
		assert.True(t, orig[i].Amount.Equal(got[i].Amount), "amount %d: %s != %s", i, orig[i].Amount, got[i].Amount)
		assert.Equal(t, orig[i].Date, got[i].Date)
		assert.Equal(t, orig[i].Description, got[i].Description)

		assert.Equal(t, fmt.Sprintf("id-%d", i+1), got[i].ID)
		assert.Equal(t, importTime, got[i].CreatedAt)
	}
}

func TestDecode_DropsUnknownTypeKeepsSiblings(t *testing.T) {
	text := `Date,Type,Category,Amount,Description
"2024-06-01","expense","Food","10",""
"2024-06-02","refund","Food","10",""
"2024-06-03","INCOME","Gift","5","birthday"
`
	got, res := Decode(text, seqIDs(), importTime)
	assert.Equal(t, Result{Imported: 2, Skipped: 1}, res)
	require.Len(t, got, 2)
	assert.Equal(t, model.TypeExpense, got[0].Type)
	assert.Equal(t, model.TypeIncome, got[1].Type)
	assert.Equal(t, "birthday", got[1].Description)
}

func TestDecode_TooFewLines(t *testing.T) {
	for _, text := range []string{"", "\n\n", "Date,Type,Category,Amount,Description\n\n"} {
		got, res := Decode(text, seqIDs(), importTime)
		assert.Empty(t, got)
		assert.Equal(t, Result{}, res)
	}
}

func TestDecode_HeaderSkippedByPosition(t *testing.T) {
	// The first line is dropped even when it looks like data.
	text := "2024-06-01,income,Salary,100\n2024-06-02,income,Salary,200"
	got, res := Decode(text, seqIDs(), importTime)
	assert.Equal(t, Result{Imported: 1}, res)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-06-02", got[0].Date.String())
}

func TestDecode_RejectsMalformedRows(t *testing.T) {
	text := strings.Join([]string{
		"Date,Type,Category,Amount,Description",
		`"2024-06-01","expense","Food"`,          // too few fields
		`"2024-06-01","expense","Food","abc"`,    // non-numeric amount
		`"2024-06-01","expense","Food","0"`,      // non-positive amount
		`"2024-06-01","expense","Food","-4"`,     // negative amount
		`"June 1","expense","Food","4"`,          // unparseable date
		`"2024-06-01","expense","Food","4","ok"`, // accepted
		`2024-06-01,income,Gift,7`,               // accepted, no description
	}, "\r\n")

	got, res := Decode(text, seqIDs(), importTime)
	assert.Equal(t, Result{Imported: 2, Skipped: 5}, res)
	require.Len(t, got, 2)
	assert.Equal(t, "ok", got[0].Description)
	assert.Equal(t, "", got[1].Description)
	assert.True(t, got[1].Amount.Equal(decimal.NewFromInt(7)))
}
