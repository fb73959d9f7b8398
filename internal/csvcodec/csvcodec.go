// Package csvcodec converts transactions to and from the CSV export format.
//
// The export format is a header row followed by one row per transaction:
//
//	Date,Type,Category,Amount,Description
//	"2024-06-01","expense","🛒 Groceries","42.1","weekly shop"
//
// Every exported field is double-quoted. On import the header is skipped by
// position and never checked, rows with an unknown type or an unusable date
// or amount are dropped, and the rest are returned with fresh IDs.
package csvcodec

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/validate"
)

// Header is the first line of every export.
var Header = []string{"Date", "Type", "Category", "Amount", "Description"}

// ErrNothingToExport is returned by Encode for an empty transaction list.
var ErrNothingToExport = errors.New("nothing to export")

const minFields = 4

// Result reports how many data rows were accepted and dropped.
type Result struct {
	Imported int
	Skipped  int
}

// Encode renders transactions as CSV text.
func Encode(txs []model.Transaction) (string, error) {
	if len(txs) == 0 {
		return "", ErrNothingToExport
	}

	lines := make([]string, 0, len(txs)+1)
	lines = append(lines, strings.Join(Header, ","))
	for _, t := range txs {
		lines = append(lines, encodeRow([]string{
			t.Date.String(),
			string(t.Type),
			t.Category,
			t.Amount.String(),
			t.Description,
		}))
	}
	return strings.Join(lines, "\n"), nil
}

func encodeRow(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + c + `"`
	}
	return strings.Join(quoted, ",")
}

// Decode parses CSV text produced by Encode (or a hand-edited variant of it).
// newID is called once per accepted row; every accepted row gets now as its
// creation time.
func Decode(text string, newID func() string, now time.Time) ([]model.Transaction, Result) {
	var res Result

	lines := splitLines(text)
	if len(lines) < 2 {
		return nil, res
	}

	var out []model.Transaction
	for _, line := range lines[1:] {
		t, err := decodeRow(line)
		if err != nil {
			res.Skipped++
			continue
		}
		t.ID = newID()
		t.CreatedAt = now
		out = append(out, t)
		res.Imported++
	}
	return out, res
}

func decodeRow(line string) (model.Transaction, error) {
	fields := splitFields(line)
	if len(fields) < minFields {
		return model.Transaction{}, fmt.Errorf("want at least %d fields, got %d", minFields, len(fields))
	}

	typ, ok := model.ParseType(fields[1])
	if !ok {
		return model.Transaction{}, fmt.Errorf("unknown type %q", fields[1])
	}

	date, err := model.ParseDate(fields[0])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, ok := validate.ParseAmount(fields[3])
	if !ok {
		return model.Transaction{}, fmt.Errorf("invalid amount %q", fields[3])
	}

	t := model.Transaction{
		Type:     typ,
		Category: fields[2],
		Amount:   amount,
		Date:     date,
	}
	if len(fields) > minFields {
		t.Description = fields[4]
	}
	return t, nil
}
