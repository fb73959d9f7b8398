// Package validate checks user-supplied transaction and budget input before
// it reaches the store.
package validate

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/model"
)

// Messages shown to the user, in the order rules are checked.
const (
	MsgType         = "Please select a valid transaction type"
	MsgCategory     = "Please select a category"
	MsgAmount       = "Please enter a valid amount greater than 0"
	MsgDateMissing  = "Please select a date"
	MsgDateInvalid  = "Please enter a valid date (YYYY-MM-DD)"
	MsgDateInFuture = "Date cannot be in the future"
	MsgBudget       = "Please enter a valid budget amount greater than 0"
)

// ErrInvalidBudget is returned by Budget.
var ErrInvalidBudget = errors.New(MsgBudget)

// Error carries every rule a value violated.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Transaction checks every rule independently and returns all violations.
// An empty result means the input is valid. now decides which dates count as
// the future: anything after now's calendar day.
func Transaction(in model.TransactionInput, now time.Time) []string {
	var errs []string

	if _, ok := model.ParseType(in.Type); !ok {
		errs = append(errs, MsgType)
	}

	if strings.TrimSpace(in.Category) == "" {
		errs = append(errs, MsgCategory)
	}

	if _, ok := ParseAmount(in.Amount); !ok {
		errs = append(errs, MsgAmount)
	}

	if msg := checkDate(in.Date, now); msg != "" {
		errs = append(errs, msg)
	}

	return errs
}

func checkDate(s string, now time.Time) string {
	if strings.TrimSpace(s) == "" {
		return MsgDateMissing
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return MsgDateInvalid
	}
	if d.After(model.DateOf(now)) {
		return MsgDateInFuture
	}
	return ""
}

// ParseAmount parses a strictly positive decimal amount.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}

// Budget checks a monthly budget amount.
func Budget(amount string) error {
	if _, ok := ParseAmount(amount); !ok {
		return ErrInvalidBudget
	}
	return nil
}

// Parse validates in and converts it into a NewTransaction. A failed
// validation returns *Error.
func Parse(in model.TransactionInput, now time.Time) (model.NewTransaction, error) {
	if msgs := Transaction(in, now); len(msgs) > 0 {
		return model.NewTransaction{}, &Error{Messages: msgs}
	}

	typ, _ := model.ParseType(in.Type)
	amount, _ := ParseAmount(in.Amount)
	date, _ := model.ParseDate(in.Date)

	return model.NewTransaction{
		Type:        typ,
		Category:    strings.TrimSpace(in.Category),
		Amount:      amount,
		Date:        date,
		Description: strings.TrimSpace(in.Description),
	}, nil
}

// Patch checks the fields a patch sets. Dates are not checked against the
// clock; only creation enforces the no-future rule.
func Patch(p model.TransactionPatch) error {
	var errs []string
	if p.Type != nil && !p.Type.Valid() {
		errs = append(errs, MsgType)
	}
	if p.Category != nil && strings.TrimSpace(*p.Category) == "" {
		errs = append(errs, MsgCategory)
	}
	if p.Amount != nil && !p.Amount.IsPositive() {
		errs = append(errs, MsgAmount)
	}
	if p.Date != nil && p.Date.IsZero() {
		errs = append(errs, MsgDateMissing)
	}
	if len(errs) > 0 {
		return &Error{Messages: errs}
	}
	return nil
}
