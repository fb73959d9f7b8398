package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/validate"
)

type formKind int

const (
	formNone formKind = iota
	formAdd
	formBudget
	formDelete
)

// formValues is shared by pointer so copies of App see the same bindings.
type formValues struct {
	input    model.TransactionInput
	budget   string
	confirm  bool
	targetID string
}

// NewTransactionForm builds the add-transaction form bound to in. It is
// also used by the CLI's interactive add.
func NewTransactionForm(in *model.TransactionInput, now time.Time) *huh.Form {
	if in.Type == "" {
		in.Type = string(model.TypeExpense)
	}
	if in.Date == "" {
		in.Date = model.DateOf(now).String()
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Expense", string(model.TypeExpense)),
					huh.NewOption("Income", string(model.TypeIncome)),
				).
				Value(&in.Type),
			huh.NewSelect[string]().
				Title("Category").
				OptionsFunc(func() []huh.Option[string] {
					typ, _ := model.ParseType(in.Type)
					return huh.NewOptions(model.DefaultCategories(typ)...)
				}, &in.Type).
				Value(&in.Category),
			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Validate(func(s string) error {
					if _, ok := validate.ParseAmount(s); !ok {
						return errors.New(validate.MsgAmount)
					}
					return nil
				}).
				Value(&in.Amount),
			huh.NewInput().
				Title("Date").
				Placeholder(model.DateLayout).
				Validate(func(s string) error {
					probe := model.TransactionInput{Type: "income", Category: "x", Amount: "1", Date: s}
					if msgs := validate.Transaction(probe, now); len(msgs) > 0 {
						return errors.New(msgs[0])
					}
					return nil
				}).
				Value(&in.Date),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(&in.Description),
		),
	).WithShowHelp(true)
}

// NewBudgetForm builds a single-field form for the monthly budget.
func NewBudgetForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly budget").
				Placeholder("e.g. 25000").
				Validate(validate.Budget).
				Value(value),
		),
	).WithShowHelp(true)
}

// NewConfirmForm builds a yes/no confirmation.
func NewConfirmForm(title string, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(value),
		),
	)
}

func deleteTitle(t model.Transaction, symbol string) string {
	desc := strings.TrimSpace(t.Description)
	if desc == "" {
		desc = t.Category
	}
	return fmt.Sprintf("Delete %s %s%s on %s?", desc, symbol, t.Amount.StringFixed(2), t.Date)
}
