package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/pipeline"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	cur := a.settings.Currency

	balanceColor := t.Income
	if a.totals.Balance.IsNegative() {
		balanceColor = t.Expense
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Total Income", Value: cli.FormatMoney(a.totals.Income, cur), Color: t.Income},
		{Label: "Total Expenses", Value: cli.FormatMoney(a.totals.Expenses, cur), Color: t.Expense},
		{Label: "Balance", Value: cli.FormatMoney(a.totals.Balance, cur), Color: balanceColor},
		{Label: "Transactions", Value: cli.FormatNumber(int64(len(a.txs)))},
	}, cw))
	b.WriteString("\n")

	halves := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Monthly Budget", a.budgetBody(halves[0]), halves[0]),
		components.ContentCard("Recent Transactions", a.recentBody(halves[1]), halves[1]),
	}))

	return b.String()
}

func (a App) budgetBody(outerW int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	if !a.hasBudget {
		return muted.Render("No budget set. Press b to set one.")
	}

	cur := a.settings.Currency
	bs := a.budget
	barW := components.CardInnerWidth(outerW) - 6

	var b strings.Builder
	b.WriteString(components.BudgetBar(bs, barW))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", muted.Render("Spent     "), value.Render(cli.FormatMoney(bs.Spent, cur)))
	fmt.Fprintf(&b, "%s %s\n", muted.Render("Budget    "), value.Render(cli.FormatMoney(bs.Budget, cur)))
	fmt.Fprintf(&b, "%s %s", muted.Render("Remaining "),
		lipgloss.NewStyle().Foreground(t.ForLevel(bs.Level)).Background(t.Surface).Bold(true).
			Render(cli.FormatMoney(bs.Remaining, cur)))
	return b.String()
}

func (a App) recentBody(outerW int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	recent := pipeline.Recent(a.txs, a.opts.Recent)
	if len(recent) == 0 {
		return muted.Render("No transactions yet. Press a to add one.")
	}

	inner := components.CardInnerWidth(outerW)
	cur := a.settings.Currency

	lines := make([]string, 0, len(recent))
	for _, tx := range recent {
		amount := cli.FormatSigned(tx, cur)
		color := t.Expense
		if tx.Type == model.TypeIncome {
			color = t.Income
		}
		amountStr := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(amount)

		left := muted.Render(tx.Date.String()+"  ") + value.Render(cli.Truncate(tx.Category, max(inner-lipgloss.Width(amount)-14, 4)))
		gap := max(inner-lipgloss.Width(left)-lipgloss.Width(amountStr), 1)
		lines = append(lines, left+value.Render(strings.Repeat(" ", gap))+amountStr)
	}
	return strings.Join(lines, "\n")
}
