package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"
)

func (a App) renderCategoriesTab(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	if len(a.breakdown) == 0 {
		return components.ContentCard("Expenses by Category", muted.Render("No expenses recorded yet."), cw)
	}

	inner := components.CardInnerWidth(cw)
	labelW := 0
	for _, c := range a.breakdown {
		labelW = max(labelW, lipgloss.Width(c.Category))
	}
	labelW = min(labelW, 24)
	const amountW, pctW = 16, 7
	barW := max(inner-labelW-amountW-pctW-3, 5)

	peak, _ := a.breakdown[0].Amount.Float64()
	cur := a.settings.Currency

	var b strings.Builder
	for i, c := range a.breakdown {
		amt, _ := c.Amount.Float64()
		label := cli.Truncate(c.Category, labelW)
		label += strings.Repeat(" ", max(labelW-lipgloss.Width(label), 0))

		b.WriteString(value.Render(label + " "))
		b.WriteString(components.HBar(amt, peak, barW, t.Expense))
		b.WriteString(value.Render(fmt.Sprintf(" %*s", amountW, cli.FormatMoney(c.Amount, cur))))
		b.WriteString(muted.Render(fmt.Sprintf(" %*s", pctW-1, cli.FormatPercent(c.SharePercent))))
		if i < len(a.breakdown)-1 {
			b.WriteString("\n")
		}
	}

	return components.ContentCard("Expenses by Category", b.String(), cw)
}
