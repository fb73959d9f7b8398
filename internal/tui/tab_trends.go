package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"
)

func (a App) renderTrendsTab(cw int) string {
	t := theme.Active

	income := make([]float64, len(a.monthly))
	expenses := make([]float64, len(a.monthly))
	labels := make([]string, len(a.monthly))
	for i, m := range a.monthly {
		income[i], _ = m.Income.Float64()
		expenses[i], _ = m.Expenses.Float64()
		labels[i] = m.Label[:3]
	}

	inner := components.CardInnerWidth(cw)
	legend := lipgloss.NewStyle().Foreground(t.Income).Background(t.Surface).Render("█ income") +
		lipgloss.NewStyle().Background(t.Surface).Render("  ") +
		lipgloss.NewStyle().Foreground(t.Expense).Background(t.Surface).Render("█ expenses")
	chart := components.PairedBarChart(income, expenses, labels, inner, 8) + "\n\n" + legend

	title := fmt.Sprintf("Last %d Months", len(a.monthly))
	var b strings.Builder
	b.WriteString(components.ContentCard(title, chart, cw))
	b.WriteString("\n")

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	cur := a.settings.Currency

	rows := []string{muted.Render(fmt.Sprintf("%-10s %16s %16s %16s", "Month", "Income", "Expenses", "Net"))}
	for _, m := range a.monthly {
		net := m.Net()
		netColor := t.Income
		if net.IsNegative() {
			netColor = t.Expense
		}
		rows = append(rows,
			value.Render(fmt.Sprintf("%-10s %16s %16s ", m.Label,
				cli.FormatMoney(m.Income, cur), cli.FormatMoney(m.Expenses, cur)))+
				lipgloss.NewStyle().Foreground(netColor).Background(t.Surface).
					Render(fmt.Sprintf("%16s", cli.FormatMoney(net, cur))))
	}
	b.WriteString(components.ContentCard("Monthly Summary", strings.Join(rows, "\n"), cw))

	return b.String()
}
