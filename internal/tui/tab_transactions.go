package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"
)

func transactionColumns(width int) []table.Column {
	const (
		dateW   = 10
		typeW   = 7
		amountW = 14
	)
	// Each column is padded by one cell on both sides.
	rest := max(width-dateW-typeW-amountW-10, 20)
	catW := rest * 2 / 5
	return []table.Column{
		{Title: "Date", Width: dateW},
		{Title: "Type", Width: typeW},
		{Title: "Category", Width: catW},
		{Title: "Amount", Width: amountW},
		{Title: "Description", Width: rest - catW},
	}
}

func transactionRows(txs []model.Transaction, currency string) []table.Row {
	rows := make([]table.Row, len(txs))
	for i, tx := range txs {
		amount := cli.FormatSigned(tx, currency)
		rows[i] = table.Row{
			tx.Date.String(),
			string(tx.Type),
			tx.Category,
			fmt.Sprintf("%14s", amount),
			tx.Description,
		}
	}
	return rows
}

func tableStyles() table.Styles {
	t := theme.Active
	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(t.Accent).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Bold(true)
	s.Cell = s.Cell.Foreground(t.TextPrimary)
	s.Selected = s.Selected.
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(true)
	return s
}

func (a App) renderTransactionsTab(cw int) string {
	title := "Transactions"
	switch a.typeFilter {
	case model.TypeIncome:
		title += " · income"
	case model.TypeExpense:
		title += " · expense"
	}
	title += fmt.Sprintf(" (%d)", len(a.visible))

	body := a.table.View()
	if len(a.visible) == 0 {
		body = lipgloss.NewStyle().Foreground(theme.Active.TextMuted).
			Render("No transactions match. Press f to change the filter or a to add one.")
	}
	return components.ContentCard(title, body, cw)
}
