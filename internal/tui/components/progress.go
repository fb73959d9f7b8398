package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui/theme"
)

// BudgetBar renders monthly budget usage as a solid bar colored by level,
// followed by the used percentage.
func BudgetBar(status model.BudgetStatus, width int) string {
	t := theme.Active
	color := t.ForLevel(status.Level)

	pct := min(max(status.UsedPercent/100, 0), 1)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(width, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	return bar.ViewAs(pct) + space + pctStyle.Render(fmt.Sprintf("%.0f%%", status.UsedPercent))
}
