package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/fintrack/internal/tui/theme"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		peak = math.Max(peak, v)
	}
	if peak <= 0 {
		peak = 1
	}

	var buf strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		idx = min(max(idx, 0), len(blocks)-1)
		buf.WriteRune(blocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(buf.String())
}

// PairedBarChart renders income and expense bars side by side for each
// label, with a y-axis scaled to the larger series.
func PairedBarChart(income, expenses []float64, labels []string, width, height int) string {
	n := len(income)
	if n == 0 || len(expenses) != n {
		return ""
	}
	t := theme.Active
	if width < 20 || height < 3 {
		return Sparkline(income, t.Income) + "\n" + Sparkline(expenses, t.Expense)
	}

	peak := 0.0
	for i := range income {
		peak = math.Max(peak, math.Max(income[i], expenses[i]))
	}
	if peak == 0 {
		peak = 1
	}

	step := chartTickStep(peak)
	ceiling := math.Ceil(peak/step) * step
	intervals := max(1, int(math.Round(ceiling/step)))
	rowsPerTick := max(1, height/intervals)
	chartH := rowsPerTick * intervals

	yLabelW := max(4, len(formatChartLabel(ceiling))+1)
	ticks := make(map[int]string, intervals)
	for i := 1; i <= intervals; i++ {
		ticks[i*rowsPerTick] = formatChartLabel(step * float64(i))
	}

	// Each group is two bars plus a gap.
	groupW := (width - yLabelW - 1) / n
	barW := min(max((groupW-1)/2, 1), 5)
	groupW = barW*2 + 1

	axis := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	inStyle := lipgloss.NewStyle().Foreground(t.Income).Background(t.Surface)
	exStyle := lipgloss.NewStyle().Foreground(t.Expense).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		top := ceiling * float64(row) / float64(chartH)
		bottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axis.Render(fmt.Sprintf("%*s", yLabelW, ticks[row])))
		b.WriteString(axis.Render("│"))
		for i := 0; i < n; i++ {
			b.WriteString(barCell(income[i], top, bottom, barW, inStyle, blank))
			b.WriteString(barCell(expenses[i], top, bottom, barW, exStyle, blank))
			b.WriteString(blank.Render(" "))
		}
		b.WriteString("\n")
	}

	b.WriteString(axis.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axis.Render("└" + strings.Repeat("─", n*groupW)))

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
		var lb strings.Builder
		for _, l := range labels {
			cell := l
			if len(cell) > groupW {
				cell = cell[:groupW]
			}
			lb.WriteString(fmt.Sprintf("%-*s", groupW, cell))
		}
		b.WriteString(axis.Render(strings.TrimRight(lb.String(), " ")))
	}

	return b.String()
}

func barCell(v, top, bottom float64, w int, bar, blank lipgloss.Style) string {
	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	switch {
	case v >= top:
		return bar.Render(strings.Repeat("█", w))
	case v > bottom:
		idx := int((v - bottom) / (top - bottom) * 8)
		idx = min(max(idx, 1), 8)
		return bar.Render(strings.Repeat(string(blocks[idx]), w))
	default:
		return blank.Render(strings.Repeat(" ", w))
	}
}

// HBar renders a horizontal bar of value against peak, padded to width.
func HBar(value, peak float64, width int, color lipgloss.Color) string {
	t := theme.Active
	if width <= 0 {
		return ""
	}
	filled := 0
	if peak > 0 {
		filled = int(value / peak * float64(width))
	}
	filled = min(max(filled, 0), width)

	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render(strings.Repeat("░", width-filled))
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e7:
		return fmt.Sprintf("%.0fM", v/1e6)
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e4:
		return fmt.Sprintf("%.0fk", v/1e3)
	case v >= 1e3:
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
