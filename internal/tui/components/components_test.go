package components

import (
	"strings"
	"testing"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRow(t *testing.T) {
	got := LayoutRow(10, 3)
	want := []int{4, 3, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LayoutRow(10, 3) = %v, want %v", got, want)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow(10, 0) should be nil")
	}
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive(model.ThemeDark)

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := lipgloss.Height(shortCard)
	tallLines := lipgloss.Height(tallCard)
	if shortLines >= tallLines {
		t.Fatal("short card should be shorter than tall card")
	}

	lines := strings.Split(CardRow([]string{tallCard, shortCard}), "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}

	for i, line := range lines {
		if lipgloss.Width(line) != 44 {
			t.Errorf("line %d width = %d, want 44", i, lipgloss.Width(line))
		}
		// Padding below the short card must still carry background styling.
		if i >= shortLines && !strings.Contains(line, "\x1b[") {
			t.Errorf("line %d has no ANSI codes", i)
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive(model.ThemeLight)

	row := MetricCardRow([]Metric{
		{Label: "Income", Value: "₹5,000.00", Color: theme.Active.Income},
		{Label: "Expenses", Value: "₹1,200.00"},
		{Label: "Balance", Value: "₹3,800.00", Note: "this month"},
	}, 90)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Errorf("line %d width = %d, want 90", i, w)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func TestTabKeysAreInNames(t *testing.T) {
	for _, tab := range Tabs {
		if tab.KeyPos < 0 {
			continue
		}
		if unicode.ToLower(rune(tab.Name[tab.KeyPos])) != tab.Key {
			t.Errorf("tab %q: KeyPos %d is %q, want %q",
				tab.Name, tab.KeyPos, tab.Name[tab.KeyPos], tab.Key)
		}
	}
}

func TestRenderTabBarWidth(t *testing.T) {
	bar := RenderTabBar(0, 100)
	if w := lipgloss.Width(bar); w != 100 {
		t.Errorf("tab bar width = %d, want 100", w)
	}
}

func TestRenderStatusBarWidth(t *testing.T) {
	bar := RenderStatusBar(80, "[?]help  [q]uit", "Saved", false)
	if w := lipgloss.Width(bar); w != 80 {
		t.Errorf("status bar width = %d, want 80", w)
	}
	if !strings.Contains(bar, "Saved") {
		t.Error("status bar is missing the message")
	}
}

func TestPairedBarChart(t *testing.T) {
	out := PairedBarChart(
		[]float64{100, 0, 50},
		[]float64{40, 80, 0},
		[]string{"Jan", "Feb", "Mar"},
		60, 6,
	)
	if out == "" {
		t.Fatal("empty chart")
	}
	for _, l := range []string{"Jan", "Feb", "Mar"} {
		if !strings.Contains(out, l) {
			t.Errorf("chart is missing label %q", l)
		}
	}
	if PairedBarChart([]float64{1}, []float64{1, 2}, nil, 60, 6) != "" {
		t.Error("mismatched series should render nothing")
	}
}

func TestChartTickStep(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{0, 1},
		{5, 1},
		{12, 2},
		{1000, 200},
		{45000, 5000},
	}
	for _, tt := range tests {
		if got := chartTickStep(tt.max); got != tt.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tt.max, got, tt.want)
		}
	}
}

func TestBudgetBarShowsPercent(t *testing.T) {
	status := model.BudgetStatus{
		Budget:      decimal.NewFromInt(1000),
		Spent:       decimal.NewFromInt(950),
		UsedPercent: 95,
		Level:       model.BudgetCritical,
	}
	out := BudgetBar(status, 20)
	if !strings.Contains(out, "95%") {
		t.Errorf("BudgetBar = %q, want it to contain 95%%", out)
	}
}
