package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/store"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"
)

var testNow = time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (App, *ledger.Ledger) {
	t.Helper()
	theme.SetActive(model.ThemeLight)

	l := ledger.New(store.NewMemory(), ledger.Options{
		Now:             func() time.Time { return testNow },
		DefaultCurrency: "$",
	})
	seed := []model.NewTransaction{
		{Type: model.TypeIncome, Category: "💰 Salary", Amount: decimal.NewFromInt(5000), Date: model.NewDate(2024, 3, 1)},
		{Type: model.TypeExpense, Category: "🛒 Groceries", Amount: decimal.RequireFromString("120.40"), Date: model.NewDate(2024, 3, 5)},
		{Type: model.TypeExpense, Category: "✈️ Travel", Amount: decimal.NewFromInt(800), Date: model.NewDate(2024, 2, 12)},
	}
	for _, nt := range seed {
		if _, err := l.Add(nt); err != nil {
			t.Fatalf("seeding: %v", err)
		}
	}

	a := NewApp(l, Options{Now: func() time.Time { return testNow }})
	a = send(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
	a = send(t, a, loadCmd(l)())
	return a, l
}

func send(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	app, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return app
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLoadComputesTotals(t *testing.T) {
	a, _ := newTestApp(t)

	if !a.loaded {
		t.Fatal("app not loaded")
	}
	if !a.totals.Income.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("income = %s, want 5000", a.totals.Income)
	}
	if !a.totals.Expenses.Equal(decimal.RequireFromString("920.40")) {
		t.Errorf("expenses = %s, want 920.40", a.totals.Expenses)
	}
	if len(a.monthly) != 6 {
		t.Errorf("monthly buckets = %d, want 6", len(a.monthly))
	}
	if a.hasBudget {
		t.Error("hasBudget = true with no budget set")
	}
	if len(a.visible) != 3 || a.visible[0].Date.String() != "2024-03-05" {
		t.Errorf("visible not sorted newest first: %+v", a.visible)
	}
}

func TestTabKeys(t *testing.T) {
	a, _ := newTestApp(t)

	for _, tt := range []struct {
		key  string
		want int
	}{
		{"x", tabTransactions},
		{"c", tabCategories},
		{"n", tabTrends},
		{"o", tabOverview},
	} {
		a = send(t, a, keyPress(tt.key))
		if a.activeTab != tt.want {
			t.Errorf("after %q activeTab = %d, want %d", tt.key, a.activeTab, tt.want)
		}
	}

	a = send(t, a, tea.KeyMsg{Type: tea.KeyLeft})
	if a.activeTab != tabTrends {
		t.Errorf("left from overview = %d, want %d", a.activeTab, tabTrends)
	}
	a = send(t, a, tea.KeyMsg{Type: tea.KeyRight})
	if a.activeTab != tabOverview {
		t.Errorf("right from trends = %d, want %d", a.activeTab, tabOverview)
	}
}

func TestFilterCycles(t *testing.T) {
	a, _ := newTestApp(t)

	a = send(t, a, keyPress("f"))
	if a.typeFilter != model.TypeIncome || len(a.visible) != 1 {
		t.Errorf("filter income: type=%q visible=%d", a.typeFilter, len(a.visible))
	}
	a = send(t, a, keyPress("f"))
	if a.typeFilter != model.TypeExpense || len(a.visible) != 2 {
		t.Errorf("filter expense: type=%q visible=%d", a.typeFilter, len(a.visible))
	}
	a = send(t, a, keyPress("f"))
	if a.typeFilter != "" || len(a.visible) != 3 {
		t.Errorf("filter all: type=%q visible=%d", a.typeFilter, len(a.visible))
	}
}

func TestThemeTogglePersists(t *testing.T) {
	a, l := newTestApp(t)

	m, cmd := a.Update(keyPress("t"))
	a = m.(App)
	if theme.Active.Name != model.ThemeDark {
		t.Errorf("active theme = %q, want dark", theme.Active.Name)
	}
	if cmd == nil {
		t.Fatal("theme toggle returned no command")
	}
	a = send(t, a, cmd())

	got, err := l.Theme()
	if err != nil {
		t.Fatal(err)
	}
	if got != model.ThemeDark {
		t.Errorf("stored theme = %q, want dark", got)
	}
	if !strings.Contains(a.status, "dark") {
		t.Errorf("status = %q, want theme note", a.status)
	}
}

func TestSubmitAdd(t *testing.T) {
	a, l := newTestApp(t)

	a.vals.input = model.TransactionInput{
		Type:     "expense",
		Category: "🍔 Food & Dining",
		Amount:   "18.50",
		Date:     "2024-03-19",
	}
	msg := a.submit(formAdd)()
	saved, ok := msg.(SavedMsg)
	if !ok || saved.Err != nil {
		t.Fatalf("submit = %#v", msg)
	}

	txs, err := l.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 4 {
		t.Fatalf("stored %d transactions, want 4", len(txs))
	}
}

func TestSubmitAddRejectsFutureDate(t *testing.T) {
	a, l := newTestApp(t)

	a.vals.input = model.TransactionInput{
		Type:     "income",
		Category: "🎁 Gift",
		Amount:   "10",
		Date:     "2024-03-21",
	}
	saved := a.submit(formAdd)().(SavedMsg)
	if saved.Err == nil {
		t.Fatal("expected validation error")
	}

	a = send(t, a, saved)
	if !a.statusErr {
		t.Error("statusErr = false after failed save")
	}
	txs, _ := l.List()
	if len(txs) != 3 {
		t.Errorf("stored %d transactions, want 3", len(txs))
	}
}

func TestSubmitBudgetAndDelete(t *testing.T) {
	a, l := newTestApp(t)

	a.vals.budget = "1000"
	a = send(t, a, a.submit(formBudget)())
	a = send(t, a, loadCmd(l)())
	if !a.hasBudget {
		t.Fatal("hasBudget = false after saving a budget")
	}
	// March expenses are 120.40 of 1000.
	if !a.budget.Spent.Equal(decimal.RequireFromString("120.40")) {
		t.Errorf("spent = %s, want 120.40", a.budget.Spent)
	}

	a.vals.targetID = a.visible[0].ID
	a.vals.confirm = false
	if cmd := a.submit(formDelete); cmd != nil {
		t.Error("declined delete should not produce a command")
	}

	a.vals.confirm = true
	a = send(t, a, a.submit(formDelete)())
	txs, _ := l.List()
	if len(txs) != 2 {
		t.Errorf("stored %d transactions after delete, want 2", len(txs))
	}
}

func TestViewRendersEveryTab(t *testing.T) {
	a, _ := newTestApp(t)

	for i := range components.Tabs {
		a.activeTab = i
		out := a.View()
		if out == "" {
			t.Fatalf("tab %d rendered nothing", i)
		}
		if h := len(strings.Split(out, "\n")); h != a.height {
			t.Errorf("tab %d height = %d, want %d", i, h, a.height)
		}
	}
}

func TestViewTooNarrow(t *testing.T) {
	a, _ := newTestApp(t)
	a = send(t, a, tea.WindowSizeMsg{Width: 40, Height: 10})

	if !strings.Contains(a.View(), "too narrow") {
		t.Error("narrow terminal should show a warning")
	}
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 0

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w + 1
		}
		if got := a.tabAtX(pos + 50); got != -1 {
			t.Errorf("x past the last tab = %d, want -1", got)
		}
	}
}
