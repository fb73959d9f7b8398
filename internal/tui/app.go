// Package tui provides the interactive Bubble Tea dashboard for fintrack.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/pipeline"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"
	"github.com/theirongolddev/fintrack/internal/validate"
)

// DataLoadedMsg carries a fresh read of the ledger.
type DataLoadedMsg struct {
	Transactions []model.Transaction
	Settings     model.Settings
	Err          error
}

// SavedMsg reports the outcome of a write. A successful write is followed
// by a reload.
type SavedMsg struct {
	Note string
	Err  error
}

// Options configures the dashboard.
type Options struct {
	Months int // months shown on the trends tab
	Recent int // rows in the overview's recent list
	Now    func() time.Time
}

const (
	tabOverview = iota
	tabTransactions
	tabCategories
	tabTrends
)

// App is the root Bubble Tea model.
type App struct {
	ledger *ledger.Ledger
	opts   Options

	// Data
	txs      []model.Transaction
	settings model.Settings
	loaded   bool
	loadErr  error

	// Pre-computed for the current data
	totals    model.Totals
	monthly   []model.MonthBucket
	breakdown []model.CategoryStats
	budget    model.BudgetStatus
	hasBudget bool
	visible   []model.Transaction // transactions tab, filtered and sorted

	typeFilter model.Type // empty shows both

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	keys      keyMap
	help      help.Model
	table     table.Model

	// Modal form
	form     *huh.Form
	formKind formKind
	vals     *formValues

	status    string
	statusErr bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates a new TUI app model over l.
func NewApp(l *ledger.Ledger, opts Options) App {
	if opts.Months <= 0 {
		opts.Months = pipeline.DefaultMonths
	}
	if opts.Recent <= 0 {
		opts.Recent = 5
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	tbl := table.New(
		table.WithColumns(transactionColumns(80)),
		table.WithFocused(true),
		table.WithKeyMap(tableKeyMap()),
	)

	return App{
		ledger: l,
		opts:   opts,
		keys:   defaultKeyMap(),
		help:   help.New(),
		table:  tbl,
		vals:   &formValues{},
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(tea.EnableMouseCellMotion, loadCmd(a.ledger))
}

func loadCmd(l *ledger.Ledger) tea.Cmd {
	return func() tea.Msg {
		txs, err := l.List()
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		settings, err := l.Settings()
		return DataLoadedMsg{Transactions: txs, Settings: settings, Err: err}
	}
}

func (a *App) recompute() {
	now := a.opts.Now()

	a.totals = pipeline.Totals(a.txs)
	a.monthly = pipeline.MonthlySeries(a.txs, a.opts.Months, now)
	a.breakdown = pipeline.CategoryBreakdown(a.txs)
	a.budget, a.hasBudget = pipeline.Budget(a.settings, a.txs, now)
	a.visible = pipeline.SortByDateDesc(pipeline.Filter(a.txs, model.Filter{Type: a.typeFilter}))

	a.table.SetRows(transactionRows(a.visible, a.settings.Currency))
	if c := a.table.Cursor(); c >= len(a.visible) {
		a.table.SetCursor(max(len(a.visible)-1, 0))
	}
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeTable()
		if a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width, 60))
		}
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		if msg.Err == nil {
			a.txs = msg.Transactions
			a.settings = msg.Settings
			a.recompute()
		}
		return a, nil

	case SavedMsg:
		if msg.Err != nil {
			a.setStatus(msg.Err.Error(), true)
			return a, nil
		}
		a.setStatus(msg.Note, false)
		return a, loadCmd(a.ledger)

	case tea.MouseMsg:
		if a.form != nil || a.showHelp {
			return a, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			if msg.String() == "esc" {
				a.closeForm()
				a.setStatus("Cancelled", false)
				return a, nil
			}
			return a.updateForm(msg)
		}
		return a.handleKey(msg)
	}

	// Forward everything else (cursor blinks etc.) to an open form.
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Help) {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Overview):
		a.activeTab = tabOverview
	case key.Matches(msg, a.keys.Transactions):
		a.activeTab = tabTransactions
	case key.Matches(msg, a.keys.Categories):
		a.activeTab = tabCategories
	case key.Matches(msg, a.keys.Trends):
		a.activeTab = tabTrends
	case key.Matches(msg, a.keys.PrevTab):
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case key.Matches(msg, a.keys.NextTab):
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	case key.Matches(msg, a.keys.Theme):
		return a, a.toggleTheme()
	case key.Matches(msg, a.keys.Add):
		return a.openForm(formAdd)
	case key.Matches(msg, a.keys.Budget):
		return a.openForm(formBudget)
	case key.Matches(msg, a.keys.Filter):
		a.typeFilter = nextFilter(a.typeFilter)
		a.recompute()
		a.table.SetCursor(0)
	case key.Matches(msg, a.keys.Delete) && a.activeTab == tabTransactions:
		if len(a.visible) == 0 {
			return a, nil
		}
		return a.openForm(formDelete)
	case a.activeTab == tabTransactions:
		var cmd tea.Cmd
		a.table, cmd = a.table.Update(msg)
		return a, cmd
	}
	return a, nil
}

func nextFilter(t model.Type) model.Type {
	switch t {
	case "":
		return model.TypeIncome
	case model.TypeIncome:
		return model.TypeExpense
	default:
		return ""
	}
}

func (a *App) toggleTheme() tea.Cmd {
	next := theme.Active.Name.Toggle()
	theme.SetActive(next)
	a.table.SetStyles(tableStyles())
	l := a.ledger
	return func() tea.Msg {
		if err := l.SaveTheme(next); err != nil {
			return SavedMsg{Err: err}
		}
		return SavedMsg{Note: fmt.Sprintf("Theme: %s", next)}
	}
}

func (a App) openForm(kind formKind) (tea.Model, tea.Cmd) {
	*a.vals = formValues{}
	now := a.opts.Now()

	switch kind {
	case formAdd:
		a.form = NewTransactionForm(&a.vals.input, now)
	case formBudget:
		if a.settings.MonthlyBudget != nil {
			a.vals.budget = a.settings.MonthlyBudget.String()
		}
		a.form = NewBudgetForm(&a.vals.budget)
	case formDelete:
		sel := a.visible[a.table.Cursor()]
		a.vals.targetID = sel.ID
		a.form = NewConfirmForm(deleteTitle(sel, a.settings.Currency), &a.vals.confirm)
	}
	a.formKind = kind
	if a.width > 0 {
		a.form = a.form.WithWidth(min(a.width, 60))
	}
	return a, a.form.Init()
}

func (a *App) closeForm() {
	a.form = nil
	a.formKind = formNone
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		kind := a.formKind
		a.closeForm()
		return a, a.submit(kind)
	case huh.StateAborted:
		a.closeForm()
		a.setStatus("Cancelled", false)
		return a, nil
	}
	return a, cmd
}

// submit turns a completed form into a write command.
func (a *App) submit(kind formKind) tea.Cmd {
	l := a.ledger
	vals := *a.vals
	now := a.opts.Now()
	settings := a.settings

	switch kind {
	case formAdd:
		return func() tea.Msg {
			nt, err := validate.Parse(vals.input, now)
			if err != nil {
				return SavedMsg{Err: err}
			}
			if _, err := l.Add(nt); err != nil {
				return SavedMsg{Err: err}
			}
			return SavedMsg{Note: "Transaction added"}
		}
	case formBudget:
		return func() tea.Msg {
			amount, ok := validate.ParseAmount(vals.budget)
			if !ok {
				return SavedMsg{Err: validate.ErrInvalidBudget}
			}
			settings.MonthlyBudget = &amount
			if err := l.SaveSettings(settings); err != nil {
				return SavedMsg{Err: err}
			}
			return SavedMsg{Note: "Budget saved"}
		}
	case formDelete:
		if !vals.confirm {
			return nil
		}
		return func() tea.Msg {
			if _, err := l.Delete(vals.targetID); err != nil {
				return SavedMsg{Err: err}
			}
			return SavedMsg{Note: "Transaction deleted"}
		}
	}
	return nil
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a *App) resizeTable() {
	cw := a.contentWidth()
	a.table.SetColumns(transactionColumns(cw - 4))
	// header, tab bar, status bar, card border and title
	a.table.SetHeight(max(a.height-8, 3))
	a.table.SetStyles(tableStyles())
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewCentered(lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Render("Loading..."))
	}
	if a.loadErr != nil {
		return a.viewCentered(lipgloss.NewStyle().Foreground(theme.Active.Warning).
			Render(fmt.Sprintf("Could not read data: %v", a.loadErr)))
	}
	if a.form != nil {
		return a.viewCentered(a.form.View())
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	msg := fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  fintrack needs at least %d columns.\n",
		a.width, minTerminalWidth)
	h := max(a.height, 5)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewCentered(body string) string {
	t := theme.Active
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3).
		Render(body)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active
	title := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render("◈ Keyboard Shortcuts")
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Render("Press any key to close")
	return a.viewCentered(title + "\n\n" + a.help.FullHelpView(a.keys.FullHelp()) + "\n\n" + dim)
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.help.ShortHelpView(a.keys.ShortHelp()), a.status, a.statusErr)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabTransactions:
		content = a.renderTransactionsTab(cw)
	case tabCategories:
		content = a.renderCategoriesTab(cw)
	case tabTrends:
		content = a.renderTrendsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // one-column separator
	}
	return -1
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
