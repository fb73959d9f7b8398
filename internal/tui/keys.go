package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
)

type keyMap struct {
	Overview     key.Binding
	Transactions key.Binding
	Categories   key.Binding
	Trends       key.Binding
	PrevTab      key.Binding
	NextTab      key.Binding
	Add          key.Binding
	Delete       key.Binding
	Filter       key.Binding
	Budget       key.Binding
	Theme        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Overview:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "overview")),
		Transactions: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "transactions")),
		Categories:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "categories")),
		Trends:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "trends")),
		PrevTab:      key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "prev tab")),
		NextTab:      key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "next tab")),
		Add:          key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:       key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Filter:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter type")),
		Budget:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "budget")),
		Theme:        key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Budget, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Overview, k.Transactions, k.Categories, k.Trends, k.PrevTab, k.NextTab},
		{k.Add, k.Delete, k.Filter, k.Budget},
		{k.Theme, k.Help, k.Quit},
	}
}

// tableKeyMap keeps table navigation off the letters the dashboard uses.
func tableKeyMap() table.KeyMap {
	return table.KeyMap{
		LineUp:       key.NewBinding(key.WithKeys("up", "k")),
		LineDown:     key.NewBinding(key.WithKeys("down", "j")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		GotoTop:      key.NewBinding(key.WithKeys("home", "g")),
		GotoBottom:   key.NewBinding(key.WithKeys("end", "G")),
	}
}
