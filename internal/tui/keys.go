package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Decrease    key.Binding
	Increase    key.Binding
	Toggle      key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Phase       key.Binding
	Granularity key.Binding
	NextPage    key.Binding
	PrevPage    key.Binding
	Export      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous input")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next input")),
		Decrease:    key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/h", "decrease")),
		Increase:    key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/l", "increase")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		NextTab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		PrevTab:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous panel")),
		Phase:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "accumulation/retirement")),
		Granularity: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "yearly/monthly")),
		NextPage:    key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next page")),
		PrevPage:    key.NewBinding(key.WithKeys("b", "pgup"), key.WithHelp("b", "previous page")),
		Export:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export xlsx")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Increase, k.NextTab, k.Phase, k.Export, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Decrease, k.Increase, k.Toggle},
		{k.NextTab, k.PrevTab, k.Phase, k.Granularity},
		{k.NextPage, k.PrevPage, k.Export},
		{k.Help, k.Quit},
	}
}
