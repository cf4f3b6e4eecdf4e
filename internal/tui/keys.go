package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Select      key.Binding
	Search      key.Binding
	Escape      key.Binding
	Refresh     key.Binding
	Line        key.Binding
	Candlestick key.Binding
	Volume      key.Binding
	PrevPoint   key.Binding
	NextPoint   key.Binding
	Export      key.Binding
	Quit        key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Search:      key.NewBinding(key.WithKeys("ctrl+f", "/"), key.WithHelp("ctrl+f", "search")),
		Escape:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear chart")),
		Refresh:     key.NewBinding(key.WithKeys("f5", "ctrl+r"), key.WithHelp("f5", "refresh")),
		Line:        key.NewBinding(key.WithKeys("1", "l"), key.WithHelp("1", "line")),
		Candlestick: key.NewBinding(key.WithKeys("2", "c"), key.WithHelp("2", "candles")),
		Volume:      key.NewBinding(key.WithKeys("3", "v"), key.WithHelp("3", "volume")),
		PrevPoint:   key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "inspect")),
		NextPoint:   key.NewBinding(key.WithKeys("]")),
		Export:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export html")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Select, k.Search, k.Refresh,
		k.Line, k.Candlestick, k.Volume, k.PrevPoint, k.Export, k.Escape, k.Quit,
	}
}
