package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	Delete      key.Binding
	DeleteNow   key.Binding
	MoveUp      key.Binding
	MoveDown    key.Binding
	Add         key.Binding
	Submit      key.Binding
	Cancel      key.Binding
	FilterAll   key.Binding
	FilterLive  key.Binding
	FilterDone  key.Binding
	FilterCycle key.Binding
	Clear       key.Binding
	Theme       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "move")),
		Down:        key.NewBinding(key.WithKeys("j", "down")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("dd", "delete")),
		DeleteNow:   key.NewBinding(key.WithKeys("delete")),
		MoveUp:      key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("J/K", "reorder")),
		MoveDown:    key.NewBinding(key.WithKeys("J", "shift+down")),
		Add:         key.NewBinding(key.WithKeys("a", "i", "o"), key.WithHelp("a", "add")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave input")),
		FilterAll:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1/2/3", "all/active/completed")),
		FilterLive:  key.NewBinding(key.WithKeys("2")),
		FilterDone:  key.NewBinding(key.WithKeys("3")),
		FilterCycle: key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f", "next filter")),
		Clear:       key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear completed")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Toggle, k.Delete, k.Add, k.FilterCycle, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Toggle, k.Delete, k.MoveUp},
		{k.Add, k.Submit, k.Cancel},
		{k.FilterAll, k.FilterCycle, k.Clear},
		{k.Theme, k.Help, k.Quit},
	}
}

// inputKeyMap is the help shown while the add input has focus.
type inputKeyMap struct{ keyMap }

func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
