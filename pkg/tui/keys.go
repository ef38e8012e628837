package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Up       key.Binding
	Down     key.Binding
	Search   key.Binding
	Add      key.Binding
	Edit     key.Binding
	Toggle   key.Binding
	Delete   key.Binding
	Theme    key.Binding
	Focus    key.Binding
	Reset    key.Binding
	Lock     key.Binding
	PrevMon  key.Binding
	NextMon  key.Binding
	ThisMon  key.Binding
	Help     key.Binding
	Dictate  key.Binding
	Submit   key.Binding
	Cancel   key.Binding
	NextFld  key.Binding
	PrevFld  key.Binding
	Confirm  key.Binding
	Decline  key.Binding
	Dismiss  key.Binding
	CycleFwd key.Binding
	CycleBck key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Add:      key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
		Edit:     key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done")),
		Delete:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Theme:    key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "theme")),
		Focus:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "focus")),
		Reset:    key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "reset focus")),
		Lock:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "lock")),
		PrevMon:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev month")),
		NextMon:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next month")),
		ThisMon:  key.NewBinding(key.WithKeys("."), key.WithHelp(".", "this month")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Dictate:  key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "dictate")),
		Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextFld:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevFld:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Confirm:  key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		Decline:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
		Dismiss:  key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "dismiss")),
		CycleFwd: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
		CycleBck: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev")),
	}
}

// ShortHelp satisfies help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Toggle, k.Delete, k.Search, k.NextTab, k.Help, k.Quit}
}

// FullHelp satisfies help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab, k.Search},
		{k.Add, k.Edit, k.Toggle, k.Delete},
		{k.PrevMon, k.NextMon, k.ThisMon},
		{k.Focus, k.Reset, k.Theme, k.Lock, k.Quit},
	}
}

type formKeyMap struct {
	keyMap
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFld, k.CycleFwd, k.Dictate, k.Submit, k.Cancel}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
