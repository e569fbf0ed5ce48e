package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle   key.Binding
	Delete   key.Binding
	Add      key.Binding
	Reload   key.Binding
	Quit     key.Binding
	Submit   key.Binding
	Cancel   key.Binding
	NextUser key.Binding
	PrevUser key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),
		Delete:   key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextUser: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next user")),
		PrevUser: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev user")),
	}
}

// listHelp is appended to the bubbles list help.
func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Delete, k.Add, k.Reload}
}
