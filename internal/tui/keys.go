package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit key.Binding
	Back key.Binding

	// home
	Open       key.Binding
	AddSubject key.Binding
	All        key.Binding

	// browse
	Prev   key.Binding
	Next   key.Binding
	Jump   key.Binding
	First  key.Binding
	Last   key.Binding
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding

	// editor
	Up        key.Binding
	Down      key.Binding
	Change    key.Binding
	AddPoint  key.Binding
	AddSub    key.Binding
	AddDetail key.Binding
	Remove    key.Binding
	Save      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Back: key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),

		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		AddSubject: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "new Mappe")),
		All:        key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "all cards")),

		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev")),
		Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
		Jump:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		First:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first")),
		Last:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new card")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),

		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Change:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit field")),
		AddPoint:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "+ point")),
		AddSub:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "+ sub")),
		AddDetail: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "+ detail")),
		Remove:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	}
}

func (k keyMap) homeHelp() []key.Binding {
	return []key.Binding{k.Open, k.AddSubject, k.All, k.Quit}
}

func (k keyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Jump, k.First, k.Last, k.New, k.Edit, k.Delete, k.Back}
}

func (k keyMap) editorHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Change, k.AddPoint, k.AddSub, k.AddDetail, k.Remove, k.Save, k.Back}
}
