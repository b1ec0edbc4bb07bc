package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/studycards/internal/ui"
)

func (m Model) updateBrowse(msg tea.Msg) (Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmDelete {
		m.confirmDelete = false
		switch k.String() {
		case "y", "j", "enter":
			cur, _ := m.ctrl.Current()
			err := m.ctrl.DeleteCurrent()
			m.report("Löschen", err)
			if err == nil {
				m.info("Karte gelöscht: " + titleOf(cur.Title))
			}
		default:
			m.info("")
		}
		return m, nil
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(k, m.keys.Back):
		m.ctrl.Back()
	case key.Matches(k, m.keys.Prev):
		m.ctrl.Prev()
	case key.Matches(k, m.keys.Next):
		m.ctrl.Next()
	case key.Matches(k, m.keys.Jump):
		m.ctrl.Jump(int(k.Runes[0] - '1'))
	case key.Matches(k, m.keys.First):
		m.ctrl.Jump(0)
	case key.Matches(k, m.keys.Last):
		m.ctrl.Jump(len(m.ctrl.Browsable()) - 1)
	case key.Matches(k, m.keys.New):
		m.ctrl.StartCreate("")
		m.editor = editorState{}
	case key.Matches(k, m.keys.Edit):
		if m.ctrl.StartEdit() == nil {
			m.editor = editorState{}
		}
	case key.Matches(k, m.keys.Delete):
		if cur, ok := m.ctrl.Current(); ok {
			m.confirmDelete = true
			m.status = fmt.Sprintf("Diese Karte löschen? %q (y/n)", titleOf(cur.Title))
			m.statusErr = true
		}
	}
	return m, nil
}

func (m Model) viewBrowse() string {
	subject := m.ctrl.ActiveSubject()
	if subject == "" {
		subject = "alle Karten"
	}
	list := m.ctrl.Browsable()
	if len(list) == 0 {
		return mutedStyle.Render(fmt.Sprintf("Noch keine Karten in %s.\n\nn: erste Karte erstellen", subject))
	}

	prev, next := "←", "→"
	if !m.ctrl.CanPrev() {
		prev = disabledStyle.Render(prev)
	}
	if !m.ctrl.CanNext() {
		next = disabledStyle.Render(next)
	}
	counter := fmt.Sprintf("%s  %d / %d — %s  %s", prev, m.ctrl.Index()+1, len(list), subject, next)

	cur, _ := m.ctrl.Current()
	card := paperStyle.Render(strings.Join(ui.CardLines(cur), "\n"))

	return strings.Join([]string{counter, "", card, "", ui.Dots(m.ctrl.Index(), len(list))}, "\n")
}

func titleOf(t string) string {
	if t == "" {
		return "Ohne Titel"
	}
	return t
}
