package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/studycards/internal/ui"
)

// subjectItem adapts a subject to bubbles/list.Item
type subjectItem struct {
	Name  string
	Count int
}

func (i subjectItem) Title() string       { return i.Name }
func (i subjectItem) Description() string { return fmt.Sprintf("%d %s", i.Count, ui.Plural(i.Count)) }
func (i subjectItem) FilterValue() string { return i.Name }

// Custom delegate: one line per subject with a small stack of mini cards.
type subjectDelegate struct{}

func (d subjectDelegate) Height() int                               { return 1 }
func (d subjectDelegate) Spacing() int                              { return 0 }
func (d subjectDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d subjectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(subjectItem)
	stack := strings.Repeat("▮", min(it.Count, 8))
	line := fmt.Sprintf("%-28s %s %s", it.Name, mutedStyle.Render(it.Description()), accentStyle.Render(stack))
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

func newSubjectList(items []list.Item) list.Model {
	l := list.New(items, subjectDelegate{}, 0, 0)
	l.Title = "Welches Fach lernst du heute?"
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = mutedStyle
	return l
}

func (m *Model) refreshSubjects() {
	subs := m.ctrl.Subjects()
	items := make([]list.Item, 0, len(subs))
	for _, s := range subs {
		items = append(items, subjectItem{Name: s, Count: m.ctrl.SubjectCount(s)})
	}
	m.subjects.SetItems(items)
	if len(m.ctrl.Cards()) == 0 {
		m.subjects.Title = "Willkommen! Wähle ein Fach und erstelle deine erste Karte."
	} else {
		m.subjects.Title = "Welches Fach lernst du heute?"
	}
}

func (m Model) updateHome(msg tea.Msg) (Model, tea.Cmd) {
	if m.addingSubject {
		return m.updateAddSubject(msg)
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.subjects, cmd = m.subjects.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(k, m.keys.Quit), k.String() == "esc":
		return m, tea.Quit
	case key.Matches(k, m.keys.Open):
		if it, ok := m.subjects.SelectedItem().(subjectItem); ok {
			m.ctrl.OpenSubject(it.Name)
		}
		return m, nil
	case key.Matches(k, m.keys.All):
		m.ctrl.OpenAll()
		return m, nil
	case key.Matches(k, m.keys.AddSubject):
		m.addingSubject = true
		m.ti.SetValue("")
		m.ti.Placeholder = "Fachname..."
		m.ti.Focus()
		return m, nil
	}
	var cmd tea.Cmd
	m.subjects, cmd = m.subjects.Update(msg)
	return m, cmd
}

func (m Model) updateAddSubject(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			name := strings.TrimSpace(m.ti.Value())
			changed, err := m.ctrl.AddSubject(name)
			m.report("Speichern", err)
			if changed {
				m.refreshSubjects()
				m.subjects.Select(len(m.ctrl.Subjects()) - 1)
				if err == nil {
					m.info("Mappe " + name + " erstellt")
				}
			}
			// a duplicate or empty name keeps the input open
			if !changed {
				return m, nil
			}
			m.addingSubject = false
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		case "esc":
			m.addingSubject = false
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) viewHome() string {
	content := m.subjects.View()
	if m.addingSubject {
		content += "\n" + barStyle.Render("Neue Mappe erstellen\n"+m.ti.View())
	}
	return content
}
