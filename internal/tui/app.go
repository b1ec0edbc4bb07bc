package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/studycards/internal/logger"
	"github.com/idilsaglam/studycards/internal/nav"
	"github.com/idilsaglam/studycards/internal/ui"
)

type Options struct {
	Log *logger.Logger
}

// Model is the Bubble Tea model. All document state lives in the nav
// controller; Model only adds widgets and transient input state.
type Model struct {
	ctrl *nav.Controller
	log  *logger.Logger
	keys keyMap
	help help.Model

	width, height int

	subjects list.Model
	ti       textinput.Model // shared by add-subject and editor fields

	addingSubject bool
	confirmDelete bool
	editor        editorState

	status    string
	statusErr bool
}

func New(ctrl *nav.Controller, opt Options) Model {
	log := opt.Log
	if log == nil {
		log = logger.Nop()
	}
	m := Model{
		ctrl:   ctrl,
		log:    log.With("component", "tui"),
		keys:   newKeyMap(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
	m.subjects = newSubjectList(nil)
	m.refreshSubjects()

	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 200
	m.resize()
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(ctrl *nav.Controller, opt Options) error {
	p := tea.NewProgram(New(ctrl, opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		if k.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// any key clears the last message
		if !m.confirmDelete {
			m.status, m.statusErr = "", false
		}
	}

	var cmd tea.Cmd
	switch m.ctrl.View() {
	case nav.ViewBrowse:
		m, cmd = m.updateBrowse(msg)
	case nav.ViewCreate, nav.ViewEdit:
		m, cmd = m.updateEditor(msg)
	default:
		m, cmd = m.updateHome(msg)
	}
	if m.ctrl.View() == nav.ViewHome {
		m.refreshSubjects()
	}
	return m, cmd
}

func (m Model) View() string {
	var body string
	var bindings []key.Binding
	switch m.ctrl.View() {
	case nav.ViewBrowse:
		body, bindings = m.viewBrowse(), m.keys.browseHelp()
	case nav.ViewCreate, nav.ViewEdit:
		body, bindings = m.viewEditor(), m.keys.editorHelp()
	default:
		body, bindings = m.viewHome(), m.keys.homeHelp()
	}

	parts := []string{m.header(), "", body, ""}
	if m.status != "" {
		st := okStyle
		if m.statusErr {
			st = errorStyle
		}
		parts = append(parts, st.Render(m.status))
	}
	parts = append(parts, m.help.ShortHelpView(bindings))
	return panelString(strings.Join(parts, "\n"))
}

func (m Model) header() string {
	n := len(m.ctrl.Cards())
	h := fmt.Sprintf("%s   %s",
		titleStyle.Render("Lernkarten"),
		mutedStyle.Render(fmt.Sprintf("%d %s · %d Fächer", n, ui.Plural(n), len(m.ctrl.Subjects()))))
	switch m.ctrl.View() {
	case nav.ViewBrowse:
		h += "   " + mutedStyle.Render("← Fächer")
	case nav.ViewCreate, nav.ViewEdit:
		back := m.ctrl.ActiveSubject()
		if back == "" {
			back = "Übersicht"
		}
		h += "   " + mutedStyle.Render("← "+back)
	}
	return h
}

func (m *Model) resize() {
	m.help.Width = m.width - 4
	m.subjects.SetSize(m.width-4, max(m.height-8, 3))
	m.ti.Width = max(m.width-12, 10)
}

// report shows a storage failure without losing the in-memory change.
func (m *Model) report(op string, err error) {
	if err == nil {
		return
	}
	m.log.Error(op+" failed", "error", err)
	m.status = fmt.Sprintf("%s fehlgeschlagen: %v", op, err)
	m.statusErr = true
}

func (m *Model) info(msg string) {
	m.status, m.statusErr = msg, false
}
