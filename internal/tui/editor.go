package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/studycards/internal/model"
	"github.com/idilsaglam/studycards/internal/ui"
)

type rowKind int

const (
	rowTitle rowKind = iota
	rowSubject
	rowPoint
	rowSub
	rowDetailLabel
	rowDetailValues
)

// row is one focusable line of the editor; ids locate the node in the draft.
type row struct {
	kind     rowKind
	pid, sid string
	did      string
}

type editorState struct {
	cursor  int
	editing bool
}

// editorRows flattens the draft outline into focusable rows.
func editorRows(c model.Card) []row {
	rows := []row{{kind: rowTitle}, {kind: rowSubject}}
	for _, p := range c.Points {
		rows = append(rows, row{kind: rowPoint, pid: p.ID})
		for _, s := range p.Subs {
			rows = append(rows, row{kind: rowSub, pid: p.ID, sid: s.ID})
			for _, d := range s.Details {
				rows = append(rows,
					row{kind: rowDetailLabel, pid: p.ID, sid: s.ID, did: d.ID},
					row{kind: rowDetailValues, pid: p.ID, sid: s.ID, did: d.ID})
			}
		}
	}
	return rows
}

func (m Model) currentRow() (row, model.Card) {
	d, _ := m.ctrl.Draft()
	rows := editorRows(d)
	i := min(max(m.editor.cursor, 0), len(rows)-1)
	return rows[i], d
}

// focus moves the cursor to the first row matching want.
func (m *Model) focus(want func(row) bool) {
	d, _ := m.ctrl.Draft()
	for i, r := range editorRows(d) {
		if want(r) {
			m.editor.cursor = i
			return
		}
	}
}

func (m *Model) edit(fn func(model.Card) model.Card) {
	if err := m.ctrl.EditDraft(fn); err != nil {
		m.report("Bearbeiten", err)
	}
}

func (m Model) updateEditor(msg tea.Msg) (Model, tea.Cmd) {
	if m.editor.editing {
		return m.updateEditorField(msg)
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	r, d := m.currentRow()
	nrows := len(editorRows(d))

	switch {
	case key.Matches(k, m.keys.Save):
		if err := d.Validate(); err != nil {
			m.status, m.statusErr = "Speichern nicht möglich: "+germanReason(err), true
			return m, nil
		}
		err := m.ctrl.SaveDraft()
		m.editor = editorState{}
		m.report("Speichern", err)
		if err == nil {
			m.info("Karte gespeichert")
		}
	case k.String() == "esc":
		m.ctrl.CancelDraft()
		m.editor = editorState{}
	case key.Matches(k, m.keys.Up):
		m.editor.cursor = max(m.editor.cursor-1, 0)
	case key.Matches(k, m.keys.Down):
		m.editor.cursor = min(m.editor.cursor+1, nrows-1)
	case r.kind == rowSubject && (k.String() == "left" || k.String() == "right" || k.String() == "enter"):
		step := 1
		if k.String() == "left" {
			step = -1
		}
		m.edit(func(c model.Card) model.Card { return model.SetSubject(c, m.cycleSubject(c.Subject, step)) })
	case key.Matches(k, m.keys.Change):
		m.editor.editing = true
		m.ti.SetValue(fieldValue(d, r))
		m.ti.CursorEnd()
		m.ti.Placeholder = placeholder(r, d)
		m.ti.Focus()
	case key.Matches(k, m.keys.AddPoint):
		m.edit(model.AddPoint)
		nd, _ := m.ctrl.Draft()
		pid := nd.Points[len(nd.Points)-1].ID
		m.focus(func(x row) bool { return x.kind == rowPoint && x.pid == pid })
	case key.Matches(k, m.keys.AddSub):
		if r.pid == "" {
			m.info("Erst einen Hauptpunkt wählen (p legt einen an)")
			return m, nil
		}
		m.edit(func(c model.Card) model.Card { return model.AddSub(c, r.pid) })
		nd, _ := m.ctrl.Draft()
		subs := findPoint(nd, r.pid).Subs
		sid := subs[len(subs)-1].ID
		m.focus(func(x row) bool { return x.kind == rowSub && x.sid == sid })
	case key.Matches(k, m.keys.AddDetail):
		if r.sid == "" {
			m.info("Erst einen Unterpunkt wählen (s legt einen an)")
			return m, nil
		}
		m.edit(func(c model.Card) model.Card { return model.AddDetail(c, r.pid, r.sid) })
		nd, _ := m.ctrl.Draft()
		ds := findSub(nd, r.pid, r.sid).Details
		did := ds[len(ds)-1].ID
		m.focus(func(x row) bool { return x.kind == rowDetailLabel && x.did == did })
	case key.Matches(k, m.keys.Remove):
		switch r.kind {
		case rowPoint:
			m.edit(func(c model.Card) model.Card { return model.RemovePoint(c, r.pid) })
		case rowSub:
			m.edit(func(c model.Card) model.Card { return model.RemoveSub(c, r.pid, r.sid) })
		case rowDetailLabel, rowDetailValues:
			m.edit(func(c model.Card) model.Card { return model.RemoveDetail(c, r.pid, r.sid, r.did) })
		}
		nd, _ := m.ctrl.Draft()
		m.editor.cursor = min(m.editor.cursor, len(editorRows(nd))-1)
	}
	return m, nil
}

// updateEditorField types into the focused field. The draft follows every
// keystroke so the preview stays live; enter or esc leaves the field.
func (m Model) updateEditorField(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter", "esc", "tab":
			m.editor.editing = false
			m.ti.Blur()
			m.ti.SetValue("")
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	r, _ := m.currentRow()
	v := m.ti.Value()
	m.edit(func(c model.Card) model.Card { return setField(c, r, v) })
	return m, cmd
}

func setField(c model.Card, r row, v string) model.Card {
	switch r.kind {
	case rowTitle:
		return model.SetTitle(c, v)
	case rowPoint:
		return model.UpdatePointText(c, r.pid, v)
	case rowSub:
		return model.UpdateSubText(c, r.pid, r.sid, v)
	case rowDetailLabel:
		return model.UpdateDetail(c, r.pid, r.sid, r.did, model.DetailLabel, v)
	case rowDetailValues:
		return model.UpdateDetail(c, r.pid, r.sid, r.did, model.DetailValues, v)
	}
	return c
}

func fieldValue(c model.Card, r row) string {
	switch r.kind {
	case rowTitle:
		return c.Title
	case rowSubject:
		return c.Subject
	case rowPoint:
		return findPoint(c, r.pid).Text
	case rowSub:
		return findSub(c, r.pid, r.sid).Text
	case rowDetailLabel:
		return findDetail(c, r).Label
	case rowDetailValues:
		return findDetail(c, r).Values
	}
	return ""
}

func placeholder(r row, c model.Card) string {
	switch r.kind {
	case rowTitle:
		return "z.B. Atemwegsmanagement I"
	case rowPoint:
		for i, p := range c.Points {
			if p.ID == r.pid {
				return fmt.Sprintf("Hauptpunkt %d (z.B. Anatomie)", i+1)
			}
		}
	case rowSub:
		return "Unterpunkt (z.B. nervale Versorgung)"
	case rowDetailLabel:
		return "z.B. N. Vagus"
	case rowDetailValues:
		return "Details mit ; trennen"
	}
	return ""
}

// cycleSubject steps through the subject list. A subject no longer in the
// list stays selectable so editing an older card does not silently move it.
func (m Model) cycleSubject(cur string, step int) string {
	opts := append([]string(nil), m.ctrl.Subjects()...)
	if cur != "" && !model.HasSubject(opts, cur) {
		opts = append(opts, cur)
	}
	if len(opts) == 0 {
		return cur
	}
	i := -1
	for j, s := range opts {
		if s == cur {
			i = j
		}
	}
	if i < 0 {
		if step < 0 {
			return opts[len(opts)-1]
		}
		return opts[0]
	}
	return opts[(i+step+len(opts))%len(opts)]
}

func findPoint(c model.Card, pid string) model.Point {
	for _, p := range c.Points {
		if p.ID == pid {
			return p
		}
	}
	return model.Point{}
}

func findSub(c model.Card, pid, sid string) model.Sub {
	for _, s := range findPoint(c, pid).Subs {
		if s.ID == sid {
			return s
		}
	}
	return model.Sub{}
}

func findDetail(c model.Card, r row) model.Detail {
	for _, d := range findSub(c, r.pid, r.sid).Details {
		if d.ID == r.did {
			return d
		}
	}
	return model.Detail{}
}

func germanReason(err error) string {
	switch {
	case errors.Is(err, model.ErrTitleRequired):
		return "Titel fehlt"
	case errors.Is(err, model.ErrSubjectRequired):
		return "Fach / Mappe fehlt"
	}
	return err.Error()
}

func (m Model) viewEditor() string {
	_, d := m.currentRow()
	rows := editorRows(d)
	cursor := min(max(m.editor.cursor, 0), len(rows)-1)

	var lines []string
	for i, rw := range rows {
		var indent, label, value string
		switch rw.kind {
		case rowTitle:
			label, value = "Titel der Karte", d.Title
		case rowSubject:
			label, value = "Fach / Mappe", d.Subject
			if value == "" {
				value = "— wählen —"
			}
			value = "‹ " + value + " ›"
		case rowPoint:
			indent, label, value = "", "•", findPoint(d, rw.pid).Text
		case rowSub:
			indent, label, value = "    ", "×", findSub(d, rw.pid, rw.sid).Text
		case rowDetailLabel:
			indent, label, value = "        ", "— Label", findDetail(d, rw).Label
		case rowDetailValues:
			indent, label, value = "          ", ": Werte", findDetail(d, rw).Values
		}
		if i == cursor && m.editor.editing {
			value = m.ti.View()
		}
		line := indent + labelStyle.Render(label) + " " + value
		prefix := "  "
		if i == cursor {
			prefix = selectedStyle.Render("> ")
		}
		lines = append(lines, prefix+line)
		if rw.kind == rowSubject {
			lines = append(lines, "")
		}
	}
	if len(d.Points) == 0 {
		lines = append(lines, "", mutedStyle.Render("  p: + Hauptpunkt hinzufügen"))
	}

	save := okStyle.Render("[ctrl+s] Karte speichern")
	if !d.CanSave() {
		save = disabledStyle.Render("[ctrl+s] Karte speichern")
	}
	lines = append(lines, "", save+"   "+mutedStyle.Render("[esc] Abbrechen"))

	form := strings.Join(lines, "\n")
	if !d.HasContent() || m.width < 100 {
		if d.HasContent() {
			form += "\n\n" + mutedStyle.Render("Vorschau") + "\n" + paperStyle.Render(strings.Join(ui.CardLines(d), "\n"))
		}
		return form
	}
	preview := mutedStyle.Render("Vorschau") + "\n" + paperStyle.Render(strings.Join(ui.CardLines(d), "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, form, "   ", preview)
}
