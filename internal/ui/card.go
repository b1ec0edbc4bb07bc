package ui

import (
	"strings"

	"github.com/idilsaglam/studycards/internal/model"
)

const untitled = "Ohne Titel"

// CardLines renders a card the way the paper card looks: title, then
// "•" points, "×" subs and "—" detail lines. Details that render to nothing
// are skipped.
func CardLines(c model.Card) []string {
	t := Current()
	title := c.Title
	if title == "" {
		title = untitled
	}
	lines := []string{C(t.Title, title)}
	if c.Subject != "" {
		lines = append(lines, C(t.Muted, c.Subject))
	}
	lines = append(lines, "")
	for _, p := range c.Points {
		lines = append(lines, C(t.Accent, t.SymPoint)+" "+p.Text)
		for _, s := range p.Subs {
			lines = append(lines, "  "+C(t.Muted, t.SymSub)+" "+s.Text)
			for _, d := range s.Details {
				if d.Empty() {
					continue
				}
				lines = append(lines, "      "+C(t.Muted, t.SymDetail)+" "+detailText(d))
			}
		}
	}
	return lines
}

func detailText(d model.Detail) string {
	if d.Label == "" {
		return d.Values
	}
	label := C(Current().Label, d.Label)
	if d.Values == "" {
		return label
	}
	return label + ": " + d.Values
}

// PlainCard is CardLines without styling, joined by newlines.
func PlainCard(c model.Card) string {
	saved := disableColor
	disableColor = true
	defer func() { disableColor = saved }()
	return strings.Join(CardLines(c), "\n")
}
