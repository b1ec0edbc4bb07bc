package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/idilsaglam/studycards/internal/model"
)

// CardMarkdown writes a card as a markdown section.
func CardMarkdown(c model.Card) string {
	var b strings.Builder
	title := c.Title
	if title == "" {
		title = untitled
	}
	fmt.Fprintf(&b, "## %s\n\n", title)
	if c.Subject != "" {
		fmt.Fprintf(&b, "_%s_\n\n", c.Subject)
	}
	for _, p := range c.Points {
		fmt.Fprintf(&b, "- **%s**\n", p.Text)
		for _, s := range p.Subs {
			fmt.Fprintf(&b, "  - %s\n", s.Text)
			for _, d := range s.Details {
				switch {
				case d.Empty():
				case d.Label != "" && d.Values != "":
					fmt.Fprintf(&b, "    - *%s*: %s\n", d.Label, d.Values)
				case d.Label != "":
					fmt.Fprintf(&b, "    - *%s*\n", d.Label)
				default:
					fmt.Fprintf(&b, "    - %s\n", d.Values)
				}
			}
		}
	}
	return b.String()
}

// DocumentMarkdown groups cards under one heading per subject, in subject
// list order; cards with subjects missing from the list come last.
func DocumentMarkdown(cards []model.Card, subjects []string) string {
	var b strings.Builder
	b.WriteString("# Lernkarten\n\n")
	section := func(name string) {
		list := model.BySubject(cards, name)
		if len(list) == 0 {
			return
		}
		fmt.Fprintf(&b, "# %s\n\n", name)
		for _, c := range list {
			b.WriteString(CardMarkdown(c))
			b.WriteString("\n")
		}
	}
	for _, s := range subjects {
		section(s)
	}
	for _, s := range model.OrphanSubjects(cards, subjects) {
		section(s)
	}
	return b.String()
}

// RenderMarkdown renders md for the terminal. A fixed style is used instead
// of auto-detection, which can block on terminal queries.
func RenderMarkdown(md string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	style := styles.DarkStyle
	if !colorEnabled() {
		style = styles.NoTTYStyle
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
