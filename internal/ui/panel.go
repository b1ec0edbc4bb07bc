package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Panel draws a framed box using the current theme.
func Panel(lines []string) {
	fmt.Fprint(stdout, PanelString(lines))
}

// PanelString is Panel without the printing.
func PanelString(lines []string) string {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if w := ansi.StringWidth(ln); w > maxw {
			maxw = w
		}
	}
	pad := func(s string) string {
		if vis := ansi.StringWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	var b strings.Builder
	b.WriteString(t.CornerTL + strings.Repeat(t.H, maxw+2) + t.CornerTR + "\n")
	for _, ln := range lines {
		b.WriteString(t.V + " " + pad(ln) + " " + t.V + "\n")
	}
	b.WriteString(t.CornerBL + strings.Repeat(t.H, maxw+2) + t.CornerBR + "\n")
	return b.String()
}

// Dots renders the browse position row, one dot per card.
func Dots(index, total int) string {
	t := Current()
	dots := make([]string, total)
	for i := range dots {
		dots[i] = C(t.Muted, t.DotIdle)
		if i == index {
			dots[i] = C(t.Accent, t.DotActive)
		}
	}
	return strings.Join(dots, " ")
}

// Plural picks the German card noun for n.
func Plural(n int) string {
	if n == 1 {
		return "Karte"
	}
	return "Karten"
}
