package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Label string
	CornerTL, CornerTR, CornerBL, CornerBR      string
	H, V                                        string
	// card outline markers
	SymPoint, SymSub, SymDetail string
	DotActive, DotIdle          string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Label: "\033[93m",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymPoint: "•", SymSub: "×", SymDetail: "—",
			DotActive: "●", DotIdle: "○",
		}
	case "mono":
		disableColor = true
		current = Theme{
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymPoint: "*", SymSub: "x", SymDetail: "-",
			DotActive: "o", DotIdle: ".",
		}
	default: // classic
		current = Theme{
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Label: fgYellow,
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymPoint: "•", SymSub: "×", SymDetail: "—",
			DotActive: "●", DotIdle: "·",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }
