package model

import (
	"bufio"
	"fmt"
	"strings"
)

// Plain-text outline format, one node per line:
//
//	- Larynx
//	  x Innervation
//	    - N. Vagus: sensorisch; motorisch
//
// Indentation picks the level (0 point, 2 sub, 4+ detail); the leading
// marker is optional. A tab counts as two spaces. A detail splits at the
// first unescaped colon; FormatOutline writes ':' and '\' in labels as '\:'
// and '\\'. Surrounding blanks of texts are not kept.

// FormatOutline writes points in the plain-text outline format.
func FormatOutline(points []Point) string {
	var b strings.Builder
	for _, p := range points {
		fmt.Fprintf(&b, "- %s\n", p.Text)
		for _, s := range p.Subs {
			fmt.Fprintf(&b, "  x %s\n", s.Text)
			for _, d := range s.Details {
				line := escapeLabel(d.Label)
				if d.Values != "" {
					line += ": " + d.Values
				}
				fmt.Fprintf(&b, "    - %s\n", line)
			}
		}
	}
	return b.String()
}

// ParseOutline reads the plain-text outline format, stamping fresh ids.
func ParseOutline(text string) ([]Point, error) {
	points := []Point{}
	sc := bufio.NewScanner(strings.NewReader(text))
	n := 0
	for sc.Scan() {
		n++
		raw := strings.ReplaceAll(sc.Text(), "\t", "  ")
		if strings.TrimSpace(raw) == "" {
			continue
		}
		indent := len(raw) - len(strings.TrimLeft(raw, " "))
		body := strings.TrimSpace(raw)

		switch {
		case indent < 2:
			p := NewPoint()
			p.Text = stripMarker(body, "-", "•", "*")
			points = append(points, p)
		case indent < 4:
			if len(points) == 0 {
				return nil, fmt.Errorf("line %d: sub-point without a main point", n)
			}
			s := NewSub()
			s.Text = stripMarker(body, "x", "×", "-", "*")
			pi := len(points) - 1
			points[pi].Subs = append(points[pi].Subs, s)
		default:
			if len(points) == 0 || len(points[len(points)-1].Subs) == 0 {
				return nil, fmt.Errorf("line %d: detail without a sub-point", n)
			}
			d := NewDetail()
			d.Label, d.Values = cutDetail(stripMarker(body, "-", "—", "*"))
			p := &points[len(points)-1]
			si := len(p.Subs) - 1
			p.Subs[si].Details = append(p.Subs[si].Details, d)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read outline: %w", err)
	}
	return points, nil
}

func stripMarker(s string, markers ...string) string {
	for _, m := range markers {
		if s == m {
			return ""
		}
		if strings.HasPrefix(s, m+" ") {
			return strings.TrimSpace(s[len(m)+1:])
		}
	}
	return s
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, ":", `\:`)

func escapeLabel(s string) string { return labelEscaper.Replace(s) }

// cutDetail splits "label: values" at the first colon that is not escaped
// and unescapes the label.
func cutDetail(s string) (label, values string) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\' && i+1 < len(s) && (s[i+1] == ':' || s[i+1] == '\\'):
			i++
			b.WriteByte(s[i])
		case c == ':':
			return strings.TrimSpace(b.String()), strings.TrimSpace(s[i+1:])
		default:
			b.WriteByte(c)
		}
	}
	return strings.TrimSpace(b.String()), ""
}
