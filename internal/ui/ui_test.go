package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/idilsaglam/studycards/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func atemwege() model.Card {
	return model.Card{
		ID: "c1", Subject: "Anatomie", Title: "Atemwege I",
		Points: []model.Point{{
			ID: "p1", Text: "Larynx",
			Subs: []model.Sub{{
				ID: "s1", Text: "Innervation",
				Details: []model.Detail{
					{ID: "d1", Label: "N. Vagus", Values: "sensorisch; motorisch"},
					{ID: "d2"},
					{ID: "d3", Values: "nur Werte"},
				},
			}},
		}},
	}
}

func noColor(t *testing.T) {
	t.Helper()
	SetColorForcing(false, true)
	SetTheme("classic")
	t.Cleanup(func() { SetColorForcing(false, false) })
}

func TestPlainCard(t *testing.T) {
	noColor(t)
	want := strings.Join([]string{
		"Atemwege I",
		"Anatomie",
		"",
		"• Larynx",
		"  × Innervation",
		"      — N. Vagus: sensorisch; motorisch",
		"      — nur Werte",
	}, "\n")
	assert.Equal(t, want, PlainCard(atemwege()))
}

func TestPlainCard_Untitled(t *testing.T) {
	noColor(t)
	assert.True(t, strings.HasPrefix(PlainCard(model.Card{}), "Ohne Titel"))
}

func TestPanel_PadsToWidestLine(t *testing.T) {
	noColor(t)
	var out bytes.Buffer
	origOut, origErr := stdout, stderr
	SetOutput(&out, &out)
	t.Cleanup(func() { SetOutput(origOut, origErr) })

	Panel([]string{"ab", "abcd"})
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "┌──────┐", lines[0])
	assert.Equal(t, "│ ab   │", lines[1])
	assert.Equal(t, "│ abcd │", lines[2])
	assert.Equal(t, "└──────┘", lines[3])
}

func TestDots(t *testing.T) {
	noColor(t)
	assert.Equal(t, "· ● ·", Dots(1, 3))
	assert.Equal(t, "", Dots(0, 0))
}

func TestCardMarkdown(t *testing.T) {
	md := CardMarkdown(atemwege())
	assert.Contains(t, md, "## Atemwege I")
	assert.Contains(t, md, "- **Larynx**")
	assert.Contains(t, md, "    - *N. Vagus*: sensorisch; motorisch")
	assert.Contains(t, md, "    - nur Werte")
	assert.Equal(t, 4, strings.Count(md, "- "))
}

func TestDocumentMarkdown_OrphansLast(t *testing.T) {
	cards := []model.Card{
		{ID: "1", Subject: "Gone", Title: "orphan"},
		{ID: "2", Subject: "Anatomie", Title: "kept"},
	}
	md := DocumentMarkdown(cards, []string{"Anatomie", "Pharmakologie"})
	assert.Less(t, strings.Index(md, "# Anatomie"), strings.Index(md, "# Gone"))
	assert.NotContains(t, md, "# Pharmakologie")
}

func TestRenderMarkdown(t *testing.T) {
	noColor(t)
	out, err := RenderMarkdown(CardMarkdown(atemwege()), 80)
	require.NoError(t, err)
	assert.Contains(t, out, "Atemwege I")
	assert.Contains(t, out, "Larynx")
}
