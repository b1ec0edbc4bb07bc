package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const atemwegeOutline = `- Larynx
  x Innervation
    - N. Vagus: sensorisch; motorisch
`

type harness struct {
	t   *testing.T
	dir string
	app *App // of the last run
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STUDYCARDS_CONFIG", "")
	return &harness{t: t, dir: t.TempDir()}
}

func (h *harness) run(stdin string, args ...string) (string, error) {
	h.t.Helper()
	h.app = &App{}
	cmd := newRootCmd(h.app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--dir", h.dir, "--no-color"}, args...))
	err := h.app.run(cmd)
	return out.String(), err
}

func (h *harness) mustRun(stdin string, args ...string) string {
	h.t.Helper()
	out, err := h.run(stdin, args...)
	require.NoError(h.t, err, out)
	return out
}

func (h *harness) export() exportDoc {
	h.t.Helper()
	var doc exportDoc
	require.NoError(h.t, json.Unmarshal([]byte(h.mustRun("", "export")), &doc))
	return doc
}

func TestSubjectsList_DefaultsOnEmptyStore(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("", "subjects", "list")
	for _, s := range []string{"Anästhesiologie", "Pflegewissenschaft", "Pharmakologie", "Anatomie"} {
		assert.Contains(t, out, s)
	}
	assert.Contains(t, out, "0 Karten · 4 Fächer")
}

func TestSubjectsAdd_DuplicateIsNoop(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("", "subjects", "add", "Anatomie")
	assert.Contains(t, out, "already exists")

	h.mustRun("", "subjects", "add", "Innere", "Medizin")
	doc := h.export()
	assert.Equal(t, []string{"Anästhesiologie", "Pflegewissenschaft", "Pharmakologie", "Anatomie", "Innere Medizin"}, doc.Subjects)

	b, err := os.ReadFile(filepath.Join(h.dir, "studycards-subjects-v1.json"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Innere Medizin")
}

func TestCardsAdd_ShowRendersDetail(t *testing.T) {
	h := newHarness(t)
	h.mustRun(atemwegeOutline, "cards", "add", "--subject", "Anatomie", "--title", "Atemwege I", "--outline", "-")
	h.mustRun("", "cards", "add", "-s", "Pharmakologie", "-t", "Opioide")

	out := h.mustRun("", "cards", "list", "--subject", "Anatomie")
	assert.Contains(t, out, "Atemwege I")
	assert.NotContains(t, out, "Opioide")

	out = h.mustRun("", "cards", "show", "1", "--subject", "Anatomie")
	assert.Contains(t, out, "• Larynx")
	assert.Contains(t, out, "× Innervation")
	assert.Contains(t, out, "— N. Vagus: sensorisch; motorisch")

	doc := h.export()
	require.Len(t, doc.Cards, 2)
	assert.Equal(t, "Anatomie", doc.Cards[0].Subject)

	out = h.mustRun("", "cards", "show", doc.Cards[1].ID[:8])
	assert.Contains(t, out, "Opioide")
}

func TestCardsAdd_Validation(t *testing.T) {
	h := newHarness(t)
	var ue usageError

	_, err := h.run("", "cards", "add", "--subject", "Anatomie", "--title", "  ")
	assert.True(t, errors.As(err, &ue), "%v", err)

	_, err = h.run("", "cards", "add", "--title", "x")
	assert.True(t, errors.As(err, &ue), "%v", err)

	_, err = h.run("", "cards", "add", "--subject", "Unbekannt", "--title", "x")
	assert.ErrorContains(t, err, "unknown subject")

	_, err = h.run("  x sub first\n", "cards", "add", "--subject", "Anatomie", "--title", "x", "--outline", "-")
	assert.ErrorContains(t, err, "line 1")

	assert.Empty(t, h.export().Cards)
}

func TestCardsRm_AsksForConfirmation(t *testing.T) {
	h := newHarness(t)
	h.mustRun("", "cards", "add", "-s", "Pharmakologie", "-t", "one")
	h.mustRun("", "cards", "add", "-s", "Pharmakologie", "-t", "two")

	out := h.mustRun("n\n", "cards", "rm", "2", "-s", "Pharmakologie")
	assert.Contains(t, out, "Diese Karte löschen?")
	assert.Len(t, h.export().Cards, 2)

	h.mustRun("y\n", "cards", "rm", "2", "-s", "Pharmakologie")
	doc := h.export()
	require.Len(t, doc.Cards, 1)
	assert.Equal(t, "one", doc.Cards[0].Title)

	h.mustRun("", "cards", "rm", "1", "--yes")
	assert.Empty(t, h.export().Cards)

	_, err := h.run("", "cards", "rm", "1", "--yes")
	assert.ErrorContains(t, err, "index out of range")
}

func TestExport_Markdown(t *testing.T) {
	h := newHarness(t)
	h.mustRun(atemwegeOutline, "cards", "add", "-s", "Anatomie", "-t", "Atemwege I", "-o", "-")

	out := h.mustRun("", "export", "--format", "markdown")
	assert.Contains(t, out, "# Anatomie")
	assert.Contains(t, out, "## Atemwege I")
	assert.Contains(t, out, "*N. Vagus*: sensorisch; motorisch")

	_, err := h.run("", "export", "--format", "xml")
	var ue usageError
	assert.True(t, errors.As(err, &ue))
}

func TestSQLiteBackend(t *testing.T) {
	h := newHarness(t)
	h.mustRun("", "--backend", "sqlite", "subjects", "add", "Physiologie")

	out := h.mustRun("", "--backend", "sqlite", "subjects", "list")
	assert.Contains(t, out, "Physiologie")
	_, err := os.Stat(filepath.Join(h.dir, "studycards.sqlite"))
	assert.NoError(t, err)

	// the file backend in the same dir is a separate store
	assert.NotContains(t, h.mustRun("", "subjects", "list"), "Physiologie")
}

func TestBadBackendIsUsageError(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("", "--backend", "cloud", "subjects", "list")
	var ue usageError
	assert.True(t, errors.As(err, &ue), "%v", err)
}

func TestCardsShow_OutlineRoundTrips(t *testing.T) {
	h := newHarness(t)
	h.mustRun(atemwegeOutline, "cards", "add", "-s", "Anatomie", "-t", "Atemwege I", "-o", "-")

	outline := h.mustRun("", "cards", "show", "1", "--outline")
	assert.Equal(t, atemwegeOutline, outline)

	h.mustRun(outline, "cards", "add", "-s", "Anatomie", "-t", "Atemwege II", "-o", "-")
	doc := h.export()
	require.Len(t, doc.Cards, 2)
	assert.Equal(t, "Atemwege II", doc.Cards[1].Title)
	assert.Equal(t, atemwegeOutline, h.mustRun("", "cards", "show", "2", "--outline"))
	assert.NotEqual(t, doc.Cards[0].Points[0].ID, doc.Cards[1].Points[0].ID)

	plain := h.mustRun("", "cards", "show", "1", "--plain")
	assert.True(t, strings.HasPrefix(plain, "Atemwege I\nAnatomie\n"), plain)
	assert.Contains(t, plain, "      — N. Vagus: sensorisch; motorisch")
	assert.NotContains(t, plain, "╭")
}

func TestExitCodes(t *testing.T) {
	h := newHarness(t)
	h.mustRun("", "cards", "add", "-s", "Anatomie", "-t", "eins")

	cases := []struct {
		name string
		args []string
		want int
	}{
		{"missing argument", []string{"cards", "show"}, 2},
		{"extra argument", []string{"export", "extra"}, 2},
		{"no subject name", []string{"subjects", "add"}, 2},
		{"unknown flag", []string{"cards", "list", "--nope"}, 2},
		{"unknown command", []string{"decks"}, 2},
		{"exclusive flags", []string{"cards", "show", "1", "--outline", "--plain"}, 2},
		{"index out of range", []string{"cards", "show", "9"}, 2},
		{"card not found", []string{"cards", "show", "zzzz"}, 1},
		{"ok", []string{"cards", "show", "1"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.run("", tc.args...)
			assert.Equal(t, tc.want, exitCode(err), "%v", err)
		})
	}
}

func TestFailingCommandClosesStore(t *testing.T) {
	h := newHarness(t)
	h.mustRun("", "--backend", "sqlite", "subjects", "list")

	_, err := h.run("", "--backend", "sqlite", "cards", "show", "zzzz")
	require.ErrorContains(t, err, "card not found")
	assert.Nil(t, h.app.kv)

	// the store is usable again by the next invocation
	h.mustRun("", "--backend", "sqlite", "subjects", "add", "Physiologie")
	assert.Contains(t, h.mustRun("", "--backend", "sqlite", "subjects", "list"), "Physiologie")
}
