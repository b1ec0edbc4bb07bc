package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/studycards/internal/model"
	"github.com/idilsaglam/studycards/internal/nav"
	"github.com/idilsaglam/studycards/internal/ui"
)

func newCardsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cards",
		Aliases: []string{"karten"},
		Short:   "List, show, add and remove cards",
	}
	cmd.AddCommand(newCardsListCmd(app))
	cmd.AddCommand(newCardsShowCmd(app))
	cmd.AddCommand(newCardsAddCmd(app))
	cmd.AddCommand(newCardsRmCmd(app))
	return cmd
}

func newCardsListCmd(app *App) *cobra.Command {
	var subject string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards, optionally for one subject",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.controller(cmd.Context())
			t := ui.Current()
			list := model.BySubject(c.Cards(), subject)

			lines := []string{headerLine(len(c.Cards()), len(c.Subjects()))}
			if subject != "" {
				lines = append(lines, ui.C(t.Accent, subject))
			}
			lines = append(lines, "")
			if len(list) == 0 {
				lines = append(lines, ui.C(t.Muted, "no cards"))
			}
			for i, card := range list {
				title := ansi.Truncate(card.Title, 60, "...")
				lines = append(lines, fmt.Sprintf("%s %s  %s",
					ui.C(t.Muted, fmt.Sprintf("%2d.", i+1)), title,
					ui.C(t.Muted, fmt.Sprintf("%s · %d Punkte · %s", card.Subject, len(card.Points), shortID(card.ID)))))
			}
			ui.Panel(lines)
			return nil
		},
	}
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Only cards of this subject")
	return cmd
}

func newCardsShowCmd(app *App) *cobra.Command {
	var (
		subject  string
		markdown bool
		outline  bool
		plain    bool
	)
	cmd := &cobra.Command{
		Use:   "show <id|index>",
		Short: "Show one card by id (or unique id prefix) or 1-based index",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.controller(cmd.Context())
			card, err := resolveCard(c, subject, args[0])
			if err != nil {
				return err
			}
			switch {
			case outline:
				// same format `cards add --outline` reads
				fmt.Fprint(cmd.OutOrStdout(), model.FormatOutline(card.Points))
				return nil
			case plain:
				fmt.Fprintln(cmd.OutOrStdout(), ui.PlainCard(card))
				return nil
			case markdown:
				out, err := ui.RenderMarkdown(ui.CardMarkdown(card), 80)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}
			ui.Panel(ui.CardLines(card))
			return nil
		},
	}
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Resolve the index within this subject")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render as markdown")
	cmd.Flags().BoolVar(&outline, "outline", false, "Print the outline in the format cards add --outline reads")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print without frame and colors")
	cmd.MarkFlagsMutuallyExclusive("markdown", "outline", "plain")
	return cmd
}

func newCardsAddCmd(app *App) *cobra.Command {
	var subject, title, outline string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a card; the outline is read from a file or - for stdin",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			title = strings.TrimSpace(title)
			if title == "" {
				return usagef("cards add: --title is required")
			}
			if subject == "" {
				return usagef("cards add: --subject is required")
			}
			c := app.controller(cmd.Context())
			if !model.HasSubject(c.Subjects(), subject) {
				return usagef("cards add: unknown subject %q (add it with `studycards subjects add`)", subject)
			}

			var points []model.Point
			if outline != "" {
				text, err := readInput(cmd.InOrStdin(), outline)
				if err != nil {
					return err
				}
				if points, err = model.ParseOutline(text); err != nil {
					return usagef("cards add: outline: %v", err)
				}
			}

			c.StartCreate(subject)
			draft, _ := c.Draft()
			id := draft.ID
			if err := c.EditDraft(func(d model.Card) model.Card {
				d = model.SetTitle(d, title)
				if points != nil {
					d.Points = points
				}
				return d
			}); err != nil {
				return err
			}
			if err := c.SaveDraft(); err != nil {
				return err
			}
			ui.OK("added " + shortID(id))
			return nil
		},
	}
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject (must exist)")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Card title")
	cmd.Flags().StringVarP(&outline, "outline", "o", "", "Outline file, or - for stdin")
	return cmd
}

func newCardsRmCmd(app *App) *cobra.Command {
	var (
		subject string
		yes     bool
	)
	cmd := &cobra.Command{
		Use:   "rm <id|index>",
		Short: "Remove a card (asks for confirmation unless --yes)",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.controller(cmd.Context())
			card, err := resolveCard(c, subject, args[0])
			if err != nil {
				return err
			}
			if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Diese Karte löschen? %q [y/N] ", card.Title)) {
				ui.OK("kept")
				return nil
			}
			if err := c.DeleteCard(card.ID); err != nil {
				return err
			}
			ui.OK("removed " + shortID(card.ID))
			return nil
		},
	}
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Resolve the index within this subject")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

// resolveCard accepts a 1-based index into the (subject-filtered) list, a
// full id, or a unique id prefix.
func resolveCard(c *nav.Controller, subject, ref string) (model.Card, error) {
	list := model.BySubject(c.Cards(), subject)
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(list) {
			return model.Card{}, usagef("index out of range: have %d, got %d", len(list), n)
		}
		return list[n-1], nil
	}
	var match []model.Card
	for _, card := range list {
		if card.ID == ref {
			return card, nil
		}
		if strings.HasPrefix(card.ID, ref) {
			match = append(match, card)
		}
	}
	switch len(match) {
	case 0:
		return model.Card{}, fmt.Errorf("card not found: %s", ref)
	case 1:
		return match[0], nil
	default:
		return model.Card{}, usagef("ambiguous id prefix %q matches %d cards", ref, len(match))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func readInput(stdin io.Reader, path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", usagef("no such file: %s", path)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "j", "ja":
		return true
	}
	return false
}
