package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/studycards/internal/model"
	"github.com/idilsaglam/studycards/internal/ui"
)

func newSubjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subjects",
		Aliases: []string{"mappen"},
		Short:   "List and add subjects (Mappen)",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List subjects with their card counts",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.controller(cmd.Context())
			t := ui.Current()

			lines := []string{headerLine(len(c.Cards()), len(c.Subjects())), ""}
			for i, s := range c.Subjects() {
				n := c.SubjectCount(s)
				lines = append(lines, fmt.Sprintf("%s %s  %s",
					ui.C(t.Muted, fmt.Sprintf("%2d.", i+1)), s,
					ui.C(t.Muted, fmt.Sprintf("%d %s", n, ui.Plural(n)))))
			}
			if orphans := model.OrphanSubjects(c.Cards(), c.Subjects()); len(orphans) > 0 {
				lines = append(lines, "", ui.C(t.Muted, "Not in the subject list:"))
				for _, s := range orphans {
					n := c.SubjectCount(s)
					lines = append(lines, fmt.Sprintf("    %s  %s", s, ui.C(t.Muted, fmt.Sprintf("%d %s", n, ui.Plural(n)))))
				}
			}
			lines = append(lines, "", ui.C(t.Muted, "Tip: add with `studycards subjects add \"Physiologie\"`"))
			ui.Panel(lines)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "add <name...>",
		Short: "Add a subject (name can be multiple words)",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return usagef("subjects add: empty name")
			}
			c := app.controller(cmd.Context())
			changed, err := c.AddSubject(name)
			if err != nil {
				return err
			}
			if !changed {
				ui.OK("already exists: " + name)
				return nil
			}
			ui.OK("added " + name)
			return nil
		},
	})
	return cmd
}

func headerLine(cards, subjects int) string {
	t := ui.Current()
	return fmt.Sprintf("%s  %s",
		ui.C(t.Title, "Lernkarten"),
		ui.C(t.Muted, fmt.Sprintf("%d %s · %d Fächer", cards, ui.Plural(cards), subjects)))
}
