package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/studycards/internal/model"
	"github.com/idilsaglam/studycards/internal/ui"
)

type exportDoc struct {
	Cards    []model.Card `json:"cards"`
	Subjects []string     `json:"subjects"`
}

func newExportCmd(app *App) *cobra.Command {
	var (
		format string
		render bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all subjects and cards as json or markdown",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.controller(cmd.Context())
			switch format {
			case "", "json":
				b, err := json.MarshalIndent(exportDoc{Cards: c.Cards(), Subjects: c.Subjects()}, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return err
			case "markdown", "md":
				md := ui.DocumentMarkdown(c.Cards(), c.Subjects())
				if render {
					out, err := ui.RenderMarkdown(md, 80)
					if err != nil {
						return err
					}
					md = out
				}
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			default:
				return usagef("unknown format: %s", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json|markdown)")
	cmd.Flags().BoolVar(&render, "render", false, "Render markdown for the terminal")
	return cmd
}
