package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/studycards/internal/config"
	"github.com/idilsaglam/studycards/internal/logger"
	"github.com/idilsaglam/studycards/internal/nav"
	"github.com/idilsaglam/studycards/internal/store/cardstore"
	"github.com/idilsaglam/studycards/internal/store/kv"
	"github.com/idilsaglam/studycards/internal/tui"
	"github.com/idilsaglam/studycards/internal/ui"
)

// App carries root flags and the resources opened for one invocation.
type App struct {
	ConfigPath string
	Dir        string
	Backend    string
	Theme      string
	NoColor    bool
	ForceColor bool

	cfg   *config.Config
	log   *logger.Logger
	kv    kv.Store
	store *cardstore.Adapter
}

// usageError marks bad invocations; they exit with code 2.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// Execute runs the command tree and returns an exit code (0 ok, 1 error, 2 usage).
func Execute(args []string) int {
	app := &App{}
	cmd := newRootCmd(app)
	cmd.SetArgs(args)
	err := app.run(cmd)
	if err == nil {
		return 0
	}
	ui.Fail(err.Error())
	return exitCode(err)
}

// run executes cmd and releases what PersistentPreRunE opened. Cobra skips
// the post-run hooks when RunE fails, so closing happens here.
func (a *App) run(cmd *cobra.Command) error {
	defer a.close()
	return cmd.Execute()
}

// cobra reports these without a typed error
var usagePrefixes = []string{"unknown ", "required flag", "if any flags in the group"}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	for _, p := range usagePrefixes {
		if strings.HasPrefix(err.Error(), p) {
			return 2
		}
	}
	return 1
}

// usageArgs makes cobra's positional argument checks count as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError{msg: err.Error()}
		}
		return nil
	}
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "studycards",
		Short:         "Lernkarten: subjects, cards and their outlines, in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  studycards

  # Scriptable commands
  studycards subjects list
  studycards cards add --subject Anatomie --title "Atemwege I" --outline outline.txt
  studycards cards show 1 --subject Anatomie
`),
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		ui.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
		return app.open(cmd.Context())
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})

	f := cmd.PersistentFlags()
	f.StringVar(&app.ConfigPath, "config", "", "Path to config.yaml (default: $STUDYCARDS_CONFIG or ~/.studycards/config.yaml)")
	f.StringVar(&app.Dir, "dir", "", "Store directory (overrides store.dir)")
	f.StringVar(&app.Backend, "backend", "", "Store backend: file|sqlite (overrides store.backend)")
	f.StringVar(&app.Theme, "theme", "", "Theme: classic|neon|mono (overrides ui.theme)")
	f.BoolVar(&app.NoColor, "no-color", false, "Disable colors")
	f.BoolVar(&app.ForceColor, "color", false, "Force colors even when not a terminal")

	cmd.AddCommand(newSubjectsCmd(app))
	cmd.AddCommand(newCardsCmd(app))
	cmd.AddCommand(newExportCmd(app))

	return cmd
}

func (a *App) open(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return err
	}
	if a.Dir != "" {
		cfg.Store.Dir = a.Dir
	}
	if a.Backend != "" {
		cfg.Store.Backend = a.Backend
	}
	if a.Theme != "" {
		cfg.UI.Theme = a.Theme
	}
	if err := cfg.Validate(); err != nil {
		return usagef("%v", err)
	}
	a.cfg = cfg

	ui.SetColorForcing(a.ForceColor, a.NoColor)
	ui.SetTheme(cfg.UI.Theme)

	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	a.log = log

	store, err := kv.Open(ctx, cfg.Store.Backend, cfg.Store.Dir)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.kv = store
	a.store = cardstore.New(store, log)
	log.Debug("store opened", "backend", cfg.Store.Backend, "dir", cfg.Store.Dir)
	return nil
}

func (a *App) close() {
	if a.kv != nil {
		if err := a.kv.Close(); err != nil {
			a.log.Warn("close store", "error", err)
		}
		a.kv = nil
	}
	if a.log != nil {
		a.log.Sync()
	}
}

// controller loads the document and hands it to a fresh nav controller.
func (a *App) controller(ctx context.Context) *nav.Controller {
	if ctx == nil {
		ctx = context.Background()
	}
	return nav.New(ctx, a.store.Load(ctx), a.store)
}

func runTUI(ctx context.Context, app *App) error {
	ctrl := app.controller(ctx)
	return tui.Run(ctrl, tui.Options{Log: app.log})
}
