package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"nestdnd/internal/config"
	"nestdnd/internal/dnd"
	"nestdnd/internal/format"
	"nestdnd/internal/logging"
	"nestdnd/internal/model"
	"nestdnd/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	ConfigPath      string
	Items           int
	SubItems        int
	RestoreOnCancel bool
	Glyphs          string
	Format          string
	Pretty          bool
	LogFile         string
	LogLevel        string

	cfg config.Config
	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "nestdnd",
		Short:        "Nested drag-and-drop sortable list (TUI + scriptable replay)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive list (keyboard: space/enter to pick up and drop, esc to cancel; mouse drag works too)
  nestdnd

  # Print the starting hierarchy
  nestdnd show --format edn --pretty

  # Feed a scripted drag to the reconciler and print the result
  nestdnd replay drag.yaml --check
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.resolve(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.log != nil {
			_ = app.log.Sync()
		}
		return nil
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.ConfigPath, "config", "", "Path to config.toml (default: $NESTDND_CONFIG or the user config dir)")
	pf.IntVar(&app.Items, "items", model.DefaultItems, "Number of top-level items to seed")
	pf.IntVar(&app.SubItems, "sub-items", model.DefaultSubItems, "Number of sub-items per item to seed")
	pf.BoolVar(&app.RestoreOnCancel, "restore-on-cancel", false, "Roll back live cross-group moves when a drag is cancelled")
	pf.StringVar(&app.Glyphs, "glyphs", "", "Glyph set (unicode|ascii)")
	pf.StringVar(&app.Format, "format", "", "Output format (json|edn|yaml|markdown)")
	pf.BoolVar(&app.Pretty, "pretty", false, "Pretty-print output (styled markdown for --format markdown)")
	pf.StringVar(&app.LogFile, "log-file", "", "Write debug logs to this file")
	pf.StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")

	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newReplayCmd(app))
	cmd.AddCommand(newVersionCmd(app))

	return cmd
}

// resolve layers configuration: defaults < config file < env < explicit flags.
func (app *App) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("items") {
		cfg.Items = app.Items
	}
	if flags.Changed("sub-items") {
		cfg.SubItems = app.SubItems
	}
	if flags.Changed("restore-on-cancel") {
		cfg.RestoreOnCancel = app.RestoreOnCancel
	}
	if flags.Changed("glyphs") {
		cfg.Glyphs = strings.ToLower(strings.TrimSpace(app.Glyphs))
	}
	if flags.Changed("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(app.Format))
	}
	if flags.Changed("log-file") {
		cfg.LogFile = app.LogFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = app.LogLevel
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	app.cfg = cfg
	app.log = log
	return nil
}

func (app *App) newReconciler() *dnd.Reconciler {
	h := model.NewDefault(app.cfg.Items, app.cfg.SubItems)
	return dnd.New(h, dnd.Options{
		RestoreOnCancel: app.cfg.RestoreOnCancel,
		Logger:          app.log.Named("dnd"),
	})
}

func runTUI(app *App) error {
	app.log.Info("starting tui",
		zap.Int("items", app.cfg.Items),
		zap.Int("subItems", app.cfg.SubItems),
		zap.Bool("restoreOnCancel", app.cfg.RestoreOnCancel))
	return tui.Run(app.newReconciler(), tui.Options{
		Glyphs: app.cfg.Glyphs,
		Logger: app.log.Named("tui"),
	})
}

// envelope is the output shape shared by every command.
type envelope struct {
	Data  any            `json:"data" yaml:"data"`
	Meta  map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
	Hints []string       `json:"_hints,omitempty" yaml:"_hints,omitempty"`
}

func (e envelope) Markdown() string {
	if md, ok := e.Data.(format.Markdowner); ok {
		return md.Markdown()
	}
	return fmt.Sprintf("```\n%v\n```", e.Data)
}

func writeOut(cmd *cobra.Command, app *App, v envelope) error {
	return format.Write(cmd.OutOrStdout(), v, app.cfg.Format, app.Pretty)
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}
