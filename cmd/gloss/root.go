package main

import (
	"io"

	"github.com/dkoosis/gloss/internal/config"
	"github.com/dkoosis/gloss/internal/logging"
	"github.com/dkoosis/gloss/pkg/style"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultWidth = 80

// app carries the process environment and the state resolved before a
// command runs. Commands render with their own renderer and never touch the
// package default.
type app struct {
	lookup func(string) (string, bool)
	dir    string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	isTTY  func(io.Writer) bool
	size   func(io.Writer) int

	flags config.CliFlags
	cfg   *config.ResolvedConfig
	r     *style.Renderer
	log   zerolog.Logger
}

func (a *app) run(args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	if err := cmd.Execute(); err != nil {
		errorf(a.stderr, err)
		return 2
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gloss",
		Short:         "Style, lay out and color text for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.flags.ThemeName, "theme", "", "Theme name: default, orca, monochrome, or a theme file in the config dir")
	pf.StringVar(&a.flags.ThemeFile, "theme-file", "", "Path to a YAML or TOML theme file")
	pf.StringVar(&a.flags.Profile, "profile", "", "Force a color profile: ascii, ansi, ansi256, truecolor")
	pf.BoolVar(&a.flags.NoColor, "no-color", false, "Disable color output")
	pf.BoolVar(&a.flags.Dark, "dark", false, "Assume a dark terminal background")
	pf.IntVar(&a.flags.Width, "term-width", 0, "Override the detected terminal width")
	pf.BoolVar(&a.flags.Debug, "debug", false, "Log configuration resolution to stderr")

	cmd.AddCommand(
		newRenderCmd(a),
		newTreeCmd(a),
		newListCmd(a),
		newGradientCmd(a),
		newEnvCmd(a),
		newThemeCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// setup resolves configuration and builds the renderer.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	a.flags.NoColorSet = flags.Changed("no-color")
	a.flags.DarkSet = flags.Changed("dark")
	a.flags.DebugSet = flags.Changed("debug")

	boot := logging.FromEnv(a.lookup, a.stderr, a.flags.Debug)
	file, path := config.LoadConfig(a.dir, boot)

	cfg, err := config.ResolveConfig(a.flags, file, a.lookup, boot)
	if err != nil {
		return err
	}
	cfg.ConfigPath = path

	a.cfg = cfg
	a.log = logging.FromEnv(a.lookup, a.stderr, cfg.Debug)
	a.r = cfg.Renderer(a.lookup, a.isTTY(a.stdout))
	a.log.Debug().
		Str("profile", config.ProfileString(a.r)).
		Bool("dark", a.r.HasDarkBackground()).
		Msg("renderer ready")
	return nil
}

// width is the configured width, the terminal width, or 80.
func (a *app) width() (int, string) {
	if a.cfg != nil && a.cfg.Width > 0 {
		return a.cfg.Width, a.cfg.WidthSource
	}
	if w := a.size(a.stdout); w > 0 {
		return w, config.SourceDetect
	}
	return defaultWidth, config.SourceDefault
}

// style returns s bound to the command's renderer.
func (a *app) style(s style.Style) style.Style {
	return s.Renderer(a.r)
}
