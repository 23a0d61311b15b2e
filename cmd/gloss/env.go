package main

import (
	"fmt"
	"strings"

	"github.com/dkoosis/gloss/internal/config"
	"github.com/dkoosis/gloss/pkg/blend"
	"github.com/dkoosis/gloss/pkg/style"
	"github.com/spf13/cobra"
)

func newEnvCmd(a *app) *cobra.Command {
	var samples bool

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show the detected terminal environment and where each setting came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, row := range a.envRows() {
				fmt.Fprintln(out, row)
			}
			if samples {
				fmt.Fprintln(out)
				fmt.Fprintln(out, a.samples())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&samples, "samples", false, "Also print attribute and color samples")
	return cmd
}

func (a *app) envRows() []string {
	cfg := a.cfg
	width, widthSource := a.width()

	profileSource := cfg.ProfileSource
	darkSource := cfg.DarkSource
	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(none)"
	}

	rows := [][3]string{
		{"profile", config.ProfileString(a.r), profileSource},
		{"dark", fmt.Sprint(a.r.HasDarkBackground()), darkSource},
		{"theme", cfg.Theme.Name, cfg.ThemeSource},
		{"no-color", fmt.Sprint(cfg.NoColor), cfg.NoColorSource},
		{"width", fmt.Sprint(width), widthSource},
		{"tty", fmt.Sprint(a.isTTY(a.stdout)), config.SourceDetect},
		{"config", configPath, ""},
	}

	key := a.style(cfg.Theme.Styles.Header).Width(10)
	muted := a.style(cfg.Theme.Styles.TextMuted)
	out := make([]string, len(rows))
	for i, r := range rows {
		line := key.Render(r[0]) + r[1]
		if r[2] != "" {
			line += " " + muted.Render("("+r[2]+")")
		}
		out[i] = line
	}
	return out
}

// samples renders text attributes and a spread of colors so the output can
// be checked against what the terminal actually shows.
func (a *app) samples() string {
	th := a.cfg.Theme
	header := a.style(th.Styles.Header)
	base := a.r.NewStyle()

	attrs := []string{
		base.Bold(true).Render("bold"),
		base.Faint(true).Render("faint"),
		base.Italic(true).Render("italic"),
		base.Underline(true).Render("underline"),
		base.Strikethrough(true).Render("strikethrough"),
		base.Reverse(true).Render("reverse"),
	}

	var ansi []string
	for i := range 16 {
		ansi = append(ansi, base.Foreground(style.ANSIColor(i)).Render(fmt.Sprintf("%2d", i)))
	}

	var cube []string
	for i := range 6 {
		c := 16 + i*36
		cube = append(cube, base.Foreground(style.ANSI256Color(c)).Render(fmt.Sprintf("%3d", c)))
	}
	for i := range 6 {
		c := 232 + i*4
		cube = append(cube, base.Foreground(style.ANSI256Color(c)).Render(fmt.Sprintf("%3d", c)))
	}

	ramp := blend.Blend1D(36, th.Colors.Primary, th.Colors.Success, th.Colors.Warning, th.Colors.Error)

	return style.JoinVertical(style.Left,
		header.Render("Attributes"),
		strings.Join(attrs, " "),
		"",
		header.Render("ANSI colors"),
		strings.Join(ansi, " "),
		"",
		header.Render("256 colors"),
		strings.Join(cube, " "),
		"",
		header.Render("True color"),
		a.drawCells(ramp, len(ramp)),
	)
}
