package main

import (
	"fmt"
	"strings"

	"github.com/dkoosis/gloss/pkg/style"
	"github.com/dkoosis/gloss/pkg/theme"
	"github.com/spf13/cobra"
)

func newThemeCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "theme [name]",
		Short: "Preview a theme",
		Long: `Preview a theme: its palette, icons, border and elements. Without a name or
--file the active theme is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			th := a.cfg.Theme
			switch {
			case file != "":
				t, err := theme.Load(file)
				if err != nil {
					return err
				}
				th = t
			case len(args) == 1:
				t, err := theme.Resolve(args[0])
				if err != nil {
					return err
				}
				th = t
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.preview(th))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Preview a theme file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range theme.Names() {
				marker := "  "
				if name == a.cfg.Theme.Name {
					marker = "* "
				}
				fmt.Fprintln(cmd.OutOrStdout(), marker+name)
			}
			return nil
		},
	}
	cmd.AddCommand(listCmd)
	return cmd
}

// preview lays the palette and icons side by side inside the theme's box.
func (a *app) preview(th *theme.Theme) string {
	c := th.Colors
	swatch := func(name string, col style.Color) string {
		chip := a.r.NewStyle().Foreground(col).Render("██")
		return chip + " " + name
	}
	palette := style.JoinVertical(style.Left,
		swatch("primary", c.Primary),
		swatch("success", c.Success),
		swatch("warning", c.Warning),
		swatch("error", c.Error),
		swatch("text", c.Text),
		swatch("muted", c.Muted),
		swatch("subtle", c.Subtle),
		swatch("inverse", c.Inverse),
	)

	var icons []string
	for _, kind := range []string{"running", "success", "warning", "error", "info", "bullet"} {
		icons = append(icons, th.Icon(kind)+" "+kind)
	}
	iconCol := strings.Join(icons, "\n")

	body := style.JoinHorizontal(style.Top,
		palette,
		a.r.NewStyle().PaddingLeft(3).Render(iconCol),
	)

	parts := []string{a.style(th.Styles.Header).Render(th.Name), "", body}
	for _, name := range th.ElementNames() {
		parts = append(parts, a.style(th.Element(name)).Render(name))
	}
	return a.style(th.Styles.Box).Render(style.JoinVertical(style.Left, parts...))
}
