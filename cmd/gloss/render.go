package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dkoosis/gloss/pkg/style"
	"github.com/dkoosis/gloss/pkg/theme"
	"github.com/spf13/cobra"
)

var errNoInput = errors.New("no input: pass text as arguments or on stdin")

type renderFlags struct {
	element       string
	border        string
	borderFg      string
	padding       string
	margin        string
	width         int
	height        int
	maxWidth      int
	maxHeight     int
	tabWidth      int
	align         string
	valign        string
	fg            string
	bg            string
	bold          bool
	italic        bool
	underline     bool
	strikethrough bool
	faint         bool
	reverse       bool
	inline        bool
}

func newRenderCmd(a *app) *cobra.Command {
	f := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [text...]",
		Short: "Render text with a style",
		Long: `Render text with a style built from flags. Text comes from the arguments,
joined with spaces, or from stdin when there are none.

With --element the style starts from a theme style (box, header, success,
warning, error, text, muted, bold, or an element from a theme file) and the
other flags refine it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			s, err := f.style(cmd, a.cfg.Theme)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.style(s).Render(text))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.element, "element", "e", "", "Start from a theme style")
	fl.StringVarP(&f.border, "border", "b", "", "Border: normal, rounded, thick, double, block, hidden, markdown, ascii, none")
	fl.StringVar(&f.borderFg, "border-fg", "", "Border color")
	fl.StringVarP(&f.padding, "padding", "p", "", "Padding as 1 to 4 comma-separated cells (CSS order)")
	fl.StringVarP(&f.margin, "margin", "m", "", "Margin as 1 to 4 comma-separated cells (CSS order)")
	fl.IntVarP(&f.width, "width", "w", 0, "Block width; text wraps to fit")
	fl.IntVar(&f.height, "height", 0, "Minimum block height")
	fl.IntVar(&f.maxWidth, "max-width", 0, "Truncate lines wider than this")
	fl.IntVar(&f.maxHeight, "max-height", 0, "Drop lines beyond this")
	fl.IntVar(&f.tabWidth, "tab-width", 4, "Spaces per tab; 0 removes tabs, -1 keeps them")
	fl.StringVar(&f.align, "align", "", "Horizontal alignment: left, center, right")
	fl.StringVar(&f.valign, "valign", "", "Vertical alignment: top, center, bottom")
	fl.StringVar(&f.fg, "fg", "", "Foreground color: hex, ANSI index, or a theme palette key")
	fl.StringVar(&f.bg, "bg", "", "Background color: hex, ANSI index, or a theme palette key")
	fl.BoolVar(&f.bold, "bold", false, "Bold text")
	fl.BoolVar(&f.italic, "italic", false, "Italic text")
	fl.BoolVar(&f.underline, "underline", false, "Underlined text")
	fl.BoolVar(&f.strikethrough, "strikethrough", false, "Struck-through text")
	fl.BoolVar(&f.faint, "faint", false, "Faint text")
	fl.BoolVar(&f.reverse, "reverse", false, "Swap foreground and background")
	fl.BoolVar(&f.inline, "inline", false, "Remove newlines from the text")

	return cmd
}

// style builds the style described by the flags that were set.
func (f *renderFlags) style(cmd *cobra.Command, th *theme.Theme) (style.Style, error) {
	s := style.NewStyle()
	if f.element != "" {
		var ok bool
		if s, ok = th.Style(f.element); !ok {
			return s, fmt.Errorf("unknown element %q in theme %s", f.element, th.Name)
		}
	}

	changed := cmd.Flags().Changed
	palette := th.Colors

	if f.border != "" {
		b, ok := style.BorderByName(f.border)
		if !ok {
			return s, fmt.Errorf("unknown border %q", f.border)
		}
		s = s.Border(b)
	}
	if f.borderFg != "" {
		s = s.BorderForeground(palette.Lookup(f.borderFg))
	}
	if f.padding != "" {
		sides, err := parseSides(f.padding)
		if err != nil {
			return s, fmt.Errorf("padding: %w", err)
		}
		s = s.Padding(sides...)
	}
	if f.margin != "" {
		sides, err := parseSides(f.margin)
		if err != nil {
			return s, fmt.Errorf("margin: %w", err)
		}
		s = s.Margin(sides...)
	}
	if changed("width") {
		s = s.Width(f.width)
	}
	if changed("height") {
		s = s.Height(f.height)
	}
	if changed("max-width") {
		s = s.MaxWidth(f.maxWidth)
	}
	if changed("max-height") {
		s = s.MaxHeight(f.maxHeight)
	}
	if changed("tab-width") {
		s = s.TabWidth(f.tabWidth)
	}
	if f.align != "" {
		pos, ok := theme.ParsePosition(f.align)
		if !ok {
			return s, fmt.Errorf("unknown alignment %q", f.align)
		}
		s = s.AlignHorizontal(pos)
	}
	if f.valign != "" {
		pos, ok := theme.ParsePosition(f.valign)
		if !ok {
			return s, fmt.Errorf("unknown vertical alignment %q", f.valign)
		}
		s = s.AlignVertical(pos)
	}
	if f.fg != "" {
		s = s.Foreground(palette.Lookup(f.fg))
	}
	if f.bg != "" {
		s = s.Background(palette.Lookup(f.bg))
	}

	for _, attr := range []struct {
		name string
		set  func(style.Style, bool) style.Style
	}{
		{"bold", style.Style.Bold},
		{"italic", style.Style.Italic},
		{"underline", style.Style.Underline},
		{"strikethrough", style.Style.Strikethrough},
		{"faint", style.Style.Faint},
		{"reverse", style.Style.Reverse},
		{"inline", style.Style.Inline},
	} {
		if changed(attr.name) {
			v, _ := cmd.Flags().GetBool(attr.name)
			s = attr.set(s, v)
		}
	}
	return s, nil
}

// parseSides parses "1", "1,2", "1,2,3" or "1,2,3,4".
func parseSides(v string) ([]int, error) {
	parts := strings.Split(v, ",")
	sides := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid value %q", p)
		}
		if n < 0 {
			return nil, fmt.Errorf("negative value %d", n)
		}
		sides = append(sides, n)
	}
	if _, _, _, _, ok := style.WhichSidesInt(sides...); !ok {
		return nil, fmt.Errorf("want 1 to 4 values, got %d", len(sides))
	}
	return sides, nil
}

// readText joins args, or reads all of r when there are none. A single
// trailing newline is dropped.
func readText(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if r == nil {
		return "", errNoInput
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", errNoInput
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
