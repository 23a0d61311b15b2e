package main

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/dkoosis/gloss/pkg/blend"
	"github.com/dkoosis/gloss/pkg/style"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
)

const gradientCell = "█"

func newGradientCmd(a *app) *cobra.Command {
	var (
		from, to string
		stops    []string
		steps    int
		height   int
		angle    float64
		hex      bool
	)

	cmd := &cobra.Command{
		Use:   "gradient",
		Short: "Draw a color gradient",
		Long: `Draw a gradient blended in CIE L*u*v* between two or more hex colors.
With --height above 1 the gradient is drawn as a block along --angle degrees,
where 0 runs left to right and 90 top to bottom.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(stops) == 0 {
				stops = []string{from, to}
			}
			colors, err := parseStops(stops)
			if err != nil {
				return err
			}
			if steps <= 0 {
				steps, _ = a.width()
			}
			if height < 1 {
				return errors.New("height must be at least 1")
			}

			out := cmd.OutOrStdout()
			if hex {
				for _, c := range blend.Blend1D(steps, colors...) {
					fmt.Fprintln(out, c.Hex())
				}
				return nil
			}

			var cells []style.RGBColor
			width := max(steps, len(colors))
			if height == 1 && angle == 0 {
				cells = blend.Blend1D(width, colors...)
			} else {
				cells = blend.Blend2D(width, height, angle, colors...)
			}
			fmt.Fprintln(out, a.drawCells(cells, width))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&from, "from", "#ff7f50", "Start color")
	fl.StringVar(&to, "to", "#6a5acd", "End color")
	fl.StringSliceVar(&stops, "stops", nil, "Comma-separated color stops; overrides --from and --to")
	fl.IntVarP(&steps, "steps", "n", 0, "Number of cells per row (default: terminal width)")
	fl.IntVar(&height, "height", 1, "Number of rows")
	fl.Float64Var(&angle, "angle", 0, "Gradient angle in degrees")
	fl.BoolVar(&hex, "hex", false, "Print one hex color per line instead of drawing")
	return cmd
}

// parseStops validates hex color stops.
func parseStops(stops []string) ([]color.Color, error) {
	out := make([]color.Color, 0, len(stops))
	for _, s := range stops {
		s = strings.TrimSpace(s)
		if _, err := colorful.Hex(s); err != nil {
			return nil, fmt.Errorf("invalid color %q: want #rgb or #rrggbb", s)
		}
		out = append(out, style.Color(s))
	}
	return out, nil
}

// drawCells draws row-major cells, width per row.
func (a *app) drawCells(cells []style.RGBColor, width int) string {
	var b strings.Builder
	for i, c := range cells {
		if i > 0 && i%width == 0 {
			b.WriteByte('\n')
		}
		b.WriteString(a.r.NewStyle().Foreground(c).Render(gradientCell))
	}
	return b.String()
}
