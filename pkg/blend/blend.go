// Package blend generates color gradients and simple color transforms.
//
// Interpolation happens in CIE L*u*v*, which keeps perceived brightness
// steady across a gradient. Results are 24-bit style.RGBColor values and can
// be passed straight to a style.
package blend

import (
	"image/color"
	"math"

	"github.com/dkoosis/gloss/pkg/style"
	"github.com/lucasb-eyer/go-colorful"
)

// Blend1D returns steps colors blended across the given stops. The stops are
// spaced evenly; the first and last results are exactly the first and last
// stops. Nil stops are ignored. When steps is smaller than the number of
// stops, one color per stop is returned.
func Blend1D(steps int, stops ...color.Color) []style.RGBColor {
	cstops := make([]colorful.Color, 0, len(stops))
	for _, s := range stops {
		if s != nil {
			cstops = append(cstops, toColorful(s))
		}
	}
	if len(cstops) == 0 {
		return nil
	}
	steps = max(steps, len(cstops))

	out := make([]style.RGBColor, 0, steps)
	if len(cstops) == 1 {
		for range steps {
			out = append(out, toRGB(cstops[0]))
		}
		return out
	}

	segments := len(cstops) - 1
	for k := range steps {
		pos := factor(k, steps) * float64(segments)
		seg := min(int(pos), segments-1)
		out = append(out, toRGB(mix(cstops[seg], cstops[seg+1], pos-float64(seg))))
	}
	return out
}

// Blend2D returns a width×height grid of colors in row-major order. Each cell
// is projected onto the axis given by angle (degrees, 0 runs left to right,
// 90 top to bottom) and sampled from a 1-D blend of the stops. Corners on the
// axis get the exact first and last stops.
func Blend2D(width, height int, angle float64, stops ...color.Color) []style.RGBColor {
	width, height = max(width, 1), max(height, 1)

	gradient := Blend1D(width+height, stops...)
	if len(gradient) == 0 {
		return nil
	}

	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	rad := angle * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)

	cx, cy := float64(width-1)/2, float64(height-1)/2
	extent := math.Abs(cx*cos) + math.Abs(cy*sin)

	out := make([]style.RGBColor, 0, width*height)
	for y := range height {
		for x := range width {
			var t float64
			if extent > 0 {
				proj := (float64(x)-cx)*cos + (float64(y)-cy)*sin
				t = (proj + extent) / (2 * extent)
			}
			idx := int(math.Round(t * float64(len(gradient)-1)))
			idx = min(max(idx, 0), len(gradient)-1)
			out = append(out, gradient[idx])
		}
	}
	return out
}

// Gradient returns count colors between two hex colors. Unparseable hex
// values are treated as black.
func Gradient(startHex, endHex string, count int) []style.RGBColor {
	return gradient(parseHex(startHex), parseHex(endHex), count)
}

// GradientRGB returns count colors between two colors.
func GradientRGB(start, end color.Color, count int) []style.RGBColor {
	return gradient(toColorful(start), toColorful(end), count)
}

func gradient(start, end colorful.Color, count int) []style.RGBColor {
	if count <= 0 {
		return nil
	}
	out := make([]style.RGBColor, count)
	for i := range out {
		out[i] = toRGB(mix(start, end, factor(i, count)))
	}
	return out
}

// BilinearInterpolationGrid returns ySteps rows of xSteps colors blended
// between four corner colors.
func BilinearInterpolationGrid(xSteps, ySteps int, topLeft, topRight, bottomLeft, bottomRight color.Color) [][]style.RGBColor {
	if xSteps <= 0 || ySteps <= 0 {
		return nil
	}
	tl, tr := toColorful(topLeft), toColorful(topRight)
	bl, br := toColorful(bottomLeft), toColorful(bottomRight)

	grid := make([][]style.RGBColor, ySteps)
	for y := range grid {
		fy := factor(y, ySteps)
		left, right := mix(tl, bl, fy), mix(tr, br, fy)
		row := make([]style.RGBColor, xSteps)
		for x := range row {
			row[x] = toRGB(mix(left, right, factor(x, xSteps)))
		}
		grid[y] = row
	}
	return grid
}

// Lighten adds percent (0-1) of full intensity to each channel.
func Lighten(c color.Color, percent float64) style.RGBColor {
	r, g, b := rgb8(c)
	add := 255 * clamp01(percent)
	return style.RGBColor{
		R: uint8(math.Min(float64(r)+add, 255)),
		G: uint8(math.Min(float64(g)+add, 255)),
		B: uint8(math.Min(float64(b)+add, 255)),
	}
}

// Darken scales each channel down by percent (0-1).
func Darken(c color.Color, percent float64) style.RGBColor {
	r, g, b := rgb8(c)
	mult := 1 - clamp01(percent)
	return style.RGBColor{
		R: uint8(float64(r) * mult),
		G: uint8(float64(g) * mult),
		B: uint8(float64(b) * mult),
	}
}

// Alpha returns c with its opacity set to alpha (0-1).
func Alpha(c color.Color, alpha float64) color.NRGBA {
	r, g, b := rgb8(c)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha) * 255)}
}

// Complementary returns the color opposite c on the HSV hue wheel.
func Complementary(c color.Color) style.RGBColor {
	h, s, v := toColorful(c).Hsv()
	h = math.Mod(h+180, 360)
	cc := colorful.Hsv(h, s, v).Clamped()
	return style.RGBColor{
		R: uint8(cc.R * 255),
		G: uint8(cc.G * 255),
		B: uint8(cc.B * 255),
	}
}

func mix(a, b colorful.Color, t float64) colorful.Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return a.BlendLuv(b, t).Clamped()
}

func factor(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func toColorful(c color.Color) colorful.Color {
	if c == nil {
		return colorful.Color{}
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return colorful.Color{}
	}
	return cf
}

func toRGB(c colorful.Color) style.RGBColor {
	r, g, b := c.RGB255()
	return style.RGBColor{R: r, G: g, B: b}
}

func rgb8(c color.Color) (r, g, b uint8) {
	if c == nil {
		return 0, 0, 0
	}
	r32, g32, b32, _ := c.RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8)
}

func parseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(math.Max(v, 0), 1)
}
