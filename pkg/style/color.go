package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// TerminalColor is a color intended to be rendered in the terminal. It is
// resolved against a Renderer at render time, so the same value renders
// differently under each color profile.
type TerminalColor interface {
	color(*Renderer) termenv.Color
	RGBA() (r, g, b, a uint32)
}

// NoColor is used to specify the absence of color styling. When this is active
// foreground colors will be rendered with the terminal's default text color,
// and background colors will not be drawn at all.
//
// Example usage:
//
//	var style = someStyle.Background(style.NoColor{})
type NoColor struct{}

func (NoColor) color(*Renderer) termenv.Color {
	return termenv.NoColor{}
}

// RGBA returns black with full opacity. NoColor has no real RGB value.
func (NoColor) RGBA() (r, g, b, a uint32) {
	return 0x0, 0x0, 0x0, 0xFFFF
}

// Color specifies a color by hex ("#0000ff", "#00f") or by palette index
// ("21"). Anything else resolves to no color.
type Color string

func (c Color) color(r *Renderer) termenv.Color {
	return r.resolveString(string(c))
}

// RGBA returns the RGBA value of this color. Unknown strings are black.
func (c Color) RGBA() (r, g, b, a uint32) {
	if rgb, ok := parseColor(string(c)); ok {
		return rgba(rgb)
	}
	return 0x0, 0x0, 0x0, 0xFFFF
}

// ANSIColor is one of the 16 basic terminal colors (0-15).
type ANSIColor uint8

func (c ANSIColor) color(r *Renderer) termenv.Color {
	return r.resolveIndex(int(c))
}

// RGBA returns the conventional RGB value for the color.
func (c ANSIColor) RGBA() (r, g, b, a uint32) {
	return rgba(paletteRGB(uint8(c)))
}

// ANSI256Color is an index into the xterm 256 color palette.
type ANSI256Color uint8

func (c ANSI256Color) color(r *Renderer) termenv.Color {
	return r.resolveIndex(int(c))
}

// RGBA returns the palette RGB value for the color.
func (c ANSI256Color) RGBA() (r, g, b, a uint32) {
	return rgba(paletteRGB(uint8(c)))
}

// RGBColor is a 24-bit color.
type RGBColor struct {
	R, G, B uint8
}

func (c RGBColor) color(r *Renderer) termenv.Color {
	return r.resolveRGB(rgb(c))
}

// RGBA returns the color with full opacity.
func (c RGBColor) RGBA() (r, g, b, a uint32) {
	return rgba(rgb(c))
}

// Hex returns the color formatted as #rrggbb.
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// AdaptiveColor provides color options for light and dark backgrounds. The
// appropriate color will be returned at runtime based on the darkness of the
// terminal background color.
//
// Example usage:
//
//	color := style.AdaptiveColor{Light: "#0000ff", Dark: "#000099"}
type AdaptiveColor struct {
	Light string
	Dark  string
}

func (ac AdaptiveColor) color(r *Renderer) termenv.Color {
	if r.HasDarkBackground() {
		return Color(ac.Dark).color(r)
	}
	return Color(ac.Light).color(r)
}

// RGBA returns the RGBA value of the dark variant when the default renderer
// has a dark background, the light variant otherwise.
func (ac AdaptiveColor) RGBA() (r, g, b, a uint32) {
	if HasDarkBackground() {
		return Color(ac.Dark).RGBA()
	}
	return Color(ac.Light).RGBA()
}

// CompleteColor specifies exact values for truecolor, ANSI256, and ANSI color
// profiles. Automatic color degradation will not be performed.
type CompleteColor struct {
	TrueColor string
	ANSI256   string
	ANSI      string
}

func (c CompleteColor) color(r *Renderer) termenv.Color {
	switch r.ColorProfile() { //nolint:exhaustive
	case termenv.TrueColor:
		return Color(c.TrueColor).color(r)
	case termenv.ANSI256:
		return Color(c.ANSI256).color(r)
	case termenv.ANSI:
		return Color(c.ANSI).color(r)
	default:
		return termenv.NoColor{}
	}
}

// RGBA returns the RGBA value of the truecolor variant.
func (c CompleteColor) RGBA() (r, g, b, a uint32) {
	return Color(c.TrueColor).RGBA()
}

// CompleteAdaptiveColor specifies exact values for truecolor, ANSI256, and ANSI
// color profiles, with separate options for light and dark backgrounds.
type CompleteAdaptiveColor struct {
	Light CompleteColor
	Dark  CompleteColor
}

func (cac CompleteAdaptiveColor) color(r *Renderer) termenv.Color {
	if r.HasDarkBackground() {
		return cac.Dark.color(r)
	}
	return cac.Light.color(r)
}

// RGBA returns the RGBA value of the variant matching the default renderer's
// background.
func (cac CompleteAdaptiveColor) RGBA() (r, g, b, a uint32) {
	if HasDarkBackground() {
		return cac.Dark.RGBA()
	}
	return cac.Light.RGBA()
}

// IsDarkColor reports whether c is perceptually dark (CIE L* below one half).
func IsDarkColor(c TerminalColor) bool {
	cf, ok := colorful.MakeColor(rgbaColor{c})
	if !ok {
		return true
	}
	l, _, _ := cf.Hcl()
	return l < 0.5
}

// LightDark returns a helper that picks between a light and a dark variant.
//
//	lightDark := style.LightDark(style.HasDarkBackground())
//	fg := lightDark(style.Color("#333"), style.Color("#eee"))
func LightDark(isDark bool) func(light, dark TerminalColor) TerminalColor {
	return func(light, dark TerminalColor) TerminalColor {
		if isDark {
			return dark
		}
		return light
	}
}

// Complete returns a helper that picks the variant matching a color profile.
func Complete(p termenv.Profile) func(ansi, ansi256, truecolor TerminalColor) TerminalColor {
	return func(ansi, ansi256, truecolor TerminalColor) TerminalColor {
		switch p { //nolint:exhaustive
		case termenv.ANSI:
			return ansi
		case termenv.ANSI256:
			return ansi256
		case termenv.TrueColor:
			return truecolor
		}
		return NoColor{}
	}
}

// rgbaColor adapts a TerminalColor to image/color.Color.
type rgbaColor struct{ TerminalColor }

func (c rgbaColor) RGBA() (r, g, b, a uint32) { return c.TerminalColor.RGBA() }

// Resolution against a profile. Hex values are degraded by squared RGB
// distance; indices below 16 keep their basic-color form in every profile
// except truecolor, where numeric strings are promoted through the palette.

func (r *Renderer) resolveString(s string) termenv.Color {
	p := r.ColorProfile()
	if p == termenv.Ascii {
		return termenv.NoColor{}
	}
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, ok := parseHex(s)
		if !ok {
			return termenv.NoColor{}
		}
		return r.resolveRGB(c)
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 || i > 255 {
		return termenv.NoColor{}
	}
	if p == termenv.TrueColor {
		return r.resolveRGB(paletteRGB(uint8(i)))
	}
	return r.resolveIndex(i)
}

func (r *Renderer) resolveIndex(i int) termenv.Color {
	switch r.ColorProfile() { //nolint:exhaustive
	case termenv.TrueColor, termenv.ANSI256:
		if i < 16 {
			return termenv.ANSIColor(i)
		}
		return termenv.ANSI256Color(i)
	case termenv.ANSI:
		if i < 16 {
			return termenv.ANSIColor(i)
		}
		return termenv.ANSIColor(nearestANSI(paletteRGB(uint8(i))))
	default:
		return termenv.NoColor{}
	}
}

func (r *Renderer) resolveRGB(c rgb) termenv.Color {
	switch r.ColorProfile() { //nolint:exhaustive
	case termenv.TrueColor:
		return termenv.RGBColor(RGBColor(c).Hex())
	case termenv.ANSI256:
		return termenv.ANSI256Color(nearestANSI256(c))
	case termenv.ANSI:
		return termenv.ANSIColor(nearestANSI(c))
	default:
		return termenv.NoColor{}
	}
}

type rgb struct {
	R, G, B uint8
}

func rgba(c rgb) (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

func parseColor(s string) (rgb, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 || i > 255 {
		return rgb{}, false
	}
	return paletteRGB(uint8(i)), true
}

func parseHex(s string) (rgb, bool) {
	if len(s) != 4 && len(s) != 7 {
		return rgb{}, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return rgb{}, false
	}
	r, g, b := c.RGB255()
	return rgb{r, g, b}, true
}
