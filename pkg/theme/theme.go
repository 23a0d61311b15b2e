// Package theme provides named palettes and pre-built styles.
//
// A Theme bundles semantic colors, icons and a border with styles computed
// from them. Themes come from the built-in set or from YAML and TOML files;
// see Load.
package theme

import (
	"slices"
	"strings"

	"github.com/dkoosis/gloss/pkg/style"
	"github.com/mattn/go-runewidth"
)

// Theme defines all visual styling for a program's output.
// Colors use style.Color format: hex ("#ff0000") or 256-color ("120").
type Theme struct {
	Name string

	// Semantic colors for status and UI elements
	Colors Colors

	// Pre-built styles for common elements
	Styles Styles

	// Icons for status indicators
	Icons Icons

	Border style.Border

	// Named element styles from a theme file
	Elements map[string]style.Style
}

// Colors defines semantic color values.
type Colors struct {
	// Status colors
	Primary style.Color // Main accent color (headers, labels)
	Success style.Color
	Warning style.Color
	Error   style.Color

	// Text colors
	Text    style.Color
	Muted   style.Color // De-emphasized text
	Subtle  style.Color // Borders, separators
	Inverse style.Color // Text on colored backgrounds
}

// Styles provides pre-built styles computed from the theme colors.
type Styles struct {
	// Box style for framed output
	Box style.Style

	Header style.Style

	StatusSuccess style.Style
	StatusWarning style.Style
	StatusError   style.Style

	TextNormal style.Style
	TextMuted  style.Style
	TextBold   style.Style
}

// Icons defines icon characters for status indicators.
type Icons struct {
	Running string
	Success string
	Warning string
	Error   string
	Info    string
	Bullet  string
}

// NewTheme creates a theme with styles computed from colors.
func NewTheme(name string, colors Colors, icons Icons, border style.Border) *Theme {
	t := &Theme{
		Name:     name,
		Colors:   colors,
		Icons:    icons,
		Border:   border,
		Elements: map[string]style.Style{},
	}

	t.Styles = Styles{
		Box: style.NewStyle().
			Border(border).
			BorderForeground(colors.Subtle).
			Padding(0, 1),

		Header: style.NewStyle().
			Foreground(colors.Primary).
			Bold(true),

		StatusSuccess: style.NewStyle().
			Foreground(colors.Success),

		StatusWarning: style.NewStyle().
			Foreground(colors.Warning),

		StatusError: style.NewStyle().
			Foreground(colors.Error),

		TextNormal: style.NewStyle().
			Foreground(colors.Text),

		TextMuted: style.NewStyle().
			Foreground(colors.Muted),

		TextBold: style.NewStyle().
			Foreground(colors.Text).
			Bold(true),
	}

	return t
}

// Element returns the named element style, or an empty style when the theme
// does not define it.
func (t *Theme) Element(name string) style.Style {
	if s, ok := t.Elements[strings.ToLower(name)]; ok {
		return s
	}
	return style.NewStyle()
}

// Style looks up a style by name. Elements from a theme file come first,
// then the built-in styles: box, header, success, warning, error, text,
// muted and bold.
func (t *Theme) Style(name string) (style.Style, bool) {
	key := strings.ToLower(name)
	if s, ok := t.Elements[key]; ok {
		return s, true
	}
	switch key {
	case "box":
		return t.Styles.Box, true
	case "header":
		return t.Styles.Header, true
	case "success":
		return t.Styles.StatusSuccess, true
	case "warning":
		return t.Styles.StatusWarning, true
	case "error":
		return t.Styles.StatusError, true
	case "text":
		return t.Styles.TextNormal, true
	case "muted":
		return t.Styles.TextMuted, true
	case "bold":
		return t.Styles.TextBold, true
	}
	return style.NewStyle(), false
}

// ElementNames returns the element names in sorted order.
func (t *Theme) ElementNames() []string {
	names := make([]string, 0, len(t.Elements))
	for k := range t.Elements {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Icon returns the icon for a status kind ("running", "success", "warning",
// "error", "info", "bullet") padded to the width of the widest icon, so
// columns line up whichever icon is shown.
func (t *Theme) Icon(kind string) string {
	var icon string
	switch strings.ToLower(kind) {
	case "running":
		icon = t.Icons.Running
	case "success":
		icon = t.Icons.Success
	case "warning":
		icon = t.Icons.Warning
	case "error":
		icon = t.Icons.Error
	case "info":
		icon = t.Icons.Info
	case "bullet":
		icon = t.Icons.Bullet
	}
	return runewidth.FillRight(icon, t.iconWidth())
}

func (t *Theme) iconWidth() int {
	w := 0
	for _, icon := range []string{
		t.Icons.Running, t.Icons.Success, t.Icons.Warning,
		t.Icons.Error, t.Icons.Info, t.Icons.Bullet,
	} {
		w = max(w, runewidth.StringWidth(icon))
	}
	return w
}

// Names returns the built-in theme names.
func Names() []string {
	return []string{"default", "orca", "monochrome"}
}

// ByName returns a built-in theme. Unknown names report false.
func ByName(name string) (*Theme, bool) {
	switch strings.ToLower(name) {
	case "", "default":
		return DefaultTheme(), true
	case "orca":
		return OrcaTheme(), true
	case "monochrome", "mono":
		return MonochromeTheme(), true
	}
	return nil, false
}

// DefaultTheme returns the default theme.
func DefaultTheme() *Theme {
	return NewTheme(
		"default",
		Colors{
			Primary: style.Color("39"),  // Bright blue
			Success: style.Color("120"), // Light green
			Warning: style.Color("214"), // Orange
			Error:   style.Color("196"), // Red
			Text:    style.Color("252"), // Light gray
			Muted:   style.Color("242"), // Dark gray
			Subtle:  style.Color("238"), // Very dark gray
			Inverse: style.Color("231"), // White
		},
		defaultIcons(),
		style.RoundedBorder(),
	)
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() *Theme {
	return NewTheme(
		"orca",
		Colors{
			Primary: style.Color("111"), // Pale blue
			Success: style.Color("108"), // Sage green
			Warning: style.Color("179"), // Muted gold
			Error:   style.Color("167"), // Muted red
			Text:    style.Color("252"),
			Muted:   style.Color("245"),
			Subtle:  style.Color("250"), // Pale gray, lighter borders
			Inverse: style.Color("231"),
		},
		defaultIcons(),
		style.NormalBorder(),
	)
}

// MonochromeTheme returns a theme with no colors.
func MonochromeTheme() *Theme {
	return NewTheme(
		"monochrome",
		Colors{},
		Icons{
			Running: "[RUN]",
			Success: "[OK]",
			Warning: "[WARN]",
			Error:   "[FAIL]",
			Info:    "[INFO]",
			Bullet:  "*",
		},
		style.ASCIIBorder(),
	)
}

func defaultIcons() Icons {
	return Icons{
		Running: "▶",
		Success: "✓",
		Warning: "⚠",
		Error:   "✗",
		Info:    "ℹ",
		Bullet:  "•",
	}
}
