package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/dkoosis/gloss/pkg/style"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for theme files that are neither YAML nor
	// TOML.
	ErrUnknownFormat = errors.New("unknown theme format")

	// ErrInvalidTheme is returned when a theme file names a border, text
	// style, text case or alignment that does not exist.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrNotFound is returned by Find when no theme file matches a name.
	ErrNotFound = errors.New("theme not found")
)

// Format is a theme file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath infers the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// File is the on-disk shape of a theme. Colors and icons missing from the
// file keep the default theme's values.
//
//	name: sunset
//	border: rounded
//	colors:
//	  primary: "#ff7f50"
//	elements:
//	  title:
//	    fg: primary
//	    text_style: [bold]
//	    text_case: upper
//	    padding: [0, 1]
type File struct {
	Name     string                `yaml:"name" toml:"name"`
	Border   string                `yaml:"border,omitempty" toml:"border,omitempty"`
	Colors   map[string]string     `yaml:"colors,omitempty" toml:"colors,omitempty"`
	Icons    map[string]string     `yaml:"icons,omitempty" toml:"icons,omitempty"`
	Elements map[string]ElementDef `yaml:"elements,omitempty" toml:"elements,omitempty"`
}

// ElementDef defines the styling of one named element. Color fields accept a
// palette key ("primary", "muted", ...) or a literal color.
type ElementDef struct {
	Foreground  string   `yaml:"fg,omitempty" toml:"fg,omitempty"`
	Background  string   `yaml:"bg,omitempty" toml:"bg,omitempty"`
	TextStyle   []string `yaml:"text_style,omitempty" toml:"text_style,omitempty"`
	TextCase    string   `yaml:"text_case,omitempty" toml:"text_case,omitempty"`
	Padding     []int    `yaml:"padding,omitempty" toml:"padding,omitempty"`
	Margin      []int    `yaml:"margin,omitempty" toml:"margin,omitempty"`
	Border      string   `yaml:"border,omitempty" toml:"border,omitempty"`
	BorderColor string   `yaml:"border_fg,omitempty" toml:"border_fg,omitempty"`
	Width       int      `yaml:"width,omitempty" toml:"width,omitempty"`
	Align       string   `yaml:"align,omitempty" toml:"align,omitempty"`
}

// Load reads a theme file. The format follows the file extension.
func Load(path string) (*Theme, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}
	t, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("load theme %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a theme in the given format.
func Parse(data []byte, format Format) (*Theme, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return f.Theme()
}

// Theme builds a Theme from the file, starting from the default theme.
func (f File) Theme() (*Theme, error) {
	base := DefaultTheme()

	colors := base.Colors
	for k, v := range f.Colors {
		c := style.Color(v)
		switch strings.ToLower(k) {
		case "primary":
			colors.Primary = c
		case "success":
			colors.Success = c
		case "warning":
			colors.Warning = c
		case "error":
			colors.Error = c
		case "text":
			colors.Text = c
		case "muted":
			colors.Muted = c
		case "subtle":
			colors.Subtle = c
		case "inverse":
			colors.Inverse = c
		default:
			return nil, fmt.Errorf("%w: unknown color key %q", ErrInvalidTheme, k)
		}
	}

	icons := base.Icons
	for k, v := range f.Icons {
		switch strings.ToLower(k) {
		case "running":
			icons.Running = v
		case "success":
			icons.Success = v
		case "warning":
			icons.Warning = v
		case "error":
			icons.Error = v
		case "info":
			icons.Info = v
		case "bullet":
			icons.Bullet = v
		default:
			return nil, fmt.Errorf("%w: unknown icon key %q", ErrInvalidTheme, k)
		}
	}

	border := base.Border
	if f.Border != "" {
		b, ok := style.BorderByName(f.Border)
		if !ok {
			return nil, fmt.Errorf("%w: unknown border %q", ErrInvalidTheme, f.Border)
		}
		border = b
	}

	name := f.Name
	if name == "" {
		name = "custom"
	}
	t := NewTheme(name, colors, icons, border)
	for k, def := range f.Elements {
		s, err := def.style(colors)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", k, err)
		}
		t.Elements[strings.ToLower(k)] = s
	}
	return t, nil
}

func (d ElementDef) style(colors Colors) (style.Style, error) {
	s := style.NewStyle()

	if d.Foreground != "" {
		s = s.Foreground(colors.Lookup(d.Foreground))
	}
	if d.Background != "" {
		s = s.Background(colors.Lookup(d.Background))
	}
	for _, ts := range d.TextStyle {
		switch strings.ToLower(ts) {
		case "bold":
			s = s.Bold(true)
		case "italic":
			s = s.Italic(true)
		case "underline":
			s = s.Underline(true)
		case "strikethrough":
			s = s.Strikethrough(true)
		case "faint", "dim":
			s = s.Faint(true)
		case "reverse":
			s = s.Reverse(true)
		case "blink":
			s = s.Blink(true)
		default:
			return s, fmt.Errorf("%w: unknown text style %q", ErrInvalidTheme, ts)
		}
	}
	if d.TextCase != "" {
		fn, ok := textCase(d.TextCase)
		if !ok {
			return s, fmt.Errorf("%w: unknown text case %q", ErrInvalidTheme, d.TextCase)
		}
		if fn != nil {
			s = s.Transform(fn)
		}
	}
	if len(d.Padding) > 0 {
		if _, _, _, _, ok := style.WhichSidesInt(d.Padding...); !ok {
			return s, fmt.Errorf("%w: padding takes 1 to 4 values", ErrInvalidTheme)
		}
		s = s.Padding(d.Padding...)
	}
	if len(d.Margin) > 0 {
		if _, _, _, _, ok := style.WhichSidesInt(d.Margin...); !ok {
			return s, fmt.Errorf("%w: margin takes 1 to 4 values", ErrInvalidTheme)
		}
		s = s.Margin(d.Margin...)
	}
	if d.Border != "" {
		b, ok := style.BorderByName(d.Border)
		if !ok {
			return s, fmt.Errorf("%w: unknown border %q", ErrInvalidTheme, d.Border)
		}
		s = s.Border(b)
	}
	if d.BorderColor != "" {
		s = s.BorderForeground(colors.Lookup(d.BorderColor))
	}
	if d.Width > 0 {
		s = s.Width(d.Width)
	}
	if d.Align != "" {
		pos, ok := ParsePosition(d.Align)
		if !ok {
			return s, fmt.Errorf("%w: unknown alignment %q", ErrInvalidTheme, d.Align)
		}
		s = s.Align(pos)
	}
	return s, nil
}

// Lookup resolves a palette key to its color. Anything else is taken as a
// literal color.
func (c Colors) Lookup(v string) style.Color {
	switch strings.ToLower(v) {
	case "primary":
		return c.Primary
	case "success":
		return c.Success
	case "warning":
		return c.Warning
	case "error":
		return c.Error
	case "text":
		return c.Text
	case "muted":
		return c.Muted
	case "subtle":
		return c.Subtle
	case "inverse":
		return c.Inverse
	}
	return style.Color(v)
}

// ParsePosition maps "left", "center", "right", "top" and "bottom" to a
// position.
func ParsePosition(s string) (style.Position, bool) {
	switch strings.ToLower(s) {
	case "left":
		return style.Left, true
	case "center", "centre", "middle":
		return style.Center, true
	case "right":
		return style.Right, true
	case "top":
		return style.Top, true
	case "bottom":
		return style.Bottom, true
	}
	return 0, false
}

// Find searches the XDG config directories for gloss/themes/<name>.yaml,
// .yml or .toml and returns the first match.
func Find(name string) (string, error) {
	for _, ext := range []string{".yaml", ".yml", ".toml"} {
		if p, err := xdg.SearchConfigFile(filepath.Join("gloss", "themes", name+ext)); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Resolve returns a built-in theme by name, or loads the matching theme file
// from the XDG config directories.
func Resolve(name string) (*Theme, error) {
	if t, ok := ByName(name); ok {
		return t, nil
	}
	p, err := Find(name)
	if err != nil {
		return nil, err
	}
	return Load(p)
}
