package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dkoosis/gloss/pkg/style"
	"github.com/dkoosis/gloss/pkg/theme"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

// Sources recorded on a ResolvedConfig.
const (
	SourceCLI     = "cli"
	SourceCLIFile = "cli-file"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
	SourceDetect  = "detect"
)

// Environment variables read during resolution.
const (
	EnvTheme   = "GLOSS_THEME"
	EnvProfile = "GLOSS_PROFILE"
	EnvNoColor = "GLOSS_NO_COLOR"
	EnvDebug   = "GLOSS_DEBUG"
)

// ErrInvalidProfile is returned for profile names that do not exist.
var ErrInvalidProfile = errors.New("invalid color profile")

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ThemeName string
	ThemeFile string
	Profile   string
	NoColor   bool
	Dark      bool
	Width     int
	Debug     bool

	// Flags to track if they were explicitly set by the user
	NoColorSet bool
	DarkSet    bool
	DebugSet   bool
}

// ResolvedConfig holds the final resolved configuration after applying all priority rules.
type ResolvedConfig struct {
	Theme *theme.Theme

	// Profile is meaningful only when ProfileForced is true; otherwise the
	// profile is detected from the terminal.
	Profile        termenv.Profile
	ProfileForced  bool
	DarkBackground *bool
	NoColor        bool
	Width          int
	Debug          bool

	// Resolution metadata
	ConfigPath    string
	ThemeSource   string
	ProfileSource string
	NoColorSource string
	DarkSource    string
	WidthSource   string
	DebugSource   string
}

// ResolveConfig resolves configuration from all sources with explicit priority order.
//
// Explicit CLI choices that cannot be honored (an unknown theme, an unreadable
// theme file, a bad profile) are errors. Bad values from the environment or
// the config file are logged and fall through to the next source.
func ResolveConfig(flags CliFlags, file *AppConfig, lookup func(string) (string, bool), log zerolog.Logger) (*ResolvedConfig, error) {
	if file == nil {
		file = &AppConfig{}
	}
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}

	resolved := &ResolvedConfig{
		NoColor:       file.NoColor,
		NoColorSource: SourceFile,
		Width:         file.Width,
		WidthSource:   SourceFile,
		Debug:         file.Debug,
		DebugSource:   SourceFile,
		DarkSource:    SourceDetect,
		ProfileSource: SourceDetect,
	}
	if !file.NoColor {
		resolved.NoColorSource = SourceDefault
	}
	if file.Width == 0 {
		resolved.WidthSource = SourceDefault
	}
	if !file.Debug {
		resolved.DebugSource = SourceDefault
	}

	t, src, err := resolveTheme(flags, file, lookup, log)
	if err != nil {
		return nil, err
	}
	resolved.Theme, resolved.ThemeSource = t, src

	// Profile: CLI > env > file > detect
	switch {
	case flags.Profile != "":
		p, err := ParseProfile(flags.Profile)
		if err != nil {
			return nil, err
		}
		resolved.Profile, resolved.ProfileForced, resolved.ProfileSource = p, true, SourceCLI
	default:
		if v, ok := lookup(EnvProfile); ok && v != "" {
			if p, err := ParseProfile(v); err == nil {
				resolved.Profile, resolved.ProfileForced, resolved.ProfileSource = p, true, SourceEnv
				break
			}
			log.Warn().Str("value", v).Msg("ignoring invalid " + EnvProfile)
		}
		if file.Profile != "" {
			if p, err := ParseProfile(file.Profile); err == nil {
				resolved.Profile, resolved.ProfileForced, resolved.ProfileSource = p, true, SourceFile
			} else {
				log.Warn().Str("value", file.Profile).Msg("ignoring invalid profile in config file")
			}
		}
	}

	// NoColor: CLI > env > file > default
	if flags.NoColorSet {
		resolved.NoColor, resolved.NoColorSource = flags.NoColor, SourceCLI
	} else if b, ok := envNoColor(lookup); ok {
		resolved.NoColor, resolved.NoColorSource = b, SourceEnv
	}
	if resolved.NoColor {
		resolved.Profile, resolved.ProfileForced = termenv.Ascii, true
		resolved.ProfileSource = resolved.NoColorSource
	}

	// DarkBackground: CLI > file > detect
	if flags.DarkSet {
		dark := flags.Dark
		resolved.DarkBackground, resolved.DarkSource = &dark, SourceCLI
	} else if file.DarkBackground != nil {
		dark := *file.DarkBackground
		resolved.DarkBackground, resolved.DarkSource = &dark, SourceFile
	}

	// Width: CLI > file > default
	if flags.Width > 0 {
		resolved.Width, resolved.WidthSource = flags.Width, SourceCLI
	}

	// Debug: CLI > env > file > default
	if flags.DebugSet {
		resolved.Debug, resolved.DebugSource = flags.Debug, SourceCLI
	} else if v, ok := lookup(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		resolved.Debug, resolved.DebugSource = err != nil || b, SourceEnv
	}

	log.Debug().
		Str("theme", resolved.Theme.Name).Str("theme_source", resolved.ThemeSource).
		Str("profile", resolved.ProfileName()).Str("profile_source", resolved.ProfileSource).
		Bool("no_color", resolved.NoColor).Str("no_color_source", resolved.NoColorSource).
		Int("width", resolved.Width).Str("width_source", resolved.WidthSource).
		Msg("resolved config")

	return resolved, nil
}

// resolveTheme resolves the theme with explicit priority order:
// CLI file > CLI name > env > file theme_file > file theme > default.
func resolveTheme(flags CliFlags, file *AppConfig, lookup func(string) (string, bool), log zerolog.Logger) (*theme.Theme, string, error) {
	if flags.ThemeFile != "" {
		t, err := theme.Load(flags.ThemeFile)
		if err != nil {
			return nil, "", err
		}
		return t, SourceCLIFile, nil
	}

	if flags.ThemeName != "" {
		t, err := theme.Resolve(flags.ThemeName)
		if err != nil {
			return nil, "", err
		}
		return t, SourceCLI, nil
	}

	if name, ok := lookup(EnvTheme); ok && name != "" {
		t, err := theme.Resolve(name)
		if err == nil {
			return t, SourceEnv, nil
		}
		log.Warn().Err(err).Str("theme", name).Msg("ignoring " + EnvTheme)
	}

	if file.ThemeFile != "" {
		t, err := theme.Load(file.ThemeFile)
		if err == nil {
			return t, SourceFile, nil
		}
		log.Warn().Err(err).Msg("ignoring theme_file from config file")
	}

	if file.Theme != "" {
		t, err := theme.Resolve(file.Theme)
		if err == nil {
			return t, SourceFile, nil
		}
		log.Warn().Err(err).Str("theme", file.Theme).Msg("ignoring theme from config file")
	}

	return theme.DefaultTheme(), SourceDefault, nil
}

// envNoColor reads GLOSS_NO_COLOR as a boolean, then NO_COLOR, where any
// non-empty value disables color.
func envNoColor(lookup func(string) (string, bool)) (bool, bool) {
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b, true
		}
	}
	if v, ok := lookup("NO_COLOR"); ok && v != "" {
		return true, true
	}
	return false, false
}

// ParseProfile maps a profile name to a termenv profile.
func ParseProfile(name string) (termenv.Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ascii", "none", "notty", "plain":
		return termenv.Ascii, nil
	case "ansi", "ansi16", "16":
		return termenv.ANSI, nil
	case "ansi256", "256":
		return termenv.ANSI256, nil
	case "truecolor", "24bit", "rgb":
		return termenv.TrueColor, nil
	}
	return termenv.Ascii, fmt.Errorf("%w: %q", ErrInvalidProfile, name)
}

// ProfileName returns the name of the forced profile, or "auto".
func (c *ResolvedConfig) ProfileName() string {
	if !c.ProfileForced {
		return "auto"
	}
	return profileName(c.Profile)
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}

// Renderer builds the renderer for output. A forced profile wins; otherwise
// the profile is detected from the environment, and output that is not a
// terminal gets no color.
func (c *ResolvedConfig) Renderer(lookup func(string) (string, bool), isTTY bool) *style.Renderer {
	var opts []style.RendererOption
	if lookup != nil {
		opts = append(opts, style.WithEnviron(lookup))
	}
	switch {
	case c.ProfileForced:
		opts = append(opts, style.WithColorProfile(c.Profile))
	case !isTTY:
		opts = append(opts, style.WithColorProfile(termenv.Ascii))
	}
	if c.DarkBackground != nil {
		opts = append(opts, style.WithDarkBackground(*c.DarkBackground))
	}
	return style.NewRenderer(opts...)
}

// ProfileString names a renderer's profile the way config files spell it.
func ProfileString(r *style.Renderer) string {
	return profileName(r.ColorProfile())
}
