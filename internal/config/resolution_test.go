package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func boolPtr(b bool) *bool { return &b }

func TestResolveConfig_PriorityOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		flags             CliFlags
		file              *AppConfig
		env               map[string]string
		wantTheme         string
		wantThemeSource   string
		wantProfile       string
		wantProfileSource string
		wantNoColorSource string
	}{
		{
			name:              "defaults",
			wantTheme:         "default",
			wantThemeSource:   SourceDefault,
			wantProfile:       "auto",
			wantProfileSource: SourceDetect,
			wantNoColorSource: SourceDefault,
		},
		{
			name:              "file",
			file:              &AppConfig{Theme: "orca", Profile: "ansi"},
			wantTheme:         "orca",
			wantThemeSource:   SourceFile,
			wantProfile:       "ansi",
			wantProfileSource: SourceFile,
			wantNoColorSource: SourceDefault,
		},
		{
			name:              "env beats file",
			file:              &AppConfig{Theme: "orca", Profile: "ansi"},
			env:               map[string]string{EnvTheme: "monochrome", EnvProfile: "256"},
			wantTheme:         "monochrome",
			wantThemeSource:   SourceEnv,
			wantProfile:       "ansi256",
			wantProfileSource: SourceEnv,
			wantNoColorSource: SourceDefault,
		},
		{
			name:              "cli beats env",
			flags:             CliFlags{ThemeName: "orca", Profile: "truecolor"},
			env:               map[string]string{EnvTheme: "monochrome", EnvProfile: "ansi"},
			wantTheme:         "orca",
			wantThemeSource:   SourceCLI,
			wantProfile:       "truecolor",
			wantProfileSource: SourceCLI,
			wantNoColorSource: SourceDefault,
		},
		{
			name:              "invalid env falls through to file",
			file:              &AppConfig{Theme: "orca", Profile: "ansi"},
			env:               map[string]string{EnvTheme: "no-such-theme", EnvProfile: "sparkly"},
			wantTheme:         "orca",
			wantThemeSource:   SourceFile,
			wantProfile:       "ansi",
			wantProfileSource: SourceFile,
			wantNoColorSource: SourceDefault,
		},
		{
			name:              "NO_COLOR forces ascii",
			flags:             CliFlags{Profile: "truecolor"},
			env:               map[string]string{"NO_COLOR": "1"},
			wantTheme:         "default",
			wantThemeSource:   SourceDefault,
			wantProfile:       "ascii",
			wantProfileSource: SourceEnv,
			wantNoColorSource: SourceEnv,
		},
		{
			name:              "cli no-color beats env",
			flags:             CliFlags{NoColor: false, NoColorSet: true},
			env:               map[string]string{EnvNoColor: "true"},
			wantTheme:         "default",
			wantThemeSource:   SourceDefault,
			wantProfile:       "auto",
			wantProfileSource: SourceDetect,
			wantNoColorSource: SourceCLI,
		},
		{
			name:              "file no_color",
			file:              &AppConfig{NoColor: true},
			wantTheme:         "default",
			wantThemeSource:   SourceDefault,
			wantProfile:       "ascii",
			wantProfileSource: SourceFile,
			wantNoColorSource: SourceFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolved, err := ResolveConfig(tt.flags, tt.file, env(tt.env), zerolog.Nop())
			require.NoError(t, err)

			assert.Equal(t, tt.wantTheme, resolved.Theme.Name)
			assert.Equal(t, tt.wantThemeSource, resolved.ThemeSource)
			assert.Equal(t, tt.wantProfile, resolved.ProfileName())
			assert.Equal(t, tt.wantProfileSource, resolved.ProfileSource)
			assert.Equal(t, tt.wantNoColorSource, resolved.NoColorSource)
		})
	}
}

func TestResolveConfig_ThemeFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sunset.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"sunset\"\n"), 0o600))

	resolved, err := ResolveConfig(CliFlags{ThemeFile: path, ThemeName: "orca"}, nil, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "sunset", resolved.Theme.Name)
	assert.Equal(t, SourceCLIFile, resolved.ThemeSource)

	resolved, err = ResolveConfig(CliFlags{}, &AppConfig{ThemeFile: path, Theme: "orca"}, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "sunset", resolved.Theme.Name)
	assert.Equal(t, SourceFile, resolved.ThemeSource)

	resolved, err = ResolveConfig(CliFlags{}, &AppConfig{ThemeFile: filepath.Join(dir, "gone.yaml")}, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, SourceDefault, resolved.ThemeSource)
}

func TestResolveConfig_ExplicitCLIErrors(t *testing.T) {
	t.Parallel()

	_, err := ResolveConfig(CliFlags{Profile: "sparkly"}, nil, nil, zerolog.Nop())
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = ResolveConfig(CliFlags{ThemeFile: filepath.Join(t.TempDir(), "x.yaml")}, nil, nil, zerolog.Nop())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveConfig_ScalarFields(t *testing.T) {
	t.Parallel()

	file := &AppConfig{Width: 40, DarkBackground: boolPtr(false), Debug: true}

	resolved, err := ResolveConfig(CliFlags{}, file, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 40, resolved.Width)
	assert.Equal(t, SourceFile, resolved.WidthSource)
	require.NotNil(t, resolved.DarkBackground)
	assert.False(t, *resolved.DarkBackground)
	assert.True(t, resolved.Debug)

	resolved, err = ResolveConfig(CliFlags{Width: 80, Dark: true, DarkSet: true, DebugSet: true}, file, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 80, resolved.Width)
	assert.Equal(t, SourceCLI, resolved.WidthSource)
	assert.True(t, *resolved.DarkBackground)
	assert.Equal(t, SourceCLI, resolved.DarkSource)
	assert.False(t, resolved.Debug)

	resolved, err = ResolveConfig(CliFlags{}, nil, env(map[string]string{EnvDebug: "1"}), zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, resolved.Debug)
	assert.Equal(t, SourceEnv, resolved.DebugSource)
}

func TestResolvedConfig_Renderer(t *testing.T) {
	t.Parallel()

	truecolorEnv := env(map[string]string{"COLORTERM": "truecolor"})

	auto := &ResolvedConfig{}
	assert.Equal(t, termenv.TrueColor, auto.Renderer(truecolorEnv, true).ColorProfile())
	assert.Equal(t, termenv.Ascii, auto.Renderer(truecolorEnv, false).ColorProfile(), "pipes get no color")

	forced := &ResolvedConfig{Profile: termenv.ANSI, ProfileForced: true, DarkBackground: boolPtr(false)}
	r := forced.Renderer(truecolorEnv, false)
	assert.Equal(t, termenv.ANSI, r.ColorProfile())
	assert.False(t, r.HasDarkBackground())
	assert.Equal(t, "ansi", ProfileString(r))
}

func TestParseProfile(t *testing.T) {
	t.Parallel()

	tests := map[string]termenv.Profile{
		"ascii":     termenv.Ascii,
		"ANSI":      termenv.ANSI,
		"256":       termenv.ANSI256,
		" 24bit ":   termenv.TrueColor,
		"truecolor": termenv.TrueColor,
	}
	for in, want := range tests {
		got, err := ParseProfile(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseProfile("cmyk")
	assert.ErrorIs(t, err, ErrInvalidProfile)
}
