// Package config handles configuration loading and merging for gloss.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--theme, --theme-file, --profile, --no-color, --width, --debug)
//  2. Environment variables (GLOSS_THEME, GLOSS_PROFILE, GLOSS_NO_COLOR, NO_COLOR, GLOSS_DEBUG)
//  3. YAML config file (.gloss.yaml in the working directory or gloss/config.yaml under the XDG config home)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
// Every resolved field records the source it came from, which `gloss env` prints.
//
// # Key Configuration Options
//
//   - theme / theme_file: Selects a built-in theme or loads one from YAML or TOML
//   - profile: Forces a color profile (ascii, ansi, ansi256, truecolor)
//   - no_color: Disables all colors
//   - dark_background: Overrides COLORFGBG detection
//   - width: Wrap width; 0 means the terminal width
//
// A config file that cannot be read or parsed produces a warning and the defaults.
package config
