// Package logging builds the zerolog loggers used by the gloss command.
//
// Library packages never log. The command logs its configuration decisions
// at debug level, which is enabled with --debug or GLOSS_DEBUG.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DebugEnv enables debug logging when set to a true value.
const DebugEnv = "GLOSS_DEBUG"

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// New creates a logger from Options. An empty level means warn.
func New(opts Options) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.WarnLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		console.NoColor = true
		output = console
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}

// FromEnv returns a human-readable logger on w. Debug output is enabled when
// debug is true or GLOSS_DEBUG holds a true value ("1", "true", ...).
func FromEnv(lookup func(string) (string, bool), w io.Writer, debug bool) zerolog.Logger {
	level := "warn"
	if debug || DebugEnabled(lookup) {
		level = "debug"
	}
	logger, err := New(Options{Level: level, HumanReadable: true, Writer: w})
	if err != nil {
		return zerolog.Nop()
	}
	return logger
}

// DebugEnabled reports whether GLOSS_DEBUG is set to a true value. Any
// non-empty value that does not parse as a boolean also counts.
func DebugEnabled(lookup func(string) (string, bool)) bool {
	if lookup == nil {
		return false
	}
	v, ok := lookup(DebugEnv)
	if !ok || v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return b
}
