package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Level: "INFO", Writer: &buf})
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("profile", "ansi").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"profile":"ansi"`)
	assert.Contains(t, out, `"message":"shown"`)

	_, err = New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNew_HumanReadable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", HumanReadable: true, Writer: &buf})
	require.NoError(t, err)

	logger.Debug().Str("source", "file").Msg("config loaded")
	assert.Contains(t, buf.String(), "config loaded")
	assert.Contains(t, buf.String(), "source=file")
	assert.NotContains(t, buf.String(), "{")
}

func TestFromEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		env   map[string]string
		debug bool
		want  bool
	}{
		{name: "quiet by default", env: map[string]string{}},
		{name: "flag", env: map[string]string{}, debug: true, want: true},
		{name: "env true", env: map[string]string{DebugEnv: "1"}, want: true},
		{name: "env false", env: map[string]string{DebugEnv: "false"}},
		{name: "env empty", env: map[string]string{DebugEnv: ""}},
		{name: "env anything", env: map[string]string{DebugEnv: "yes please"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := FromEnv(env(tt.env), &buf, tt.debug)
			logger.Debug().Msg("probe")
			assert.Equal(t, tt.want, bytes.Contains(buf.Bytes(), []byte("probe")))
		})
	}

	assert.False(t, DebugEnabled(nil))
}
