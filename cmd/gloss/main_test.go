package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dkoosis/gloss/pkg/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

// runApp runs gloss against a fake environment. Output is never a terminal,
// so styles render without color unless a profile is forced.
func runApp(t *testing.T, env map[string]string, dir, stdin string, args ...string) result {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	var stdout, stderr bytes.Buffer
	a := &app{
		lookup: func(k string) (string, bool) {
			v, ok := env[k]
			return v, ok
		},
		dir:    dir,
		stdin:  strings.NewReader(stdin),
		stdout: &stdout,
		stderr: &stderr,
		isTTY:  func(io.Writer) bool { return false },
		size:   func(io.Writer) int { return 0 },
	}
	code := a.run(args)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "rounded border with padding",
			args: []string{"render", "--border", "rounded", "--padding", "0,1", "hi"},
			want: "╭────╮\n│ hi │\n╰────╯\n",
		},
		{
			name: "args are joined with spaces",
			args: []string{"render", "hello", "there"},
			want: "hello there\n",
		},
		{
			name:  "stdin with right alignment",
			stdin: "a\nbb\n",
			args:  []string{"render", "--align", "right", "--width", "3"},
			want:  "  a\n bb\n",
		},
		{
			name: "margin",
			args: []string{"render", "--margin", "1,2", "x"},
			want: "     \n  x  \n     \n",
		},
		{
			name: "element from builtin theme style",
			args: []string{"--theme", "monochrome", "render", "-e", "header", "hi"},
			want: "hi\n",
		},
		{
			name:  "inline removes newlines",
			stdin: "a\nb\n",
			args:  []string{"render", "--inline", "--padding", "0,1"},
			want:  " ab \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := runApp(t, nil, "", tt.stdin, tt.args...)
			require.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown element", args: []string{"render", "-e", "sparkle", "x"}, want: "unknown element"},
		{name: "unknown border", args: []string{"render", "--border", "wavy", "x"}, want: "unknown border"},
		{name: "too many sides", args: []string{"render", "--padding", "1,2,3,4,5", "x"}, want: "padding"},
		{name: "bad side", args: []string{"render", "--margin", "one", "x"}, want: "margin"},
		{name: "bad align", args: []string{"render", "--align", "diagonal", "x"}, want: "unknown alignment"},
		{name: "no input", args: []string{"render"}, want: "no input"},
		{name: "bad profile", args: []string{"--profile", "sepia", "render", "x"}, want: "invalid color profile"},
		{name: "unknown theme", args: []string{"--theme", "nope", "render", "x"}, want: "theme not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := runApp(t, nil, "", "", tt.args...)
			assert.Equal(t, 2, res.code)
			assert.Empty(t, res.stdout)
			assert.Contains(t, res.stderr, "gloss: ")
			assert.Contains(t, res.stderr, tt.want)
		})
	}
}

func TestRender_ForcedProfileEmitsColor(t *testing.T) {
	t.Parallel()

	res := runApp(t, nil, "", "", "--profile", "ansi256", "render", "--fg", "212", "hi")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "\x1b[")
	assert.Equal(t, "hi\n", ansi.Strip(res.stdout))

	res = runApp(t, map[string]string{"NO_COLOR": "1", "GLOSS_PROFILE": "truecolor"}, "", "",
		"render", "--fg", "212", "hi")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "hi\n", res.stdout, "NO_COLOR wins over an env profile")
}

func TestTree(t *testing.T) {
	t.Parallel()

	const outline = "a\n  b\n  c\nd\n"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "default",
			args: []string{"tree"},
			want: "├── a\n│   ├── b\n│   └── c\n└── d\n",
		},
		{
			name: "rounded with root",
			args: []string{"tree", "--root", "proj", "--enumerator", "rounded"},
			want: "proj\n├── a\n│   ├── b\n│   ╰── c\n╰── d\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := runApp(t, nil, "", outline, tt.args...)
			require.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
		})
	}

	res := runApp(t, nil, "", outline, "tree", "--enumerator", "zigzag")
	assert.Equal(t, 2, res.code)

	res = runApp(t, nil, "", "\n\n", "tree")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "empty outline")
}

func TestList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "nested bullets",
			stdin: "A\nB\n  c\n  d\nE\n",
			args:  []string{"list"},
			want:  "• A\n• B\n  • c\n  • d\n• E\n",
		},
		{
			name:  "roman numerals align right",
			stdin: "a\nb\nc\n",
			args:  []string{"list", "--enumerator", "roman"},
			want:  "  I. a\n II. b\nIII. c\n",
		},
		{
			name:  "alphabet",
			stdin: "first\nsecond\n",
			args:  []string{"list", "--enumerator", "Alphabet"},
			want:  "A. first\nB. second\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := runApp(t, nil, "", tt.stdin, tt.args...)
			require.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
		})
	}

	res := runApp(t, nil, "", "a\n", "list", "--enumerator", "emoji")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "alphabet, arabic, asterisk, bullet, dash, roman")
}

func TestGradient(t *testing.T) {
	t.Parallel()

	res := runApp(t, nil, "", "", "gradient", "--hex", "--steps", "3",
		"--stops", "#ff0000,#00ff00,#0000ff")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "#ff0000\n#00ff00\n#0000ff\n", res.stdout)

	res = runApp(t, nil, "", "", "gradient", "--hex", "-n", "5", "--from", "#000000", "--to", "#ffffff")
	require.Equal(t, 0, res.code, res.stderr)
	lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "#000000", lines[0])
	assert.Equal(t, "#ffffff", lines[4])

	res = runApp(t, nil, "", "", "gradient", "--steps", "4", "--height", "2", "--angle", "45")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "████\n████\n", res.stdout)

	res = runApp(t, nil, "", "", "--term-width", "6", "gradient")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "██████\n", res.stdout, "steps default to the width")

	res = runApp(t, nil, "", "", "gradient", "--from", "coral")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "invalid color")

	res = runApp(t, nil, "", "", "gradient", "--height", "0")
	assert.Equal(t, 2, res.code)
}

func TestEnv(t *testing.T) {
	t.Parallel()

	res := runApp(t, nil, "", "", "env")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "profile   ascii (detect)")
	assert.Contains(t, res.stdout, "theme     default (default)")
	assert.Contains(t, res.stdout, "width     80 (default)")
	assert.Contains(t, res.stdout, "tty       false (detect)")
	assert.Contains(t, res.stdout, "config    (none)")

	res = runApp(t, map[string]string{"GLOSS_PROFILE": "ansi256", "GLOSS_THEME": "orca"}, "", "",
		"--term-width", "40", "env")
	require.Equal(t, 0, res.code, res.stderr)
	out := ansi.Strip(res.stdout)
	assert.Contains(t, out, "profile   ansi256 (env)")
	assert.Contains(t, out, "theme     orca (env)")
	assert.Contains(t, out, "width     40 (cli)")

	res = runApp(t, nil, "", "", "--no-color", "--dark=false", "env")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "no-color  true (cli)")
	assert.Contains(t, res.stdout, "dark      false (cli)")
}

func TestEnv_Samples(t *testing.T) {
	t.Parallel()

	res := runApp(t, nil, "", "", "env", "--samples")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Attributes")
	assert.Contains(t, res.stdout, "bold faint italic underline strikethrough reverse")
	assert.Contains(t, res.stdout, "232 236 240")
	assert.Contains(t, res.stdout, strings.Repeat("█", 36))
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gloss.yaml"),
		[]byte("theme: monochrome\nwidth: 50\n"), 0o600))

	res := runApp(t, nil, dir, "", "env")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "theme     monochrome (file)")
	assert.Contains(t, res.stdout, "width     50 (file)")
	assert.Contains(t, res.stdout, filepath.Join(dir, ".gloss.yaml"))

	res = runApp(t, nil, dir, "", "--theme", "orca", "env")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "theme     orca (cli)")
}

func TestThemeFileFlag(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sunset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: sunset
elements:
  title:
    text_style: [bold]
    text_case: upper
    padding: [0, 1]
`), 0o600))

	res := runApp(t, nil, "", "", "--theme-file", path, "render", "-e", "title", "hello")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, " HELLO \n", res.stdout)

	res = runApp(t, nil, "", "", "theme", "--file", path)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "sunset")
	assert.Contains(t, res.stdout, "TITLE")

	res = runApp(t, nil, "", "", "--theme-file", filepath.Join(t.TempDir(), "missing.toml"), "env")
	assert.Equal(t, 2, res.code)
}

func TestTheme(t *testing.T) {
	t.Parallel()

	res := runApp(t, nil, "", "", "theme", "monochrome")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "monochrome")
	assert.Contains(t, res.stdout, "[FAIL] error")
	assert.Contains(t, res.stdout, "██ primary")
	assert.True(t, strings.HasPrefix(res.stdout, "+"), "ascii border")

	res = runApp(t, nil, "", "", "--theme", "orca", "theme", "list")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "  default\n* orca\n  monochrome\n", res.stdout)

	res = runApp(t, nil, "", "", "theme", "nope")
	assert.Equal(t, 2, res.code)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	res := runApp(t, nil, "", "", "version")
	require.Equal(t, 0, res.code, res.stderr)
	assert.True(t, strings.HasPrefix(res.stdout, "gloss dev\n"))
}

func TestDebugLogging(t *testing.T) {
	t.Parallel()

	res := runApp(t, map[string]string{"GLOSS_DEBUG": "1"}, "", "", "render", "x")
	require.Equal(t, 0, res.code)
	assert.Equal(t, "x\n", res.stdout)
	assert.Contains(t, res.stderr, "resolved config")

	res = runApp(t, nil, "", "", "render", "x")
	assert.Empty(t, res.stderr)
}

func TestParseOutline(t *testing.T) {
	t.Parallel()

	nodes, err := parseOutline(strings.NewReader("a\n\n  b\n\tc\n      deep\nd  \n"))
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	a := nodes[0]
	assert.Equal(t, "a", a.text)
	require.Len(t, a.children, 2)
	assert.Equal(t, "b", a.children[0].text)
	assert.Equal(t, "c", a.children[1].text, "a tab is one level")
	require.Len(t, a.children[1].children, 1)
	assert.Equal(t, "deep", a.children[1].children[0].text, "over-indented lines nest one level down")
	assert.Equal(t, "d", nodes[1].text)

	nodes, err = parseOutline(strings.NewReader("    orphan\n"))
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "orphan", nodes[0].text)
}

func TestParseSides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "1", want: []int{1}},
		{in: "1, 2", want: []int{1, 2}},
		{in: "0,1,2,3", want: []int{0, 1, 2, 3}},
		{in: "1,2,3,4,5", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseSides(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestReadText(t *testing.T) {
	t.Parallel()

	got, err := readText(nil, strings.NewReader("line\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "line", got)

	got, err = readText([]string{"a", "b"}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "a b", got)

	_, err = readText(nil, strings.NewReader(""))
	assert.ErrorIs(t, err, errNoInput)
}
