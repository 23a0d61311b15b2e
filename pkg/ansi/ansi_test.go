package ansi

import (
	"strings"
	"testing"
	"time"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "ascii", input: "hello", want: 5},
		{name: "sgr is zero width", input: "\x1b[1;31mhello\x1b[0m", want: 5},
		{name: "cjk is wide", input: "日本語", want: 6},
		{name: "combining mark", input: "é", want: 1},
		{name: "zwj emoji sequence", input: "👩‍👩‍👧", want: 2},
		{name: "check mark", input: "✓ pass", want: 6},
		{name: "non-csi escape consumes one byte", input: "\x1b7abc", want: 3},
		{name: "truecolor sequence", input: "\x1b[38;2;255;0;0mred\x1b[0m", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StringWidth(tt.input))
		})
	}
}

func TestStringWidth_MatchesReferenceImplementation(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"plain",
		"\x1b[4munder\x1b[24m line",
		"日本語 mixed ascii",
		"café",
		"\x1b[38;5;196m●\x1b[0m status",
	}
	for _, in := range inputs {
		assert.Equal(t, xansi.StringWidth(in), StringWidth(in), "width of %q", in)
		assert.Equal(t, xansi.Strip(in), Strip(in), "strip of %q", in)
	}
}

func TestWidth_UsesWidestLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Width("ab\nabcde\nabc"))
	assert.Equal(t, 3, Height("ab\nabcde\nabc"))

	w, h := Size("日本\nx")
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, 1, Height(""))
}

func TestStrip(t *testing.T) {
	t.Parallel()

	styled := "\x1b[1m\x1b[38;5;33mbold blue\x1b[0m and plain"
	assert.Equal(t, "bold blue and plain", Strip(styled))
	assert.Equal(t, Strip(styled), Strip(Strip(styled)), "strip is idempotent")
	assert.Equal(t, "no escapes", Strip("no escapes"))
}

func TestScanner_AbandonsOverlongCSI(t *testing.T) {
	t.Parallel()

	// No final byte within the bound: only ESC is swallowed, the rest is text.
	body := strings.Repeat("1", MaxSeqLen+10)
	in := "\x1b[" + body
	assert.Equal(t, "["+body, Strip(in))
	assert.Equal(t, len(body)+1, StringWidth(in))
}

func TestScanner_ShortUnterminatedCSIIsSwallowed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", Strip("abc\x1b[38;5"))
	assert.Equal(t, 3, StringWidth("abc\x1b[38;5"))
}

func TestScanner_BoundedOnHostileInput(t *testing.T) {
	t.Parallel()

	hostile := strings.Repeat("\x1b["+strings.Repeat(";", 200), 2000)
	start := time.Now()
	_ = StringWidth(hostile)
	_ = Truncate(hostile, 10, "")
	_ = Wrap(hostile, 20, "")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestScanner_Tokens(t *testing.T) {
	t.Parallel()

	sc := NewScanner("a\x1b[31m日")
	var toks []string
	var sgr []bool
	for sc.Scan() {
		toks = append(toks, sc.Text())
		sgr = append(sgr, sc.IsSGR())
	}
	assert.Equal(t, []string{"a", "\x1b[31m", "日"}, toks)
	assert.Equal(t, []bool{false, true, false}, sgr)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		n     int
		tail  string
		want  string
	}{
		{name: "fits", input: "hello", n: 5, want: "hello"},
		{name: "plain cut", input: "hello world", n: 5, want: "hello"},
		{name: "with tail", input: "hello world", n: 6, tail: "…", want: "hello…"},
		{name: "styled cut appends reset", input: "\x1b[31mhello world\x1b[0m", n: 4, want: "\x1b[31mhell\x1b[0m"},
		{name: "reset before cut", input: "\x1b[31mhi\x1b[0m there", n: 4, want: "\x1b[31mhi\x1b[0m t"},
		{name: "wide glyph not split", input: "日本語", n: 3, want: "日"},
		{name: "zero", input: "abc", n: 0, want: ""},
		{name: "per line", input: "abcdef\nxy", n: 3, want: "abc\nxy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Truncate(tt.input, tt.n, tt.tail)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, Width(got), max(tt.n, 0))
		})
	}
}

func TestHardwrap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc\ndef\ngh", Hardwrap("abcdefgh", 3, false))
	assert.Equal(t, "ab\ncd", Hardwrap("ab cd", 2, false))
	assert.Equal(t, "ab\n c\nd", Hardwrap("ab cd", 2, true))
	assert.Equal(t, "日\n本", Hardwrap("日本", 3, false))
	assert.Equal(t, "\x1b[1mab\ncd\x1b[0m", Hardwrap("\x1b[1mabcd\x1b[0m", 2, false))

	for _, line := range Lines(Hardwrap("the quick brown fox jumps", 4, false)) {
		assert.LessOrEqual(t, StringWidth(line), 4)
	}
}

func TestWordwrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{name: "soft breaks at spaces", input: "the quick brown fox", limit: 10, want: "the quick\nbrown fox"},
		{name: "exact fit", input: "hello world", limit: 5, want: "hello\nworld"},
		{name: "keeps existing newlines", input: "ab\ncd ef", limit: 5, want: "ab\ncd ef"},
		{name: "long word overflows", input: "a verylongword b", limit: 5, want: "a\nverylongword\nb"},
		{name: "leading indentation kept", input: "  ab", limit: 10, want: "  ab"},
		{name: "breakpoint hyphen", input: "well-known", limit: 6, want: "well-\nknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Wordwrap(tt.input, tt.limit, "-"))
		})
	}
}

func TestWrap_AllLinesFit(t *testing.T) {
	t.Parallel()

	out := Wrap("Lorem ipsum dolor sit amet, consectetur adipiscing elit 日本語テキスト", 7, "")
	lines, widths, widest := LinesVisible(out)
	require.NotEmpty(t, lines)
	for i, w := range widths {
		assert.LessOrEqual(t, w, 7, "line %d: %q", i, lines[i])
	}
	assert.LessOrEqual(t, widest, 7)
	assert.Equal(t,
		strings.ReplaceAll("Lorem ipsum dolor sit amet, consectetur adipiscing elit 日本語テキスト", " ", ""),
		strings.ReplaceAll(strings.ReplaceAll(out, "\n", ""), " ", ""),
	)
}

func TestRuneWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, RuneWidth('a'))
	assert.Equal(t, 2, RuneWidth('日'))
	assert.Equal(t, 1, RuneWidth('─'))
}
