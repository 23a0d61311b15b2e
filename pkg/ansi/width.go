package ansi

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

var narrow = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// StringWidth returns the number of terminal cells s occupies, ignoring escape
// sequences. Newlines count as zero; use Width for multi-line blocks.
func StringWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	sc := NewScanner(s)
	for sc.Scan() {
		w += sc.Width()
	}
	return w
}

// Width returns the cell width of the widest line in s.
func Width(s string) int {
	if !strings.Contains(s, "\n") {
		return StringWidth(s)
	}
	w := 0
	for _, l := range strings.Split(s, "\n") {
		w = max(w, StringWidth(l))
	}
	return w
}

// Height returns the number of lines in s. The empty string is one line.
func Height(s string) int {
	return strings.Count(s, "\n") + 1
}

// Size returns the width of the widest line and the number of lines.
func Size(s string) (width, height int) {
	return Width(s), Height(s)
}

// RuneWidth returns the cell width of a single rune using the narrow East
// Asian Width table.
func RuneWidth(r rune) int {
	return narrow.RuneWidth(r)
}

// Strip removes every escape sequence from s.
func Strip(s string) string {
	if strings.IndexByte(s, esc) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	sc := NewScanner(s)
	for sc.Scan() {
		if !sc.IsEscape() {
			b.WriteString(sc.Text())
		}
	}
	return b.String()
}

// Lines splits s on newlines.
func Lines(s string) []string {
	return strings.Split(s, "\n")
}

// LinesVisible splits s on newlines and returns each line's cell width along
// with the widest.
func LinesVisible(s string) (lines []string, widths []int, widest int) {
	lines = Lines(s)
	widths = make([]int, len(lines))
	for i, l := range lines {
		widths[i] = StringWidth(l)
		widest = max(widest, widths[i])
	}
	return lines, widths, widest
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
