package ansi

import "strings"

const resetSeq = "\x1b[0m"

// Truncate cuts each line of s to at most n cells, appending tail to every
// line that was cut. Escape sequences before the cut are kept verbatim; when
// the rendition is still active at the cut a reset is appended. Wide glyphs
// that would straddle the limit are dropped rather than split.
func Truncate(s string, n int, tail string) string {
	if n < 0 {
		n = 0
	}
	if !strings.Contains(s, "\n") {
		return truncateLine(s, n, tail)
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = truncateLine(l, n, tail)
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, n int, tail string) string {
	if StringWidth(s) <= n {
		return s
	}

	tw := StringWidth(tail)
	if tw > n {
		tail, tw = "", 0
	}
	limit := n - tw

	var (
		b      strings.Builder
		w      int
		styled bool
	)
	b.Grow(len(s))
	sc := NewScanner(s)
	for sc.Scan() {
		if sc.IsEscape() {
			if sc.IsSGR() {
				styled = !isReset(sc.Text())
			}
			b.WriteString(sc.Text())
			continue
		}
		if w+sc.Width() > limit {
			break
		}
		w += sc.Width()
		b.WriteString(sc.Text())
	}
	b.WriteString(tail)
	if styled {
		b.WriteString(resetSeq)
	}
	return b.String()
}
