package style

import (
	"strings"
	"unicode/utf8"

	"github.com/dkoosis/gloss/pkg/ansi"
)

// Range to be used with StyleRanges. Start and End are rune offsets into the
// visible text; End is exclusive.
type Range struct {
	Start, End int
	Style      Style
}

// NewRange returns a range that can be used with StyleRanges.
func NewRange(start, end int, style Style) Range {
	return Range{start, end, style}
}

// StyleRanges allows to, given a string, style ranges of it differently.
// Ranges are applied in order; where ranges overlap the later one wins.
// Escape sequences already in s and text outside every range are kept as is.
func StyleRanges(s string, ranges ...Range) string {
	if len(ranges) == 0 {
		return s
	}

	n := utf8.RuneCountInString(ansi.Strip(s))
	owner := make([]int, n)
	for i := range owner {
		owner[i] = -1
	}
	for ri, r := range ranges {
		for i := max(r.Start, 0); i < min(r.End, n); i++ {
			owner[i] = ri
		}
	}

	return styleRuns(s, func(i int) (Style, bool) {
		if i >= n || owner[i] < 0 {
			return Style{}, false
		}
		return ranges[owner[i]].Style, true
	})
}

// StyleRunes apply a given style to runes at the given indices in the string.
// Note that you must provide styling options for both matched and unmatched
// runes. Indices out of bounds will be ignored.
func StyleRunes(str string, indices []int, matched, unmatched Style) string {
	m := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		m[i] = struct{}{}
	}

	return styleRuns(str, func(i int) (Style, bool) {
		if _, ok := m[i]; ok {
			return matched, true
		}
		return unmatched, true
	})
}

// styleRuns walks the visible text of s grouping consecutive clusters that map
// to the same style, keyed by the rune offset of each cluster's first rune.
// Escape sequences end the current run and are copied through.
func styleRuns(s string, styleAt func(i int) (Style, bool)) string {
	var (
		out     strings.Builder
		run     strings.Builder
		cur     Style
		styled  bool
		started bool
		offset  int
	)

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if styled {
			st := cur
			if !st.isSet(tabWidthKey) {
				st = st.TabWidth(NoTabConversion)
			}
			// Lines are styled one at a time so the run is never padded
			// out to a block.
			for i, line := range strings.Split(run.String(), "\n") {
				if i > 0 {
					out.WriteByte('\n')
				}
				if line != "" {
					out.WriteString(st.Render(line))
				}
			}
		} else {
			out.WriteString(run.String())
		}
		run.Reset()
	}

	sc := ansi.NewScanner(s)
	for sc.Scan() {
		tok := sc.Text()
		if sc.IsEscape() {
			flush()
			out.WriteString(tok)
			continue
		}

		st, ok := styleAt(offset)
		offset += utf8.RuneCountInString(tok)

		if !started || ok != styled || (ok && !st.IsEquivalent(cur)) {
			flush()
			cur, styled, started = st, ok, true
		}
		run.WriteString(tok)
	}
	flush()

	return out.String()
}
