package ansi

import "strings"

// Hardwrap breaks every line of s so that no line is wider than limit cells.
// Breaks may fall inside words; a wide glyph is always moved whole to the next
// line. Unless preserveSpace is set, spaces at the start of a line produced by
// a break are dropped.
func Hardwrap(s string, limit int, preserveSpace bool) string {
	if limit < 1 {
		return s
	}

	var (
		b       strings.Builder
		w       int
		wrapped bool
	)
	b.Grow(len(s) + len(s)/limit)
	sc := NewScanner(s)
	for sc.Scan() {
		t := sc.Text()
		switch {
		case sc.IsEscape():
			b.WriteString(t)
			continue
		case isNewline(t):
			b.WriteString(t)
			w, wrapped = 0, false
			continue
		}

		cw := sc.Width()
		if w > 0 && w+cw > limit {
			b.WriteByte('\n')
			w, wrapped = 0, true
		}
		if wrapped && w == 0 && t == " " && !preserveSpace {
			continue
		}
		b.WriteString(t)
		w += cw
	}
	return b.String()
}

// Wordwrap breaks lines of s at spaces, or after any character listed in
// breakpoints, so that lines fit within limit cells. A word longer than limit
// is left on a line of its own; Wrap hard-breaks those as well.
func Wordwrap(s string, limit int, breakpoints string) string {
	if limit < 1 {
		return s
	}
	ww := wordWrapper{limit: limit}
	ww.buf.Grow(len(s) + len(s)/limit)

	sc := NewScanner(s)
	for sc.Scan() {
		t := sc.Text()
		switch {
		case sc.IsEscape():
			ww.word.WriteString(t)
		case isNewline(t):
			ww.flushTrailingSpace()
			ww.addWord()
			ww.addNewline()
		case t == " ":
			ww.addWord()
			ww.space.WriteString(t)
			ww.spaceW++
		default:
			ww.word.WriteString(t)
			ww.wordW += sc.Width()
			if ww.lineW > 0 && ww.lineW+ww.spaceW+ww.wordW > ww.limit {
				ww.addNewline()
			}
			if breakpoints != "" && strings.Contains(breakpoints, t) {
				ww.addWord()
			}
		}
	}
	ww.flushTrailingSpace()
	ww.addWord()
	return ww.buf.String()
}

// Wrap word-wraps s and then hard-wraps any word that still overflows.
func Wrap(s string, limit int, breakpoints string) string {
	return Hardwrap(Wordwrap(s, limit, breakpoints), limit, false)
}

type wordWrapper struct {
	limit int

	buf   strings.Builder
	word  strings.Builder
	space strings.Builder

	lineW  int
	wordW  int
	spaceW int
}

func (ww *wordWrapper) addSpace() {
	ww.buf.WriteString(ww.space.String())
	ww.lineW += ww.spaceW
	ww.space.Reset()
	ww.spaceW = 0
}

func (ww *wordWrapper) addWord() {
	if ww.word.Len() == 0 {
		return
	}
	ww.addSpace()
	ww.buf.WriteString(ww.word.String())
	ww.lineW += ww.wordW
	ww.word.Reset()
	ww.wordW = 0
}

func (ww *wordWrapper) addNewline() {
	ww.buf.WriteByte('\n')
	ww.lineW = 0
	ww.space.Reset()
	ww.spaceW = 0
}

// flushTrailingSpace keeps spaces that end a line when they still fit.
func (ww *wordWrapper) flushTrailingSpace() {
	if ww.word.Len() == 0 && ww.lineW+ww.spaceW <= ww.limit {
		ww.addSpace()
	}
}

func isNewline(t string) bool {
	return t == "\n" || t == "\r\n"
}
