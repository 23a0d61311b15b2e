package style

import (
	"strings"

	"github.com/dkoosis/gloss/pkg/ansi"
	"github.com/muesli/termenv"
)

// whitespace is a whitespace renderer.
type whitespace struct {
	re    *Renderer
	style termenv.Style
	chars string
}

// newWhitespace creates a new whitespace renderer. Colors in the options are
// resolved against r.
func newWhitespace(r *Renderer, opts ...WhitespaceOption) *whitespace {
	w := &whitespace{
		re:    r,
		style: r.ColorProfile().String(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// render whitespaces. Wide glyphs are never split; a gap they leave at the
// end is filled with spaces.
func (w whitespace) render(width int) string {
	width = clamp(width, 0, MaxRepeatCount)
	if width == 0 {
		return ""
	}
	if w.chars == "" {
		w.chars = " "
	}

	r := []rune(w.chars)
	j := 0
	b := strings.Builder{}

	// Cycle through runes and print them into the whitespace.
	for i := 0; i < width; {
		rw := max(ansi.RuneWidth(r[j]), 1)
		if i+rw > width {
			break
		}
		b.WriteRune(r[j])
		j++
		if j >= len(r) {
			j = 0
		}
		i += rw
	}

	// Fill any extra gaps with spaces. This might be necessary if any runes
	// are more than one cell wide, which could leave a one-rune gap.
	short := width - ansi.StringWidth(b.String())
	if short > 0 {
		b.WriteString(strings.Repeat(" ", short))
	}

	return w.style.Styled(b.String())
}

// WhitespaceOption sets a styling rule for rendering whitespace.
type WhitespaceOption func(*whitespace)

// WithWhitespaceForeground sets the color of the characters in the
// whitespace.
func WithWhitespaceForeground(c TerminalColor) WhitespaceOption {
	return func(w *whitespace) {
		if tc := resolve(c, w.re); tc != nil {
			w.style = w.style.Foreground(tc)
		}
	}
}

// WithWhitespaceBackground sets the background color of the whitespace.
func WithWhitespaceBackground(c TerminalColor) WhitespaceOption {
	return func(w *whitespace) {
		if tc := resolve(c, w.re); tc != nil {
			w.style = w.style.Background(tc)
		}
	}
}

// WithWhitespaceUnderline underlines the whitespace.
func WithWhitespaceUnderline() WhitespaceOption {
	return func(w *whitespace) {
		w.style = w.style.Underline()
	}
}

// WithWhitespaceStrikethrough strikes through the whitespace.
func WithWhitespaceStrikethrough() WhitespaceOption {
	return func(w *whitespace) {
		w.style = w.style.CrossOut()
	}
}

// WithWhitespaceChars sets the characters to be rendered in the whitespace.
func WithWhitespaceChars(s string) WhitespaceOption {
	return func(w *whitespace) {
		w.chars = s
	}
}
