package style

import (
	"strings"

	"github.com/dkoosis/gloss/pkg/ansi"
)

// Place places a string or text block in an unstyled box of a given
// width and height.
func Place(width, height int, hPos, vPos Position, str string, opts ...WhitespaceOption) string {
	return DefaultRenderer().Place(width, height, hPos, vPos, str, opts...)
}

// Place places a string or text block in an unstyled box of a given
// width and height.
func (r *Renderer) Place(width, height int, hPos, vPos Position, str string, opts ...WhitespaceOption) string {
	return r.PlaceVertical(height, vPos, r.PlaceHorizontal(width, hPos, str, opts...), opts...)
}

// PlaceHorizontal places a string or text block horizontally in an unstyled
// block of a given width. If the given width is shorter than the max width of
// the string (measured by its longest line) this will be a noop.
func PlaceHorizontal(width int, pos Position, str string, opts ...WhitespaceOption) string {
	return DefaultRenderer().PlaceHorizontal(width, pos, str, opts...)
}

// PlaceHorizontal places a string or text block horizontally in an unstyled
// block of a given width. If the given width is shorter than the max width of
// the string (measured by its longest line) this will be a noop.
func (r *Renderer) PlaceHorizontal(width int, pos Position, str string, opts ...WhitespaceOption) string {
	width = clampDim(width)
	lines, widths, contentWidth := ansi.LinesVisible(str)
	if width <= contentWidth {
		return str
	}

	ws := newWhitespace(r.snapshot(), opts...)

	var b strings.Builder
	for i, l := range lines {
		left, right := split(width-widths[i], pos)
		b.WriteString(ws.render(left))
		b.WriteString(l)
		b.WriteString(ws.render(right))
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// PlaceVertical places a string or text block vertically in an unstyled block
// of a given height. If the given height is shorter than the height of the
// string (measured by its newlines) then this will be a noop.
func PlaceVertical(height int, pos Position, str string, opts ...WhitespaceOption) string {
	return DefaultRenderer().PlaceVertical(height, pos, str, opts...)
}

// PlaceVertical places a string or text block vertically in an unstyled block
// of a given height. If the given height is shorter than the height of the
// string (measured by its newlines) then this will be a noop.
func (r *Renderer) PlaceVertical(height int, pos Position, str string, opts ...WhitespaceOption) string {
	height = clampDim(height)
	contentHeight := ansi.Height(str)
	if height <= contentHeight {
		return str
	}

	ws := newWhitespace(r.snapshot(), opts...)
	emptyLine := ws.render(ansi.Width(str))
	top, bottom := split(height-contentHeight, pos)

	var b strings.Builder
	for range top {
		b.WriteString(emptyLine)
		b.WriteByte('\n')
	}
	b.WriteString(str)
	for range bottom {
		b.WriteByte('\n')
		b.WriteString(emptyLine)
	}
	return b.String()
}
