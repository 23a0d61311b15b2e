package style

import (
	"strings"

	"github.com/dkoosis/gloss/pkg/ansi"
	"github.com/muesli/termenv"
)

// alignTextHorizontal pads every line to the wider of width and the widest
// line, placing the text according to pos.
func alignTextHorizontal(str string, pos Position, width int, style *termenv.Style) string {
	lines, widths, widest := ansi.LinesVisible(str)
	target := max(widest, width)

	var b strings.Builder
	for i, l := range lines {
		before, after := split(target-widths[i], pos)
		b.WriteString(spaces(before, style))
		b.WriteString(l)
		b.WriteString(spaces(after, style))
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// alignTextVertical adds blank lines, as wide as the widest line, above and
// below the text until it is height lines tall.
func alignTextVertical(str string, pos Position, height int, style *termenv.Style) string {
	h := ansi.Height(str)
	if h >= height {
		return str
	}

	top, bottom := split(height-h, pos)
	blank := spaces(ansi.Width(str), style)

	var b strings.Builder
	for range top {
		b.WriteString(blank)
		b.WriteByte('\n')
	}
	b.WriteString(str)
	for range bottom {
		b.WriteByte('\n')
		b.WriteString(blank)
	}
	return b.String()
}

// Align places str in a width by height area at the given horizontal and
// vertical positions. It is Place under a name that reads better at call
// sites that align rather than lay out.
func Align(width, height int, hPos, vPos Position, str string, opts ...WhitespaceOption) string {
	return Place(width, height, hPos, vPos, str, opts...)
}

// AlignHorizontal aligns every line of str within width cells.
func AlignHorizontal(width int, pos Position, str string, opts ...WhitespaceOption) string {
	return PlaceHorizontal(width, pos, str, opts...)
}

// AlignVertical aligns str within height lines.
func AlignVertical(height int, pos Position, str string, opts ...WhitespaceOption) string {
	return PlaceVertical(height, pos, str, opts...)
}
