package style

import (
	"strings"

	"github.com/dkoosis/gloss/pkg/ansi"
	"github.com/muesli/termenv"
)

// Border contains a series of values which comprise the various parts of a
// border.
type Border struct {
	Top          string
	Bottom       string
	Left         string
	Right        string
	TopLeft      string
	TopRight     string
	BottomLeft   string
	BottomRight  string
	MiddleLeft   string
	MiddleRight  string
	Middle       string
	MiddleTop    string
	MiddleBottom string
}

// GetTopSize returns the width of the top border. If borders contain runes of
// varying widths, the widest rune is returned. If no border exists on the top
// edge, 0 is returned.
func (b Border) GetTopSize() int {
	return getBorderEdgeWidth(b.TopLeft, b.Top, b.TopRight)
}

// GetRightSize returns the width of the right border.
func (b Border) GetRightSize() int {
	return getBorderEdgeWidth(b.TopRight, b.Right, b.BottomRight)
}

// GetBottomSize returns the width of the bottom border.
func (b Border) GetBottomSize() int {
	return getBorderEdgeWidth(b.BottomLeft, b.Bottom, b.BottomRight)
}

// GetLeftSize returns the width of the left border.
func (b Border) GetLeftSize() int {
	return getBorderEdgeWidth(b.TopLeft, b.Left, b.BottomLeft)
}

func getBorderEdgeWidth(borderParts ...string) (maxWidth int) {
	for _, piece := range borderParts {
		maxWidth = max(maxWidth, ansi.StringWidth(piece))
	}
	return maxWidth
}

var (
	noBorder = Border{}

	normalBorder = Border{
		Top:          "─",
		Bottom:       "─",
		Left:         "│",
		Right:        "│",
		TopLeft:      "┌",
		TopRight:     "┐",
		BottomLeft:   "└",
		BottomRight:  "┘",
		MiddleLeft:   "├",
		MiddleRight:  "┤",
		Middle:       "┼",
		MiddleTop:    "┬",
		MiddleBottom: "┴",
	}

	roundedBorder = Border{
		Top:          "─",
		Bottom:       "─",
		Left:         "│",
		Right:        "│",
		TopLeft:      "╭",
		TopRight:     "╮",
		BottomLeft:   "╰",
		BottomRight:  "╯",
		MiddleLeft:   "├",
		MiddleRight:  "┤",
		Middle:       "┼",
		MiddleTop:    "┬",
		MiddleBottom: "┴",
	}

	blockBorder = Border{
		Top:          "█",
		Bottom:       "█",
		Left:         "█",
		Right:        "█",
		TopLeft:      "█",
		TopRight:     "█",
		BottomLeft:   "█",
		BottomRight:  "█",
		MiddleLeft:   "█",
		MiddleRight:  "█",
		Middle:       "█",
		MiddleTop:    "█",
		MiddleBottom: "█",
	}

	outerHalfBlockBorder = Border{
		Top:         "▀",
		Bottom:      "▄",
		Left:        "▌",
		Right:       "▐",
		TopLeft:     "▛",
		TopRight:    "▜",
		BottomLeft:  "▙",
		BottomRight: "▟",
	}

	innerHalfBlockBorder = Border{
		Top:         "▄",
		Bottom:      "▀",
		Left:        "▐",
		Right:       "▌",
		TopLeft:     "▗",
		TopRight:    "▖",
		BottomLeft:  "▝",
		BottomRight: "▘",
	}

	thickBorder = Border{
		Top:          "━",
		Bottom:       "━",
		Left:         "┃",
		Right:        "┃",
		TopLeft:      "┏",
		TopRight:     "┓",
		BottomLeft:   "┗",
		BottomRight:  "┛",
		MiddleLeft:   "┣",
		MiddleRight:  "┫",
		Middle:       "╋",
		MiddleTop:    "┳",
		MiddleBottom: "┻",
	}

	doubleBorder = Border{
		Top:          "═",
		Bottom:       "═",
		Left:         "║",
		Right:        "║",
		TopLeft:      "╔",
		TopRight:     "╗",
		BottomLeft:   "╚",
		BottomRight:  "╝",
		MiddleLeft:   "╠",
		MiddleRight:  "╣",
		Middle:       "╬",
		MiddleTop:    "╦",
		MiddleBottom: "╩",
	}

	hiddenBorder = Border{
		Top:          " ",
		Bottom:       " ",
		Left:         " ",
		Right:        " ",
		TopLeft:      " ",
		TopRight:     " ",
		BottomLeft:   " ",
		BottomRight:  " ",
		MiddleLeft:   " ",
		MiddleRight:  " ",
		Middle:       " ",
		MiddleTop:    " ",
		MiddleBottom: " ",
	}

	markdownBorder = Border{
		Top:          "-",
		Bottom:       "-",
		Left:         "|",
		Right:        "|",
		TopLeft:      "|",
		TopRight:     "|",
		BottomLeft:   "|",
		BottomRight:  "|",
		MiddleLeft:   "|",
		MiddleRight:  "|",
		Middle:       "|",
		MiddleTop:    "|",
		MiddleBottom: "|",
	}

	asciiBorder = Border{
		Top:          "-",
		Bottom:       "-",
		Left:         "|",
		Right:        "|",
		TopLeft:      "+",
		TopRight:     "+",
		BottomLeft:   "+",
		BottomRight:  "+",
		MiddleLeft:   "+",
		MiddleRight:  "+",
		Middle:       "+",
		MiddleTop:    "+",
		MiddleBottom: "+",
	}
)

// NormalBorder returns a standard-type border with a normal weight and 90
// degree corners.
func NormalBorder() Border { return normalBorder }

// RoundedBorder returns a border with rounded corners.
func RoundedBorder() Border { return roundedBorder }

// BlockBorder returns a border that takes the whole block.
func BlockBorder() Border { return blockBorder }

// OuterHalfBlockBorder returns a half-block border that sits outside the
// frame.
func OuterHalfBlockBorder() Border { return outerHalfBlockBorder }

// InnerHalfBlockBorder returns a half-block border that sits inside the frame.
func InnerHalfBlockBorder() Border { return innerHalfBlockBorder }

// ThickBorder returns a border that's thicker than the one returned by
// NormalBorder.
func ThickBorder() Border { return thickBorder }

// DoubleBorder returns a border comprised of two thin strokes.
func DoubleBorder() Border { return doubleBorder }

// HiddenBorder returns a border that renders as a series of single-cell
// spaces. It's useful for cases when you want to remove a standard border but
// maintain layout positioning.
func HiddenBorder() Border { return hiddenBorder }

// MarkdownBorder returns a table border in markdown style.
func MarkdownBorder() Border { return markdownBorder }

// ASCIIBorder returns a table border with ASCII characters.
func ASCIIBorder() Border { return asciiBorder }

// BorderByName returns a named border. Unknown names report false.
func BorderByName(name string) (Border, bool) {
	switch strings.ToLower(name) {
	case "normal":
		return normalBorder, true
	case "rounded":
		return roundedBorder, true
	case "thick":
		return thickBorder, true
	case "double":
		return doubleBorder, true
	case "block":
		return blockBorder, true
	case "ascii":
		return asciiBorder, true
	case "markdown":
		return markdownBorder, true
	case "hidden":
		return hiddenBorder, true
	case "outer-half-block", "outer_half_block":
		return outerHalfBlockBorder, true
	case "inner-half-block", "inner_half_block":
		return innerHalfBlockBorder, true
	case "none", "":
		return noBorder, true
	}
	return noBorder, false
}

func (s Style) applyBorder(str string, r *Renderer) string {
	var (
		border    = s.getBorderStyle()
		hasTop    = s.getAsBool(borderTopKey, false)
		hasRight  = s.getAsBool(borderRightKey, false)
		hasBottom = s.getAsBool(borderBottomKey, false)
		hasLeft   = s.getAsBool(borderLeftKey, false)
	)

	// A border style with no side toggled on or off means every side.
	if s.implicitBorders() {
		hasTop, hasRight, hasBottom, hasLeft = true, true, true, true
	}

	if border == noBorder || (!hasTop && !hasRight && !hasBottom && !hasLeft) {
		return str
	}

	lines, width := getLines(str)

	if hasLeft && border.Left == "" {
		border.Left = " "
	}
	if hasRight && border.Right == "" {
		border.Right = " "
	}

	// Corners are only drawn where both adjoining sides are.
	if hasTop && hasLeft && border.TopLeft == "" {
		border.TopLeft = " "
	}
	if hasTop && hasRight && border.TopRight == "" {
		border.TopRight = " "
	}
	if hasBottom && hasLeft && border.BottomLeft == "" {
		border.BottomLeft = " "
	}
	if hasBottom && hasRight && border.BottomRight == "" {
		border.BottomRight = " "
	}
	if !hasLeft {
		border.TopLeft, border.BottomLeft = "", ""
	}
	if !hasRight {
		border.TopRight, border.BottomRight = "", ""
	}

	var out strings.Builder

	if hasTop {
		top := renderHorizontalEdge(border.TopLeft, border.Top, border.TopRight, width)
		out.WriteString(s.styleBorder(top, r, s.borderTopFgColor, s.borderTopBgColor))
		out.WriteByte('\n')
	}

	leftRunes := []rune(border.Left)
	rightRunes := []rune(border.Right)
	for i, l := range lines {
		if hasLeft {
			out.WriteString(s.styleBorder(string(leftRunes[i%len(leftRunes)]), r, s.borderLeftFgColor, s.borderLeftBgColor))
		}
		out.WriteString(l)
		if hasRight {
			out.WriteString(s.styleBorder(string(rightRunes[i%len(rightRunes)]), r, s.borderRightFgColor, s.borderRightBgColor))
		}
		if i < len(lines)-1 {
			out.WriteByte('\n')
		}
	}

	if hasBottom {
		bottom := renderHorizontalEdge(border.BottomLeft, border.Bottom, border.BottomRight, width)
		out.WriteByte('\n')
		out.WriteString(s.styleBorder(bottom, r, s.borderBottomFgColor, s.borderBottomBgColor))
	}

	return out.String()
}

// renderHorizontalEdge fills width cells between the corners by cycling
// through the runes of middle.
func renderHorizontalEdge(left, middle, right string, width int) string {
	if middle == "" {
		middle = " "
	}
	runes := []rune(middle)

	var out strings.Builder
	out.WriteString(left)
	for i, j := 0, 0; i < width; j++ {
		rn := runes[j%len(runes)]
		rw := max(ansi.RuneWidth(rn), 1)
		if i+rw > width {
			out.WriteString(strings.Repeat(" ", width-i))
			break
		}
		out.WriteRune(rn)
		i += rw
	}
	out.WriteString(right)
	return out.String()
}

func (s Style) styleBorder(border string, r *Renderer, fg, bg TerminalColor) string {
	if fg == nil && bg == nil {
		return border
	}
	st := r.colorProfile.String()
	if c := resolve(fg, r); c != nil {
		st = st.Foreground(c)
	}
	if c := resolve(bg, r); c != nil {
		st = st.Background(c)
	}
	return st.Styled(border)
}

// resolve returns the termenv color for c, or nil when nothing should be
// emitted.
func resolve(c TerminalColor, r *Renderer) termenv.Color {
	if c == nil {
		return nil
	}
	tc := c.color(r)
	if _, ok := tc.(termenv.NoColor); ok {
		return nil
	}
	return tc
}
