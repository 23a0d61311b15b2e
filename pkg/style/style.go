// Package style composes terminal text attributes, colors, padding, borders,
// margins and alignment, and renders them into strings carrying ANSI escape
// sequences.
package style

import (
	"strings"

	"github.com/dkoosis/gloss/pkg/ansi"
	"github.com/muesli/termenv"
)

const (
	// MaxDimension caps widths, heights, padding, margins and tab widths.
	MaxDimension = 10_000

	// MaxRepeatCount caps the number of cells a whitespace run may fill.
	MaxRepeatCount = 10_000

	tabWidthDefault = 4

	// NoTabConversion leaves tabs untouched when passed to TabWidth.
	NoTabConversion = -1
)

type propKey int64

// Available properties.
const (
	// Boolean props come first.
	boldKey propKey = 1 << iota
	italicKey
	underlineKey
	strikethroughKey
	reverseKey
	blinkKey
	faintKey
	underlineSpacesKey
	strikethroughSpacesKey
	colorWhitespaceKey

	// Non-boolean props.
	foregroundKey
	backgroundKey
	widthKey
	heightKey
	alignHorizontalKey
	alignVerticalKey

	// Padding.
	paddingTopKey
	paddingRightKey
	paddingBottomKey
	paddingLeftKey

	// Margins.
	marginTopKey
	marginRightKey
	marginBottomKey
	marginLeftKey
	marginBackgroundKey

	// Border runes.
	borderStyleKey

	// Border edges.
	borderTopKey
	borderRightKey
	borderBottomKey
	borderLeftKey

	// Border foreground colors.
	borderTopForegroundKey
	borderRightForegroundKey
	borderBottomForegroundKey
	borderLeftForegroundKey

	// Border background colors.
	borderTopBackgroundKey
	borderRightBackgroundKey
	borderBottomBackgroundKey
	borderLeftBackgroundKey

	inlineKey
	maxWidthKey
	maxHeightKey
	tabWidthKey

	transformKey

	lastKey = transformKey
)

// props is a set of properties.
type props int64

func (p props) set(k propKey) props   { return p | props(k) }
func (p props) unset(k propKey) props { return p &^ props(k) }
func (p props) has(k propKey) bool    { return p&props(k) != 0 }

// Style contains a set of rules that comprise a style as a whole. Styles are
// values: every setter returns a modified copy and the receiver is never
// changed.
type Style struct {
	r     *Renderer
	props props
	value string

	// attrs stores the values of boolean properties.
	attrs int

	fgColor TerminalColor
	bgColor TerminalColor

	width  int
	height int

	alignHorizontal Position
	alignVertical   Position

	paddingTop    int
	paddingRight  int
	paddingBottom int
	paddingLeft   int

	marginTop     int
	marginRight   int
	marginBottom  int
	marginLeft    int
	marginBgColor TerminalColor

	borderStyle         Border
	borderTopFgColor    TerminalColor
	borderRightFgColor  TerminalColor
	borderBottomFgColor TerminalColor
	borderLeftFgColor   TerminalColor
	borderTopBgColor    TerminalColor
	borderRightBgColor  TerminalColor
	borderBottomBgColor TerminalColor
	borderLeftBgColor   TerminalColor

	maxWidth  int
	maxHeight int
	tabWidth  int

	transform func(string) string
}

// NewStyle returns a new, empty Style that renders against the default
// renderer.
func NewStyle() Style {
	return Style{}
}

// Renderer binds the style to a renderer other than the default.
func (s Style) Renderer(r *Renderer) Style {
	s.r = r
	return s
}

// SetString sets the underlying string value for this style. To render once
// the underlying string is set, use the Style.String. This method is a
// convenience for cases when having a stringer implementation is handy, such
// as when using fmt.Sprintf. You can also simply define a style and render
// out strings directly with Style.Render.
func (s Style) SetString(strs ...string) Style {
	s.value = strings.Join(strs, " ")
	return s
}

// Value returns the raw, unformatted, underlying string value for this style.
func (s Style) Value() string {
	return s.value
}

// String implements stringer for a Style, returning the rendered result based
// on the rules in this style. An underlying string value must be set with
// Style.SetString prior to using this method.
func (s Style) String() string {
	return s.Render()
}

// Copy returns a copy of this style. Styles are values, so plain assignment
// copies as well.
//
// Deprecated: to copy just use assignment (i.e. a := b).
func (s Style) Copy() Style {
	return s
}

// Inherit overlays the style in the argument onto this style by copying each
// explicitly set value from the argument style onto this style if it is not
// already explicitly set. Margins, padding, and underlying string values are
// not inherited.
func (s Style) Inherit(i Style) Style {
	for k := boldKey; k <= lastKey; k <<= 1 {
		if !i.isSet(k) || s.isSet(k) {
			continue
		}
		switch k { //nolint:exhaustive
		case marginTopKey, marginRightKey, marginBottomKey, marginLeftKey, marginBackgroundKey,
			paddingTopKey, paddingRightKey, paddingBottomKey, paddingLeftKey:
			continue
		}
		s.copyProp(k, i)
	}
	return s
}

// IsEquivalent reports whether two styles hold the same set of properties
// with the same values. Transforms cannot be compared, so two styles that both
// carry one are never equivalent.
func (s Style) IsEquivalent(o Style) bool {
	if s.props != o.props || s.value != o.value || s.r != o.r {
		return false
	}
	if s.isSet(transformKey) {
		return false
	}
	for k := boldKey; k <= lastKey; k <<= 1 {
		if s.isSet(k) && !s.propEqual(k, o) {
			return false
		}
	}
	return true
}

// Render applies the defined style formatting to a given string. Strings
// passed alongside a value set with SetString are joined with single spaces.
func (s Style) Render(strs ...string) string {
	if s.value != "" {
		strs = append([]string{s.value}, strs...)
	}
	str := strings.Join(strs, " ")

	// Nothing to style: only tabs are converted, with the default width.
	if s.props == 0 {
		return s.maybeConvertTabs(strings.ReplaceAll(str, "\r\n", "\n"))
	}

	r := s.renderer().snapshot()

	var (
		bold          = s.getAsBool(boldKey, false)
		italic        = s.getAsBool(italicKey, false)
		underline     = s.getAsBool(underlineKey, false)
		strikethrough = s.getAsBool(strikethroughKey, false)
		reverse       = s.getAsBool(reverseKey, false)
		blink         = s.getAsBool(blinkKey, false)
		faint         = s.getAsBool(faintKey, false)

		fg = resolve(s.getAsColor(foregroundKey), r)
		bg = resolve(s.getAsColor(backgroundKey), r)

		width           = s.getAsInt(widthKey)
		height          = s.getAsInt(heightKey)
		horizontalAlign = s.getAsPosition(alignHorizontalKey)
		verticalAlign   = s.getAsPosition(alignVerticalKey)

		topPadding    = s.getAsInt(paddingTopKey)
		rightPadding  = s.getAsInt(paddingRightKey)
		bottomPadding = s.getAsInt(paddingBottomKey)
		leftPadding   = s.getAsInt(paddingLeftKey)

		colorWhitespace = s.getAsBool(colorWhitespaceKey, true)
		inline          = s.getAsBool(inlineKey, false)
		maxWidth        = s.getAsInt(maxWidthKey)
		maxHeight       = s.getAsInt(maxHeightKey)

		underlineSpaces     = s.getAsBool(underlineSpacesKey, false)
		strikethroughSpaces = s.getAsBool(strikethroughSpacesKey, false)

		// Leading and trailing spaces get their own style when underline or
		// strikethrough should not reach them.
		splitSpaces = (underline && !underlineSpaces) || (strikethrough && !strikethroughSpaces)

		te           = r.colorProfile.String()
		teSpace      = r.colorProfile.String()
		teWhitespace = r.colorProfile.String()
	)

	if bold {
		te = te.Bold()
		teSpace = teSpace.Bold()
	}
	if italic {
		te = te.Italic()
		teSpace = teSpace.Italic()
	}
	if underline {
		te = te.Underline()
		if underlineSpaces {
			teSpace = teSpace.Underline()
		}
	}
	if reverse {
		te = te.Reverse()
		teSpace = teSpace.Reverse()
		teWhitespace = teWhitespace.Reverse()
	}
	if blink {
		te = te.Blink()
		teSpace = teSpace.Blink()
	}
	if faint {
		te = te.Faint()
		teSpace = teSpace.Faint()
	}
	if fg != nil {
		te = te.Foreground(fg)
		teSpace = teSpace.Foreground(fg)
		if reverse {
			teWhitespace = teWhitespace.Foreground(fg)
		}
	}
	if bg != nil {
		te = te.Background(bg)
		teSpace = teSpace.Background(bg)
		if colorWhitespace {
			teWhitespace = teWhitespace.Background(bg)
		}
	}
	if strikethrough {
		te = te.CrossOut()
		if strikethroughSpaces {
			teSpace = teSpace.CrossOut()
		}
	}

	// Potentially convert tabs to spaces.
	if s.transform != nil {
		str = s.transform(str)
	}
	str = strings.ReplaceAll(str, "\r\n", "\n")
	str = s.maybeConvertTabs(str)

	if inline {
		str = strings.ReplaceAll(str, "\n", "")
	}

	// Word wrap.
	if width > 0 {
		if wrapAt := width - leftPadding - rightPadding; wrapAt > 0 {
			str = ansi.Wrap(str, wrapAt, "")
		}
	}

	// Render core text.
	{
		lines := strings.Split(str, "\n")
		for i, l := range lines {
			l = styleLine(l, te, teSpace, splitSpaces)
			if maxWidth > 0 {
				l = ansi.Truncate(l, maxWidth, "")
			}
			lines[i] = l
		}
		str = strings.Join(lines, "\n")
	}

	// Pad every line to the content width following the horizontal alignment.
	str = alignTextHorizontal(str, horizontalAlign, max(0, width-leftPadding-rightPadding), &teWhitespace)

	// Padding.
	{
		var st *termenv.Style
		if colorWhitespace {
			st = &teWhitespace
		}
		if leftPadding > 0 {
			str = padLeft(str, leftPadding, st)
		}
		if rightPadding > 0 {
			str = padRight(str, rightPadding, st)
		}
		if topPadding > 0 {
			str = blankLines(ansi.Width(str), topPadding, st) + "\n" + str
		}
		if bottomPadding > 0 {
			str += "\n" + blankLines(ansi.Width(str), bottomPadding, st)
		}
	}

	// Height.
	if height > 0 {
		str = alignTextVertical(str, verticalAlign, height, &teWhitespace)
	}
	if maxHeight > 0 {
		lines := strings.Split(str, "\n")
		if len(lines) > maxHeight {
			str = strings.Join(lines[:maxHeight], "\n")
		}
	}

	str = s.applyBorder(str, r)
	str = s.applyMargins(str, r)

	return str
}

// styleLine wraps a line in the text style. When splitSpaces is set the
// leading and trailing spaces are wrapped in spaceStyle instead, each run with
// its own open and reset.
func styleLine(l string, te, spaceStyle termenv.Style, splitSpaces bool) string {
	if l == "" {
		return ""
	}
	if !splitSpaces {
		return te.Styled(l)
	}

	core := strings.TrimLeft(l, " ")
	if core == "" {
		return spaceStyle.Styled(l)
	}
	lead := l[:len(l)-len(core)]
	trimmed := strings.TrimRight(core, " ")
	trail := core[len(trimmed):]

	var b strings.Builder
	if lead != "" {
		b.WriteString(spaceStyle.Styled(lead))
	}
	b.WriteString(te.Styled(trimmed))
	if trail != "" {
		b.WriteString(spaceStyle.Styled(trail))
	}
	return b.String()
}

func (s Style) maybeConvertTabs(str string) string {
	tw := tabWidthDefault
	if s.isSet(tabWidthKey) {
		tw = s.getAsInt(tabWidthKey)
	}
	switch tw {
	case -1:
		return str
	case 0:
		return strings.ReplaceAll(str, "\t", "")
	default:
		return strings.ReplaceAll(str, "\t", strings.Repeat(" ", tw))
	}
}

func (s Style) applyMargins(str string, r *Renderer) string {
	var (
		topMargin    = s.getAsInt(marginTopKey)
		rightMargin  = s.getAsInt(marginRightKey)
		bottomMargin = s.getAsInt(marginBottomKey)
		leftMargin   = s.getAsInt(marginLeftKey)
	)
	if topMargin+rightMargin+bottomMargin+leftMargin == 0 {
		return str
	}

	var st *termenv.Style
	if bg := resolve(s.getAsColor(marginBackgroundKey), r); bg != nil {
		styled := r.colorProfile.String().Background(bg)
		st = &styled
	}

	// Add left and right margin.
	str = padLeft(str, leftMargin, st)
	str = padRight(str, rightMargin, st)

	// Top/bottom margin.
	if topMargin > 0 {
		str = blankLines(ansi.Width(str), topMargin, st) + "\n" + str
	}
	if bottomMargin > 0 {
		str += "\n" + blankLines(ansi.Width(str), bottomMargin, st)
	}
	return str
}

// padLeft applies n spaces of padding to the left of each line.
func padLeft(str string, n int, style *termenv.Style) string {
	return pad(str, -n, style)
}

// padRight applies n spaces of padding to the right of each line.
func padRight(str string, n int, style *termenv.Style) string {
	return pad(str, n, style)
}

// pad adds padding to either the left or right side of each line. A positive
// n pads the right, a negative n the left.
func pad(str string, n int, style *termenv.Style) string {
	if n == 0 {
		return str
	}

	sp := spaces(abs(n), style)

	lines := strings.Split(str, "\n")
	for i := range lines {
		if n > 0 {
			lines[i] += sp
		} else {
			lines[i] = sp + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// blankLines returns n lines of width cells of whitespace.
func blankLines(width, n int, style *termenv.Style) string {
	line := spaces(width, style)
	lines := make([]string, min(n, MaxDimension))
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func spaces(n int, style *termenv.Style) string {
	sp := strings.Repeat(" ", clamp(n, 0, MaxRepeatCount))
	if style != nil && sp != "" {
		sp = style.Styled(sp)
	}
	return sp
}

func (s Style) renderer() *Renderer {
	if s.r != nil {
		return s.r
	}
	return DefaultRenderer()
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// getLines splits a string into lines and reports the widest.
func getLines(s string) (lines []string, widest int) {
	lines, _, widest = ansi.LinesVisible(s)
	return lines, widest
}
