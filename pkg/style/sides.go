package style

// whichSides expands CSS-style shorthand: one value applies to every side,
// two to the vertical then horizontal sides, three to top, horizontal and
// bottom, and four clockwise from the top. Any other count reports false.
func whichSides[T any](v ...T) (top, right, bottom, left T, ok bool) {
	switch len(v) {
	case 1:
		return v[0], v[0], v[0], v[0], true
	case 2:
		return v[0], v[1], v[0], v[1], true
	case 3:
		return v[0], v[1], v[2], v[1], true
	case 4:
		return v[0], v[1], v[2], v[3], true
	}
	return top, right, bottom, left, false
}

// WhichSidesInt is a helper method for setting values on sides of a block
// based on the number of arguments, following the CSS shorthand rules.
func WhichSidesInt(i ...int) (top, right, bottom, left int, ok bool) {
	return whichSides(i...)
}

// WhichSidesBool is like WhichSidesInt, except it operates on a series of
// boolean values.
func WhichSidesBool(b ...bool) (top, right, bottom, left bool, ok bool) {
	return whichSides(b...)
}

// WhichSidesColor is like WhichSidesInt, except it operates on a series of
// colors.
func WhichSidesColor(c ...TerminalColor) (top, right, bottom, left TerminalColor, ok bool) {
	return whichSides(c...)
}
