package style

// set sets the value of a property and marks it present. Dimensions are
// clamped to [0, MaxDimension]; tab widths below zero collapse to
// NoTabConversion.
func (s *Style) set(key propKey, value any) {
	switch key { //nolint:exhaustive
	case foregroundKey:
		s.fgColor = colorOrNil(value)
	case backgroundKey:
		s.bgColor = colorOrNil(value)
	case widthKey:
		s.width = clampDim(value.(int))
	case heightKey:
		s.height = clampDim(value.(int))
	case alignHorizontalKey:
		s.alignHorizontal = value.(Position).clamp()
	case alignVerticalKey:
		s.alignVertical = value.(Position).clamp()
	case paddingTopKey:
		s.paddingTop = clampDim(value.(int))
	case paddingRightKey:
		s.paddingRight = clampDim(value.(int))
	case paddingBottomKey:
		s.paddingBottom = clampDim(value.(int))
	case paddingLeftKey:
		s.paddingLeft = clampDim(value.(int))
	case marginTopKey:
		s.marginTop = clampDim(value.(int))
	case marginRightKey:
		s.marginRight = clampDim(value.(int))
	case marginBottomKey:
		s.marginBottom = clampDim(value.(int))
	case marginLeftKey:
		s.marginLeft = clampDim(value.(int))
	case marginBackgroundKey:
		s.marginBgColor = colorOrNil(value)
	case borderStyleKey:
		s.borderStyle = value.(Border)
	case borderTopForegroundKey:
		s.borderTopFgColor = colorOrNil(value)
	case borderRightForegroundKey:
		s.borderRightFgColor = colorOrNil(value)
	case borderBottomForegroundKey:
		s.borderBottomFgColor = colorOrNil(value)
	case borderLeftForegroundKey:
		s.borderLeftFgColor = colorOrNil(value)
	case borderTopBackgroundKey:
		s.borderTopBgColor = colorOrNil(value)
	case borderRightBackgroundKey:
		s.borderRightBgColor = colorOrNil(value)
	case borderBottomBackgroundKey:
		s.borderBottomBgColor = colorOrNil(value)
	case borderLeftBackgroundKey:
		s.borderLeftBgColor = colorOrNil(value)
	case maxWidthKey:
		s.maxWidth = clampDim(value.(int))
	case maxHeightKey:
		s.maxHeight = clampDim(value.(int))
	case tabWidthKey:
		tw := value.(int)
		if tw < 0 {
			tw = NoTabConversion
		}
		s.tabWidth = min(tw, MaxDimension)
	case transformKey:
		fn, _ := value.(func(string) string)
		s.transform = fn
	default:
		if b, ok := value.(bool); ok {
			if b {
				s.attrs |= int(key)
			} else {
				s.attrs &^= int(key)
			}
		}
	}
	s.props = s.props.set(key)
}

// unset clears a property's presence and resets its stored value, so an
// unset property is indistinguishable from one never set.
func (s *Style) unset(key propKey) {
	s.copyValue(key, Style{})
	s.props = s.props.unset(key)
}

// copyProp copies a property, value and presence, from another style.
func (s *Style) copyProp(key propKey, from Style) {
	s.copyValue(key, from)
	s.props = s.props.set(key)
}

func (s *Style) copyValue(key propKey, from Style) {
	switch key { //nolint:exhaustive
	case foregroundKey:
		s.fgColor = from.fgColor
	case backgroundKey:
		s.bgColor = from.bgColor
	case widthKey:
		s.width = from.width
	case heightKey:
		s.height = from.height
	case alignHorizontalKey:
		s.alignHorizontal = from.alignHorizontal
	case alignVerticalKey:
		s.alignVertical = from.alignVertical
	case paddingTopKey:
		s.paddingTop = from.paddingTop
	case paddingRightKey:
		s.paddingRight = from.paddingRight
	case paddingBottomKey:
		s.paddingBottom = from.paddingBottom
	case paddingLeftKey:
		s.paddingLeft = from.paddingLeft
	case marginTopKey:
		s.marginTop = from.marginTop
	case marginRightKey:
		s.marginRight = from.marginRight
	case marginBottomKey:
		s.marginBottom = from.marginBottom
	case marginLeftKey:
		s.marginLeft = from.marginLeft
	case marginBackgroundKey:
		s.marginBgColor = from.marginBgColor
	case borderStyleKey:
		s.borderStyle = from.borderStyle
	case borderTopForegroundKey:
		s.borderTopFgColor = from.borderTopFgColor
	case borderRightForegroundKey:
		s.borderRightFgColor = from.borderRightFgColor
	case borderBottomForegroundKey:
		s.borderBottomFgColor = from.borderBottomFgColor
	case borderLeftForegroundKey:
		s.borderLeftFgColor = from.borderLeftFgColor
	case borderTopBackgroundKey:
		s.borderTopBgColor = from.borderTopBgColor
	case borderRightBackgroundKey:
		s.borderRightBgColor = from.borderRightBgColor
	case borderBottomBackgroundKey:
		s.borderBottomBgColor = from.borderBottomBgColor
	case borderLeftBackgroundKey:
		s.borderLeftBgColor = from.borderLeftBgColor
	case maxWidthKey:
		s.maxWidth = from.maxWidth
	case maxHeightKey:
		s.maxHeight = from.maxHeight
	case tabWidthKey:
		s.tabWidth = from.tabWidth
	case transformKey:
		s.transform = from.transform
	default:
		s.attrs = s.attrs&^int(key) | from.attrs&int(key)
	}
}

// propEqual compares the stored value of one property. Transforms are never
// equal.
func (s Style) propEqual(key propKey, o Style) bool {
	switch key { //nolint:exhaustive
	case foregroundKey:
		return s.fgColor == o.fgColor
	case backgroundKey:
		return s.bgColor == o.bgColor
	case widthKey:
		return s.width == o.width
	case heightKey:
		return s.height == o.height
	case alignHorizontalKey:
		return s.alignHorizontal == o.alignHorizontal
	case alignVerticalKey:
		return s.alignVertical == o.alignVertical
	case paddingTopKey:
		return s.paddingTop == o.paddingTop
	case paddingRightKey:
		return s.paddingRight == o.paddingRight
	case paddingBottomKey:
		return s.paddingBottom == o.paddingBottom
	case paddingLeftKey:
		return s.paddingLeft == o.paddingLeft
	case marginTopKey:
		return s.marginTop == o.marginTop
	case marginRightKey:
		return s.marginRight == o.marginRight
	case marginBottomKey:
		return s.marginBottom == o.marginBottom
	case marginLeftKey:
		return s.marginLeft == o.marginLeft
	case marginBackgroundKey:
		return s.marginBgColor == o.marginBgColor
	case borderStyleKey:
		return s.borderStyle == o.borderStyle
	case borderTopForegroundKey:
		return s.borderTopFgColor == o.borderTopFgColor
	case borderRightForegroundKey:
		return s.borderRightFgColor == o.borderRightFgColor
	case borderBottomForegroundKey:
		return s.borderBottomFgColor == o.borderBottomFgColor
	case borderLeftForegroundKey:
		return s.borderLeftFgColor == o.borderLeftFgColor
	case borderTopBackgroundKey:
		return s.borderTopBgColor == o.borderTopBgColor
	case borderRightBackgroundKey:
		return s.borderRightBgColor == o.borderRightBgColor
	case borderBottomBackgroundKey:
		return s.borderBottomBgColor == o.borderBottomBgColor
	case borderLeftBackgroundKey:
		return s.borderLeftBgColor == o.borderLeftBgColor
	case maxWidthKey:
		return s.maxWidth == o.maxWidth
	case maxHeightKey:
		return s.maxHeight == o.maxHeight
	case tabWidthKey:
		return s.tabWidth == o.tabWidth
	case transformKey:
		return false
	default:
		return s.attrs&int(key) == o.attrs&int(key)
	}
}

func (s Style) isSet(k propKey) bool {
	return s.props.has(k)
}

func (s Style) getAsBool(k propKey, defaultVal bool) bool {
	if !s.isSet(k) {
		return defaultVal
	}
	return s.attrs&int(k) != 0
}

func (s Style) getAsColor(k propKey) TerminalColor {
	if !s.isSet(k) {
		return NoColor{}
	}

	var c TerminalColor
	switch k { //nolint:exhaustive
	case foregroundKey:
		c = s.fgColor
	case backgroundKey:
		c = s.bgColor
	case marginBackgroundKey:
		c = s.marginBgColor
	case borderTopForegroundKey:
		c = s.borderTopFgColor
	case borderRightForegroundKey:
		c = s.borderRightFgColor
	case borderBottomForegroundKey:
		c = s.borderBottomFgColor
	case borderLeftForegroundKey:
		c = s.borderLeftFgColor
	case borderTopBackgroundKey:
		c = s.borderTopBgColor
	case borderRightBackgroundKey:
		c = s.borderRightBgColor
	case borderBottomBackgroundKey:
		c = s.borderBottomBgColor
	case borderLeftBackgroundKey:
		c = s.borderLeftBgColor
	}

	if c != nil {
		return c
	}
	return NoColor{}
}

func (s Style) getAsInt(k propKey) int {
	if !s.isSet(k) {
		return 0
	}
	switch k { //nolint:exhaustive
	case widthKey:
		return s.width
	case heightKey:
		return s.height
	case paddingTopKey:
		return s.paddingTop
	case paddingRightKey:
		return s.paddingRight
	case paddingBottomKey:
		return s.paddingBottom
	case paddingLeftKey:
		return s.paddingLeft
	case marginTopKey:
		return s.marginTop
	case marginRightKey:
		return s.marginRight
	case marginBottomKey:
		return s.marginBottom
	case marginLeftKey:
		return s.marginLeft
	case maxWidthKey:
		return s.maxWidth
	case maxHeightKey:
		return s.maxHeight
	case tabWidthKey:
		return s.tabWidth
	}
	return 0
}

func (s Style) getAsPosition(k propKey) Position {
	if !s.isSet(k) {
		return Position(0)
	}
	switch k { //nolint:exhaustive
	case alignHorizontalKey:
		return s.alignHorizontal
	case alignVerticalKey:
		return s.alignVertical
	}
	return Position(0)
}

func (s Style) getBorderStyle() Border {
	if !s.isSet(borderStyleKey) {
		return noBorder
	}
	return s.borderStyle
}

// implicitBorders reports whether a border style is set without any side
// having been explicitly toggled, in which case every side is drawn.
func (s Style) implicitBorders() bool {
	var (
		borderStyle = s.getBorderStyle()
		topSet      = s.isSet(borderTopKey)
		rightSet    = s.isSet(borderRightKey)
		bottomSet   = s.isSet(borderBottomKey)
		leftSet     = s.isSet(borderLeftKey)
	)
	return borderStyle != noBorder && !(topSet || rightSet || bottomSet || leftSet)
}

func colorOrNil(v any) TerminalColor {
	if c, ok := v.(TerminalColor); ok {
		return c
	}
	return nil
}

func clampDim(n int) int {
	return clamp(n, 0, MaxDimension)
}
