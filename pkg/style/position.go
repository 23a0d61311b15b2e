package style

import "math"

// Position represents a position along a horizontal or vertical axis. It's in
// situations where an axis is involved, like alignment, joining, placement
// and so on.
//
// A value of 0 represents the start (the left or top) and 1 represents the end
// (the right or bottom). 0.5 represents the center.
//
// There are constants Top, Bottom, Center, Left and Right in this package
// that can be used to aid readability.
type Position float64

func (p Position) value() float64 {
	return math.Min(1, math.Max(0, float64(p)))
}

func (p Position) clamp() Position {
	if math.IsNaN(float64(p)) {
		return 0
	}
	return Position(p.value())
}

// Position aliases.
const (
	Top    Position = 0.0
	Bottom Position = 1.0
	Center Position = 0.5
	Left   Position = 0.0
	Right  Position = 1.0
)

// split divides n cells (or lines) into the amount placed before and after
// content at position pos. At exactly Center an odd remainder goes after.
func split(n int, pos Position) (before, after int) {
	if n <= 0 {
		return 0, 0
	}
	p := pos.clamp()
	if p == Center {
		before = n / 2
	} else {
		before = int(math.Round(float64(n) * p.value()))
	}
	return before, n - before
}
