package style

import (
	"strings"

	"github.com/dkoosis/gloss/pkg/ansi"
)

// JoinHorizontal is a utility function for horizontally joining two
// potentially multi-lined strings along a vertical axis. The first argument is
// the position, with 0 being all the way at the top and 1 being all the way
// at the bottom.
//
// If you just want to align to the top, center or bottom you may as well just
// use the helper constants Top, Center, and Bottom.
//
// Example:
//
//	blockB := "...\n...\n..."
//	blockA := "...\n...\n...\n...\n..."
//
//	// Join 20% from the top
//	str := style.JoinHorizontal(0.2, blockA, blockB)
//
//	// Join on the top edge
//	str := style.JoinHorizontal(style.Top, blockA, blockB)
func JoinHorizontal(pos Position, strs ...string) string {
	if len(strs) == 0 {
		return ""
	}
	if len(strs) == 1 {
		return strs[0]
	}

	var (
		// Groups of strings broken into multiple lines
		blocks = make([][]string, len(strs))

		// Max line widths for the above text blocks
		maxWidths = make([]int, len(strs))

		// Height of the tallest block
		maxHeight int
	)

	// Break text blocks into lines and get max widths for each text block
	for i, str := range strs {
		lines, _, widest := ansi.LinesVisible(str)
		blocks[i] = lines
		maxWidths[i] = widest
		maxHeight = max(maxHeight, len(lines))
	}

	// Add extra lines to make each side the same height
	for i := range blocks {
		n := maxHeight - len(blocks[i])
		if n <= 0 {
			continue
		}
		top, bottom := split(n, pos)
		extra := make([]string, 0, maxHeight)
		extra = append(extra, make([]string, top)...)
		extra = append(extra, blocks[i]...)
		extra = append(extra, make([]string, bottom)...)
		blocks[i] = extra
	}

	// Merge lines
	var b strings.Builder
	for i := range blocks[0] { // remember, all blocks have the same number of members now
		for j, block := range blocks {
			b.WriteString(block[i])

			// Also make lines the same length
			b.WriteString(strings.Repeat(" ", maxWidths[j]-ansi.StringWidth(block[i])))
		}
		if i < len(blocks[0])-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// JoinVertical is a utility function for vertically joining two potentially
// multi-lined strings along a horizontal axis. The first argument is the
// position, with 0 being all the way to the left and 1 being all the way to
// the right.
//
// If you just want to align to the left, right or center you may as well just
// use the helper constants Left, Center, and Right.
//
// Example:
//
//	blockB := "...\n...\n..."
//	blockA := "...\n...\n...\n...\n..."
//
//	// Join 20% from the left
//	str := style.JoinVertical(0.2, blockA, blockB)
//
//	// Join on the right side
//	str := style.JoinVertical(style.Right, blockA, blockB)
func JoinVertical(pos Position, strs ...string) string {
	if len(strs) == 0 {
		return ""
	}
	if len(strs) == 1 {
		return strs[0]
	}

	var (
		blocks   = make([][]string, len(strs))
		widths   = make([][]int, len(strs))
		maxWidth int
	)
	for i := range strs {
		var w int
		blocks[i], widths[i], w = ansi.LinesVisible(strs[i])
		maxWidth = max(maxWidth, w)
	}

	var b strings.Builder
	for i, block := range blocks {
		for j, line := range block {
			left, right := split(maxWidth-widths[i][j], pos)
			b.WriteString(strings.Repeat(" ", left))
			b.WriteString(line)
			b.WriteString(strings.Repeat(" ", right))

			// Write a newline as long as we're not on the last line of the
			// last block.
			if !(i == len(blocks)-1 && j == len(block)-1) {
				b.WriteByte('\n')
			}
		}
	}

	return b.String()
}
