package style

import "github.com/dkoosis/gloss/pkg/ansi"

// Width returns the cell width of characters in the string. ANSI sequences are
// ignored and characters wider than one cell (such as Chinese characters and
// emojis) are appropriately measured.
//
// You should use this instead of len(string) or len([]rune(string) as neither
// will give you accurate results.
func Width(str string) int {
	return ansi.Width(str)
}

// Height returns height of a string in cells. This is done simply by
// counting \n characters. If your strings use \r\n for newlines you should
// convert them to \n first, or simply write a separate function for measuring
// height.
func Height(str string) int {
	return ansi.Height(str)
}

// Size returns the width and height of the string in cells. ANSI sequences
// are ignored and characters wider than one cell (such as Chinese characters
// and emojis) are appropriately measured.
func Size(str string) (width, height int) {
	return ansi.Size(str)
}
