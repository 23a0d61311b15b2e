// Package ansi measures, strips, truncates and wraps strings that may carry
// ANSI escape sequences.
//
// Every operation in the package is driven by a single Scanner that splits a
// string into escape sequences and grapheme clusters. Escape scanning is
// bounded: a CSI sequence that does not reach its final byte within MaxSeqLen
// bytes is abandoned and the remaining bytes are read as plain text, so no
// input can force an unbounded scan.
package ansi

import (
	"strings"

	"github.com/rivo/uniseg"
)

const (
	// MaxSeqLen bounds the length in bytes of a single escape sequence.
	MaxSeqLen = 64

	esc = 0x1b
)

// Scanner walks a string one token at a time. A token is either a complete
// escape sequence or one grapheme cluster of visible text.
//
// A zero Scanner is not usable; create one with NewScanner.
type Scanner struct {
	rest  string
	tok   string
	width int
	isEsc bool
	state int
}

// NewScanner returns a Scanner positioned before the first token of s.
func NewScanner(s string) *Scanner {
	return &Scanner{rest: s, state: -1}
}

// Scan advances to the next token. It returns false once the input is
// exhausted.
func (sc *Scanner) Scan() bool {
	if sc.rest == "" {
		sc.tok, sc.width, sc.isEsc = "", 0, false
		return false
	}

	if sc.rest[0] == esc {
		if n := escLen(sc.rest); n > 0 {
			sc.tok, sc.rest = sc.rest[:n], sc.rest[n:]
			sc.width, sc.isEsc = 0, true
			sc.state = -1
			return true
		}
		// Abandoned sequence: only the ESC byte is consumed and the bytes
		// after it are read as plain text.
		sc.tok, sc.rest = sc.rest[:1], sc.rest[1:]
		sc.width, sc.isEsc = 0, true
		sc.state = -1
		return true
	}

	var cluster string
	cluster, sc.rest, sc.width, sc.state = uniseg.FirstGraphemeClusterInString(sc.rest, sc.state)
	sc.tok, sc.isEsc = cluster, false
	return true
}

// Text returns the current token.
func (sc *Scanner) Text() string { return sc.tok }

// Width returns the cell width of the current token. Escape sequences are
// zero width.
func (sc *Scanner) Width() int { return sc.width }

// IsEscape reports whether the current token is an escape sequence.
func (sc *Scanner) IsEscape() bool { return sc.isEsc }

// IsSGR reports whether the current token is a Select Graphic Rendition
// sequence (CSI ... m).
func (sc *Scanner) IsSGR() bool {
	return sc.isEsc && isSGR(sc.tok)
}

// escLen returns the length of the escape sequence at the start of s, or 0
// when the sequence is abandoned.
func escLen(s string) int {
	if len(s) < 2 {
		// A trailing ESC is swallowed as an incomplete sequence.
		return len(s)
	}
	if s[1] != '[' {
		return 2
	}
	for i := 2; i < len(s); i++ {
		if i >= MaxSeqLen {
			return 0
		}
		if b := s[i]; b >= '@' && b <= '~' {
			return i + 1
		}
	}
	// Unterminated but short: treat what is left as one incomplete sequence.
	return len(s)
}

func isSGR(seq string) bool {
	return len(seq) >= 3 && seq[0] == esc && seq[1] == '[' && seq[len(seq)-1] == 'm'
}

// isReset reports whether an SGR sequence leaves the terminal in its default
// rendition.
func isReset(seq string) bool {
	params := strings.Split(seq[2:len(seq)-1], ";")
	reset := true
	for i := 0; i < len(params); i++ {
		switch p := params[i]; p {
		case "", "0", "00":
			reset = true
		case "38", "48", "58":
			// Extended colour: skip the palette or RGB arguments.
			if i+1 < len(params) && params[i+1] == "5" {
				i += 2
			} else if i+1 < len(params) && params[i+1] == "2" {
				i += 4
			}
			reset = false
		default:
			reset = false
		}
	}
	return reset
}
