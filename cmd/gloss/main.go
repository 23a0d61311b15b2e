// gloss styles text for the terminal from the command line.
//
// Usage:
//
//	gloss render --border rounded --padding 1,2 "hello"
//	echo "hello" | gloss render --fg 212 --bold
//	gloss tree --root project < outline.txt
//	gloss list --enumerator roman < outline.txt
//	gloss gradient --from "#ff7f50" --to "#6a5acd" --steps 24
//	gloss env
//
// Colors are downsampled to what the terminal supports. Output that is not a
// terminal gets no color unless a profile is forced with --profile or
// GLOSS_PROFILE.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	a := &app{
		lookup: os.LookupEnv,
		dir:    dir,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		isTTY:  isTTYWriter,
		size:   termSize,
	}
	return a.run(args)
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// termSize returns the terminal width of w, or 0 when w is not a terminal.
func termSize(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func errorf(w io.Writer, err error) {
	fmt.Fprintf(w, "gloss: %v\n", err)
}
