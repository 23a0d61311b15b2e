package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dkoosis/gloss/pkg/list"
	"github.com/dkoosis/gloss/pkg/tree"
)

// outlineNode is one line of an indented outline.
type outlineNode struct {
	text     string
	children []*outlineNode
}

// parseOutline reads an outline where each level is indented two spaces
// further than its parent. A tab counts as two spaces. Blank lines are
// skipped, and a line indented more than one level past the previous line
// becomes a child of that line.
func parseOutline(r io.Reader) ([]*outlineNode, error) {
	var roots []*outlineNode
	var stack []*outlineNode // stack[d] is the most recent node at depth d

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}

		indent, i := 0, 0
	scan:
		for ; i < len(line); i++ {
			switch line[i] {
			case ' ':
				indent++
			case '\t':
				indent += 2
			default:
				break scan
			}
		}

		depth := min(indent/2, len(stack))
		n := &outlineNode{text: line[i:]}
		if depth == 0 {
			roots = append(roots, n)
		} else {
			parent := stack[depth-1]
			parent.children = append(parent.children, n)
		}
		stack = append(stack[:depth], n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read outline: %w", err)
	}
	return roots, nil
}

// treeChild returns the node as a tree child: a plain value for leaves and
// a subtree rooted at the text otherwise.
func (n *outlineNode) treeChild() any {
	if len(n.children) == 0 {
		return n.text
	}
	t := tree.Root(n.text)
	for _, c := range n.children {
		t.Child(c.treeChild())
	}
	return t
}

// appendTo adds the node to l. Children follow as a nested list built by
// sub.
func (n *outlineNode) appendTo(l *list.List, sub func() *list.List) {
	l.Item(n.text)
	if len(n.children) == 0 {
		return
	}
	nested := sub()
	for _, c := range n.children {
		c.appendTo(nested, sub)
	}
	l.Item(nested)
}
