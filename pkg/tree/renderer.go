package tree

import (
	"strings"

	"github.com/dkoosis/gloss/pkg/ansi"
	"github.com/dkoosis/gloss/pkg/style"
)

type rendererStyle struct {
	enumeratorFunc StyleFunc
	indenterFunc   StyleFunc
	itemFunc       StyleFunc
	root           style.Style
}

type renderer struct {
	style      rendererStyle
	enumerator Enumerator
	indenter   Indenter
}

func newRenderer() *renderer {
	return &renderer{
		style: rendererStyle{
			enumeratorFunc: func(Children, int) style.Style {
				return style.NewStyle().PaddingRight(1)
			},
			indenterFunc: func(Children, int) style.Style {
				return style.NewStyle()
			},
			itemFunc: func(Children, int) style.Style {
				return style.NewStyle()
			},
			root: style.NewStyle(),
		},
		enumerator: DefaultEnumerator,
		indenter:   DefaultIndenter,
	}
}

// entry is one enumerated line of a level together with the containers that
// hang off it.
type entry struct {
	node     Node
	attached []Node
}

func isContainer(n Node) bool {
	t, ok := n.(*Tree)
	return ok && t.value == ""
}

// visibleEntries splits one level of children into the entries that get an
// enumerator and the containers that hang off them. Hidden nodes are
// dropped. A container attaches to the entry before it; containers that come
// before any entry are returned as leading.
func visibleEntries(children Children) (leading []Node, entries []entry, view NodeChildren) {
	if children == nil {
		return nil, nil, nil
	}
	for i := 0; i < children.Length(); i++ {
		child := children.At(i)
		if child == nil || child.Hidden() {
			continue
		}
		if isContainer(child) {
			if len(entries) == 0 {
				leading = append(leading, child)
				continue
			}
			last := &entries[len(entries)-1]
			last.attached = append(last.attached, child)
			continue
		}
		entries = append(entries, entry{node: child})
	}

	view = make(NodeChildren, len(entries))
	for i, e := range entries {
		view[i] = e.node
	}
	return leading, entries, view
}

// render renders a tree node and its children. Every line of nested output is
// prefixed with prefix.
func (r *renderer) render(node Node, root bool, prefix string) string {
	if node.Hidden() {
		return ""
	}

	var strs []string
	if root && node.Value() != "" {
		strs = append(strs, r.style.root.Render(node.Value()))
	}

	leading, entries, view := visibleEntries(node.Children())

	// Leading containers nest under the first entry's indent, or under their
	// own last-sibling indent when the level has no entries.
	for _, c := range leading {
		indentFor := view
		if len(view) == 0 {
			indentFor = NodeChildren{c}
		}
		indent := r.style.indenterFunc(indentFor, 0).Render(r.indenter(indentFor, 0))
		if s := r.child(c).render(c, false, prefix+indent); s != "" {
			strs = append(strs, s)
		}
	}

	// Enumerators of different widths are right-aligned.
	prefixes := make([]string, len(entries))
	var maxLen int
	for i := range entries {
		prefixes[i] = r.style.enumeratorFunc(view, i).Render(r.enumerator(view, i))
		maxLen = max(maxLen, ansi.Width(prefixes[i]))
	}

	for i, e := range entries {
		enum := prefixes[i]
		if w := ansi.Width(enum); w < maxLen {
			enum = strings.Repeat(" ", maxLen-w) + enum
		}
		indent := r.style.indenterFunc(view, i).Render(r.indenter(view, i))

		item := r.style.itemFunc(view, i).Render(e.node.Value())
		for j, line := range strings.Split(item, "\n") {
			if j == 0 {
				strs = append(strs, prefix+enum+line)
				continue
			}
			cont := indent
			if w := ansi.Width(cont); w < maxLen {
				cont += strings.Repeat(" ", maxLen-w)
			}
			strs = append(strs, prefix+cont+line)
		}

		nested := prefix + indent
		if e.node.Children().Length() > 0 {
			if s := r.child(e.node).render(e.node, false, nested); s != "" {
				strs = append(strs, s)
			}
		}
		for _, c := range e.attached {
			if s := r.child(c).render(c, false, nested); s != "" {
				strs = append(strs, s)
			}
		}
	}

	return strings.Join(strs, "\n")
}

// child returns the renderer for a nested node. Subtrees that were never
// styled inherit the parent's renderer.
func (r *renderer) child(n Node) *renderer {
	if t, ok := n.(*Tree); ok && t.r != nil {
		return t.r
	}
	return r
}
