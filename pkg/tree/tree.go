// Package tree renders hierarchical data as an indented tree with branch
// glyphs.
//
// A tree is built from Nodes. Leaves hold a single value; a Tree holds a root
// value and children. A Tree with an empty root value is a container: its
// children are drawn under the preceding sibling instead of under an entry of
// their own, and the container takes no enumerator slot.
//
//	t := tree.Root(".").
//		Child(
//			"Foo",
//			tree.Root("Bar").Child("Qux", "Quuux"),
//			"Baz",
//		)
//	fmt.Println(t)
package tree

import (
	"fmt"

	"github.com/dkoosis/gloss/pkg/style"
)

// Node defines a node in a tree.
type Node interface {
	fmt.Stringer
	Value() string
	Children() Children
	Hidden() bool
	SetHidden(bool)
	SetValue(any)
}

// Leaf is a node without children.
type Leaf struct {
	value  string
	hidden bool
}

// NewLeaf returns a new Leaf.
func NewLeaf(value any, hidden bool) *Leaf {
	s := Leaf{}
	s.SetValue(value)
	s.SetHidden(hidden)
	return &s
}

// Children of a Leaf node are always empty.
func (Leaf) Children() Children {
	return NodeChildren(nil)
}

// Value returns the value of a Leaf node.
func (s Leaf) Value() string {
	return s.value
}

// SetValue sets the value of a Leaf node.
func (s *Leaf) SetValue(value any) {
	switch item := value.(type) {
	case Node, fmt.Stringer:
		s.value = item.(fmt.Stringer).String()
	case string, nil:
		s.value = fmt.Sprint(item)
	default:
		s.value = fmt.Sprintf("%v", item)
	}
}

// Hidden returns whether a Leaf node is hidden.
func (s Leaf) Hidden() bool {
	return s.hidden
}

// SetHidden hides a Leaf node.
func (s *Leaf) SetHidden(hidden bool) { s.hidden = hidden }

// String returns the string representation of a Leaf node.
func (s Leaf) String() string {
	return s.Value()
}

// Tree implements a Node.
type Tree struct {
	value    string
	hidden   bool
	offset   [2]int
	children NodeChildren

	r *renderer
}

// Hidden returns whether a Tree node is hidden.
func (t *Tree) Hidden() bool {
	return t.hidden
}

// Hide sets whether to hide the tree node.
func (t *Tree) Hide(hide bool) *Tree {
	t.hidden = hide
	return t
}

// SetHidden hides a Tree node.
func (t *Tree) SetHidden(hidden bool) { t.Hide(hidden) }

// Offset restricts the rendered children to the window [start, end). An end
// of zero or less means through the last child.
func (t *Tree) Offset(start, end int) *Tree {
	t.offset = [2]int{max(start, 0), max(end, 0)}
	return t
}

// Value returns the root name of this node.
func (t *Tree) Value() string {
	return t.value
}

// SetValue sets the value of a Tree node.
func (t *Tree) SetValue(value any) {
	t.Root(value)
}

// String returns the string representation of the tree node.
func (t *Tree) String() string {
	return t.ensureRenderer().render(t, true, "")
}

// Children returns the children of a node, limited to the offset window.
func (t *Tree) Children() Children {
	start, end := t.offset[0], t.offset[1]
	if end <= 0 || end > len(t.children) {
		end = len(t.children)
	}
	if start >= end {
		return NodeChildren(nil)
	}
	return t.children[start:end:end]
}

// Root sets the root value of this tree.
func (t *Tree) Root(root any) *Tree {
	switch item := root.(type) {
	case nil:
		t.value = ""
	case *Tree:
		t.value = item.value
		t.children = append(t.children, item.children...)
	case Node, fmt.Stringer:
		t.value = item.(fmt.Stringer).String()
	default:
		t.value = fmt.Sprintf("%v", item)
	}
	return t
}

// Child adds a child to this tree.
//
// If a Child Tree is passed without a root, it will be rendered under the
// previous sibling rather than as an item of its own.
//
//	t := tree.New().
//		Child(
//			"Foo",
//			tree.Root("Bar").
//				Child(
//					"Qux",
//					tree.Root("Quux").
//						Child("Foo", "Bar"),
//					"Quuux",
//				),
//			"Baz",
//		)
func (t *Tree) Child(children ...any) *Tree {
	for _, child := range children {
		switch item := child.(type) {
		case nil:
		case *Tree:
			t.children = t.children.Append(item)
		case interface{ Tree() *Tree }:
			t.children = t.children.Append(item.Tree())
		case Node:
			t.children = t.children.Append(item)
		case Children:
			for i := 0; i < item.Length(); i++ {
				t.children = t.children.Append(item.At(i))
			}
		case []any:
			t.Child(item...)
		case []string:
			for _, s := range item {
				t.children = t.children.Append(NewLeaf(s, false))
			}
		default:
			t.children = t.children.Append(NewLeaf(item, false))
		}
	}
	return t
}

// EnumeratorStyle sets a static style for all enumerators.
//
// Use EnumeratorStyleFunc to conditionally set styles based on the tree node.
func (t *Tree) EnumeratorStyle(s style.Style) *Tree {
	t.ensureRenderer().style.enumeratorFunc = func(Children, int) style.Style {
		return s
	}
	return t
}

// EnumeratorStyleFunc sets the enumeration style function. Use this function
// for conditional styling.
//
//	t := tree.New().
//		EnumeratorStyleFunc(func(_ tree.Children, i int) style.Style {
//		    if selected == i {
//		        return selectedStyle
//		    }
//		    return unselectedStyle
//		})
func (t *Tree) EnumeratorStyleFunc(fn StyleFunc) *Tree {
	if fn == nil {
		fn = func(Children, int) style.Style { return style.NewStyle() }
	}
	t.ensureRenderer().style.enumeratorFunc = fn
	return t
}

// IndenterStyle sets a static style for all indenters.
func (t *Tree) IndenterStyle(s style.Style) *Tree {
	t.ensureRenderer().style.indenterFunc = func(Children, int) style.Style {
		return s
	}
	return t
}

// IndenterStyleFunc sets the indenter style function.
func (t *Tree) IndenterStyleFunc(fn StyleFunc) *Tree {
	if fn == nil {
		fn = func(Children, int) style.Style { return style.NewStyle() }
	}
	t.ensureRenderer().style.indenterFunc = fn
	return t
}

// RootStyle sets a style for the root element.
func (t *Tree) RootStyle(s style.Style) *Tree {
	t.ensureRenderer().style.root = s
	return t
}

// ItemStyle sets a static style for all items.
//
// Use ItemStyleFunc to conditionally set styles based on the tree node.
func (t *Tree) ItemStyle(s style.Style) *Tree {
	t.ensureRenderer().style.itemFunc = func(Children, int) style.Style { return s }
	return t
}

// ItemStyleFunc sets the item style function. Use this for conditional
// styling. For example:
//
//	t := tree.New().
//		ItemStyleFunc(func(_ tree.Children, i int) style.Style {
//			if selected == i {
//				return selectedStyle
//			}
//			return unselectedStyle
//		})
func (t *Tree) ItemStyleFunc(fn StyleFunc) *Tree {
	if fn == nil {
		fn = func(Children, int) style.Style { return style.NewStyle() }
	}
	t.ensureRenderer().style.itemFunc = fn
	return t
}

// Enumerator sets the enumerator implementation, which draws the branch
// indicators. DefaultEnumerator and RoundedEnumerator are provided:
//
//	tree.New().
//		Enumerator(tree.RoundedEnumerator)
func (t *Tree) Enumerator(enum Enumerator) *Tree {
	t.ensureRenderer().enumerator = enum
	return t
}

// Indenter sets the indenter implementation. This is used to change the way
// the tree is indented. The default indentor places a border connecting
// sibling elements and no border for the last child.
//
//	└── Foo
//	    └── Bar
//	        └── Baz
//	            └── Qux
//	                └── Quux
//
// You can define your own indenter.
//
//	func ArrowIndenter(children tree.Children, index int) string {
//		return "→ "
//	}
//
//	→ Foo
//	→ → Bar
//	→ → → Baz
//	→ → → → Qux
//	→ → → → → Quux
func (t *Tree) Indenter(indenter Indenter) *Tree {
	t.ensureRenderer().indenter = indenter
	return t
}

func (t *Tree) ensureRenderer() *renderer {
	if t.r == nil {
		t.r = newRenderer()
	}
	return t.r
}

// Root returns a new tree with the root set.
//
//	tree.Root(root)
//
// It is a shorthand for:
//
//	tree.New().Root(root)
func Root(root any) *Tree {
	t := New()
	return t.Root(root)
}

// New returns a new tree.
func New() *Tree {
	return &Tree{}
}
