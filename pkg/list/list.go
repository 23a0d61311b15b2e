// Package list renders enumerated lists. A list is a tree without a root
// whose branches are drawn with bullets, numerals or letters.
//
//	l := list.New("Foo", "Bar", list.New("Baz", "Qux"))
//	fmt.Println(l)
//
//	• Foo
//	• Bar
//	  • Baz
//	  • Qux
//
// Lists nest inside lists and inside trees.
package list

import (
	"github.com/dkoosis/gloss/pkg/style"
	"github.com/dkoosis/gloss/pkg/tree"
)

// List represents a list of items that can be displayed. Lists can contain
// lists as items, they will be rendered as nested (sub)lists.
//
// In fact, lists can contain anything as items, like tables or trees.
type List struct{ tree *tree.Tree }

// Items represents the list items.
type Items tree.Children

// StyleFunc is the style function that determines the style of an item.
//
// It takes the list items and index of the list and determines the style
// to use for that index.
//
//	l := list.New().
//		ItemStyleFunc(func(items list.Items, i int) style.Style {
//			if i == selected {
//				return highlightStyle
//			}
//			return itemStyle
//		})
type StyleFunc func(items Items, index int) style.Style

// New returns a new list with the given items.
//
//	alphabet := list.New(
//		"A",
//		"B",
//		"C",
//		"D",
//		"E",
//		"F",
//		...
//	)
//
// Items can be other lists, trees or anything that prints as a string.
func New(items ...any) *List {
	l := &List{tree: tree.New()}
	return l.Items(items...).
		Enumerator(Bullet).
		Indenter(func(Items, int) string { return "  " })
}

// Hidden returns whether this list is hidden.
func (l *List) Hidden() bool {
	return l.tree.Hidden()
}

// Hide hides this list.
// If this list is hidden, it will not be shown when rendered.
func (l *List) Hide(hide bool) *List {
	l.tree.Hide(hide)
	return l
}

// Offset sets the start and end offset for the list. An end of zero or less
// means through the last item.
func (l *List) Offset(start, end int) *List {
	l.tree.Offset(start, end)
	return l
}

// Value returns the value of this node.
func (l *List) Value() string {
	return l.tree.Value()
}

func (l *List) String() string {
	return l.tree.String()
}

// EnumeratorStyle sets the enumerator style for all enumerators.
//
// To set the enumerator style conditionally based on the item value or index,
// use EnumeratorStyleFunc.
func (l *List) EnumeratorStyle(s style.Style) *List {
	l.tree.EnumeratorStyle(s)
	return l
}

// EnumeratorStyleFunc sets the enumerator style function for the list items.
//
// Use this to conditionally set different styles based on the current items,
// sibling items, or index values (i.e. even or odd).
//
// Example:
//
//	l := list.New().
//		EnumeratorStyleFunc(func(_ list.Items, i int) style.Style {
//			if i == selectedIndex {
//				return selectedEnumStyle
//			}
//			return enumStyle
//		})
func (l *List) EnumeratorStyleFunc(f StyleFunc) *List {
	l.tree.EnumeratorStyleFunc(styleFunc(f))
	return l
}

// IndenterStyle sets the style for the indentation of nested items.
func (l *List) IndenterStyle(s style.Style) *List {
	l.tree.IndenterStyle(s)
	return l
}

// IndenterStyleFunc sets the indenter style function for the list items.
func (l *List) IndenterStyleFunc(f StyleFunc) *List {
	l.tree.IndenterStyleFunc(styleFunc(f))
	return l
}

// Indenter sets the indenter implementation. The indenter's output is placed
// in front of every line of a nested list.
func (l *List) Indenter(indenter Indenter) *List {
	l.tree.Indenter(func(children tree.Children, index int) string {
		return indenter(children, index)
	})
	return l
}

// ItemStyle sets the item style for all items.
//
// To set the item style conditionally based on the item value or index,
// use ItemStyleFunc.
func (l *List) ItemStyle(s style.Style) *List {
	l.tree.ItemStyle(s)
	return l
}

// ItemStyleFunc sets the item style function for the list items.
//
// Use this to conditionally set different styles based on the current items,
// sibling items, or index values.
//
// Example:
//
//	l := list.New().
//		ItemStyleFunc(func(_ list.Items, i int) style.Style {
//			if i == selectedIndex {
//				return selectedStyle
//			}
//			return itemStyle
//		})
func (l *List) ItemStyleFunc(f StyleFunc) *List {
	l.tree.ItemStyleFunc(styleFunc(f))
	return l
}

// Item appends an item to the list.
//
//	l := list.New().
//		Item("Foo").
//		Item("Bar").
//		Item("Baz")
func (l *List) Item(item any) *List {
	switch item := item.(type) {
	case *List:
		l.tree.Child(item.tree)
	default:
		l.tree.Child(item)
	}
	return l
}

// Items appends multiple items to the list.
//
//	l := list.New().
//		Items("Foo", "Bar", "Baz"),
func (l *List) Items(items ...any) *List {
	for _, item := range items {
		l.Item(item)
	}
	return l
}

// Enumerator sets the list enumerator.
//
// There are several predefined enumerators:
//   - Alphabet
//   - Arabic
//   - Bullet
//   - Dash
//   - Roman
//   - Asterisk
//
// Or, define your own.
//
//	func enumerator(items list.Items, index int) string {
//		if index == 5 {
//			return "*"
//		}
//		return "•"
//	}
//
//	l := list.New().
//		Items("Foo", "Bar", "Baz", "Qux", "Quux").
//		Enumerator(enumerator)
func (l *List) Enumerator(enumerator Enumerator) *List {
	l.tree.Enumerator(func(c tree.Children, i int) string { return enumerator(c, i) })
	return l
}

// Tree returns the underlying tree, so a list can be a child of a tree.
func (l *List) Tree() *tree.Tree {
	return l.tree
}

func styleFunc(f StyleFunc) tree.StyleFunc {
	if f == nil {
		return nil
	}
	return func(children tree.Children, index int) style.Style {
		return f(children, index)
	}
}
