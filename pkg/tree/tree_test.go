package tree

import (
	"strings"
	"testing"

	"github.com/dkoosis/gloss/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_Golden(t *testing.T) {
	t.Parallel()

	tr := Root(".").
		Child(
			"Foo",
			Root("Bar").
				Child(
					"Qux",
					Root("Quux").
						Child("Foo", "Bar"),
					"Quuux",
				),
			"Baz",
		)

	want := `.
├── Foo
├── Bar
│   ├── Qux
│   ├── Quux
│   │   ├── Foo
│   │   └── Bar
│   └── Quuux
└── Baz`
	assert.Equal(t, want, tr.String())
}

func TestTree_Rendering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tree *Tree
		want string
	}{
		{
			name: "rounded",
			tree: Root(".").Child("a", "b").Enumerator(RoundedEnumerator),
			want: ".\n├── a\n╰── b",
		},
		{
			name: "no root line without a value",
			tree: New().Child("a", "b"),
			want: "├── a\n└── b",
		},
		{
			name: "hidden leaf is skipped and not counted",
			tree: Root(".").Child("a", NewLeaf("b", true), "c"),
			want: ".\n├── a\n└── c",
		},
		{
			name: "hidden subtree",
			tree: Root(".").Child("a", Root("b").Child("x").Hide(true)),
			want: ".\n└── a",
		},
		{
			name: "multi line item continues under the indenter",
			tree: Root(".").Child("Foo\nBar", "Baz"),
			want: ".\n├── Foo\n│   Bar\n└── Baz",
		},
		{
			name: "container attaches to previous sibling",
			tree: New().Child("Foo", New().Child("Bar", "Baz"), "Qux"),
			want: "├── Foo\n│   ├── Bar\n│   └── Baz\n└── Qux",
		},
		{
			name: "leading container nests under the first entry's indent",
			tree: New().Child(New().Child("a", "b"), "c"),
			want: "    ├── a\n    └── b\n└── c",
		},
		{
			name: "subtree keeps its own enumerator",
			tree: Root(".").Child(Root("sub").Child("x").Enumerator(RoundedEnumerator)),
			want: ".\n└── sub\n    ╰── x",
		},
		{
			name: "custom enumerator and indenter",
			tree: Root("x").
				Child("a", Root("b").Child("c")).
				Enumerator(func(Children, int) string { return "→" }).
				Indenter(func(Children, int) string { return "→ " }),
			want: "x\n→ a\n→ b\n→ → c",
		},
		{
			name: "enumerator style replaces the default padding",
			tree: Root(".").Child("a").EnumeratorStyle(style.NewStyle().PaddingRight(2)),
			want: ".\n└──  a",
		},
		{
			name: "item style func",
			tree: Root(".").Child("a", "b").ItemStyleFunc(func(_ Children, i int) style.Style {
				if i == 1 {
					return style.NewStyle().Transform(strings.ToUpper)
				}
				return style.NewStyle()
			}),
			want: ".\n├── a\n└── B",
		},
		{
			name: "root style",
			tree: Root("r").Child("a").RootStyle(style.NewStyle().Transform(strings.ToUpper)),
			want: "R\n└── a",
		},
		{
			name: "right aligned enumerators",
			tree: New().Child("a", "b", "c").Enumerator(func(_ Children, i int) string {
				return strings.Repeat("i", i+1) + "."
			}),
			want: "  i. a\n ii. b\niii. c",
		},
		{
			name: "values of any type",
			tree: New().Child(42, 1.5, true),
			want: "├── 42\n├── 1.5\n└── true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.tree.String())
		})
	}
}

func TestTree_Offset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{name: "window", start: 1, end: 3, want: ".\n├── b\n└── c"},
		{name: "open end", start: 2, end: 0, want: ".\n├── c\n└── d"},
		{name: "end past length", start: 3, end: 10, want: ".\n└── d"},
		{name: "empty window", start: 3, end: 1, want: "."},
		{name: "negative start", start: -2, end: 1, want: ".\n└── a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tr := Root(".").Child("a", "b", "c", "d").Offset(tt.start, tt.end)
			assert.Equal(t, tt.want, tr.String())
		})
	}
}

func TestTree_EnumeratedChildrenMatchVisibleEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tree *Tree
		want int
	}{
		{
			name: "container after a sibling",
			tree: Root(".").Child(
				"a",
				NewLeaf("hidden", true),
				New().Child("x", "y"),
				"b",
				Root("c").Child("z"),
			),
			want: 3,
		},
		{
			name: "leading container",
			tree: New().Child(New().Child("x", "y"), "a", "b"),
			want: 2,
		},
		{
			name: "only containers",
			tree: New().Child(New().Child("x"), New().Child("y")),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var topLevel int
			for _, l := range strings.Split(tt.tree.String(), "\n") {
				if strings.HasPrefix(l, "├──") || strings.HasPrefix(l, "└──") {
					topLevel++
				}
			}
			assert.Equal(t, tt.want, topLevel)
		})
	}

	lead := New().Child(New().Child("x", "y"), "a", "b")
	assert.Equal(t, "│   ├── x\n│   └── y\n├── a\n└── b", lead.String())
}

func TestTree_Filter(t *testing.T) {
	t.Parallel()

	data := NewFilter(NewStringData("a", "b", "c")).
		Filter(func(i int) bool { return i != 1 })

	require.Equal(t, 2, data.Length())
	assert.Equal(t, "c", data.At(1).Value())
	assert.Nil(t, data.At(2))

	tr := Root(".").Child(data)
	assert.Equal(t, ".\n├── a\n└── c", tr.String())

	assert.Equal(t, 0, NewFilter(nil).Length())
}

func TestNodeChildren(t *testing.T) {
	t.Parallel()

	c := NodeChildren{NewLeaf("a", false), NewLeaf("b", false), NewLeaf("c", false)}
	c = c.Remove(1)
	require.Equal(t, 2, c.Length())
	assert.Equal(t, "c", c.At(1).Value())
	assert.Nil(t, c.At(5))
	assert.Nil(t, c.At(-1))
	assert.Equal(t, 2, c.Remove(9).Length())

	c = c.Append(NewLeaf("d", false))
	assert.Equal(t, "d", c.At(2).String())
}

func TestNode_Setters(t *testing.T) {
	t.Parallel()

	leaf := NewLeaf(7, false)
	assert.Equal(t, "7", leaf.Value())
	leaf.SetValue("seven")
	leaf.SetHidden(true)
	assert.Equal(t, "seven", leaf.String())
	assert.True(t, leaf.Hidden())
	assert.Equal(t, 0, leaf.Children().Length())

	tr := New()
	tr.SetValue("root")
	tr.SetHidden(true)
	assert.Equal(t, "root", tr.Value())
	assert.True(t, tr.Hidden())
	assert.Empty(t, tr.String())
}
