package list

import (
	"strings"
	"testing"

	"github.com/dkoosis/gloss/pkg/style"
	"github.com/dkoosis/gloss/pkg/tree"
	"github.com/stretchr/testify/assert"
)

func TestList_Rendering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		list *List
		want string
	}{
		{
			name: "default bullets",
			list: New("Foo", "Bar", "Baz"),
			want: "• Foo\n• Bar\n• Baz",
		},
		{
			name: "hidden item is not enumerated",
			list: New("first", tree.NewLeaf("x", true), "second").Enumerator(Alphabet),
			want: "A. first\nB. second",
		},
		{
			name: "arabic",
			list: New("a", "b").Enumerator(Arabic),
			want: "1. a\n2. b",
		},
		{
			name: "roman numerals are right aligned",
			list: New("a", "b", "c").Enumerator(Roman),
			want: "  I. a\n II. b\nIII. c",
		},
		{
			name: "dash",
			list: New("a").Enumerator(Dash),
			want: "- a",
		},
		{
			name: "asterisk",
			list: New().Item("a").Item("b").Enumerator(Asterisk),
			want: "* a\n* b",
		},
		{
			name: "nested list",
			list: New("A", "B", New("c", "d"), "E"),
			want: "• A\n• B\n  • c\n  • d\n• E",
		},
		{
			name: "nested list keeps its enumerator",
			list: New("A", New("x", "y").Enumerator(Arabic)),
			want: "• A\n  1. x\n  2. y",
		},
		{
			name: "leading nested list does not take a number",
			list: New(New("x", "y"), "a").Enumerator(Arabic),
			want: "  • x\n  • y\n1. a",
		},
		{
			name: "multi line item",
			list: New("one\ntwo", "three"),
			want: "• one\n  two\n• three",
		},
		{
			name: "offset",
			list: New("a", "b", "c").Offset(1, 0),
			want: "• b\n• c",
		},
		{
			name: "hidden list",
			list: New("a").Hide(true),
			want: "",
		},
		{
			name: "item style func",
			list: New("a", "b").ItemStyleFunc(func(_ Items, i int) style.Style {
				if i == 0 {
					return style.NewStyle().Transform(strings.ToUpper)
				}
				return style.NewStyle()
			}),
			want: "• A\n• b",
		},
		{
			name: "enumerator style",
			list: New("a").EnumeratorStyle(style.NewStyle().PaddingRight(2)),
			want: "•  a",
		},
		{
			name: "custom indenter",
			list: New("a", New("b")).Indenter(func(Items, int) string { return "····" }),
			want: "• a\n····• b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.list.String())
		})
	}
}

func TestList_InsideTree(t *testing.T) {
	t.Parallel()

	tr := tree.Root(".").Child("Foo", New("a", "b"), "Bar")
	assert.Equal(t, ".\n├── Foo\n│   • a\n│   • b\n└── Bar", tr.String())
}

func TestAlphabet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		i    int
		want string
	}{
		{i: 0, want: "A."},
		{i: 25, want: "Z."},
		{i: 26, want: "AA."},
		{i: 27, want: "AB."},
		{i: 51, want: "AZ."},
		{i: 52, want: "BA."},
		{i: 701, want: "ZZ."},
		{i: 702, want: "AAA."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Alphabet(nil, tt.i), "index %d", tt.i)
	}
}

func TestRoman(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		0:    "I.",
		3:    "IV.",
		8:    "IX.",
		13:   "XIV.",
		39:   "XL.",
		48:   "XLIX.",
		1993: "MCMXCIV.",
	}
	for i, want := range tests {
		assert.Equal(t, want, Roman(nil, i), "index %d", i)
	}
}

func TestEnumerators_Fixed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "•", Bullet(nil, 3))
	assert.Equal(t, "-", Dash(nil, 3))
	assert.Equal(t, "*", Asterisk(nil, 3))
	assert.Equal(t, "10.", Arabic(nil, 9))
}

func TestList_Accessors(t *testing.T) {
	t.Parallel()

	l := New("a")
	assert.False(t, l.Hidden())
	assert.Empty(t, l.Value())
	assert.NotNil(t, l.Tree())
	assert.True(t, l.Hide(true).Hidden())
}
