package doctree

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headings(pairs ...any) []Heading {
	var out []Heading
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Heading{
			Level: pairs[i].(int),
			Text:  pairs[i+1].(string),
			ID:    fmt.Sprintf("heading%d", len(out)+1),
		})
	}
	return out
}

// labels returns the labels of id's children.
func labels(t *Tree, id NodeID) []string {
	var out []string
	for _, c := range t.Children(id) {
		n, _ := t.Node(c)
		out = append(out, n.Label)
	}
	return out
}

// child returns the i-th child of id.
func child(t *testing.T, tree *Tree, id NodeID, i int) NodeID {
	t.Helper()
	children := tree.Children(id)
	require.Greater(t, len(children), i, "node %d has %d children", id, len(children))
	return children[i]
}

func TestBuild_MonotonicDescent(t *testing.T) {
	tree := NewTree()
	Build(tree, Root, headings(1, "A", 2, "B", 3, "C"))

	assert.Equal(t, []string{"A"}, labels(tree, Root))
	a := child(t, tree, Root, 0)
	assert.Equal(t, []string{"B"}, labels(tree, a))
	b := child(t, tree, a, 0)
	assert.Equal(t, []string{"C"}, labels(tree, b))
	c := child(t, tree, b, 0)
	assert.Empty(t, tree.Children(c))
}

func TestBuild_Siblings(t *testing.T) {
	tree := NewTree()
	Build(tree, Root, headings(1, "A", 2, "B", 2, "C"))

	require.Equal(t, []string{"A"}, labels(tree, Root))
	a := child(t, tree, Root, 0)
	assert.Equal(t, []string{"B", "C"}, labels(tree, a))
}

func TestBuild_MultiLevelAscent(t *testing.T) {
	tree := NewTree()
	Build(tree, Root, headings(1, "A", 2, "B", 5, "C", 2, "D"))

	require.Equal(t, []string{"A"}, labels(tree, Root))
	a := child(t, tree, Root, 0)
	assert.Equal(t, []string{"B", "D"}, labels(tree, a))
	b := child(t, tree, a, 0)
	assert.Equal(t, []string{"C"}, labels(tree, b))
}

func TestBuild_AscentSkipsIntermediateLevels(t *testing.T) {
	// H2 -> H6 -> H3: H3 belongs under the H2, not under the H6.
	tree := NewTree()
	Build(tree, Root, headings(2, "A", 6, "B", 3, "C", 1, "D", 4, "E"))

	assert.Equal(t, []string{"A", "D"}, labels(tree, Root))
	a := child(t, tree, Root, 0)
	assert.Equal(t, []string{"B", "C"}, labels(tree, a))
	d := child(t, tree, Root, 1)
	assert.Equal(t, []string{"E"}, labels(tree, d))
}

func TestBuild_FirstHeadingBelowTopLevel(t *testing.T) {
	// A document starting with H3 followed by H2 attaches both to the root.
	tree := NewTree()
	Build(tree, Root, headings(3, "A", 2, "B", 3, "C"))

	assert.Equal(t, []string{"A", "B"}, labels(tree, Root))
	b := child(t, tree, Root, 1)
	assert.Equal(t, []string{"C"}, labels(tree, b))
}

func TestBuild_Empty(t *testing.T) {
	tree := NewTree()
	last := Build(tree, Root, nil)
	assert.Equal(t, Root, last)
	assert.Equal(t, 1, tree.Len())
}

func TestBuild_ParentIsClosestPrecedingLowerLevel(t *testing.T) {
	input := headings(
		1, "a", 3, "b", 2, "c", 4, "d", 6, "e", 5, "f", 2, "g",
		1, "h", 6, "i", 6, "j", 2, "k", 4, "l", 3, "m", 1, "n",
	)
	tree := NewTree()
	Build(tree, Root, input)
	require.Equal(t, len(input)+1, tree.Len())

	// Node handles are assigned in insertion order: input[i] is node i+1.
	for i, h := range input {
		want := Root
		for j := i - 1; j >= 0; j-- {
			if input[j].Level < h.Level {
				want = NodeID(j + 1)
				break
			}
		}
		assert.Equal(t, want, tree.Parent(NodeID(i+1)), "parent of %q", h.Text)
	}

	// Levels strictly increase from root to leaf.
	tree.Walk(func(id NodeID, _ int) bool {
		if id == Root {
			return true
		}
		n, _ := tree.Node(id)
		p, _ := tree.Node(n.Parent)
		assert.Less(t, p.Level, n.Level, "node %q under %q", n.Label, p.Label)
		return true
	})
}

func TestBuild_ChildListsAreConsistent(t *testing.T) {
	tree := NewTree()
	Build(tree, Root, headings(1, "a", 2, "b", 2, "c", 3, "d", 1, "e"))

	seen := map[NodeID]int{}
	tree.Walk(func(id NodeID, _ int) bool {
		for _, c := range tree.Children(id) {
			seen[c]++
			assert.Equal(t, id, tree.Parent(c))
		}
		return true
	})
	for id := NodeID(1); int(id) < tree.Len(); id++ {
		assert.Equal(t, 1, seen[id], "node %d should appear in exactly one child list", id)
	}
}

func TestFindRoot_FromEveryNode(t *testing.T) {
	tree := NewTree()
	Build(tree, Root, headings(2, "A", 5, "B", 1, "C", 3, "D", 3, "E", 6, "F"))

	for id := NodeID(0); int(id) < tree.Len(); id++ {
		assert.Equal(t, Root, FindRoot(tree, id), "node %d", id)
	}
	assert.Equal(t, NoNode, FindRoot(tree, NodeID(99)))
}

func TestFindRoot_HeadingNamedLikeRoot(t *testing.T) {
	tree := NewTree()
	last := Build(tree, Root, headings(1, RootLabel, 2, "child"))
	assert.Equal(t, Root, FindRoot(tree, last))
}

func TestExpandAll_CoversEveryNode(t *testing.T) {
	tree := NewTree()
	Build(tree, Root, headings(1, "A", 2, "B", 4, "C", 2, "D", 1, "E"))

	ExpandAll(tree, Root)
	tree.Walk(func(id NodeID, _ int) bool {
		n, _ := tree.Node(id)
		assert.True(t, n.Expanded, "node %q not expanded", n.Label)
		return true
	})
}

func TestExpandAll_Subtree(t *testing.T) {
	tree := NewTree()
	Build(tree, Root, headings(1, "A", 2, "B", 1, "C"))

	a := child(t, tree, Root, 0)
	ExpandAll(tree, a)

	root, _ := tree.Node(Root)
	assert.False(t, root.Expanded)
	b, _ := tree.Node(child(t, tree, a, 0))
	assert.True(t, b.Expanded)
	c, _ := tree.Node(child(t, tree, Root, 1))
	assert.False(t, c.Expanded)
}

func TestValidateHeadings(t *testing.T) {
	assert.NoError(t, ValidateHeadings(headings(1, "a", 6, "b")))
	assert.NoError(t, ValidateHeadings(nil))

	for _, level := range []int{0, 7, -1} {
		err := ValidateHeadings([]Heading{{Level: 1, ID: "heading1"}, {Level: level, ID: "heading2"}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidLevel), "level %d", level)
		assert.Contains(t, err.Error(), "heading2")
	}
}

func TestBuildOutline(t *testing.T) {
	tree, err := BuildOutline(headings(1, "Intro", 2, "Usage", 2, "Usage"))
	require.NoError(t, err)

	out := tree.Outline()
	assert.Equal(t, RootLabel, out.Label)
	assert.True(t, out.Expanded)
	require.Len(t, out.Children, 1)
	intro := out.Children[0]
	assert.Equal(t, "heading1", intro.AnchorID)
	require.Len(t, intro.Children, 2)
	assert.Equal(t, "heading2", intro.Children[0].AnchorID)
	assert.Equal(t, "heading3", intro.Children[1].AnchorID)
	assert.True(t, intro.Children[1].Expanded)
}

func TestBuildOutline_InvalidLevel(t *testing.T) {
	_, err := BuildOutline([]Heading{{Level: 9, Text: "x", ID: "heading1"}})
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestBuild_LongDocument(t *testing.T) {
	var input []Heading
	for i := 0; i < 50000; i++ {
		input = append(input, Heading{Level: i%6 + 1, Text: "h", ID: fmt.Sprintf("heading%d", i+1)})
	}
	tree, err := BuildOutline(input)
	require.NoError(t, err)
	assert.Equal(t, len(input)+1, tree.Len())
	// Every H1 starts a new top-level chain.
	assert.Len(t, tree.Children(Root), 50000/6+1)
}

func TestPrintTree(t *testing.T) {
	tree, err := BuildOutline(headings(1, "A", 2, "B", 1, "C"))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, PrintTree(tree, &sb))
	assert.Equal(t, "A  #heading1\n  B  #heading2\nC  #heading3\n", sb.String())
}
