package doctree

import (
	"fmt"
	"io"
	"strings"
)

// OutlineNode is a JSON-safe nested copy of a tree node.
type OutlineNode struct {
	Label    string        `json:"label"`
	AnchorID string        `json:"anchor_id,omitempty"`
	Level    int           `json:"level"`
	Expanded bool          `json:"expanded"`
	Children []OutlineNode `json:"children"`
}

// Outline returns a nested snapshot of the tree starting at the root.
func (t *Tree) Outline() OutlineNode {
	return t.outline(Root)
}

func (t *Tree) outline(id NodeID) OutlineNode {
	n := t.nodes[id]
	out := OutlineNode{
		Label:    n.Label,
		AnchorID: n.AnchorID,
		Level:    n.Level,
		Expanded: n.Expanded,
		Children: make([]OutlineNode, 0, len(n.Children)),
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, t.outline(c))
	}
	return out
}

// PrintTree writes an indented text view of the outline, one heading per line.
func PrintTree(t *Tree, w io.Writer) error {
	var err error
	t.Walk(func(id NodeID, depth int) bool {
		if err != nil {
			return false
		}
		if id == Root {
			return true
		}
		n := t.nodes[id]
		_, err = fmt.Fprintf(w, "%s%s  #%s\n", strings.Repeat("  ", depth-1), n.Label, n.AnchorID)
		return true
	})
	return err
}
