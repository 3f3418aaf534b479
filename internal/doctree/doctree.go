package doctree

// RootLabel is the label of the synthetic root node.
const RootLabel = "<root>"

// NodeID is a handle to a node inside a Tree.
type NodeID int

const (
	// Root is the handle of the synthetic root in every Tree.
	Root NodeID = 0
	// NoNode marks the absence of a node (the root's parent).
	NoNode NodeID = -1
)

// Heading is one heading found in rendered HTML, in document order.
type Heading struct {
	Level int    `json:"level"` // 1..6
	Text  string `json:"text"`  // Tag-stripped display text
	ID    string `json:"id"`    // Anchor id, e.g. "heading3"
}

// Node is a single outline entry.
type Node struct {
	Label    string
	AnchorID string // Empty only for the synthetic root
	Level    int    // 0 for the synthetic root
	Parent   NodeID
	Children []NodeID
	Expanded bool
}

// Tree is an outline stored as an arena of nodes. Nodes reference their
// parent and children by handle, so there are no pointer cycles.
type Tree struct {
	nodes []Node
}

// NewTree returns a tree containing only the synthetic root.
func NewTree() *Tree {
	return &Tree{
		nodes: []Node{{Label: RootLabel, Parent: NoNode}},
	}
}

// Len returns the number of nodes, root included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns a copy of the node with the given handle.
func (t *Tree) Node(id NodeID) (Node, bool) {
	if !t.valid(id) {
		return Node{}, false
	}
	return t.nodes[id], true
}

// Parent returns the parent handle of id, or NoNode.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.valid(id) {
		return NoNode
	}
	return t.nodes[id].Parent
}

// Children returns the ordered child handles of id.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.valid(id) {
		return nil
	}
	return append([]NodeID(nil), t.nodes[id].Children...)
}

// Walk visits nodes in pre-order starting at the root. Returning false from
// fn skips the node's subtree.
func (t *Tree) Walk(fn func(id NodeID, depth int) bool) {
	var walk func(id NodeID, depth int)
	walk = func(id NodeID, depth int) {
		if !fn(id, depth) {
			return
		}
		for _, c := range t.nodes[id].Children {
			walk(c, depth+1)
		}
	}
	walk(Root, 0)
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// addChild appends a new node under parent and returns its handle.
func (t *Tree) addChild(parent NodeID, h Heading) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Label:    h.Text,
		AnchorID: h.ID,
		Level:    h.Level,
		Parent:   parent,
	})
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	return id
}
