package doctree

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is returned for heading levels outside 1..6.
var ErrInvalidLevel = errors.New("invalid heading level")

// Build inserts headings under root in document order and returns the last
// inserted node (root if headings is empty).
//
// A heading deeper than the current one becomes its child, a heading at the
// same level becomes its sibling, and a shallower heading is attached to the
// nearest ancestor whose level is strictly lower. The synthetic root has
// level 0, so every ascent terminates there at the latest.
//
// Levels are not validated; see ValidateHeadings.
func Build(t *Tree, root NodeID, headings []Heading) NodeID {
	current := root
	currentLevel := t.nodes[root].Level

	for _, h := range headings {
		var parent NodeID
		switch {
		case h.Level > currentLevel:
			parent = current
		case h.Level == currentLevel:
			parent = t.nodes[current].Parent
		default:
			parent = t.nodes[current].Parent
			for parent != root && t.nodes[parent].Level >= h.Level {
				parent = t.nodes[parent].Parent
			}
		}
		current = t.addChild(parent, h)
		currentLevel = h.Level
	}
	return current
}

// FindRoot follows parent handles from id up to the synthetic root.
func FindRoot(t *Tree, id NodeID) NodeID {
	for t.valid(id) {
		n := t.nodes[id]
		if n.Label == RootLabel && n.Parent == NoNode {
			return id
		}
		id = n.Parent
	}
	return NoNode
}

// ExpandAll marks id and all of its descendants as expanded.
func ExpandAll(t *Tree, id NodeID) {
	if !t.valid(id) {
		return
	}
	stack := []NodeID{id}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		t.nodes[n].Expanded = true
		stack = append(stack, t.nodes[n].Children...)
	}
}

// ValidateHeadings checks that every heading has a level in 1..6.
func ValidateHeadings(headings []Heading) error {
	for i, h := range headings {
		if h.Level < 1 || h.Level > 6 {
			return fmt.Errorf("heading %d (%q): level %d: %w", i, h.ID, h.Level, ErrInvalidLevel)
		}
	}
	return nil
}

// BuildOutline validates headings and returns a fresh, fully expanded tree.
func BuildOutline(headings []Heading) (*Tree, error) {
	if err := ValidateHeadings(headings); err != nil {
		return nil, err
	}
	t := NewTree()
	last := Build(t, Root, headings)
	root := FindRoot(t, last)
	if root == NoNode {
		return nil, fmt.Errorf("outline root unreachable from node %d", last)
	}
	ExpandAll(t, root)
	return t, nil
}
