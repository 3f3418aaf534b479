package doctree

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderNav writes the outline as nested lists inside a <nav class="outline">
// element. The synthetic root is not rendered. Each entry links to its anchor
// and calls the page's ScrollTo helper.
func RenderNav(t *Tree, w io.Writer) error {
	nav := element(atom.Nav, html.Attribute{Key: "class", Val: "outline"})
	if ul := t.navList(Root); ul != nil {
		nav.AppendChild(ul)
	}
	if err := html.Render(w, nav); err != nil {
		return fmt.Errorf("render outline: %w", err)
	}
	return nil
}

func (t *Tree) navList(id NodeID) *html.Node {
	children := t.nodes[id].Children
	if len(children) == 0 {
		return nil
	}
	ul := element(atom.Ul)
	for _, c := range children {
		n := t.nodes[c]
		li := element(atom.Li)
		if !n.Expanded {
			li.Attr = append(li.Attr, html.Attribute{Key: "class", Val: "collapsed"})
		}
		a := element(atom.A,
			html.Attribute{Key: "href", Val: "#" + n.AnchorID},
			html.Attribute{Key: "onclick", Val: fmt.Sprintf("ScrollTo('%s');return false;", n.AnchorID)},
		)
		a.AppendChild(&html.Node{Type: html.TextNode, Data: n.Label})
		li.AppendChild(a)
		if sub := t.navList(c); sub != nil {
			li.AppendChild(sub)
		}
		ul.AppendChild(li)
	}
	return ul
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}
