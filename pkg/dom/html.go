package dom

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse builds a document from HTML markup. The first <form> becomes the
// form root; without one, the body content is wrapped in a new form.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrParseHTML, err)
	}

	src := findNode(root, func(n *html.Node) bool { return n.DataAtom == atom.Form })
	if src == nil {
		src = findNode(root, func(n *html.Node) bool { return n.DataAtom == atom.Body })
	}
	if src == nil {
		return nil, ErrNoForm
	}

	d := &Document{}
	if src.DataAtom == atom.Form {
		d.form = d.convert(src)
	} else {
		d.form = d.newElement("form", nil)
		d.appendConverted(d.form, src)
	}
	return d, nil
}

// ParseString is Parse for a string.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func (d *Document) convert(n *html.Node) *Element {
	attrs := make([]Attr, 0, len(n.Attr))
	for _, a := range n.Attr {
		attrs = append(attrs, Attr{Key: a.Key, Val: a.Val})
	}
	e := d.newElement(n.Data, attrs)
	d.appendConverted(e, n)
	return e
}

// appendConverted copies the children of n under e. The tree is not shared
// yet, so no locking or mutation records are involved.
func (d *Document) appendConverted(e *Element, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		var child *Element
		switch c.Type {
		case html.ElementNode:
			child = d.convert(c)
		case html.TextNode:
			child = d.CreateText(c.Data)
		default:
			continue
		}
		child.parent = e
		e.children = append(e.children, child)
	}
}

// Render writes the form root and its subtree as HTML. Live control state is
// written back into value, checked and selected attributes.
func (d *Document) Render(w io.Writer) error {
	return d.form.Render(w)
}

// Render writes e and its subtree as HTML.
func (e *Element) Render(w io.Writer) error {
	e.doc.mu.RLock()
	n, err := e.toNodeLocked()
	e.doc.mu.RUnlock()
	if err != nil {
		return err
	}
	return html.Render(w, n)
}

// OuterHTML returns the rendered markup of e.
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	if err := e.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (e *Element) toNodeLocked() (*html.Node, error) {
	if e.IsText() {
		return &html.Node{Type: html.TextNode, Data: e.text}, nil
	}

	n := &html.Node{Type: html.ElementNode, Data: e.tag, DataAtom: atom.Lookup([]byte(e.tag))}
	for _, a := range e.liveAttrsLocked() {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}

	if e.tag == "textarea" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: e.valueLocked()})
		return n, nil
	}

	var selected *Element
	if e.tag == "select" && !e.hasAttr("multiple") {
		selected = e.selectedOptionLocked()
	}
	for _, c := range e.children {
		cn, err := c.toNodeLocked()
		if err != nil {
			return nil, err
		}
		if selected != nil {
			markSelected(cn, selected, c)
		}
		n.AppendChild(cn)
	}

	if e.inner != "" {
		nodes, err := html.ParseFragment(strings.NewReader(e.inner), &html.Node{
			Type:     html.ElementNode,
			Data:     e.tag,
			DataAtom: n.DataAtom,
		})
		if err != nil {
			return nil, errors.Join(ErrParseHTML, err)
		}
		for _, in := range nodes {
			n.AppendChild(in)
		}
	}
	return n, nil
}

// liveAttrsLocked returns the attributes with live control state applied.
func (e *Element) liveAttrsLocked() []Attr {
	attrs := make([]Attr, 0, len(e.attrs)+1)
	for _, a := range e.attrs {
		if a.Key == "checked" || a.Key == "selected" || (a.Key == "value" && e.dirty) {
			continue
		}
		attrs = append(attrs, a)
	}

	switch {
	case e.tag == "option":
		if e.selected {
			attrs = append(attrs, Attr{Key: "selected"})
		}
	case e.kindLocked().IsCheckable():
		if e.checked {
			attrs = append(attrs, Attr{Key: "checked"})
		}
	case e.tag == "input" && e.dirty:
		attrs = append(attrs, Attr{Key: "value", Val: e.value})
	}
	return attrs
}

// markSelected fixes the rendered selected attributes of a single select so
// that exactly its effective option is marked.
func markSelected(n *html.Node, selected, src *Element) {
	if src.tag == "option" {
		n.Attr = removeHTMLAttr(n.Attr, "selected")
		if src == selected {
			n.Attr = append(n.Attr, html.Attribute{Key: "selected"})
		}
		return
	}
	for i, c := 0, n.FirstChild; c != nil && i < len(src.children); i, c = i+1, c.NextSibling {
		markSelected(c, selected, src.children[i])
	}
}

func removeHTMLAttr(attrs []html.Attribute, key string) []html.Attribute {
	out := attrs[:0]
	for _, a := range attrs {
		if a.Key != key {
			out = append(out, a)
		}
	}
	return out
}
