package dom

import (
	"slices"
	"strings"
)

const textTag = "#text"

// Element is a node of the form tree: an HTML element or a text node.
type Element struct {
	doc      *Document
	tag      string
	attrs    []Attr
	parent   *Element
	children []*Element

	text  string
	inner string

	value    string
	dirty    bool
	checked  bool
	selected bool
	cleared  bool
}

// Document returns the owning document.
func (e *Element) Document() *Document {
	return e.doc
}

// Tag returns the lower-case tag name, or "#text" for text nodes.
func (e *Element) Tag() string {
	return e.tag
}

// IsText reports whether e is a text node.
func (e *Element) IsText() bool {
	return e.tag == textTag
}

// Kind returns the form-control kind of e.
func (e *Element) Kind() Kind {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.kindLocked()
}

func (e *Element) kindLocked() Kind {
	return kindOf(e.tag, e.typeLocked())
}

// Name returns the name attribute.
func (e *Element) Name() string {
	return e.GetAttr("name")
}

// Type returns the lower-case type attribute of an input, "text" when absent.
func (e *Element) Type() string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.typeLocked()
}

func (e *Element) typeLocked() string {
	if e.tag != "input" {
		v, _ := e.attr("type")
		return strings.ToLower(v)
	}
	v, ok := e.attr("type")
	if !ok || v == "" {
		return "text"
	}
	return strings.ToLower(v)
}

// Attr returns the attribute value and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.attr(strings.ToLower(key))
}

// GetAttr returns the attribute value or "" when absent.
func (e *Element) GetAttr(key string) string {
	v, _ := e.Attr(key)
	return v
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(key string) bool {
	_, ok := e.Attr(key)
	return ok
}

// SetAttr sets an attribute, keeping the original position when it exists.
func (e *Element) SetAttr(key, val string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.setAttr(strings.ToLower(key), val)
}

// RemoveAttr deletes an attribute.
func (e *Element) RemoveAttr(key string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.removeAttr(strings.ToLower(key))
}

// Attrs returns a copy of the attributes in source order.
func (e *Element) Attrs() []Attr {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return slices.Clone(e.attrs)
}

func (e *Element) attr(key string) (string, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (e *Element) hasAttr(key string) bool {
	_, ok := e.attr(key)
	return ok
}

func (e *Element) setAttr(key, val string) {
	for i, a := range e.attrs {
		if a.Key == key {
			e.attrs[i].Val = val
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Key: key, Val: val})
}

func (e *Element) removeAttr(key string) {
	e.attrs = slices.DeleteFunc(e.attrs, func(a Attr) bool { return a.Key == key })
}

// Classes returns the class list.
func (e *Element) Classes() []string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.classes()
}

// HasClass reports whether the class list contains name.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.Classes(), name)
}

// AddClass adds classes that are not present yet.
func (e *Element) AddClass(names ...string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	list := e.classes()
	for _, n := range names {
		if n != "" && !slices.Contains(list, n) {
			list = append(list, n)
		}
	}
	e.setAttr("class", strings.Join(list, " "))
}

// RemoveClass removes classes from the class list. The class attribute is
// kept even when it becomes empty.
func (e *Element) RemoveClass(names ...string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	if !e.hasAttr("class") {
		return
	}
	list := slices.DeleteFunc(e.classes(), func(c string) bool { return slices.Contains(names, c) })
	e.setAttr("class", strings.Join(list, " "))
}

func (e *Element) classes() []string {
	v, _ := e.attr("class")
	return strings.Fields(v)
}

// InnerHTML returns markup set with SetInnerHTML.
func (e *Element) InnerHTML() string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.inner
}

// SetInnerHTML replaces the element content with raw markup. Raw content is
// rendered after any child elements and is not part of the observed tree.
func (e *Element) SetInnerHTML(markup string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.inner = markup
}

// Text returns the concatenated text of e and its descendants.
func (e *Element) Text() string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.textLocked()
}

func (e *Element) textLocked() string {
	if e.IsText() {
		return e.text
	}
	var b strings.Builder
	for _, c := range e.children {
		b.WriteString(c.textLocked())
	}
	return b.String()
}

// Parent returns the parent element or nil.
func (e *Element) Parent() *Element {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.parent
}

// Children returns a copy of the child list, text nodes included.
func (e *Element) Children() []*Element {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return slices.Clone(e.children)
}

// Contains reports whether o is e or one of its descendants.
func (e *Element) Contains(o *Element) bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.containsLocked(o)
}

func (e *Element) containsLocked(o *Element) bool {
	for n := o; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// IsConnected reports whether e is attached to its document's form root.
func (e *Element) IsConnected() bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.doc.form.containsLocked(e)
}

// Query returns the descendants of e (e excluded), in document order, for
// which match reports true. Text nodes are never passed to match. match runs
// without the document lock, so it may call any Element method.
func (e *Element) Query(match func(*Element) bool) []*Element {
	var out []*Element
	for _, n := range e.Descendants() {
		if match(n) {
			out = append(out, n)
		}
	}
	return out
}

// Descendants returns every element below e in document order.
func (e *Element) Descendants() []*Element {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.descendantsLocked()
}

func (e *Element) descendantsLocked() []*Element {
	var out []*Element
	e.walkLocked(func(n *Element) {
		if n != e {
			out = append(out, n)
		}
	})
	return out
}

// Must be called with the document lock held.
func (e *Element) walkLocked(visit func(*Element)) {
	if e.IsText() {
		return
	}
	visit(e)
	for _, c := range e.children {
		c.walkLocked(visit)
	}
}

// ClosestAncestor walks up from e's parent and returns the first ancestor for
// which match reports true.
func (e *Element) ClosestAncestor(match func(*Element) bool) *Element {
	e.doc.mu.RLock()
	var chain []*Element
	for n := e.parent; n != nil; n = n.parent {
		chain = append(chain, n)
	}
	e.doc.mu.RUnlock()

	for _, n := range chain {
		if match(n) {
			return n
		}
	}
	return nil
}
