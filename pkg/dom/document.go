package dom

import (
	"strings"
	"sync"
)

// Document owns a form root and the lock shared by all of its elements.
type Document struct {
	mu        sync.RWMutex
	form      *Element
	observers []*MutationObserver
}

// New creates a document with an empty <form> root.
func New() *Document {
	d := &Document{}
	d.form = d.newElement("form", nil)
	return d
}

// Form returns the form root.
func (d *Document) Form() *Element {
	return d.form
}

// Attr is a single element attribute.
type Attr struct {
	Key string
	Val string
}

// A is shorthand for building an Attr.
func A(key, val string) Attr {
	return Attr{Key: key, Val: val}
}

// CreateElement creates a detached element owned by d. Live control state is
// seeded from the value, checked and selected attributes.
func (d *Document) CreateElement(tag string, attrs ...Attr) *Element {
	return d.newElement(tag, attrs)
}

// CreateText creates a detached text node.
func (d *Document) CreateText(text string) *Element {
	return &Element{doc: d, tag: textTag, text: text}
}

func (d *Document) newElement(tag string, attrs []Attr) *Element {
	e := &Element{doc: d, tag: strings.ToLower(tag)}
	for _, a := range attrs {
		e.setAttr(strings.ToLower(a.Key), a.Val)
	}
	e.checked = e.hasAttr("checked")
	e.selected = e.hasAttr("selected")
	return e
}

// Query returns every element under the form root, in document order, for
// which match reports true.
func (d *Document) Query(match func(*Element) bool) []*Element {
	return d.form.Query(match)
}

// Observe starts observing child-list mutations in the subtree rooted at
// target. callback receives batches of records on a separate goroutine.
func (d *Document) Observe(target *Element, callback MutationCallback) *MutationObserver {
	o := &MutationObserver{doc: d, target: target, callback: callback}

	d.mu.Lock()
	d.observers = append(d.observers, o)
	d.mu.Unlock()

	return o
}

func (d *Document) forget(o *MutationObserver) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, cur := range d.observers {
		if cur == o {
			d.observers = append(d.observers[:i], d.observers[i+1:]...)
			return
		}
	}
}

// pendingRecord pairs a record with the observers interested in it.
type pendingRecord struct {
	record    MutationRecord
	observers []*MutationObserver
}

// Must be called with d.mu held.
func (d *Document) recordLocked(rec MutationRecord) pendingRecord {
	var interested []*MutationObserver
	for _, o := range d.observers {
		if o.target.containsLocked(rec.Target) {
			interested = append(interested, o)
		}
	}
	return pendingRecord{record: rec, observers: interested}
}

// dispatch hands records to observers. Must be called without d.mu held.
func dispatch(pending ...pendingRecord) {
	for _, p := range pending {
		for _, o := range p.observers {
			o.enqueue(p.record)
		}
	}
}
