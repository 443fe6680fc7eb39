package dom

import "slices"

// MutationRecord describes one child-list change of Target.
type MutationRecord struct {
	Target  *Element
	Added   []*Element
	Removed []*Element
}

// AppendChild inserts child as the last child of e, detaching it from its
// current parent first.
func (e *Element) AppendChild(child *Element) error {
	return e.insertAt(child, nil, false)
}

// InsertBefore inserts child before ref. A nil ref appends.
func (e *Element) InsertBefore(child, ref *Element) error {
	return e.insertAt(child, ref, false)
}

// InsertAfter inserts node immediately after e in e's parent.
func (e *Element) InsertAfter(node *Element) error {
	e.doc.mu.RLock()
	parent := e.parent
	e.doc.mu.RUnlock()

	if parent == nil {
		return ErrDetached
	}
	return parent.insertAt(node, e, true)
}

// Remove detaches e from its parent. It is a no-op for detached elements.
func (e *Element) Remove() {
	e.doc.mu.Lock()
	parent := e.parent
	if parent == nil {
		e.doc.mu.Unlock()
		return
	}
	rec := e.doc.recordLocked(parent.detachLocked(e))
	e.doc.mu.Unlock()

	dispatch(rec)
}

func (e *Element) insertAt(child, ref *Element, after bool) error {
	if child.doc != e.doc {
		return ErrForeignNode
	}
	if e.IsText() {
		return ErrHierarchy
	}
	if child == ref {
		return nil
	}

	e.doc.mu.Lock()

	if child.containsLocked(e) {
		e.doc.mu.Unlock()
		return ErrHierarchy
	}
	if ref != nil && ref.parent != e {
		e.doc.mu.Unlock()
		return ErrNotChild
	}

	var pending []pendingRecord
	if child.parent != nil {
		pending = append(pending, e.doc.recordLocked(child.parent.detachLocked(child)))
	}

	idx := len(e.children)
	if ref != nil {
		idx = slices.Index(e.children, ref)
		if after {
			idx++
		}
	}
	e.children = slices.Insert(e.children, idx, child)
	child.parent = e

	pending = append(pending, e.doc.recordLocked(MutationRecord{Target: e, Added: []*Element{child}}))
	e.doc.mu.Unlock()

	dispatch(pending...)
	return nil
}

// Must be called with the document lock held.
func (e *Element) detachLocked(child *Element) MutationRecord {
	e.children = slices.DeleteFunc(e.children, func(c *Element) bool { return c == child })
	child.parent = nil
	return MutationRecord{Target: e, Removed: []*Element{child}}
}
