package dom

import (
	"regexp"
	"strings"
)

// Value returns the live value of a control.
//
// Inputs and textareas return the value set with SetValue, falling back to the
// value attribute (text content for textareas). Checkboxes and radios return
// their value attribute, "on" when absent. Options fall back to their text.
// A single select returns the value of its selected option.
func (e *Element) Value() string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.valueLocked()
}

func (e *Element) valueLocked() string {
	switch e.tag {
	case "select":
		if opt := e.selectedOptionLocked(); opt != nil {
			return opt.valueLocked()
		}
		return ""
	case "option":
		if v, ok := e.attr("value"); ok {
			return v
		}
		return strings.TrimSpace(e.textLocked())
	}

	if e.dirty {
		return e.value
	}

	switch e.kindLocked() {
	case KindCheckbox, KindRadio:
		if v, ok := e.attr("value"); ok {
			return v
		}
		return "on"
	case KindTextarea:
		return e.textLocked()
	default:
		v, _ := e.attr("value")
		return v
	}
}

// SetValue sets the live value. For a single select it selects the first
// option whose value matches exactly and deselects the rest; with no match no
// option is selected. For checkboxes and radios it changes the value
// attribute, like the DOM value property does.
func (e *Element) SetValue(v string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	switch e.kindLocked() {
	case KindSelect:
		matched := false
		for _, opt := range e.optionsLocked() {
			opt.selected = !matched && opt.valueLocked() == v
			matched = matched || opt.selected
		}
		e.cleared = !matched
	case KindCheckbox, KindRadio:
		e.setAttr("value", v)
	default:
		e.value = v
		e.dirty = true
	}
}

// Checked reports the checked state of a checkbox or radio.
func (e *Element) Checked() bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.checked
}

// SetChecked changes the checked state. Checking a radio unchecks every
// other radio with the same name in the same document.
func (e *Element) SetChecked(checked bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	e.checked = checked
	if !checked || e.kindLocked() != KindRadio {
		return
	}

	name, _ := e.attr("name")
	if name == "" {
		return
	}
	root := e
	for root.parent != nil {
		root = root.parent
	}
	root.walkLocked(func(n *Element) {
		if n != e && n.kindLocked() == KindRadio {
			if other, _ := n.attr("name"); other == name {
				n.checked = false
			}
		}
	})
}

// Selected reports whether an option is selected.
func (e *Element) Selected() bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.selected
}

// SetSelected selects or deselects an option. Selecting an option of a
// single select deselects its siblings.
func (e *Element) SetSelected(selected bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	e.selected = selected
	sel := e.ownerSelectLocked()
	if sel == nil || !selected {
		return
	}
	sel.cleared = false
	if sel.hasAttr("multiple") {
		return
	}
	for _, opt := range sel.optionsLocked() {
		if opt != e {
			opt.selected = false
		}
	}
}

// Multiple reports whether a select accepts several options.
func (e *Element) Multiple() bool {
	return e.HasAttr("multiple")
}

// Options returns the <option> descendants of a select in document order.
func (e *Element) Options() []*Element {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.optionsLocked()
}

// SelectedValues returns the values of the selected options in document order.
func (e *Element) SelectedValues() []string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()

	values := []string{}
	for _, opt := range e.optionsLocked() {
		if opt.selected {
			values = append(values, opt.valueLocked())
		}
	}
	return values
}

// SelectValues sets the selection of a multiple select: an option is
// selected when its value is one of values.
func (e *Element) SelectValues(values []string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	for _, opt := range e.optionsLocked() {
		_, opt.selected = set[opt.valueLocked()]
	}
	e.cleared = false
}

func (e *Element) optionsLocked() []*Element {
	var out []*Element
	e.walkLocked(func(n *Element) {
		if n.tag == "option" {
			out = append(out, n)
		}
	})
	return out
}

func (e *Element) ownerSelectLocked() *Element {
	for n := e.parent; n != nil; n = n.parent {
		if n.tag == "select" {
			return n
		}
	}
	return nil
}

// selectedOptionLocked follows the browser rule for single selects: the
// first selected option, else the first option unless the selection was
// cleared by assigning a value that matched nothing.
func (e *Element) selectedOptionLocked() *Element {
	opts := e.optionsLocked()
	for _, opt := range opts {
		if opt.selected {
			return opt
		}
	}
	if !e.cleared && len(opts) > 0 && !e.hasAttr("multiple") {
		return opts[0]
	}
	return nil
}

var displayNone = regexp.MustCompile(`(?i)(^|;)\s*display\s*:\s*none\s*(;|$)`)

// Rendered reports whether e would produce a layout box: it is attached to
// the form root, it is not an <input type="hidden">, and neither it nor any
// ancestor carries the hidden attribute or an inline display:none style.
func (e *Element) Rendered() bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()

	if !e.doc.form.containsLocked(e) {
		return false
	}
	if e.tag == "input" && e.typeLocked() == "hidden" {
		return false
	}
	for n := e; n != nil; n = n.parent {
		if n.hasAttr("hidden") {
			return false
		}
		if style, ok := n.attr("style"); ok && displayNone.MatchString(style) {
			return false
		}
	}
	return true
}
