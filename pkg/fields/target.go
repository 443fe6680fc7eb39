package fields

import "github.com/dmitrymomot/formkit/pkg/dom"

// Target identifies the controls a notification is about. Exactly one of
// Field and Group is set: Field for a single-member group, Group otherwise.
type Target struct {
	Field *dom.Element
	Group []*dom.Element
}

func newTarget(group []*dom.Element) Target {
	if len(group) == 1 {
		return Target{Field: group[0]}
	}
	return Target{Group: group}
}

// Elements returns the controls of the target as a slice.
func (t Target) Elements() []*dom.Element {
	if t.Field != nil {
		return []*dom.Element{t.Field}
	}
	return t.Group
}

// Name returns the shared name of the target controls.
func (t Target) Name() string {
	if els := t.Elements(); len(els) > 0 {
		return els[0].Name()
	}
	return ""
}
