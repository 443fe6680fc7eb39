// Package fields groups form controls by name and owns their error display.
//
// A Store keeps, per field name, the ordered list of controls that share the
// name (a radio group, a set of checkboxes, or a single input), the value the
// group had when its members joined, and one error marker: a <span> inserted
// after the last member that receives the failure message.
//
// Values follow the control kind of the first member:
//
//	select (single)   string
//	select (multiple) []string of selected option values
//	checkbox group    []string of checked member values, group order
//	radio group       string of the checked member, nil when none is checked
//	anything else     string
//
// Callbacks passed to SetFieldError and SetFieldSuccess receive a Target: the
// sole control when the group has one member, the whole group otherwise.
// They run after the store lock is released.
package fields
