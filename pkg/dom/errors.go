package dom

import "errors"

var (
	// ErrForeignNode is returned when an element from another document is inserted.
	ErrForeignNode = errors.New("dom: element belongs to another document")

	// ErrHierarchy is returned when an insertion would make an element its own ancestor.
	ErrHierarchy = errors.New("dom: element cannot be inserted into its own subtree")

	// ErrNotChild is returned when a reference element is not a child of the parent.
	ErrNotChild = errors.New("dom: reference element is not a child of this element")

	// ErrDetached is returned when an operation requires a parent the element does not have.
	ErrDetached = errors.New("dom: element has no parent")

	// ErrNoForm is returned by Parse when the markup contains no usable content.
	ErrNoForm = errors.New("dom: markup contains no form")

	// ErrParseHTML is returned when markup cannot be parsed.
	ErrParseHTML = errors.New("dom: failed to parse html")
)
