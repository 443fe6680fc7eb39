// Package dom is an in-memory model of an HTML form: a tree of elements with
// attributes, classes and live control state (value, checked, selected), plus
// asynchronous mutation observation.
//
// It is the host environment formkit validates against. A Document owns one
// form root; every element created by the document shares the document lock,
// so the tree can be read and mutated from several goroutines.
//
// # Building a form
//
//	doc := dom.New()
//	email := doc.CreateElement("input", dom.A("name", "email"), dom.A("data-rules", "required|email"))
//	_ = doc.Form().AppendChild(email)
//
// or from markup:
//
//	doc, err := dom.Parse(strings.NewReader(`<form><input name="email" data-rules="required"></form>`))
//
// # Field kinds
//
// Kind is a closed set of form-control kinds derived from the tag name and the
// type attribute. Value extraction in higher layers switches over Kind.
//
// # Mutation observation
//
// Observe registers a callback for child-list changes in a subtree. Records are
// queued and delivered in batches on a separate goroutine; Pending exposes the
// delivery in progress as an *async.Future so callers can wait for the tree to
// settle. Disconnect stops delivery immediately, including queued records.
package dom
