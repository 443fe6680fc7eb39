package validator

import (
	"context"

	"github.com/dmitrymomot/formkit/pkg/messages"
)

// Func checks a field value. It returns "" when the value passes and the
// failure message otherwise. A non-nil error is a fault, not a failure: it
// aborts the validation call that invoked the rule.
//
// value is a string, a []string (checkbox groups, multiple selects) or nil
// for a radio group with no checked member. params are the rule parameters in
// declaration order, with cross-field references already replaced by the
// referenced field's value.
type Func func(ctx context.Context, value any, params []any, vc Context) (string, error)

// Context exposes the surrounding form to a rule.
type Context interface {
	// FieldName returns the name of the field being validated.
	FieldName() string

	// FieldValue returns the current value of another field, nil when absent.
	FieldValue(name string) any

	// Message returns the localized message for key, or fallback when there
	// is none, with {placeholders} replaced by values.
	Message(key, fallback string, values map[string]any) string
}

// MapContext is a Context over a plain map of values. Messages are taken
// from Catalog when set.
type MapContext struct {
	Field    string
	Values   map[string]any
	Catalog  *messages.Catalog
	Language string
}

func (c MapContext) FieldName() string {
	return c.Field
}

func (c MapContext) FieldValue(name string) any {
	return c.Values[name]
}

func (c MapContext) Message(key, fallback string, values map[string]any) string {
	if c.Catalog != nil {
		return c.Catalog.Message(c.Language, key, fallback, values)
	}
	return messages.Interpolate(fallback, values)
}
