package formkit

import (
	"context"

	"github.com/dmitrymomot/formkit/pkg/broadcast"
	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// EventType names the outcome an Event reports.
type EventType string

const (
	EventFieldError   EventType = "field.error"
	EventFieldSuccess EventType = "field.success"
	EventFormError    EventType = "form.error"
	EventFormSuccess  EventType = "form.success"
)

// Event is published for every field and form outcome when the engine is
// created with WithEvents. Field is empty for form events; Errors is set for
// EventFormError.
type Event struct {
	Type    EventType
	Field   string
	Message string
	Errors  validator.ValidationErrors
}

// InvalidField pairs a control with the message of its first failing rule.
type InvalidField struct {
	Field   *dom.Element
	Message string
}

func (fv *FormValidation) publish(ctx context.Context, ev Event) {
	if fv.events == nil {
		return
	}
	if err := fv.events.Broadcast(ctx, broadcast.Message[Event]{Data: ev}); err != nil {
		fv.logger.DebugContext(ctx, "event not published", logger.Error(err))
	}
}
