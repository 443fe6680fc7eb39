package formkit

import (
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/broadcast"
	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/fields"
	"github.com/dmitrymomot/formkit/pkg/messages"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Option configures a FormValidation.
type Option func(*options)

type options struct {
	config *Config

	errorClass    string
	innerTemplate func(string) string
	language      string

	onFieldError   func(fields.Target, string)
	onFieldSuccess func(fields.Target)
	onFormError    func([]InvalidField)
	onFormSuccess  func([]*dom.Element)

	logger   *slog.Logger
	registry *validator.Registry
	visible  func(*dom.Element) bool
	catalog  *messages.Catalog
	events   broadcast.Broadcaster[Event]
}

// WithConfig replaces the configuration loaded from the environment.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = &cfg
	}
}

// WithErrorClass sets the class of error markers.
func WithErrorClass(class string) Option {
	return func(o *options) {
		o.errorClass = class
	}
}

// WithInnerTemplate sets the function that turns a failure message into
// marker markup. Its output is inserted as HTML; the default escapes the
// message.
func WithInnerTemplate(fn func(message string) string) Option {
	return func(o *options) {
		o.innerTemplate = fn
	}
}

// OnFieldError is called when a field fails, with the sole control or the
// whole group, and the message.
func OnFieldError(fn func(target fields.Target, message string)) Option {
	return func(o *options) {
		o.onFieldError = fn
	}
}

// OnFieldSuccess is called when a field passes.
func OnFieldSuccess(fn func(target fields.Target)) Option {
	return func(o *options) {
		o.onFieldSuccess = fn
	}
}

// OnFormError is called by IsFormValid with every failing control.
func OnFormError(fn func(invalid []InvalidField)) Option {
	return func(o *options) {
		o.onFormError = fn
	}
}

// OnFormSuccess is called by IsFormValid with the evaluated controls.
func OnFormSuccess(fn func(evaluated []*dom.Element)) Option {
	return func(o *options) {
		o.onFormSuccess = fn
	}
}

// WithLogger sets the engine logger. It takes precedence over
// FORMKIT_LOG_LEVEL. Unknown rules are reported by the registry's logger
// (see validator.WithLogger).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRegistry makes the engine use r instead of validator.Default.
func WithRegistry(r *validator.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithVisibility adds a host predicate to the visibility check of
// IsFormValid. A control takes part only when it is rendered and fn
// reports true.
func WithVisibility(fn func(*dom.Element) bool) Option {
	return func(o *options) {
		o.visible = fn
	}
}

// WithCatalog sets the catalog rule messages are looked up in, and the
// language to use. An empty lang keeps the configured language.
func WithCatalog(cat *messages.Catalog, lang string) Option {
	return func(o *options) {
		o.catalog = cat
		o.language = lang
	}
}

// WithEvents publishes an Event for every field and form outcome.
func WithEvents(b broadcast.Broadcaster[Event]) Option {
	return func(o *options) {
		o.events = b
	}
}
