package fields

import (
	"html"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

const (
	DefaultErrorClass      = "form-validation-error"
	DefaultErrorStateClass = "has-error"
)

// Option configures a Store.
type Option func(*Store)

// WithErrorClass sets the class of error markers.
func WithErrorClass(class string) Option {
	return func(s *Store) {
		s.errorClass = class
	}
}

// WithErrorStateClass sets the class added to every member of an invalid group.
func WithErrorStateClass(class string) Option {
	return func(s *Store) {
		if class != "" {
			s.stateClass = class
		}
	}
}

// WithInnerTemplate sets the function that turns a message into marker
// markup. Its output is inserted as HTML.
func WithInnerTemplate(fn func(message string) string) Option {
	return func(s *Store) {
		if fn != nil {
			s.inner = fn
		}
	}
}

// WithLogger sets the store logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger.OrNop(l)
	}
}

func defaultInner(message string) string {
	return html.EscapeString(message)
}
