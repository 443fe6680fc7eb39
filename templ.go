package formkit

import (
	"context"
	"html"
	"strings"

	"github.com/a-h/templ"
)

// TemplInner adapts a templ component constructor into an inner template for
// WithInnerTemplate. When rendering fails the escaped message is used.
func TemplInner(component func(message string) templ.Component) func(string) string {
	return func(message string) string {
		var b strings.Builder
		if err := component(message).Render(context.Background(), &b); err != nil {
			return html.EscapeString(message)
		}
		return b.String()
	}
}
