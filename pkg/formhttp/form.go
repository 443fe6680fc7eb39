package formhttp

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"slices"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/fields"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// DefaultMaxMemory bounds the in-memory part of multipart bodies.
const DefaultMaxMemory int64 = 10 << 20

// Form validates submissions of one form.
type Form struct {
	markup     string
	engineOpts []formkit.Option
	maxMemory  int64
	logger     *slog.Logger
}

// Option configures a Form.
type Option func(*Form)

// WithEngineOptions passes opts to every engine the Form creates.
func WithEngineOptions(opts ...formkit.Option) Option {
	return func(f *Form) {
		f.engineOpts = append(f.engineOpts, opts...)
	}
}

// WithMaxMemory sets the memory limit for multipart bodies.
func WithMaxMemory(n int64) Option {
	return func(f *Form) {
		f.maxMemory = n
	}
}

// WithLogger sets the logger. It is handed to the engines as well unless
// WithEngineOptions sets one.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		f.logger = l
	}
}

// New returns a Form for markup. The markup must parse into a document.
func New(markup string, opts ...Option) (*Form, error) {
	if _, err := dom.ParseString(markup); err != nil {
		return nil, errors.Join(ErrInvalidMarkup, err)
	}

	f := &Form{
		markup:    markup,
		maxMemory: DefaultMaxMemory,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = logger.OrNop(f.logger)
	return f, nil
}

// Result is the outcome of one submission.
type Result struct {
	// Document is the form with the submitted values and error display.
	Document *dom.Document
	// Engine is the validation engine bound to Document.
	Engine *formkit.FormValidation
	// Errors has the first failure of every invalid field.
	Errors validator.ValidationErrors
}

// Valid reports whether the submission passed.
func (r *Result) Valid() bool {
	return r.Errors.IsEmpty()
}

// Value returns the submitted value of the named field group.
func (r *Result) Value(name string) any {
	return r.Engine.FieldValue(name)
}

// Validate copies the body of r into a fresh document and validates it.
// Rule faults and request parsing problems are returned as errors; field
// failures are reported through Result.Errors.
func (f *Form) Validate(r *http.Request) (*Result, error) {
	if err := f.parseRequest(r); err != nil {
		return nil, errors.Join(ErrParseRequest, err)
	}

	doc, err := dom.ParseString(f.markup)
	if err != nil {
		return nil, errors.Join(ErrInvalidMarkup, err)
	}
	applyValues(doc, r.PostForm)

	engine, err := formkit.New(doc, append([]formkit.Option{formkit.WithLogger(f.logger)}, f.engineOpts...)...)
	if err != nil {
		return nil, errors.Join(ErrEngine, err)
	}

	ok, err := engine.IsFormValid(r.Context())
	if err != nil {
		return nil, err
	}

	res := &Result{Document: doc, Engine: engine, Errors: engine.Errors()}
	f.logger.DebugContext(r.Context(), "form submission validated",
		slog.Bool("valid", ok),
		logger.Count("errors", len(res.Errors)),
	)
	return res, nil
}

func (f *Form) parseRequest(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(f.maxMemory)
	}
	return r.ParseForm()
}

// applyValues writes posted values into every named control of doc. Groups
// missing from the body are cleared, as browsers omit unchecked boxes.
func applyValues(doc *dom.Document, posted map[string][]string) {
	controls := fields.New()
	controls.AddFields(doc.Form().Query(carriesValue), false)

	for _, name := range controls.Names() {
		values, ok := posted[name]
		switch {
		case !ok:
			controls.SetFieldValue(name, nil)
		case len(values) == 1 && !isList(controls.Group(name)):
			controls.SetFieldValue(name, values[0])
		default:
			controls.SetFieldValue(name, values)
		}
	}
}

func carriesValue(e *dom.Element) bool {
	if !e.Kind().IsField() || e.Kind() == dom.KindButton || e.Name() == "" {
		return false
	}
	return !slices.Contains(nonValueTypes, e.Type())
}

var nonValueTypes = []string{"submit", "button", "reset", "image", "file"}

func isList(group []*dom.Element) bool {
	switch {
	case len(group) == 0:
		return false
	case group[0].Kind() == dom.KindCheckbox:
		return true
	default:
		return group[0].Kind() == dom.KindSelect && group[0].Multiple()
	}
}
