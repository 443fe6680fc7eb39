package formkit

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/broadcast"
	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/fields"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/messages"
	"github.com/dmitrymomot/formkit/pkg/validator"
	"github.com/dmitrymomot/formkit/pkg/watcher"
)

// FormValidation validates the form of one document.
type FormValidation struct {
	doc  *dom.Document
	form *dom.Element
	cfg  Config

	registry *validator.Registry
	store    *fields.Store
	watcher  *watcher.Watcher
	resolver *resolver
	catalog  *messages.Catalog
	language string
	visible  func(*dom.Element) bool
	events   broadcast.Broadcaster[Event]
	logger   *slog.Logger

	onFieldError   func(fields.Target, string)
	onFieldSuccess func(fields.Target)
	onFormError    func([]InvalidField)
	onFormSuccess  func([]*dom.Element)

	mu     sync.RWMutex
	errors validator.ValidationErrors
}

// New binds an engine to the form of doc. Settings come from the built-in
// defaults, then the environment (or WithConfig), then the other options.
// The form gets a novalidate attribute, and every control with a name and a
// non-empty rule chain is registered with an error marker.
func New(doc *dom.Document, opts ...Option) (*FormValidation, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var cfg Config
	if o.config != nil {
		cfg = *o.config
	} else {
		loaded, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if o.errorClass != "" {
		cfg.ErrorClass = o.errorClass
	}
	if o.language != "" {
		cfg.Language = o.language
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	l := o.logger
	if l == nil {
		l = cfg.newLogger()
	}
	fv := &FormValidation{
		doc:            doc,
		form:           doc.Form(),
		cfg:            cfg,
		registry:       o.registry,
		catalog:        o.catalog,
		language:       cfg.Language,
		visible:        o.visible,
		events:         o.events,
		logger:         l,
		onFieldError:   o.onFieldError,
		onFieldSuccess: o.onFieldSuccess,
		onFormError:    o.onFormError,
		onFormSuccess:  o.onFormSuccess,
	}
	if fv.registry == nil {
		fv.registry = validator.Default
	}
	if fv.catalog == nil {
		fv.catalog = messages.Default()
	}

	storeOpts := []fields.Option{
		fields.WithErrorClass(cfg.ErrorClass),
		fields.WithErrorStateClass(cfg.ErrorStateClass),
		fields.WithLogger(l),
	}
	if o.innerTemplate != nil {
		storeOpts = append(storeOpts, fields.WithInnerTemplate(o.innerTemplate))
	}
	fv.store = fields.New(storeOpts...)
	fv.resolver = newResolver(cfg.RulesAttr, fv.registry, fv.store, cfg.RuleCacheSize)
	fv.watcher = watcher.New(doc, fv.form, fv.fieldsAdded, fv.fieldsRemoved, watcher.WithLogger(l))

	fv.store.AddFields(fv.discover(), true)
	fv.form.SetAttr("novalidate", "")

	l.Debug("form validation initialized", logger.Count("fields", fv.store.Len()))
	return fv, nil
}

// MustNew is like New but panics on error.
func MustNew(doc *dom.Document, opts ...Option) *FormValidation {
	fv, err := New(doc, opts...)
	if err != nil {
		panic(err)
	}
	return fv
}

// Use is shorthand for MustNew.
func Use(doc *dom.Document, opts ...Option) *FormValidation {
	return MustNew(doc, opts...)
}

func (fv *FormValidation) declaresRules(e *dom.Element) bool {
	return e.Kind().IsField() && e.Name() != "" && e.GetAttr(fv.cfg.RulesAttr) != ""
}

// discover returns the controls declaring rules together with the other
// members of their groups, in document order.
func (fv *FormValidation) discover() []*dom.Element {
	var names []string
	for _, f := range fv.form.Query(fv.declaresRules) {
		if name := f.Name(); !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return fv.form.Query(func(e *dom.Element) bool {
		return e.Kind().IsField() && slices.Contains(names, e.Name())
	})
}

// fieldsAdded receives controls inserted under the form. Controls removed
// again later in the same batch are skipped.
func (fv *FormValidation) fieldsAdded(fs []*dom.Element) {
	attached := make([]*dom.Element, 0, len(fs))
	for _, f := range fs {
		if fv.form.Contains(f) {
			attached = append(attached, f)
		}
	}
	fv.store.AddFields(attached, true)
}

// fieldsRemoved receives controls detached from the form. Controls that were
// only moved within the form stay registered.
func (fv *FormValidation) fieldsRemoved(fs []*dom.Element) {
	detached := make([]*dom.Element, 0, len(fs))
	for _, f := range fs {
		if !fv.form.Contains(f) {
			detached = append(detached, f)
		}
	}
	fv.store.RemoveFields(detached)
}

// Form returns the bound form element.
func (fv *FormValidation) Form() *dom.Element {
	return fv.form
}

// Config returns the effective configuration.
func (fv *FormValidation) Config() Config {
	return fv.cfg
}

// Store returns the field group store.
func (fv *FormValidation) Store() *fields.Store {
	return fv.store
}

// Settle waits until pending structural changes of the form are applied.
func (fv *FormValidation) Settle(ctx context.Context) error {
	return fv.watcher.Settle(ctx)
}

// IsFieldValid validates the group of f. It returns "" when the group is
// valid and the message of the first failing rule otherwise.
func (fv *FormValidation) IsFieldValid(ctx context.Context, f *dom.Element) (string, error) {
	if f == nil {
		return "", nil
	}
	return fv.IsFieldValidByName(ctx, f.Name())
}

// IsFieldValidByName validates the group of name.
//
// A name that is not registered is reported valid and logged. Rules run in
// declaration order; unknown rules are skipped and the first failure stops
// the chain. The error display of the group is updated and the field
// callbacks are notified. A non-nil error means a rule faulted or ctx ended;
// no display update happens in that case.
func (fv *FormValidation) IsFieldValidByName(ctx context.Context, name string) (string, error) {
	if err := fv.Settle(ctx); err != nil {
		return "", err
	}
	return fv.validateField(ctx, name)
}

func (fv *FormValidation) validateField(ctx context.Context, name string) (string, error) {
	if !fv.store.Exists(name) {
		fv.logger.WarnContext(ctx, "field must be added first", logger.Field(name))
		return "", nil
	}

	rules := fv.resolver.resolve(name)
	if len(rules) == 0 {
		return "", nil
	}

	value := fv.store.FieldValue(name)
	vc := &fieldContext{fv: fv, name: name}
	for _, r := range rules {
		if r.validator == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}

		msg, err := r.validator(ctx, value, r.params, vc)
		if err != nil {
			return "", &RuleError{Field: name, Rule: r.name, Err: err}
		}
		if msg != "" {
			fv.store.SetFieldError(name, msg, fv.onFieldError)
			fv.publish(ctx, Event{Type: EventFieldError, Field: name, Message: msg})
			return msg, nil
		}
	}

	fv.store.SetFieldSuccess(name, fv.onFieldSuccess)
	fv.publish(ctx, Event{Type: EventFieldSuccess, Field: name})
	return "", nil
}

// IsFormValid validates every visible control in store order. A control is
// visible when it is rendered (see dom.Element.Rendered) and passes the
// WithVisibility predicate. Controls of one group are validated one by one,
// so a failing group contributes one InvalidField per visible member.
func (fv *FormValidation) IsFormValid(ctx context.Context) (bool, error) {
	if err := fv.Settle(ctx); err != nil {
		return false, err
	}

	var (
		invalid   []InvalidField
		evaluated []*dom.Element
		errs      validator.ValidationErrors
	)
	for _, f := range fv.store.All() {
		if !fv.isVisible(f) {
			continue
		}
		evaluated = append(evaluated, f)

		name := f.Name()
		msg, err := fv.validateField(ctx, name)
		if err != nil {
			return false, err
		}
		if msg == "" {
			continue
		}
		invalid = append(invalid, InvalidField{Field: f, Message: msg})
		if !errs.Has(name) {
			errs.Add(validator.ValidationError{Field: name, Message: msg})
		}
	}

	fv.mu.Lock()
	fv.errors = errs
	fv.mu.Unlock()

	if len(invalid) > 0 {
		if fv.onFormError != nil {
			fv.onFormError(invalid)
		}
		fv.publish(ctx, Event{Type: EventFormError, Message: errs.Error(), Errors: errs})
		return false, nil
	}

	if fv.onFormSuccess != nil {
		fv.onFormSuccess(evaluated)
	}
	fv.publish(ctx, Event{Type: EventFormSuccess})
	return true, nil
}

func (fv *FormValidation) isVisible(f *dom.Element) bool {
	if !f.Rendered() {
		return false
	}
	return fv.visible == nil || fv.visible(f)
}

// Errors returns the failures of the last IsFormValid call, one per field
// name. It is empty when that call succeeded.
func (fv *FormValidation) Errors() validator.ValidationErrors {
	fv.mu.RLock()
	defer fv.mu.RUnlock()
	return fv.errors
}

// AddField registers f and creates its group's error marker.
func (fv *FormValidation) AddField(f *dom.Element) {
	fv.store.AddField(f, true)
}

// RemoveField unregisters f.
func (fv *FormValidation) RemoveField(f *dom.Element) {
	fv.store.RemoveField(f)
}

// Fields returns every registered control in store order.
func (fv *FormValidation) Fields() []*dom.Element {
	return fv.store.All()
}

// FieldValue returns the current value of the group of name.
func (fv *FormValidation) FieldValue(name string) any {
	return fv.store.FieldValue(name)
}

// SetFieldValue writes v into the group of name.
func (fv *FormValidation) SetFieldValue(name string, v any) {
	fv.store.SetFieldValue(name, v)
}

// SetValues writes every value whose key names a registered group.
func (fv *FormValidation) SetValues(values map[string]any) {
	fv.store.SetValues(values)
}

// SetErrors displays externally produced messages, typically from a server.
func (fv *FormValidation) SetErrors(errs map[string]string) {
	fv.store.SetErrors(errs)
}

// ResetErrors clears the error display of every group.
func (fv *FormValidation) ResetErrors() {
	fv.store.ResetErrors()
}

// ResetAllFields restores every group to overrides, or to its initial value.
func (fv *FormValidation) ResetAllFields(overrides map[string]any) {
	fv.store.ResetAllFields(overrides)
}

// RegisterValidator binds fn to name in the engine's registry. With the
// default registry the binding is process-wide.
func (fv *FormValidation) RegisterValidator(name string, fn validator.Func) {
	fv.registry.Register(name, fn)
	fv.resolver.reset()
}

// Destroy stops watching the form and forgets every group and cached rule.
// With clearValidators the engine's registry is emptied too, which affects
// every engine sharing it.
func (fv *FormValidation) Destroy(clearValidators bool) {
	fv.watcher.Destroy()
	fv.store.Destroy()
	fv.resolver.reset()
	if clearValidators {
		fv.registry.Clear()
	}

	fv.mu.Lock()
	fv.errors = nil
	fv.mu.Unlock()

	fv.logger.Debug("form validation destroyed", slog.Bool("validators_cleared", clearValidators))
}
