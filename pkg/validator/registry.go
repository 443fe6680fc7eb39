package validator

import (
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Registry maps rule names to rule functions. The zero value is an empty
// registry ready for use. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	rules  map[string]Func
	logger *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = l
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{rules: make(map[string]Func)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default is the process-wide registry shared by engines that are not given
// their own. It starts with the built-in rules.
var Default = func() *Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}()

// Register binds fn to name, replacing any previous binding. It panics when
// name is empty or fn is nil.
func (r *Registry) Register(name string, fn Func) {
	if name == "" {
		panic("validator: rule name must not be empty")
	}
	if fn == nil {
		panic("validator: nil rule function for " + name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rules == nil {
		r.rules = make(map[string]Func)
	}
	r.rules[name] = fn
}

// Lookup returns the rule bound to name. A miss is logged as a warning.
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	fn, ok := r.rules[name]
	l := r.logger
	r.mu.RUnlock()

	if !ok {
		logger.OrNop(l).Warn("validator does not exist", logger.Rule(name))
	}
	return fn, ok
}

// Has reports whether name is bound, without logging.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rules[name]
	return ok
}

// Names returns the registered rule names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.rules))
}

// Clear removes every binding.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.rules)
}

// Register binds fn to name in the Default registry.
func Register(name string, fn Func) {
	Default.Register(name, fn)
}

// Lookup returns the rule bound to name in the Default registry.
func Lookup(name string) (Func, bool) {
	return Default.Lookup(name)
}
