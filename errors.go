package formkit

import (
	"errors"
	"fmt"
)

var (
	// ErrNilDocument is returned by New when no document is given.
	ErrNilDocument = errors.New("formkit: nil document")

	// ErrInvalidConfig is returned by New when the configuration cannot be used.
	ErrInvalidConfig = errors.New("formkit: invalid configuration")
)

// RuleError wraps a fault returned by a rule function. It aborts the
// validation call that ran the rule.
type RuleError struct {
	Field string
	Rule  string
	Err   error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("formkit: rule %q on field %q: %v", e.Rule, e.Field, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}
