package validator

import (
	"context"
	"slices"
	"strings"
)

// In accepts values listed in params. Every selected value of a multi-value
// field must be listed.
func In(_ context.Context, value any, params []any, vc Context) (string, error) {
	allowed := paramStrings(params)
	if len(allowed) == 0 {
		return "", ErrMissingParam
	}
	if !every(value, func(s string) bool { return slices.Contains(allowed, s) }) {
		return vc.Message("validation.in", "Select a valid option", nil), nil
	}
	return "", nil
}

// NotIn rejects values listed in params.
func NotIn(_ context.Context, value any, params []any, vc Context) (string, error) {
	forbidden := paramStrings(params)
	if !every(value, func(s string) bool { return !slices.Contains(forbidden, s) }) {
		return vc.Message("validation.not_in", "This value is not allowed", nil), nil
	}
	return "", nil
}

var acceptedValues = []string{"1", "on", "yes", "true"}

// Accepted requires a checked checkbox, or one of 1, on, yes, true.
func Accepted(_ context.Context, value any, _ []any, vc Context) (string, error) {
	ok := false
	switch v := value.(type) {
	case []string:
		ok = len(v) > 0
	case string:
		ok = slices.Contains(acceptedValues, strings.ToLower(v))
	case bool:
		ok = v
	}
	if !ok {
		return vc.Message("validation.accepted", "Must be accepted", nil), nil
	}
	return "", nil
}
