package validator

import (
	"context"
	"unicode/utf8"
)

// Required fails for nil, "", an empty selection, and an unchecked checkbox
// group.
func Required(_ context.Context, value any, _ []any, vc Context) (string, error) {
	if IsEmpty(value) {
		return vc.Message("validation.required", "Field is required", nil), nil
	}
	return "", nil
}

// MinLen fails when a value is shorter than params[0] characters.
func MinLen(_ context.Context, value any, params []any, vc Context) (string, error) {
	minLen, err := paramInt(params, 0)
	if err != nil {
		return "", err
	}
	if !every(value, func(s string) bool { return utf8.RuneCountInString(s) >= minLen }) {
		return vc.Message("validation.min_length", "Must be at least {min} characters", map[string]any{"min": minLen}), nil
	}
	return "", nil
}

// MaxLen fails when a value is longer than params[0] characters.
func MaxLen(_ context.Context, value any, params []any, vc Context) (string, error) {
	maxLen, err := paramInt(params, 0)
	if err != nil {
		return "", err
	}
	if !every(value, func(s string) bool { return utf8.RuneCountInString(s) <= maxLen }) {
		return vc.Message("validation.max_length", "Must be at most {max} characters", map[string]any{"max": maxLen}), nil
	}
	return "", nil
}

// Between fails when a value length is outside [params[0], params[1]].
func Between(_ context.Context, value any, params []any, vc Context) (string, error) {
	minLen, err := paramInt(params, 0)
	if err != nil {
		return "", err
	}
	maxLen, err := paramInt(params, 1)
	if err != nil {
		return "", err
	}
	ok := every(value, func(s string) bool {
		n := utf8.RuneCountInString(s)
		return n >= minLen && n <= maxLen
	})
	if !ok {
		return vc.Message("validation.length_between", "Must be between {min} and {max} characters",
			map[string]any{"min": minLen, "max": maxLen}), nil
	}
	return "", nil
}
