package validator

import (
	"context"
	"strconv"
	"strings"
)

// Numeric accepts decimal numbers.
func Numeric(_ context.Context, value any, _ []any, vc Context) (string, error) {
	if !every(value, isNumber) {
		return vc.Message("validation.numeric", "Must be a number", nil), nil
	}
	return "", nil
}

// Integer accepts whole numbers.
func Integer(_ context.Context, value any, _ []any, vc Context) (string, error) {
	ok := every(value, func(s string) bool {
		_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		return err == nil
	})
	if !ok {
		return vc.Message("validation.integer", "Must be a whole number", nil), nil
	}
	return "", nil
}

// MinValue fails for numbers below params[0]. Non-numeric values fail too.
func MinValue(_ context.Context, value any, params []any, vc Context) (string, error) {
	limit, err := paramFloat(params, 0)
	if err != nil {
		return "", err
	}
	ok := every(value, func(s string) bool {
		f, err := parseNumber(s)
		return err == nil && f >= limit
	})
	if !ok {
		return vc.Message("validation.min_value", "Must be at least {min}", map[string]any{"min": params[0]}), nil
	}
	return "", nil
}

// MaxValue fails for numbers above params[0]. Non-numeric values fail too.
func MaxValue(_ context.Context, value any, params []any, vc Context) (string, error) {
	limit, err := paramFloat(params, 0)
	if err != nil {
		return "", err
	}
	ok := every(value, func(s string) bool {
		f, err := parseNumber(s)
		return err == nil && f <= limit
	})
	if !ok {
		return vc.Message("validation.max_value", "Must be at most {max}", map[string]any{"max": params[0]}), nil
	}
	return "", nil
}

func isNumber(s string) bool {
	_, err := parseNumber(s)
	return err == nil
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
