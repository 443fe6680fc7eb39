package validator

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// IsEmpty reports whether a field value counts as not filled in: nil, "",
// or a slice without elements.
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case bool:
		return !v
	default:
		return false
	}
}

// Strings flattens a field value into its non-empty string parts.
func Strings(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []string:
		return slices.DeleteFunc(slices.Clone(v), func(s string) bool { return s == "" })
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, Strings(item)...)
		}
		return out
	default:
		return []string{fmt.Sprint(v)}
	}
}

// every reports whether ok holds for every non-empty part of value. Empty
// values pass.
func every(value any, ok func(string) bool) bool {
	for _, s := range Strings(value) {
		if !ok(s) {
			return false
		}
	}
	return true
}

// Equal compares two field values: strings by content, slices element-wise,
// nil equal to "" and to an empty slice.
func Equal(a, b any) bool {
	as, bs := Strings(a), Strings(b)
	return slices.Equal(as, bs)
}

func paramString(params []any, i int) (string, error) {
	if i >= len(params) {
		return "", fmt.Errorf("%w: #%d", ErrMissingParam, i+1)
	}
	return strings.TrimSpace(fmt.Sprint(params[i])), nil
}

func paramInt(params []any, i int) (int, error) {
	s, err := paramString(params, i)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidParam, s)
	}
	return n, nil
}

func paramFloat(params []any, i int) (float64, error) {
	s, err := paramString(params, i)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidParam, s)
	}
	return f, nil
}

func paramStrings(params []any) []string {
	out := make([]string, 0, len(params))
	for _, p := range params {
		out = append(out, Strings(p)...)
	}
	return out
}
