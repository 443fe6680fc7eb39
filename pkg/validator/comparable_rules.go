package validator

import "context"

// Same requires the value to equal params[0], usually a reference to
// another field (same:@password).
func Same(_ context.Context, value any, params []any, vc Context) (string, error) {
	if len(params) == 0 {
		return "", ErrMissingParam
	}
	if !Equal(value, params[0]) {
		return vc.Message("validation.same", "Values do not match", nil), nil
	}
	return "", nil
}

// Different requires the value to differ from params[0]. Empty values pass.
func Different(_ context.Context, value any, params []any, vc Context) (string, error) {
	if len(params) == 0 {
		return "", ErrMissingParam
	}
	if !IsEmpty(value) && Equal(value, params[0]) {
		return vc.Message("validation.different", "Must differ from the other field", nil), nil
	}
	return "", nil
}
