// Package validator provides the rule registry and the bundled rules that
// formkit evaluates against form fields.
//
// A rule is a Func: it receives the field value (a string, a []string for
// multi-value fields, or nil), the declared parameters, and a Context that
// exposes the rest of the form and message localization. It returns "" on
// success and the failure message otherwise. Returning a non-nil error marks
// a fault (for example a missing parameter or an unreachable backend) and
// aborts the validation call.
//
// # Registry
//
// Rules are looked up by name in a Registry. Default is a process-wide
// instance preloaded with the bundled rules; engines use it unless they are
// given their own:
//
//	validator.Register("even", func(ctx context.Context, v any, _ []any, vc validator.Context) (string, error) {
//	    n, err := strconv.Atoi(fmt.Sprint(v))
//	    if err != nil || n%2 != 0 {
//	        return vc.Message("validation.even", "Must be even", nil), nil
//	    }
//	    return "", nil
//	})
//
// # Bundled rules
//
//	required                  value present
//	email, phone, url, uuid   formats
//	date                      DD.MM.YYYY
//	instagram                 Instagram profile link
//	alpha, alpha_num, slug    character classes
//	numeric, integer          numbers
//	min:n, max:n, between:a,b length in characters
//	min_value:n, max_value:n  numeric bounds
//	in:a,b, not_in:a,b        allowed and forbidden values
//	same:@f, different:@f     comparison with another field
//	accepted                  checked checkbox or a truthy value
//
// Every rule except required and accepted passes empty values, so optional
// fields are expressed by leaving required out of the chain.
//
// # Reporting
//
// ValidationErrors collects field failures for a whole form and implements
// error, so a failed form can be returned up the stack and recovered with
// ExtractValidationErrors.
package validator
