package validator

import (
	"context"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	// E.164 with optional leading plus
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	instagramRegex = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:instagram\.com|instagr\.am|instagr\.com)/(\w+)`)

	alphaRegex        = regexp.MustCompile(`^\pL+$`)
	alphanumericRegex = regexp.MustCompile(`^[\pL\pN]+$`)
	slugRegex         = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Email accepts a bare address with a dotted domain.
func Email(_ context.Context, value any, _ []any, vc Context) (string, error) {
	if !every(value, isEmail) {
		return vc.Message("validation.email", "Provide a valid e-mail", nil), nil
	}
	return "", nil
}

func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// Phone accepts international numbers; spaces, dashes and parentheses are ignored.
func Phone(_ context.Context, value any, _ []any, vc Context) (string, error) {
	ok := every(value, func(s string) bool {
		cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(s)
		return len(cleaned) >= 7 && phoneRegex.MatchString(cleaned)
	})
	if !ok {
		return vc.Message("validation.phone", "Provide a valid phone number", nil), nil
	}
	return "", nil
}

// Instagram accepts links to an Instagram profile.
func Instagram(_ context.Context, value any, _ []any, vc Context) (string, error) {
	if !every(value, instagramRegex.MatchString) {
		return vc.Message("validation.instagram", "Provide a valid url", nil), nil
	}
	return "", nil
}

// URL accepts absolute URLs with a scheme and a host. Parameters, when
// given, restrict the allowed schemes.
func URL(_ context.Context, value any, params []any, vc Context) (string, error) {
	schemes := paramStrings(params)
	ok := every(value, func(s string) bool {
		u, err := url.ParseRequestURI(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return false
		}
		if len(schemes) == 0 {
			return true
		}
		for _, scheme := range schemes {
			if strings.EqualFold(scheme, u.Scheme) {
				return true
			}
		}
		return false
	})
	if !ok {
		return vc.Message("validation.url", "Provide a valid url", nil), nil
	}
	return "", nil
}

// UUID accepts canonical UUID strings.
func UUID(_ context.Context, value any, _ []any, vc Context) (string, error) {
	ok := every(value, func(s string) bool {
		if len(s) != 36 {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	})
	if !ok {
		return vc.Message("validation.uuid", "Provide a valid UUID", nil), nil
	}
	return "", nil
}

// Alpha accepts letters only.
func Alpha(_ context.Context, value any, _ []any, vc Context) (string, error) {
	if !every(value, alphaRegex.MatchString) {
		return vc.Message("validation.alpha", "Only letters are allowed", nil), nil
	}
	return "", nil
}

// AlphaNum accepts letters and digits only.
func AlphaNum(_ context.Context, value any, _ []any, vc Context) (string, error) {
	if !every(value, alphanumericRegex.MatchString) {
		return vc.Message("validation.alpha_num", "Only letters and digits are allowed", nil), nil
	}
	return "", nil
}

// Slug accepts lowercase words joined by single dashes.
func Slug(_ context.Context, value any, _ []any, vc Context) (string, error) {
	if !every(value, slugRegex.MatchString) {
		return vc.Message("validation.slug", "Only lowercase letters, digits and dashes are allowed", nil), nil
	}
	return "", nil
}
