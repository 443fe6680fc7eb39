package validator

import (
	"context"
	"regexp"
	"time"
)

const dateLayout = "02.01.2006"

var dateRegex = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// Date accepts calendar dates written as DD.MM.YYYY.
func Date(_ context.Context, value any, _ []any, vc Context) (string, error) {
	ok := every(value, func(s string) bool {
		if !dateRegex.MatchString(s) {
			return false
		}
		_, err := time.Parse(dateLayout, s)
		return err == nil
	})
	if !ok {
		return vc.Message("validation.date", "Provide a valid date: DD.MM.YYYY", nil), nil
	}
	return "", nil
}
