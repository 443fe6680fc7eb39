package messages

import (
	"fmt"
	"regexp"
)

var placeholderRegex = regexp.MustCompile(`\{([A-Za-z0-9_.-]+)\}`)

// Interpolate replaces {name} placeholders with values. Unknown placeholders
// are kept as written.
func Interpolate(text string, values map[string]any) string {
	if len(values) == 0 {
		return text
	}
	return placeholderRegex.ReplaceAllStringFunc(text, func(match string) string {
		if v, ok := values[match[1:len(match)-1]]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}
