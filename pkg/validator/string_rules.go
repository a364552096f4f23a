package validator

import (
	"fmt"
	"unicode/utf8"
)

// MinLen validates that value has at least min characters (runes, not bytes).
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}
