package validator

import "reflect"

// Present validates that value is set. nil, false, "" and numeric zero count
// as missing; whitespace-only strings are present.
func Present(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return !blank(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// When returns r when cond holds and an always-passing rule otherwise.
// It expresses "only check X if Y" without branching at the call site.
func When(cond bool, r Rule) Rule {
	if cond {
		return r
	}
	return Rule{Check: func() bool { return true }, Error: r.Error}
}

func blank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
