package form

import (
	"maps"
	"reflect"
)

func cloneValues(v Values) Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = cloneValue(val)
	}
	return out
}

// cloneValue returns a deep copy of v. Maps, slices, arrays, pointers and
// structs are copied recursively; unexported struct fields are copied shallowly.
func cloneValue(v any) any {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case string, bool, int, int64, float64:
		return t
	case Values:
		return cloneValues(t)
	case map[string]any:
		return map[string]any(cloneValues(Values(t)))
	}
	return deepCopy(reflect.ValueOf(v)).Interface()
}

func deepCopy(src reflect.Value) reflect.Value {
	switch src.Kind() {
	case reflect.Map:
		if src.IsNil() {
			return src
		}
		out := reflect.MakeMapWithSize(src.Type(), src.Len())
		iter := src.MapRange()
		for iter.Next() {
			out.SetMapIndex(deepCopy(iter.Key()), deepCopy(iter.Value()))
		}
		return out
	case reflect.Slice:
		if src.IsNil() {
			return src
		}
		out := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		for i := range src.Len() {
			out.Index(i).Set(deepCopy(src.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(src.Type()).Elem()
		for i := range src.Len() {
			out.Index(i).Set(deepCopy(src.Index(i)))
		}
		return out
	case reflect.Pointer:
		if src.IsNil() {
			return src
		}
		out := reflect.New(src.Type().Elem())
		out.Elem().Set(deepCopy(src.Elem()))
		return out
	case reflect.Interface:
		if src.IsNil() {
			return src
		}
		out := reflect.New(src.Type()).Elem()
		out.Set(deepCopy(src.Elem()))
		return out
	case reflect.Struct:
		out := reflect.New(src.Type()).Elem()
		out.Set(src)
		for i := range src.NumField() {
			if f := out.Field(i); f.CanSet() {
				f.Set(deepCopy(src.Field(i)))
			}
		}
		return out
	default:
		return src
	}
}

func cloneTouched(t Touched) Touched {
	if t == nil {
		return Touched{}
	}
	return maps.Clone(t)
}

func cloneErrors(e Errors) Errors {
	if e == nil {
		return Errors{}
	}
	return maps.Clone(e)
}
