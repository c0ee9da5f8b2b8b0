package structure

import (
	"maps"
	"reflect"
	"slices"
)

// lookup resolves a key against some map-shaped input.
type lookup func(key string) (any, bool)

func emptyLookup(string) (any, bool) { return nil, false }

// asLookup accepts nil, *Map, Map, *Record and any Go map keyed by a string kind.
func asLookup(d any) (lookup, bool) {
	switch x := d.(type) {
	case nil:
		return emptyLookup, true
	case *Map:
		return x.Get, true
	case Map:
		return x.Get, true
	case map[string]any:
		return func(key string) (any, bool) {
			v, ok := x[key]
			return v, ok
		}, true
	case *Record:
		if x == nil {
			return emptyLookup, true
		}

		return x.Flatten().Get, true
	}

	rv := reflect.ValueOf(d)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	if rv.IsNil() {
		return emptyLookup, true
	}

	keyType := rv.Type().Key()

	return func(key string) (any, bool) {
		v := rv.MapIndex(reflect.ValueOf(key).Convert(keyType))
		if !v.IsValid() {
			return nil, false
		}

		return v.Interface(), true
	}, true
}

// isFalsy reports whether v counts as empty when it stands in for a nested mapping:
// nil, false, zero numbers, and empty strings, maps, slices and arrays.
func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case *Map:
		return x.Len() == 0
	case Map:
		return x.Len() == 0
	case *Record:
		return x == nil
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() == 0
	case reflect.String, reflect.Map, reflect.Slice, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// cloneValue copies the mutable container types a default may hold so that
// instances never share them.
func cloneValue(v any) any {
	switch x := v.(type) {
	case *Map:
		return x.Clone()
	case map[string]any:
		if x == nil {
			return x
		}

		out := maps.Clone(x)
		for k, item := range out {
			out[k] = cloneValue(item)
		}

		return out
	case []any:
		if x == nil {
			return x
		}

		out := slices.Clone(x)
		for i, item := range out {
			out[i] = cloneValue(item)
		}

		return out
	default:
		return v
	}
}

// isComparable checks the dynamic value, so a struct holding a slice in an
// interface field is not comparable.
func isComparable(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}
