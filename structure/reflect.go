package structure

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
)

var timeType = reflect.TypeFor[time.Time]()

// FromStruct declares a record type from a Go struct value.
//
// Exported fields become record fields in declaration order. A field is named
// by its json tag when it has one ("-" skips it) and by its Go name
// otherwise. Struct fields with exported members become nested types;
// everything else is a scalar whose default is the field's value in v.
func FromStruct(v any) (*Type, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, errors.New("structure: cannot declare shape from nil")
	}

	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv = reflect.Zero(rv.Type().Elem())
			continue
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("structure: cannot declare shape from %T: not a struct", v)
	}

	return declareStruct(rv), nil
}

func declareStruct(rv reflect.Value) *Type {
	rt := rv.Type()
	s := Shape{Name: rt.Name(), QualifiedName: rt.String()}

	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		name, ok := fieldName(sf)
		if !ok {
			continue
		}

		fv := rv.Field(i)
		if isShapeStruct(sf.Type) {
			s.Fields = append(s.Fields, Nested(name, declareStruct(fv)))
			continue
		}

		s.Fields = append(s.Fields, Scalar(name, fv.Interface()))
	}

	return Declare(s)
}

// fieldName tries the json tag name first, then the Go field name.
func fieldName(sf reflect.StructField) (string, bool) {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", false
	}

	// trim options
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}

	if tag != "" {
		return tag, true
	}

	return sf.Name, true
}

func isShapeStruct(t reflect.Type) bool {
	if t.Kind() != reflect.Struct || t == timeType {
		return false
	}

	for i := range t.NumField() {
		if t.Field(i).IsExported() {
			return true
		}
	}

	return false
}
