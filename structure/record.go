package structure

import (
	"fmt"
	"strings"
)

// Record is an instance of a Type. Its nested fields are always *Record
// values owned by it and are never replaced once built.
type Record struct {
	typ    *Type
	values Map
}

// Assignment is a keyword-style field value passed to Type.New.
type Assignment struct {
	Name  string
	Value any
}

// With returns an Assignment of value to the field called name.
func With(name string, value any) Assignment {
	return Assignment{Name: name, Value: value}
}

// New builds a record from d. When d is nil, the keyword assignments kw are
// used as the input mapping instead; when d is not nil, kw is ignored.
// See Populate for how the input is applied.
func (t *Type) New(d any, kw ...Assignment) (*Record, error) {
	r := &Record{typ: t}

	if d == nil && len(kw) > 0 {
		m := NewMap()
		for _, a := range kw {
			m.Set(a.Name, a.Value)
		}

		d = m
	}

	if err := r.Populate(d); err != nil {
		return nil, err
	}

	return r, nil
}

// MustNew is like New but panics on error.
func (t *Type) MustNew(d any, kw ...Assignment) *Record {
	r, err := t.New(d, kw...)
	if err != nil {
		panic(err)
	}

	return r
}

// Type returns the record type of r.
func (r *Record) Type() *Type {
	return r.typ
}

// Populate fills every declared field of r from d in declaration order.
//
// d must be nil (treated as empty) or map-shaped: *Map, map[string]any, or any
// map keyed by a string kind. A *Record is accepted through its flattened form.
//
// A scalar field takes d's value when the key is present, even if that value
// is empty, and its declared default otherwise. A nested field recurses with
// d's sub-mapping; an absent or empty sub-value counts as an empty mapping.
// A nested record that already exists is populated in place and keeps its
// identity.
//
// On error, fields written before the failing one keep their new values.
func (r *Record) Populate(d any) error {
	return r.populate(d, "")
}

func (r *Record) populate(d any, path string) error {
	src, ok := asLookup(d)
	if !ok {
		return &FieldError{
			Type:   r.typ.name,
			Path:   path,
			Err:    ErrInputType,
			Detail: fmt.Sprintf("got %T", d),
		}
	}

	for _, f := range r.typ.fields {
		v, present := src(f.Name)

		if f.Kind == KindNested {
			if !present || isFalsy(v) {
				v = nil
			}

			if err := r.populateNested(f, v, path); err != nil {
				return err
			}

			continue
		}

		if !present {
			v = cloneValue(f.Default)
		}

		if err := r.write(f, v, path); err != nil {
			return err
		}
	}

	return nil
}

func (r *Record) populateNested(f Field, v any, path string) error {
	fieldPath := joinPath(path, f.Name)

	if cur, ok := r.values.Get(f.Name); ok {
		if err := cur.(*Record).populate(v, fieldPath); err != nil {
			return r.rebase(err)
		}

		return nil
	}

	child := &Record{typ: f.Type}
	if err := child.populate(v, fieldPath); err != nil {
		return r.rebase(err)
	}

	r.values.Set(f.Name, child)

	return nil
}

// rebase reports nested failures against the outermost type being populated.
func (r *Record) rebase(err error) error {
	if fe, ok := err.(*FieldError); ok {
		fe.Type = r.typ.name
	}

	return err
}

// Set writes value to the scalar field called name. Nested fields cannot be
// written directly and yield ErrFieldType; use Populate instead.
func (r *Record) Set(name string, value any) error {
	f, ok := r.typ.Field(name)
	if !ok {
		return r.typ.unknownField("", name)
	}

	return r.write(f, value, "")
}

func (r *Record) write(f Field, value any, path string) error {
	if f.Kind == KindNested {
		return &FieldError{
			Type:   r.typ.name,
			Path:   joinPath(path, f.Name),
			Err:    ErrFieldType,
			Detail: fmt.Sprintf("nested %s is populated from a mapping, cannot assign %T", f.Type.name, value),
		}
	}

	r.values.Set(f.Name, value)

	return nil
}

// Get returns the current value of the field called name. Nested fields
// return their *Record.
func (r *Record) Get(name string) (any, error) {
	if _, ok := r.typ.Field(name); !ok {
		return nil, r.typ.unknownField("", name)
	}

	v, _ := r.values.Get(name)

	return v, nil
}

// Has reports whether the declared field called name holds a value.
func (r *Record) Has(name string) bool {
	return r.values.Has(name)
}

// Nested returns the record held by the nested field called name.
func (r *Record) Nested(name string) (*Record, error) {
	f, ok := r.typ.Field(name)
	if !ok {
		return nil, r.typ.unknownField("", name)
	}

	if f.Kind != KindNested {
		return nil, &FieldError{Type: r.typ.name, Path: name, Err: ErrFieldType, Detail: "not a nested field"}
	}

	v, _ := r.values.Get(name)
	child, _ := v.(*Record)

	return child, nil
}

// Lookup resolves a dotted path such as "address.city" through nested records.
func (r *Record) Lookup(path string) (any, error) {
	if path == "" {
		return nil, &FieldError{Type: r.typ.name, Err: ErrUnknownField, Detail: "empty path"}
	}

	cur := r
	segments := strings.Split(path, ".")

	for i, seg := range segments {
		if seg == "" {
			return nil, &FieldError{Type: r.typ.name, Path: path, Err: ErrUnknownField, Detail: "empty segment"}
		}

		prefix := strings.Join(segments[:i], ".")

		f, ok := cur.typ.Field(seg)
		if !ok {
			fe := cur.typ.unknownField(prefix, seg)
			fe.Type = r.typ.name

			return nil, fe
		}

		v, _ := cur.values.Get(seg)
		if i == len(segments)-1 {
			return v, nil
		}

		if f.Kind != KindNested {
			return nil, &FieldError{
				Type:   r.typ.name,
				Path:   joinPath(prefix, seg),
				Err:    ErrFieldType,
				Detail: "scalar field has no members",
			}
		}

		cur, _ = v.(*Record)
		if cur == nil {
			return nil, nil
		}
	}

	return nil, nil
}

// Value returns the field called name of r as a T. A nil value yields the zero T.
func Value[T any](r *Record, name string) (T, error) {
	var zero T

	v, err := r.Get(name)
	if err != nil {
		return zero, err
	}

	if v == nil {
		return zero, nil
	}

	t, ok := v.(T)
	if !ok {
		return zero, &FieldError{
			Type:   r.typ.name,
			Path:   name,
			Err:    ErrFieldType,
			Detail: fmt.Sprintf("holds %T, not %T", v, zero),
		}
	}

	return t, nil
}

// Flatten returns the field values of r as a new ordered map. Nested records
// are flattened recursively; other values are copied as they are.
func (r *Record) Flatten() *Map {
	out := NewMap()

	r.values.Range(func(k string, v any) bool {
		if child, ok := v.(*Record); ok {
			out.Set(k, child.Flatten())
		} else {
			out.Set(k, v)
		}

		return true
	})

	return out
}

func (r *Record) String() string {
	return r.typ.name + "(" + r.Flatten().String() + ")"
}

func (r *Record) GoString() string {
	return r.String()
}

// MarshalJSON encodes the flattened record.
func (r *Record) MarshalJSON() ([]byte, error) {
	return r.Flatten().MarshalJSON()
}

// MarshalYAML encodes the flattened record.
func (r *Record) MarshalYAML() (any, error) {
	return r.Flatten().MarshalYAML()
}
