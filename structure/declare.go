package structure

import (
	"slices"
	"strings"

	"github.com/y-du/simple-struct/internal/match"
)

// Shape is the design-time description of a record: a name and an ordered
// list of fields.
type Shape struct {
	Name string
	// QualifiedName defaults to Name.
	QualifiedName string
	Fields        []Field
}

// Type is a declared record shape. It is immutable once declared and may be
// shared freely, including as the nested type of other shapes.
type Type struct {
	name     string
	qualName string
	fields   []Field
	index    map[string]int
}

// Declare turns a shape description into a record type.
//
// The field list is copied. Fields with an empty name or a name starting with
// ReservedPrefix are dropped. When a name repeats, the later declaration
// replaces the earlier one in its original position. A shape without fields
// yields a valid type without fields.
func Declare(s Shape) *Type {
	t := &Type{
		name:     s.Name,
		qualName: s.QualifiedName,
		index:    make(map[string]int, len(s.Fields)),
	}

	if t.qualName == "" {
		t.qualName = s.Name
	}

	for _, f := range s.Fields {
		if f.Name == "" || strings.HasPrefix(f.Name, ReservedPrefix) {
			continue
		}

		f = f.normalized()

		if i, ok := t.index[f.Name]; ok {
			t.fields[i] = f
			continue
		}

		t.index[f.Name] = len(t.fields)
		t.fields = append(t.fields, f)
	}

	return t
}

// Name returns the display name of the type.
func (t *Type) Name() string { return t.name }

// QualifiedName returns the qualified name of the type.
func (t *Type) QualifiedName() string { return t.qualName }

// Len returns the number of declared fields.
func (t *Type) Len() int { return len(t.fields) }

// Fields returns the declared fields in declaration order.
func (t *Type) Fields() []Field {
	return slices.Clone(t.fields)
}

// Field returns the declared field called name.
func (t *Type) Field(name string) (Field, bool) {
	i, ok := t.index[name]
	if !ok {
		return Field{}, false
	}

	return t.fields[i], true
}

// Names returns the declared field names in declaration order.
func (t *Type) Names() []string {
	names := make([]string, len(t.fields))
	for i, f := range t.fields {
		names[i] = f.Name
	}

	return names
}

// Defaults returns the flattened form of a record built without input.
func (t *Type) Defaults() *Map {
	return t.MustNew(nil).Flatten()
}

func (t *Type) String() string {
	return t.name
}

func (t *Type) unknownField(path, name string) *FieldError {
	return &FieldError{
		Type:        t.name,
		Path:        joinPath(path, name),
		Err:         ErrUnknownField,
		Suggestions: match.Suggest(name, t.Names(), 3),
	}
}
