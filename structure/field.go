package structure

// ReservedPrefix marks names used for internal bookkeeping. Fields starting
// with it are dropped by Declare.
const ReservedPrefix = "_"

// Field describes one declared member of a shape: either a scalar with a
// default value or a nested shape.
type Field struct {
	Name string
	Kind FieldKind
	// Default is the value a scalar field takes when the input lacks its key.
	Default any
	// Type is the nested record type of a KindNested field.
	Type *Type
}

// Scalar declares a field holding a plain value with the given default.
func Scalar(name string, def any) Field {
	return Field{Name: name, Kind: KindScalar, Default: def}
}

// Nested declares a field backed by a record of type t.
// It panics when t is nil.
func Nested(name string, t *Type) Field {
	if t == nil {
		panic("structure.Nested: nil type for field " + name)
	}

	return Field{Name: name, Kind: KindNested, Type: t}
}

// IsNested reports whether the field is backed by a nested record.
func (f Field) IsNested() bool {
	return f.Kind == KindNested
}

func (f Field) normalized() Field {
	if f.Kind == KindNested && f.Type == nil {
		f.Kind = KindScalar
	}

	if f.Kind.IsValid() {
		return f
	}

	if f.Type != nil {
		f.Kind = KindNested
	} else {
		f.Kind = KindScalar
	}

	return f
}
