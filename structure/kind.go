package structure

//go:generate go tool stringer -type=FieldKind -trimprefix=Kind -output=kind_string.go

// FieldKind tells a scalar field apart from a nested shape.
type FieldKind int

const (
	_ FieldKind = iota // zero value is resolved from the Field contents

	KindScalar
	KindNested

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsValid reports whether k is one of the declared kinds.
func (k FieldKind) IsValid() bool {
	return k == KindScalar || k == KindNested
}
