package structure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/y-du/simple-struct/structure"
)

func TestDeclare(t *testing.T) {
	t.Parallel()

	inner := structure.Declare(structure.Shape{Name: "Inner"})

	shape := structure.Shape{
		Name:          "Outer",
		QualifiedName: "pkg.Outer",
		Fields: []structure.Field{
			structure.Scalar("a", 1),
			structure.Scalar("_hidden", "bookkeeping"),
			structure.Scalar("", "nameless"),
			structure.Nested("inner", inner),
			structure.Scalar("a", 2),
		},
	}

	typ := structure.Declare(shape)

	assert.Equal(t, "Outer", typ.Name())
	assert.Equal(t, "pkg.Outer", typ.QualifiedName())
	assert.Equal(t, []string{"a", "inner"}, typ.Names())
	assert.Equal(t, 2, typ.Len())

	a, ok := typ.Field("a")
	require.True(t, ok)
	assert.Equal(t, 2, a.Default)
	assert.Equal(t, structure.KindScalar, a.Kind)

	in, ok := typ.Field("inner")
	require.True(t, ok)
	assert.True(t, in.IsNested())
	assert.Same(t, inner, in.Type)

	_, ok = typ.Field("_hidden")
	assert.False(t, ok)

	// the description is left untouched
	assert.Len(t, shape.Fields, 5)

	fields := typ.Fields()
	fields[0].Name = "mutated"
	assert.Equal(t, []string{"a", "inner"}, typ.Names())
}

func TestDeclare_EmptyShape(t *testing.T) {
	t.Parallel()

	typ := structure.Declare(structure.Shape{Name: "Empty"})

	assert.Equal(t, "Empty", typ.QualifiedName())
	assert.Zero(t, typ.Len())

	r, err := typ.New(map[string]any{"anything": 1})
	require.NoError(t, err)
	assert.Zero(t, r.Flatten().Len())
	assert.Equal(t, "Empty({})", r.String())
}

func TestDeclare_KindFromContents(t *testing.T) {
	t.Parallel()

	inner := structure.Declare(structure.Shape{Name: "Inner"})
	typ := structure.Declare(structure.Shape{
		Name: "Loose",
		Fields: []structure.Field{
			{Name: "plain", Default: "x"},
			{Name: "child", Type: inner},
		},
	})

	plain, _ := typ.Field("plain")
	child, _ := typ.Field("child")

	assert.Equal(t, structure.KindScalar, plain.Kind)
	assert.Equal(t, structure.KindNested, child.Kind)
}

func TestNested_NilTypePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { structure.Nested("x", nil) })
}

func TestFieldKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Scalar", structure.KindScalar.String())
	assert.Equal(t, "Nested", structure.KindNested.String())
	assert.Equal(t, "FieldKind(0)", structure.FieldKind(0).String())
	assert.False(t, structure.FieldKind(0).IsValid())
}

func TestType_Defaults(t *testing.T) {
	t.Parallel()

	s := newShapes()

	assert.Equal(t, `{"city": "", "zip": ""}`, s.address.Defaults().String())
}
