package shapefile

import (
	"fmt"
	"slices"

	"github.com/y-du/simple-struct/structure"
)

// Registry holds the types built from a shape file.
type Registry struct {
	types map[string]*structure.Type
	names []string
}

// Build validates f and declares every shape as a structure type, referenced
// shapes first. Files with validation errors are rejected with the combined
// error.
func Build(f *File) (*Registry, error) {
	if err := Validate(f).Error(); err != nil {
		return nil, fmt.Errorf("invalid shape file: %w", err)
	}

	index := shapeIndex(f)

	order, err := shapeOrder(f, index)
	if err != nil {
		return nil, fmt.Errorf("invalid shape file: %w", err)
	}

	reg := &Registry{
		types: make(map[string]*structure.Type, len(f.Shapes)),
		names: f.ShapeNames(),
	}

	for _, i := range order {
		s := f.Shapes[i]

		shape := structure.Shape{
			Name:          s.Name,
			QualifiedName: s.Qualified,
			Fields:        make([]structure.Field, 0, len(s.Fields)),
		}

		for _, fd := range s.Fields {
			if fd.IsNested() {
				shape.Fields = append(shape.Fields, structure.Nested(fd.Name, reg.types[fd.Shape]))
				continue
			}

			shape.Fields = append(shape.Fields, structure.Scalar(fd.Name, fd.Default))
		}

		reg.types[s.Name] = structure.Declare(shape)
	}

	return reg, nil
}

// Lookup returns the type built for the shape called name.
func (r *Registry) Lookup(name string) (*structure.Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// MustLookup is like Lookup but panics when the shape is unknown.
func (r *Registry) MustLookup(name string) *structure.Type {
	t, ok := r.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("shapefile: unknown shape %q", name))
	}

	return t
}

// Names returns the shape names in file order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Len returns the number of built types.
func (r *Registry) Len() int {
	return len(r.types)
}
