package shapefile

// CurrentVersion is the schema version written by this package.
const CurrentVersion = "1"

// ShapeTag marks a field value as a reference to another shape.
const ShapeTag = "!shape"

// File represents the root of a YAML shape declaration file.
type File struct {
	// Version of the shape schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Shapes lists the declared shapes.
	Shapes []ShapeDef `yaml:"shapes"`
}

// ShapeDef declares one record shape.
type ShapeDef struct {
	// Name is the shape name used in !shape references.
	Name string `yaml:"name"`

	// Qualified is the qualified name given to the built type; defaults to Name.
	Qualified string `yaml:"qualified,omitempty"`

	// Description is free text kept for documentation.
	Description string `yaml:"description,omitempty"`

	// Fields lists the fields in declaration order.
	Fields FieldDefs `yaml:"fields,omitempty"`
}

// FieldDef declares one field of a shape.
type FieldDef struct {
	Name string
	// Default is the scalar default; ignored when Shape is set.
	Default any
	// Shape references the nested shape of this field.
	Shape string
	// Line is the source line of the field key, 0 when not parsed from YAML.
	Line int
}

// IsNested reports whether the field references another shape.
func (f FieldDef) IsNested() bool {
	return f.Shape != ""
}

// FieldDefs is an ordered field list written as a YAML mapping.
type FieldDefs []FieldDef

// Lookup returns the first field called name.
func (fs FieldDefs) Lookup(name string) (FieldDef, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f, true
		}
	}

	return FieldDef{}, false
}

// References returns the shape names referenced by nested fields, in order.
func (fs FieldDefs) References() []string {
	var refs []string

	for _, f := range fs {
		if f.IsNested() {
			refs = append(refs, f.Shape)
		}
	}

	return refs
}

// Shape returns the shape called name.
func (f *File) Shape(name string) (*ShapeDef, bool) {
	for i := range f.Shapes {
		if f.Shapes[i].Name == name {
			return &f.Shapes[i], true
		}
	}

	return nil, false
}

// ShapeNames returns the shape names in file order.
func (f *File) ShapeNames() []string {
	names := make([]string, len(f.Shapes))
	for i, s := range f.Shapes {
		names[i] = s.Name
	}

	return names
}
