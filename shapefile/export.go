package shapefile

import (
	"strconv"

	"github.com/y-du/simple-struct/structure"
)

// FromType describes t and every type nested in it as a shape file.
// Referenced shapes are listed before the shapes using them. Distinct types
// sharing a name get a numeric suffix.
func FromType(t *structure.Type) *File {
	e := &exporter{names: map[*structure.Type]string{}, taken: map[string]bool{}}
	e.visit(t)

	return &File{Version: CurrentVersion, Shapes: e.shapes}
}

type exporter struct {
	names  map[*structure.Type]string
	taken  map[string]bool
	shapes []ShapeDef
}

func (e *exporter) visit(t *structure.Type) string {
	if name, ok := e.names[t]; ok {
		return name
	}

	base := t.Name()
	if base == "" {
		base = "Shape"
	}

	name := base
	for n := 2; e.taken[name]; n++ {
		name = base + strconv.Itoa(n)
	}

	e.taken[name] = true
	e.names[t] = name

	def := ShapeDef{Name: name, Qualified: t.QualifiedName()}

	for _, f := range t.Fields() {
		if f.IsNested() {
			def.Fields = append(def.Fields, FieldDef{Name: f.Name, Shape: e.visit(f.Type)})
			continue
		}

		def.Fields = append(def.Fields, FieldDef{Name: f.Name, Default: f.Default})
	}

	e.shapes = append(e.shapes, def)

	return name
}
