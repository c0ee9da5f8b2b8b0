package shapefile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/y-du/simple-struct/structure"
)

// UnmarshalYAML implements custom YAML unmarshaling for FieldDefs.
// Accepts a mapping of field name to default value or !shape reference.
func (fs *FieldDefs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: fields must be a mapping", node.Line)
	}

	out := make(FieldDefs, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return fmt.Errorf("line %d: field name: %w", keyNode.Line, err)
		}

		field := FieldDef{Name: name, Line: keyNode.Line}

		if valueNode.Tag == ShapeTag {
			if valueNode.Kind != yaml.ScalarNode || valueNode.Value == "" {
				return fmt.Errorf("line %d: field %q: %s expects a shape name", valueNode.Line, name, ShapeTag)
			}

			field.Shape = valueNode.Value
		} else {
			def, err := decodeDefault(valueNode)
			if err != nil {
				return fmt.Errorf("line %d: field %q: %w", valueNode.Line, name, err)
			}

			field.Default = def
		}

		out = append(out, field)
	}

	*fs = out

	return nil
}

// decodeDefault keeps mapping defaults ordered by decoding them as *structure.Map.
func decodeDefault(node *yaml.Node) (any, error) {
	if node.Kind == yaml.MappingNode {
		m := structure.NewMap()
		if err := node.Decode(m); err != nil {
			return nil, err
		}

		return m, nil
	}

	var v any
	if err := node.Decode(&v); err != nil {
		return nil, err
	}

	return v, nil
}

// MarshalYAML implements custom YAML marshaling for FieldDefs.
// Nested fields are written as !shape scalars.
func (fs FieldDefs) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, f := range fs {
		key := &yaml.Node{}
		if err := key.Encode(f.Name); err != nil {
			return nil, err
		}

		value := &yaml.Node{}

		if f.IsNested() {
			value.Kind = yaml.ScalarNode
			value.Tag = ShapeTag
			value.Value = f.Shape
		} else if err := value.Encode(f.Default); err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}

		node.Content = append(node.Content, key, value)
	}

	return node, nil
}
