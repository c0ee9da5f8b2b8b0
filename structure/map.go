package structure

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Map is a string-keyed map that remembers insertion order.
// It is the output of Record.Flatten and a valid input for Populate.
// Decoding JSON or YAML into a Map keeps object key order and turns nested
// objects into *Map values.
//
// The zero value is an empty map ready to use. A nil *Map reads as empty.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{}
}

// MapOf builds a Map from alternating keys and values.
// It panics when a key is not a string or a value is missing.
func MapOf(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic("structure.MapOf: odd number of arguments")
	}

	m := &Map{}

	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("structure.MapOf: key %v is %T, not string", kv[i], kv[i]))
		}

		m.Set(key, kv[i+1])
	}

	return m
}

// Set stores value under key. A new key is appended; an existing key keeps its position.
func (m *Map) Set(key string, value any) {
	if m.values == nil {
		m.values = map[string]any{}
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}

	v, ok := m.values[key]

	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key, keeping the order of the remaining keys.
func (m *Map) Delete(key string) {
	if m == nil {
		return
	}

	if _, ok := m.values[key]; !ok {
		return
	}

	delete(m.values, key)

	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}

	return slices.Clone(m.keys)
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *Map) Range(fn func(key string, value any) bool) {
	if m == nil {
		return
	}

	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// ToMap converts m into a plain Go map, recursively converting nested *Map values.
func (m *Map) ToMap() map[string]any {
	out := make(map[string]any, m.Len())

	m.Range(func(k string, v any) bool {
		if sub, ok := v.(*Map); ok {
			out[k] = sub.ToMap()
		} else {
			out[k] = v
		}

		return true
	})

	return out
}

// Clone returns a deep copy of m. Nested *Map, map[string]any and []any values are copied.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}

	out := &Map{
		keys:   slices.Clone(m.keys),
		values: make(map[string]any, len(m.values)),
	}

	for k, v := range m.values {
		out.values[k] = cloneValue(v)
	}

	return out
}

func (m *Map) String() string {
	var b strings.Builder

	b.WriteByte('{')

	first := true
	m.Range(func(k string, v any) bool {
		if !first {
			b.WriteString(", ")
		}

		first = false

		b.WriteString(strconv.Quote(k))
		b.WriteString(": ")
		b.WriteString(formatValue(v))

		return true
	})

	b.WriteByte('}')

	return b.String()
}

func (m *Map) GoString() string {
	return m.String()
}

// Equal reports whether a and b hold the same keys in the same order with equal values.
// Nested *Map values are compared recursively; other values are compared with ==
// when comparable and with reflect.DeepEqual otherwise.
func Equal(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}

	if a.Len() == 0 {
		return true
	}

	for i, k := range a.keys {
		if b.keys[i] != k {
			return false
		}

		if !equalValue(a.values[k], b.values[k]) {
			return false
		}
	}

	return true
}

func equalValue(a, b any) bool {
	am, aok := a.(*Map)
	bm, bok := b.(*Map)

	if aok || bok {
		return aok && bok && Equal(am, bm)
	}

	if isComparable(a) && isComparable(b) {
		return a == b
	}

	return reflect.DeepEqual(a, b)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(x)
	case *Map:
		return x.String()
	case *Record:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// MarshalJSON writes m as a JSON object in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}

		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the contents of m with a JSON object, keeping key order.
// Numbers decode as float64, nested objects as *Map and arrays as []any.
// A JSON null leaves m unchanged.
func (m *Map) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if tok != json.Delim('{') {
		return fmt.Errorf("%w: expected JSON object, got %v", ErrInputType, tok)
	}

	decoded, err := decodeJSONObject(dec)
	if err != nil {
		return err
	}

	*m = *decoded

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON object")
	}

	return nil
}

func decodeJSONObject(dec *json.Decoder) (*Map, error) {
	m := &Map{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}

		value, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}

		m.Set(key, value)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return m, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch tok {
	case json.Delim('{'):
		return decodeJSONObject(dec)
	case json.Delim('['):
		arr := []any{}

		for dec.More() {
			v, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}

			arr = append(arr, v)
		}

		// closing ']'
		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return arr, nil
	default:
		return tok, nil
	}
}

// MarshalYAML encodes m as a YAML mapping in insertion order.
func (m *Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, k := range m.Keys() {
		kn := &yaml.Node{}
		if err := kn.Encode(k); err != nil {
			return nil, err
		}

		vn := &yaml.Node{}
		if err := vn.Encode(m.values[k]); err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}

		node.Content = append(node.Content, kn, vn)
	}

	return node, nil
}

// UnmarshalYAML replaces the contents of m with a YAML mapping, keeping key order.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := decodeYAMLMapping(node)
	if err != nil {
		return err
	}

	*m = *decoded

	return nil
}

func decodeYAMLMapping(node *yaml.Node) (*Map, error) {
	node = resolveYAMLNode(node)

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected mapping", ErrInputType, node.Line)
	}

	m := &Map{}

	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Content[i].Line, err)
		}

		value, err := decodeYAMLValue(node.Content[i+1])
		if err != nil {
			return nil, err
		}

		m.Set(key, value)
	}

	return m, nil
}

func decodeYAMLValue(node *yaml.Node) (any, error) {
	node = resolveYAMLNode(node)

	switch node.Kind {
	case yaml.MappingNode:
		return decodeYAMLMapping(node)
	case yaml.SequenceNode:
		arr := make([]any, 0, len(node.Content))

		for _, item := range node.Content {
			v, err := decodeYAMLValue(item)
			if err != nil {
				return nil, err
			}

			arr = append(arr, v)
		}

		return arr, nil
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return v, nil
	}
}

func resolveYAMLNode(node *yaml.Node) *yaml.Node {
	for {
		switch {
		case node.Kind == yaml.DocumentNode && len(node.Content) > 0:
			node = node.Content[0]
		case node.Kind == yaml.AliasNode && node.Alias != nil:
			node = node.Alias
		default:
			return node
		}
	}
}
