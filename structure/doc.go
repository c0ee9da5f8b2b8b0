// Package structure declares nested record shapes and maps them to and from
// loosely typed key-value data such as decoded JSON.
//
// A shape is declared once and yields a reusable *Type:
//
//	address := structure.Declare(structure.Shape{
//		Name: "Address",
//		Fields: []structure.Field{
//			structure.Scalar("city", ""),
//			structure.Scalar("zip", ""),
//		},
//	})
//	person := structure.Declare(structure.Shape{
//		Name: "Person",
//		Fields: []structure.Field{
//			structure.Scalar("name", ""),
//			structure.Nested("address", address),
//		},
//	})
//
// Instances are built from any string-keyed map. Missing keys take their
// declared defaults, present keys win even when their value is empty, and
// nested shapes are always backed by their own *Record:
//
//	p, err := person.New(map[string]any{"name": "Al", "address": map[string]any{"city": "NYC"}})
//
// Populate refills an existing record in place. Nested records keep their
// identity across calls, so holders of a nested *Record observe the update.
// Flatten turns a record back into an ordered *Map ready for encoding.
//
// # Field names
//
// Names starting with ReservedPrefix are dropped at declaration time and never
// take part in mapping.
//
// # Unwritten fields
//
// Construction writes every declared field before returning. The only way to
// observe a declared field without a value is a Populate call that failed
// part way through: such a field reads as nil and Has reports false. A field
// populated with an explicit nil holds nil and Has reports true.
package structure
