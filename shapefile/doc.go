// Package shapefile reads and writes record shape declarations in YAML and
// builds them into structure types.
//
// # Schema Overview
//
//	version: "1"
//	shapes:
//	  - name: Address
//	    fields:
//	      city: ""
//	      zip: ""
//	  - name: Person
//	    qualified: people.Person
//	    fields:
//	      name: ""
//	      tags: []
//	      address: !shape Address
//
// Every field value is the scalar default of that field, except values tagged
// !shape, which reference another shape of the file by name. Field order in
// the file is the declared field order. Shapes may be listed in any order;
// Build declares them after the shapes they reference.
//
// # Checks
//
// Validate reports unknown versions, missing and duplicate names, unknown
// shape references (with suggestions), reserved field names and nesting
// cycles. Build refuses files with errors.
package shapefile
