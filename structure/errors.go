package structure

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInputType is returned when Populate receives a value that is not map-shaped.
	ErrInputType = errors.New("input is not a mapping")
	// ErrFieldType is returned when a value does not fit the declared kind of a field.
	ErrFieldType = errors.New("field type mismatch")
	// ErrUnknownField is returned when a name is not declared on the record type.
	ErrUnknownField = errors.New("unknown field")
)

// FieldError describes a failure tied to a field of a record type.
// It wraps one of the package sentinels; use errors.Is to classify it.
type FieldError struct {
	// Type is the name of the record type the field belongs to.
	Type string
	// Path is the dotted field path relative to Type; empty for the record itself.
	Path string
	// Detail is an optional human-readable explanation.
	Detail string
	// Suggestions holds close declared names for unknown fields.
	Suggestions []string

	Err error
}

func (e *FieldError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)

	if e.Path != "" {
		b.WriteByte('.')
		b.WriteString(e.Path)
	}

	b.WriteString(": ")
	b.WriteString(e.Err.Error())

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if len(e.Suggestions) > 0 {
		quoted := make([]string, len(e.Suggestions))
		for i, s := range e.Suggestions {
			quoted[i] = strconv.Quote(s)
		}

		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(quoted, ", "))
	}

	return b.String()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}

	return parent + "." + name
}
