package shapefile

import (
	"fmt"
	"slices"
	"strings"

	"github.com/y-du/simple-struct/internal/diagnostic"
	"github.com/y-du/simple-struct/internal/match"
	"github.com/y-du/simple-struct/structure"
)

// Validate checks a shape file for structural problems. It does not look at
// default values beyond their presence.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "shape file is nil", "", "")
		return res
	}

	if f.Version != "" && f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported version %q, expected %q", f.Version, CurrentVersion), "", "")
	}

	index := shapeIndex(f)
	names := f.ShapeNames()

	for i := range f.Shapes {
		s := &f.Shapes[i]

		if s.Name == "" {
			res.AddError("missing_shape_name", fmt.Sprintf("shape #%d has no name", i+1), "", "")
			continue
		}

		if index[s.Name] != i {
			res.AddError("duplicate_shape", fmt.Sprintf("duplicate shape %q", s.Name), s.Name, "")
			continue
		}

		validateFields(res, s, index, names)
	}

	validateCycles(res, f, index)

	return res
}

func validateFields(res *diagnostic.Diagnostics, s *ShapeDef, index map[string]int, names []string) {
	if len(s.Fields) == 0 {
		res.AddInfo("empty_shape", "shape declares no fields", s.Name, "")
		return
	}

	seen := map[string]struct{}{}

	for _, fd := range s.Fields {
		if fd.Name == "" {
			res.Add(diagnostic.Diagnostic{
				Severity: diagnostic.SeverityError,
				Code:     "missing_field_name",
				Message:  "field has no name",
				Shape:    s.Name,
				Line:     fd.Line,
			})

			continue
		}

		if strings.HasPrefix(fd.Name, structure.ReservedPrefix) {
			res.Add(diagnostic.Diagnostic{
				Severity: diagnostic.SeverityWarning,
				Code:     "reserved_field",
				Message:  fmt.Sprintf("fields starting with %q are ignored", structure.ReservedPrefix),
				Shape:    s.Name,
				Field:    fd.Name,
				Line:     fd.Line,
			})
		}

		if _, ok := seen[fd.Name]; ok {
			res.Add(diagnostic.Diagnostic{
				Severity: diagnostic.SeverityError,
				Code:     "duplicate_field",
				Message:  fmt.Sprintf("duplicate field %q", fd.Name),
				Shape:    s.Name,
				Field:    fd.Name,
				Line:     fd.Line,
			})
		}

		seen[fd.Name] = struct{}{}

		if !fd.IsNested() {
			continue
		}

		if _, ok := index[fd.Shape]; !ok {
			res.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityError,
				Code:        "unknown_shape",
				Message:     fmt.Sprintf("unknown shape %q", fd.Shape),
				Shape:       s.Name,
				Field:       fd.Name,
				Line:        fd.Line,
				Suggestions: match.Suggest(fd.Shape, names, 3),
			})
		}
	}
}

func validateCycles(res *diagnostic.Diagnostics, f *File, index map[string]int) {
	order, err := shapeOrder(f, index)
	if err == nil {
		return
	}

	ordered := make(map[int]bool, len(order))
	for _, i := range order {
		ordered[i] = true
	}

	var stuck []string

	for i, s := range f.Shapes {
		if !ordered[i] && index[s.Name] == i {
			stuck = append(stuck, s.Name)
		}
	}

	slices.Sort(stuck)

	for _, name := range stuck {
		res.AddError("shape_cycle", fmt.Sprintf("shape %q cannot be ordered: nesting cycle among %s", name, strings.Join(stuck, ", ")), name, "")
	}
}

// shapeIndex maps each shape name to its first position in the file.
func shapeIndex(f *File) map[string]int {
	index := make(map[string]int, len(f.Shapes))

	for i, s := range f.Shapes {
		if s.Name == "" {
			continue
		}

		if _, ok := index[s.Name]; !ok {
			index[s.Name] = i
		}
	}

	return index
}

// shapeOrder orders the uniquely named shapes so that referenced shapes come first.
// Unknown references and duplicate shapes are left out.
func shapeOrder(f *File, index map[string]int) ([]int, error) {
	return topoSort(len(f.Shapes), func(i int) []int {
		s := f.Shapes[i]
		if s.Name == "" || index[s.Name] != i {
			return nil
		}

		var deps []int

		for _, ref := range s.Fields.References() {
			if j, ok := index[ref]; ok {
				deps = append(deps, j)
			}
		}

		return deps
	})
}
