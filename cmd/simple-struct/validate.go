package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/y-du/simple-struct/internal/diagnostic"
	"github.com/y-du/simple-struct/shapefile"
)

func newValidateCmd(params *cliParams) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a shape file and print its diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := loadShapes(params)
			if err != nil {
				return err
			}

			res := shapefile.Validate(f)
			for _, d := range res.All() {
				fmt.Fprintln(cmd.OutOrStdout(), severityLabel(d.Severity), d.String())
			}

			if res.HasErrors() {
				return fmt.Errorf("%s: %d error(s)", params.shapes, len(res.Errors))
			}

			fmt.Fprintln(cmd.OutOrStdout(), green("ok:"), len(f.Shapes), "shape(s)")

			return nil
		},
	}
}

func severityLabel(s diagnostic.Severity) string {
	label := s.String() + ":"

	switch s {
	case diagnostic.SeverityError:
		return red(label)
	case diagnostic.SeverityWarning:
		return yellow(label)
	default:
		return label
	}
}
