package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/y-du/simple-struct/structure"
)

func newFieldsCmd(params *cliParams) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Print the field tree of a shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := loadType(params, typeName)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", t.Name(), t.QualifiedName())
			printFields(cmd.OutOrStdout(), t, 1)

			return nil
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "", "Shape to print (defaults to the first shape of the file)")

	return cmd
}

func printFields(w io.Writer, t *structure.Type, depth int) {
	indent := strings.Repeat("  ", depth)

	for _, f := range t.Fields() {
		if f.IsNested() {
			fmt.Fprintf(w, "%s%s: %s\n", indent, f.Name, f.Type.Name())
			printFields(w, f.Type, depth+1)

			continue
		}

		fmt.Fprintf(w, "%s%s = %#v\n", indent, f.Name, f.Default)
	}
}
