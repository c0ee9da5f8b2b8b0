package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"gopkg.in/yaml.v3"

	"github.com/y-du/simple-struct/structure"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

type outputParams struct {
	typeName string
	format   string
}

func (o *outputParams) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.typeName, "type", "", "Shape to use (defaults to the first shape of the file)")
	cmd.Flags().StringVar(&o.format, "format", formatJSON, "Output format: json or yaml")
}

func newDefaultsCmd(params *cliParams) *cobra.Command {
	var output outputParams

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the record a shape yields without input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := loadType(params, output.typeName)
			if err != nil {
				return err
			}

			return writeMap(cmd.OutOrStdout(), t.Defaults(), output.format)
		},
	}

	output.bind(cmd)

	return cmd
}

func newPopulateCmd(params *cliParams) *cobra.Command {
	var (
		output      outputParams
		input       string
		inputFormat string
		dump        bool
	)

	cmd := &cobra.Command{
		Use:   "populate",
		Short: "Populate a shape from a JSON or YAML payload and print the flattened record",
		Long:  "Populate a shape from a JSON or YAML payload and print the flattened record.\nAn empty or null payload yields the shape defaults.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := loadType(params, output.typeName)
			if err != nil {
				return err
			}

			payload, err := readPayload(cmd.InOrStdin(), input, inputFormat)
			if err != nil {
				return err
			}

			r, err := t.New(payload)
			if err != nil {
				return err
			}

			logger.Verbose(fmt.Sprintf("populated %s with %d fields", r.Type().Name(), r.Type().Len()))

			if dump {
				spew.Fdump(cmd.ErrOrStderr(), r.Flatten().ToMap())
			}

			return writeMap(cmd.OutOrStdout(), r.Flatten(), output.format)
		},
	}

	output.bind(cmd)
	cmd.Flags().StringVar(&input, "input", "-", "Payload file, - for stdin")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "Payload format: json or yaml (default: from file extension, json for stdin)")
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the populated record to stderr")

	return cmd
}

func readPayload(stdin io.Reader, path, format string) (*structure.Map, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return structure.NewMap(), nil
	}

	if format == "" {
		format = formatJSON

		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = formatYAML
		}
	}

	m := structure.NewMap()

	switch format {
	case formatJSON:
		err = json.Unmarshal(data, m)
	case formatYAML:
		err = yaml.Unmarshal(data, m)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	return m, nil
}

func writeMap(w io.Writer, m *structure.Map, format string) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case formatJSON:
		data, err = json.MarshalIndent(m, "", "  ")
		data = append(data, '\n')
	case formatYAML:
		data, err = yaml.Marshal(m)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
