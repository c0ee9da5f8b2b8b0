// Package main provides the CLI entrypoint for simple-struct.
//
// simple-struct loads record shapes from a YAML shape file and:
//   - validates the file and reports diagnostics
//   - prints the default record of a shape
//   - populates a shape from a JSON or YAML payload and prints the result
//   - lists the field tree of a shape
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
)

var version = "0.2.0"

var (
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
)

type cliParams struct {
	shapes  string
	verbose bool
}

func main() {
	if err := execRootCmd(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// linePrinter keeps stdout free for command output.
func linePrinter(w io.Writer) func(logger.TLogLevel, string) {
	return func(_ logger.TLogLevel, line string) {
		fmt.Fprintln(w, line)
	}
}

func execRootCmd(args []string, in io.Reader, out, errOut io.Writer) error {
	logger.PrintLine = linePrinter(errOut)

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(errOut, red("error:"), err)
	}

	return err
}

func newRootCmd() *cobra.Command {
	params := &cliParams{}

	rootCmd := &cobra.Command{
		Use:           "simple-struct",
		Short:         "Declare nested record shapes and map JSON or YAML payloads onto them",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if params.verbose {
				logger.SetLogLevel(logger.LogLevelVerbose)
			} else {
				logger.SetLogLevel(logger.LogLevelInfo)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&params.shapes, "shapes", "", "Path to the YAML shape file")
	rootCmd.PersistentFlags().BoolVar(&params.verbose, "verbose", false, "Log loading steps to stderr")

	rootCmd.AddCommand(
		newValidateCmd(params),
		newDefaultsCmd(params),
		newPopulateCmd(params),
		newFieldsCmd(params),
	)

	return rootCmd
}
