package cmd

import (
	"fmt"
	"os"

	"github.com/novalang/nova/internal/compiler"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <file.nova> <output.c>",
	Short: "Compile a nova file and write the generated C to a file",
	Long: `Compile a nova source file to portable C and write it to the named
output file, exiting 0 on success.

This is the explicit-subcommand form of spec.md §6.1's two-argument
invocation (nova <file.nova> <output.c>).

Examples:
  nova build program.nova program.c`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return buildToFile(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func buildToFile(input, output string) error {
	src, err := loadNovaFile(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Compiling %s...\n", input)
	}

	result := compiler.Compile(src)
	if !result.OK() {
		printDiagnostics(result.Sink)
		return fmt.Errorf("compilation failed with %d error(s)", len(result.Sink.Diagnostics()))
	}

	if err := os.WriteFile(output, []byte(result.C), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "Error: cannot write output file:", output)
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", output)
	}

	return nil
}
