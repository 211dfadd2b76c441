package cmd

import (
	"fmt"

	"github.com/novalang/nova/internal/diag"
	"github.com/novalang/nova/internal/parser"
	"github.com/spf13/cobra"
)

var parseExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a nova file and print the resulting AST",
	Long: `Parse nova source and print the Abstract Syntax Tree via its String()
form. Reads from stdin if no file is given. Debug tooling, grounded on the
teacher's own lex/parse subcommands.

Examples:
  nova parse program.nova
  nova parse -e "function void main() { print(1); }"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline code instead of reading from a file")
}

func runParseCmd(_ *cobra.Command, args []string) error {
	input, err := readLexParseInput(parseExpr, args)
	if err != nil {
		return err
	}

	sink := diag.NewSink()
	program := parser.Parse(input, sink)

	if sink.HadError() {
		printDiagnostics(sink)
		return fmt.Errorf("parsing failed with %d error(s)", len(sink.Diagnostics()))
	}

	fmt.Println(program.String())
	return nil
}
