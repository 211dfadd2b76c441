package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/novalang/nova/internal/lexer"
	"github.com/novalang/nova/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexExpr    string
	showPos    bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a nova file and print the resulting tokens",
	Long: `Tokenize (lex) a nova program and print the resulting tokens, one per
line. Reads from stdin if no file is given. Debug tooling, not part of the
compile pipeline's input contract — unlike build/run, lex does not require
a .nova extension.

Examples:
  nova lex program.nova
  nova lex -e "int x = 1 + 2;"
  nova lex --show-pos --only-errors program.nova`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexExpr, "eval", "e", "", "tokenize inline code instead of reading from a file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show each token's line:column")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only ERROR tokens")
}

func runLex(_ *cobra.Command, args []string) error {
	input, err := readLexParseInput(lexExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	count, errCount := 0, 0

	for {
		tok := l.NextToken()

		if onlyErrors && tok.Kind != token.ERROR {
			if tok.Kind == token.EOF {
				break
			}
			continue
		}

		count++
		if tok.Kind == token.ERROR {
			errCount++
		}

		printToken(tok)

		if tok.Kind == token.EOF {
			break
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "tokens: %d, errors: %d\n", count, errCount)
	}

	if errCount > 0 {
		return fmt.Errorf("found %d error token(s)", errCount)
	}
	return nil
}

func printToken(tok token.Token) {
	out := fmt.Sprintf("%-14s %q", tok.Kind, tok.Lexeme)
	if showPos {
		out += " @" + tok.Pos.String()
	}
	fmt.Println(out)
}

// readLexParseInput resolves the shared -e/file/stdin precedence the lex
// and parse debug commands use.
func readLexParseInput(expr string, args []string) (string, error) {
	if expr != "" {
		return expr, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("error reading file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), nil
}
