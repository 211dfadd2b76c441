package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/novalang/nova/internal/diag"
)

// loadNovaFile enforces spec.md §6.1's input contract: the path must exist
// and must end in ".nova". Anything else is a driver error (spec.md §7 kind
// 4), reported the same way compile/analysis errors are.
func loadNovaFile(path string) (string, error) {
	if !strings.HasSuffix(path, ".nova") {
		return "", fmt.Errorf("input file must have a .nova extension: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot open input file: %s", path)
	}
	return string(data), nil
}

// printDiagnostics writes every diagnostic in sink to stderr in spec.md
// §7's exact wording, one per line.
func printDiagnostics(sink *diag.Sink) {
	fmt.Fprint(os.Stderr, diag.FormatAll(sink))
}
