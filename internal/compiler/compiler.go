// Package compiler ties the four pipeline stages together into the single
// linear pass SPEC_FULL.md §2 describes: lex, parse, analyze, generate. This
// is the library entry point the CLI's build and run paths and the
// end-to-end tests call. Only the lex and parse debug subcommands use
// internal/lexer and internal/parser directly.
package compiler

import (
	"os"

	"github.com/novalang/nova/internal/codegen"
	"github.com/novalang/nova/internal/diag"
	"github.com/novalang/nova/internal/parser"
	"github.com/novalang/nova/internal/semantic"
)

// Result is the outcome of a single compilation: either C source on success,
// or a non-empty Sink on failure. Exactly one of (C != "", Sink.HadError())
// holds, matching spec.md §2's "pipeline aborts at the stage boundary"
// contract.
type Result struct {
	C    string
	Sink *diag.Sink
}

// OK reports whether compilation produced C with no diagnostics.
func (r Result) OK() bool { return !r.Sink.HadError() }

// Compile runs the full pipeline over source text and returns the result.
// Parsing and semantic analysis each get a chance to report every error they
// can find locally before the pipeline checks the sink and aborts, per
// spec.md §2/§5.
func Compile(source string) Result {
	sink := diag.NewSink()

	program := parser.Parse(source, sink)
	if sink.HadError() {
		return Result{Sink: sink}
	}

	semantic.Analyze(program, sink)
	if sink.HadError() {
		return Result{Sink: sink}
	}

	return Result{C: codegen.Generate(program), Sink: sink}
}

// CompileFile reads path and compiles its contents. An I/O error is a driver
// error (spec.md §7 kind 4) and is reported through the same Sink rather
// than as a Go error, so callers have one failure shape to branch on.
func CompileFile(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		sink := diag.NewSink()
		sink.AddWithoutPosition(err.Error())
		return Result{Sink: sink}
	}
	return Compile(string(data))
}
