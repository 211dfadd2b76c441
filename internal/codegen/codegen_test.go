package codegen

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/novalang/nova/internal/diag"
	"github.com/novalang/nova/internal/parser"
	"github.com/novalang/nova/internal/semantic"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	sink := diag.NewSink()
	prog := parser.Parse(src, sink)
	if sink.HadError() {
		t.Fatalf("unexpected parse errors: %v", sink.Diagnostics())
	}
	semantic.Analyze(prog, sink)
	if sink.HadError() {
		t.Fatalf("unexpected analysis errors: %v", sink.Diagnostics())
	}
	return Generate(prog)
}

func TestGeneratedProgramIncludesStandardHeaders(t *testing.T) {
	out := generate(t, `function void main() { print(1); }`)
	for _, header := range []string{"#include <stdio.h>", "#include <stdlib.h>", "#include <string.h>"} {
		if !strings.Contains(out, header) {
			t.Errorf("generated output missing %q:\n%s", header, out)
		}
	}
}

func TestMainFunctionRendersAsIntMainAndReturnsZero(t *testing.T) {
	out := generate(t, `function void main() { print(1); }`)
	if !strings.Contains(out, "int main(") {
		t.Errorf("main should render as \"int main(\", got:\n%s", out)
	}
	if !strings.Contains(out, "return 0;") {
		t.Errorf("void main should get an implicit \"return 0;\", got:\n%s", out)
	}
}

func TestNonMainFunctionUsesDeclaredReturnType(t *testing.T) {
	out := generate(t, `function int add(int a, int b) { return a + b; }`)
	if !strings.Contains(out, "int add(int a, int b) {") {
		t.Errorf("unexpected function signature, got:\n%s", out)
	}
}

func TestArrayDeclarationRendersBracketedSize(t *testing.T) {
	out := generate(t, `function void main() { int[3] a; }`)
	if !strings.Contains(out, "int a[3];") {
		t.Errorf("expected bracketed array declaration, got:\n%s", out)
	}
}

func TestPrintBoolUsesTernary(t *testing.T) {
	out := generate(t, `function void main() { bool b = true; print(b); }`)
	if !strings.Contains(out, `) ? "true" : "false"`) {
		t.Errorf("expected a bool print to render as a ternary, got:\n%s", out)
	}
}

func TestUninitializedStringDeclaresAsNull(t *testing.T) {
	out := generate(t, `function void main() { string s; }`)
	if !strings.Contains(out, "char* s = NULL;") {
		t.Errorf("expected an uninitialized string to default to NULL, got:\n%s", out)
	}
}

func TestForLoopDesugarsToCStyleHeader(t *testing.T) {
	out := generate(t, `function void main() { for (int i = 0; i < 3; i = i + 1) { print(i); } }`)
	if !strings.Contains(out, "for (int i = 0; (i < 3); ") {
		t.Errorf("unexpected for-loop header, got:\n%s", out)
	}
}

func TestFullProgramSnapshot(t *testing.T) {
	out := generate(t, `
		function int add(int a, int b) {
			return a + b;
		}
		function void main() {
			int x = add(1, 2);
			print(x);
			if (x > 2) {
				print(true);
			} else {
				print(false);
			}
		}
	`)
	snaps.MatchSnapshot(t, out)
}

func TestArrayAndLoopSnapshot(t *testing.T) {
	out := generate(t, `
		function void main() {
			int[3] a;
			a[0] = 1;
			for (int i = 0; i < 3; i = i + 1) {
				print(a[i]);
			}
		}
	`)
	snaps.MatchSnapshot(t, out)
}
