package parser

import (
	"testing"

	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/diag"
	"github.com/novalang/nova/internal/types"
)

func parse(t *testing.T, src string) (*ast.Program, *diag.Sink) {
	t.Helper()
	sink := diag.NewSink()
	prog := Parse(src, sink)
	return prog, sink
}

func TestParseVarDeclarationWithInitializer(t *testing.T) {
	prog, sink := parse(t, "int x = 5;")
	if sink.HadError() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	if len(prog.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(prog.Declarations))
	}
	decl, ok := prog.Declarations[0].(*ast.VarDeclaration)
	if !ok {
		t.Fatalf("expected *ast.VarDeclaration, got %T", prog.Declarations[0])
	}
	if decl.Name != "x" || !decl.DeclaredType.Equals(types.Int) {
		t.Errorf("unexpected decl: %+v", decl)
	}
	lit, ok := decl.Initializer.(*ast.IntLiteral)
	if !ok || lit.Value != 5 {
		t.Errorf("unexpected initializer: %+v", decl.Initializer)
	}
}

func TestParseArrayType(t *testing.T) {
	prog, sink := parse(t, "int[3] a;")
	if sink.HadError() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	decl := prog.Declarations[0].(*ast.VarDeclaration)
	arr, ok := decl.DeclaredType.(*types.Array)
	if !ok || arr.Size != 3 || arr.Elem != types.Int {
		t.Errorf("unexpected array type: %+v", decl.DeclaredType)
	}
}

func TestParseFunction(t *testing.T) {
	src := `function int add(int a, int b) { return a + b; }`
	prog, sink := parse(t, src)
	if sink.HadError() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	fn, ok := prog.Declarations[0].(*ast.Function)
	if !ok {
		t.Fatalf("expected *ast.Function, got %T", prog.Declarations[0])
	}
	if fn.Name != "add" || len(fn.Params) != 2 || fn.ReturnType != types.Int {
		t.Errorf("unexpected function: %+v", fn)
	}
	ret, ok := fn.Body.Statements[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("expected *ast.ReturnStatement, got %T", fn.Body.Statements[0])
	}
	bin, ok := ret.Value.(*ast.BinaryOp)
	if !ok || bin.Op != "+" {
		t.Errorf("unexpected return value: %+v", ret.Value)
	}
}

func TestAssignmentParsesAsBinaryOpEquals(t *testing.T) {
	prog, sink := parse(t, "x = 1;")
	if sink.HadError() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	exprStmt := prog.Declarations[0].(*ast.ExpressionStatement)
	bin, ok := exprStmt.Expr.(*ast.BinaryOp)
	if !ok || bin.Op != "=" {
		t.Errorf("expected BinaryOp with op \"=\", got %+v", exprStmt.Expr)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	prog, sink := parse(t, "1 + 2 * 3;")
	if sink.HadError() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	exprStmt := prog.Declarations[0].(*ast.ExpressionStatement)
	top, ok := exprStmt.Expr.(*ast.BinaryOp)
	if !ok || top.Op != "+" {
		t.Fatalf("expected top-level '+', got %+v", exprStmt.Expr)
	}
	right, ok := top.Right.(*ast.BinaryOp)
	if !ok || right.Op != "*" {
		t.Errorf("expected nested '*' on the right, got %+v", top.Right)
	}
}

func TestFunctionCallOnIdentifier(t *testing.T) {
	prog, sink := parse(t, "foo(1, x);")
	if sink.HadError() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	exprStmt := prog.Declarations[0].(*ast.ExpressionStatement)
	call, ok := exprStmt.Expr.(*ast.FunctionCall)
	if !ok || call.Name != "foo" || len(call.Args) != 2 {
		t.Errorf("unexpected call: %+v", exprStmt.Expr)
	}
}

func TestFunctionCallOnNonIdentifierIsError(t *testing.T) {
	_, sink := parse(t, "(1 + 2)(3);")
	if !sink.HadError() {
		t.Fatal("expected an error for calling a non-identifier expression")
	}
}

func TestArrayAccess(t *testing.T) {
	prog, sink := parse(t, "a[0];")
	if sink.HadError() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	exprStmt := prog.Declarations[0].(*ast.ExpressionStatement)
	access, ok := exprStmt.Expr.(*ast.ArrayAccess)
	if !ok {
		t.Fatalf("expected *ast.ArrayAccess, got %T", exprStmt.Expr)
	}
	if _, ok := access.Array.(*ast.Variable); !ok {
		t.Errorf("expected array target to be a Variable, got %T", access.Array)
	}
}

func TestIfElseStatement(t *testing.T) {
	src := `if (x > 0) { print(x); } else { print(0); }`
	prog, sink := parse(t, src)
	if sink.HadError() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	ifStmt, ok := prog.Declarations[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected *ast.IfStatement, got %T", prog.Declarations[0])
	}
	if ifStmt.Else == nil {
		t.Error("expected an else branch")
	}
}

func TestForStatementWithEmptyClauses(t *testing.T) {
	src := `for (;;) { print(1); }`
	_, sink := parse(t, src)
	if sink.HadError() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
}

func TestMissingSemicolonReportsError(t *testing.T) {
	_, sink := parse(t, "int x = 5")
	if !sink.HadError() {
		t.Fatal("expected a missing-semicolon error")
	}
}

func TestStrayCharacterAtTopLevelIsReported(t *testing.T) {
	_, sink := parse(t, "int x = 5; @")
	if !sink.HadError() {
		t.Fatal("expected a lexical error for the stray '@'")
	}
	found := false
	for _, d := range sink.Diagnostics() {
		if d.Message == "@" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the lexer's own ERROR-token message to surface, got %v", sink.Diagnostics())
	}
}

func TestUnterminatedStringAtTopLevelIsReported(t *testing.T) {
	prog, sink := parse(t, `"unterminated`)
	if !sink.HadError() {
		t.Fatalf("expected an unterminated-string error, got program %v", prog)
	}
	found := false
	for _, d := range sink.Diagnostics() {
		if d.Message == "Unterminated string" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an \"Unterminated string\" diagnostic, got %v", sink.Diagnostics())
	}
}

func TestUnexpectedTokenReportsExpectedExpression(t *testing.T) {
	_, sink := parse(t, "int x = ;")
	if !sink.HadError() {
		t.Fatal("expected an error for a missing expression")
	}
	found := false
	for _, d := range sink.Diagnostics() {
		if d.Message == "Expected expression" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an \"Expected expression\" diagnostic, got %v", sink.Diagnostics())
	}
}
