package ast

import (
	"testing"

	"github.com/novalang/nova/internal/token"
	"github.com/novalang/nova/internal/types"
)

func tok(kind token.Kind, lexeme string) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme, Pos: token.Position{Line: 1, Column: 1}}
}

func TestLiteralTypesArePreset(t *testing.T) {
	i := NewIntLiteral(tok(token.INT_LITERAL, "3"), 3)
	if i.Type() != types.Int {
		t.Errorf("IntLiteral.Type() = %v, want Int singleton", i.Type())
	}

	f := NewFloatLiteral(tok(token.FLOAT_LITERAL, "1.5"), 1.5)
	if f.Type() != types.Float {
		t.Errorf("FloatLiteral.Type() = %v, want Float singleton", f.Type())
	}

	s := NewStringLiteral(tok(token.STRING_LITERAL, `"hi"`), "hi")
	if s.Type() != types.String {
		t.Errorf("StringLiteral.Type() = %v, want String singleton", s.Type())
	}

	b := NewBoolLiteral(tok(token.TRUE, "true"), true)
	if b.Type() != types.Bool {
		t.Errorf("BoolLiteral.Type() = %v, want Bool singleton", b.Type())
	}
}

func TestVariableTypeStartsNil(t *testing.T) {
	v := NewVariable(tok(token.IDENT, "x"), "x")
	if v.Type() != nil {
		t.Errorf("Variable.Type() = %v, want nil before analysis", v.Type())
	}
	v.SetType(types.Int)
	if v.Type() != types.Int {
		t.Errorf("Variable.Type() after SetType = %v, want Int", v.Type())
	}
}

func TestStringLiteralPreservesRawEscapes(t *testing.T) {
	s := NewStringLiteral(tok(token.STRING_LITERAL, `"a\nb"`), `a\nb`)
	if s.Value != `a\nb` {
		t.Errorf("StringLiteral.Value = %q, want raw passthrough %q", s.Value, `a\nb`)
	}
}

func TestBinaryOpString(t *testing.T) {
	left := NewIntLiteral(tok(token.INT_LITERAL, "1"), 1)
	right := NewIntLiteral(tok(token.INT_LITERAL, "2"), 2)
	op := NewBinaryOp(tok(token.PLUS, "+"), "+", left, right)
	if got, want := op.String(), "(1 + 2)"; got != want {
		t.Errorf("BinaryOp.String() = %q, want %q", got, want)
	}
}

func TestFunctionCallString(t *testing.T) {
	args := []Expression{
		NewIntLiteral(tok(token.INT_LITERAL, "1"), 1),
		NewVariable(tok(token.IDENT, "x"), "x"),
	}
	call := NewFunctionCall(tok(token.IDENT, "add"), "add", args)
	if got, want := call.String(), "add(1, x)"; got != want {
		t.Errorf("FunctionCall.String() = %q, want %q", got, want)
	}
}

func TestVarDeclarationOptionalInitializer(t *testing.T) {
	decl := NewVarDeclaration(tok(token.INT, "int"), types.Int, "x", nil)
	if got, want := decl.String(), "int x;"; got != want {
		t.Errorf("VarDeclaration.String() (no init) = %q, want %q", got, want)
	}

	withInit := NewVarDeclaration(tok(token.INT, "int"), types.Int, "x", NewIntLiteral(tok(token.INT_LITERAL, "5"), 5))
	if got, want := withInit.String(), "int x = 5;"; got != want {
		t.Errorf("VarDeclaration.String() (with init) = %q, want %q", got, want)
	}
}

func TestIfStatementWithAndWithoutElse(t *testing.T) {
	cond := NewBoolLiteral(tok(token.TRUE, "true"), true)
	then := NewBlock(tok(token.LBRACE, "{"), nil)
	ifNoElse := NewIfStatement(tok(token.IF, "if"), cond, then, nil)
	if ifNoElse.Else != nil {
		t.Error("Else should be nil when omitted")
	}

	els := NewBlock(tok(token.LBRACE, "{"), nil)
	ifWithElse := NewIfStatement(tok(token.IF, "if"), cond, then, els)
	if ifWithElse.Else == nil {
		t.Error("Else should be set when provided")
	}
}

func TestForStatementClausesAreIndependentlyOptional(t *testing.T) {
	body := NewBlock(tok(token.LBRACE, "{"), nil)
	f := NewForStatement(tok(token.FOR, "for"), nil, nil, nil, body)
	if got, want := f.String(), "for (; ; ) {\n}"; got != want {
		t.Errorf("ForStatement.String() = %q, want %q", got, want)
	}
}

func TestReturnStatementOptionalValue(t *testing.T) {
	bare := NewReturnStatement(tok(token.RETURN, "return"), nil)
	if got, want := bare.String(), "return;"; got != want {
		t.Errorf("ReturnStatement.String() (bare) = %q, want %q", got, want)
	}

	withValue := NewReturnStatement(tok(token.RETURN, "return"), NewIntLiteral(tok(token.INT_LITERAL, "0"), 0))
	if got, want := withValue.String(), "return 0;"; got != want {
		t.Errorf("ReturnStatement.String() (with value) = %q, want %q", got, want)
	}
}

func TestProgramPosDelegatesToFirstDeclaration(t *testing.T) {
	fn := NewFunction(tok(token.FUNCTION, "function"), types.Void, "main", nil, NewBlock(tok(token.LBRACE, "{"), nil))
	prog := NewProgram([]Node{fn})
	if prog.Pos() != fn.Pos() {
		t.Errorf("Program.Pos() = %v, want %v", prog.Pos(), fn.Pos())
	}

	empty := NewProgram(nil)
	if empty.Pos() != (token.Position{Line: 1, Column: 1}) {
		t.Errorf("empty Program.Pos() = %v, want {1 1}", empty.Pos())
	}
}

func TestAssignmentNodeExistsButIsUnusedByParser(t *testing.T) {
	target := NewVariable(tok(token.IDENT, "x"), "x")
	value := NewIntLiteral(tok(token.INT_LITERAL, "1"), 1)
	a := NewAssignment(tok(token.ASSIGN, "="), target, value)
	if got, want := a.String(), "x = 1;"; got != want {
		t.Errorf("Assignment.String() = %q, want %q", got, want)
	}
}
