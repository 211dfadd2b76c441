// Package ast defines nova's abstract syntax tree. Every node is reachable
// through one of three interfaces (Node, Expression, Statement); analysis and
// code generation dispatch over the concrete types with a type switch rather
// than a visitor — see the internal/ast section of DESIGN.md for why.
//
// Two fields in the original design shared the name "type" with different
// meanings (a declaration's annotated type vs. an expression's inferred
// type). Here they are named distinctly: declarations carry DeclaredType,
// expressions carry a Type()/SetType() pair.
package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/novalang/nova/internal/token"
	"github.com/novalang/nova/internal/types"
)

// Node is the interface every AST node satisfies.
type Node interface {
	TokenLiteral() string
	Pos() token.Position
	String() string
}

// Expression is a node that produces a value. Its Type slot is nil before
// semantic analysis runs, except for literals, which are preset to the
// matching primitive singleton at construction time.
type Expression interface {
	Node
	expressionNode()
	Type() types.Type
	SetType(types.Type)
}

// Statement is a node that performs an action without producing a value.
type Statement interface {
	Node
	statementNode()
}

// typedExpr is the common storage embedded into every concrete expression
// node: the token that anchors its position, and its type slot. Embedding
// it supplies TokenLiteral, Pos, Type, SetType and the expressionNode
// marker to every expression type below.
type typedExpr struct {
	tok token.Token
	typ types.Type
}

func (e *typedExpr) TokenLiteral() string { return e.tok.Lexeme }
func (e *typedExpr) Pos() token.Position  { return e.tok.Pos }
func (e *typedExpr) Type() types.Type     { return e.typ }
func (e *typedExpr) SetType(t types.Type) { e.typ = t }
func (e *typedExpr) expressionNode()      {}

// --- Literals ---------------------------------------------------------

// IntLiteral is an integer literal; its value fits in the range the lexer
// accepts (see lexer.MinIntLiteral/MaxIntLiteral).
type IntLiteral struct {
	typedExpr
	Value int64
}

func NewIntLiteral(tok token.Token, value int64) *IntLiteral {
	n := &IntLiteral{Value: value}
	n.tok, n.typ = tok, types.Int
	return n
}
func (n *IntLiteral) String() string { return n.tok.Lexeme }

// FloatLiteral is an IEEE-754 binary32 literal.
type FloatLiteral struct {
	typedExpr
	Value float32
}

func NewFloatLiteral(tok token.Token, value float32) *FloatLiteral {
	n := &FloatLiteral{Value: value}
	n.tok, n.typ = tok, types.Float
	return n
}
func (n *FloatLiteral) String() string { return n.tok.Lexeme }

// StringLiteral holds the raw bytes between the quotes, verbatim: escape
// sequences are not decoded here (see SPEC_FULL.md §5, the passthrough
// contract). The target C compiler decodes them when it parses the emitted
// string literal.
type StringLiteral struct {
	typedExpr
	Value string
}

func NewStringLiteral(tok token.Token, value string) *StringLiteral {
	n := &StringLiteral{Value: value}
	n.tok, n.typ = tok, types.String
	return n
}
func (n *StringLiteral) String() string { return fmt.Sprintf("%q", n.Value) }

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	typedExpr
	Value bool
}

func NewBoolLiteral(tok token.Token, value bool) *BoolLiteral {
	n := &BoolLiteral{Value: value}
	n.tok, n.typ = tok, types.Bool
	return n
}
func (n *BoolLiteral) String() string {
	if n.Value {
		return "true"
	}
	return "false"
}

// --- Names and access ---------------------------------------------------

// Variable is a bare name reference; Type is nil until the analyser resolves
// it against the symbol table.
type Variable struct {
	typedExpr
	Name string
}

func NewVariable(tok token.Token, name string) *Variable {
	n := &Variable{Name: name}
	n.tok = tok
	return n
}
func (n *Variable) String() string { return n.Name }

// ArrayAccess indexes an array-typed expression.
type ArrayAccess struct {
	typedExpr
	Array Expression
	Index Expression
}

func NewArrayAccess(tok token.Token, array, index Expression) *ArrayAccess {
	n := &ArrayAccess{Array: array, Index: index}
	n.tok = tok
	return n
}
func (n *ArrayAccess) String() string {
	return fmt.Sprintf("%s[%s]", n.Array.String(), n.Index.String())
}

// BinaryOp is a two-operand expression. Op is one of:
// "+","-","*","/","%","==","!=","<","<=",">",">=","&&","||","=".
// The "=" form is how assignment is represented — see Assignment below for
// why a dedicated statement node exists but is unused by the parser.
type BinaryOp struct {
	typedExpr
	Op    string
	Left  Expression
	Right Expression
}

func NewBinaryOp(tok token.Token, op string, left, right Expression) *BinaryOp {
	n := &BinaryOp{Op: op, Left: left, Right: right}
	n.tok = tok
	return n
}
func (n *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left.String(), n.Op, n.Right.String())
}

// UnaryOp is a prefix expression: "-" (numeric negation) or "!" (logical
// not).
type UnaryOp struct {
	typedExpr
	Op      string
	Operand Expression
}

func NewUnaryOp(tok token.Token, op string, operand Expression) *UnaryOp {
	n := &UnaryOp{Op: op, Operand: operand}
	n.tok = tok
	return n
}
func (n *UnaryOp) String() string {
	return fmt.Sprintf("(%s%s)", n.Op, n.Operand.String())
}

// FunctionCall invokes Name with Args. The parser only produces this node
// when the callee parsed as a bare Variable; any other postfix call target
// is a syntax error (see parser.go).
type FunctionCall struct {
	typedExpr
	Name string
	Args []Expression
}

func NewFunctionCall(tok token.Token, name string, args []Expression) *FunctionCall {
	n := &FunctionCall{Name: name, Args: args}
	n.tok = tok
	return n
}
func (n *FunctionCall) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", n.Name, strings.Join(parts, ", "))
}

// --- Statements ----------------------------------------------------------

type stmtBase struct {
	tok token.Token
}

func (s *stmtBase) TokenLiteral() string { return s.tok.Lexeme }
func (s *stmtBase) Pos() token.Position  { return s.tok.Pos }
func (s *stmtBase) statementNode()       {}

// VarDeclaration introduces Name with DeclaredType in the current scope,
// optionally initialized.
type VarDeclaration struct {
	stmtBase
	DeclaredType types.Type
	Name         string
	Initializer  Expression // nil if absent
}

func NewVarDeclaration(tok token.Token, declaredType types.Type, name string, init Expression) *VarDeclaration {
	return &VarDeclaration{stmtBase: stmtBase{tok: tok}, DeclaredType: declaredType, Name: name, Initializer: init}
}
func (n *VarDeclaration) String() string {
	s := fmt.Sprintf("%s %s", n.DeclaredType.String(), n.Name)
	if n.Initializer != nil {
		s += " = " + n.Initializer.String()
	}
	return s + ";"
}

// Assignment is a dedicated assignment statement node. The grammar in
// SPEC_FULL.md §1/spec.md §4.2 parses assignment as a BinaryOp with op "=";
// this type exists only because the Statement variant list names it
// (reserved for future use) — the parser never constructs one.
type Assignment struct {
	stmtBase
	Target Expression
	Value  Expression
}

func NewAssignment(tok token.Token, target, value Expression) *Assignment {
	return &Assignment{stmtBase: stmtBase{tok: tok}, Target: target, Value: value}
}
func (n *Assignment) String() string {
	return fmt.Sprintf("%s = %s;", n.Target.String(), n.Value.String())
}

// Block is a `{ ... }` sequence of statements; it introduces its own scope.
type Block struct {
	stmtBase
	Statements []Statement
}

func NewBlock(tok token.Token, statements []Statement) *Block {
	return &Block{stmtBase: stmtBase{tok: tok}, Statements: statements}
}
func (n *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range n.Statements {
		out.WriteString("  " + s.String() + "\n")
	}
	out.WriteString("}")
	return out.String()
}

// IfStatement is `if (cond) then [else else]`.
type IfStatement struct {
	stmtBase
	Cond Expression
	Then Statement
	Else Statement // nil if absent
}

func NewIfStatement(tok token.Token, cond Expression, then, els Statement) *IfStatement {
	return &IfStatement{stmtBase: stmtBase{tok: tok}, Cond: cond, Then: then, Else: els}
}
func (n *IfStatement) String() string {
	s := fmt.Sprintf("if (%s) %s", n.Cond.String(), n.Then.String())
	if n.Else != nil {
		s += " else " + n.Else.String()
	}
	return s
}

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	stmtBase
	Cond Expression
	Body Statement
}

func NewWhileStatement(tok token.Token, cond Expression, body Statement) *WhileStatement {
	return &WhileStatement{stmtBase: stmtBase{tok: tok}, Cond: cond, Body: body}
}
func (n *WhileStatement) String() string {
	return fmt.Sprintf("while (%s) %s", n.Cond.String(), n.Body.String())
}

// ForStatement is a C-style for loop; Init, Cond, and Update are each
// independently optional.
type ForStatement struct {
	stmtBase
	Init   Statement  // nil if the header's init clause was empty
	Cond   Expression // nil if the condition clause was empty
	Update Statement  // nil if the update clause was empty
	Body   Statement
}

func NewForStatement(tok token.Token, init Statement, cond Expression, update Statement, body Statement) *ForStatement {
	return &ForStatement{stmtBase: stmtBase{tok: tok}, Init: init, Cond: cond, Update: update, Body: body}
}
func (n *ForStatement) String() string {
	initStr, condStr, updStr := "", "", ""
	if n.Init != nil {
		initStr = n.Init.String()
	}
	if n.Cond != nil {
		condStr = n.Cond.String()
	}
	if n.Update != nil {
		updStr = n.Update.String()
	}
	return fmt.Sprintf("for (%s; %s; %s) %s", initStr, condStr, updStr, n.Body.String())
}

// ReturnStatement optionally carries a value.
type ReturnStatement struct {
	stmtBase
	Value Expression // nil if bare `return;`
}

func NewReturnStatement(tok token.Token, value Expression) *ReturnStatement {
	return &ReturnStatement{stmtBase: stmtBase{tok: tok}, Value: value}
}
func (n *ReturnStatement) String() string {
	if n.Value == nil {
		return "return;"
	}
	return "return " + n.Value.String() + ";"
}

// PrintStatement is `print(expr);`.
type PrintStatement struct {
	stmtBase
	Expr Expression
}

func NewPrintStatement(tok token.Token, expr Expression) *PrintStatement {
	return &PrintStatement{stmtBase: stmtBase{tok: tok}, Expr: expr}
}
func (n *PrintStatement) String() string { return fmt.Sprintf("print(%s);", n.Expr.String()) }

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	stmtBase
	Expr Expression
}

func NewExpressionStatement(tok token.Token, expr Expression) *ExpressionStatement {
	return &ExpressionStatement{stmtBase: stmtBase{tok: tok}, Expr: expr}
}
func (n *ExpressionStatement) String() string { return n.Expr.String() + ";" }

// --- Top level -------------------------------------------------------------

// Parameter is one entry in a Function's parameter list.
type Parameter struct {
	DeclaredType types.Type
	Name         string
}

// Function is a top-level function or procedure declaration.
type Function struct {
	tok        token.Token
	ReturnType types.Type
	Name       string
	Params     []Parameter
	Body       *Block
}

func NewFunction(tok token.Token, returnType types.Type, name string, params []Parameter, body *Block) *Function {
	return &Function{tok: tok, ReturnType: returnType, Name: name, Params: params, Body: body}
}
func (n *Function) TokenLiteral() string { return n.tok.Lexeme }
func (n *Function) Pos() token.Position  { return n.tok.Pos }
func (n *Function) String() string {
	parts := make([]string, len(n.Params))
	for i, p := range n.Params {
		parts[i] = fmt.Sprintf("%s %s", p.DeclaredType.String(), p.Name)
	}
	return fmt.Sprintf("function %s %s(%s) %s", n.ReturnType.String(), n.Name, strings.Join(parts, ", "), n.Body.String())
}

// Program is the root node: an ordered list of top-level Function and
// Statement declarations, interleaved as the source wrote them.
type Program struct {
	Declarations []Node
}

func NewProgram(decls []Node) *Program {
	return &Program{Declarations: decls}
}
func (p *Program) TokenLiteral() string {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].TokenLiteral()
	}
	return ""
}
func (p *Program) Pos() token.Position {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}
func (p *Program) String() string {
	var out bytes.Buffer
	for _, d := range p.Declarations {
		out.WriteString(d.String())
		out.WriteString("\n")
	}
	return out.String()
}
