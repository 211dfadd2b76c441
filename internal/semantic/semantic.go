// Package semantic type-checks a nova *ast.Program: it resolves every name
// against a scope stack, assigns a types.Type to every expression node, and
// reports violations to a diag.Sink. Dispatch is a type switch per node kind
// (analyzeExpression/analyzeStatement), not a visitor — see ast's doc
// comment for why.
package semantic

import (
	"fmt"

	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/diag"
	"github.com/novalang/nova/internal/symbols"
	"github.com/novalang/nova/internal/types"
)

// Analyzer walks a Program once, left to right, mutating each expression's
// Type slot in place and accumulating diagnostics in sink. It is not
// reentrant: build a fresh Analyzer per compilation.
type Analyzer struct {
	symbols *symbols.Table
	sink    *diag.Sink

	// currentReturnType is the enclosing function's declared return type,
	// or nil outside any function body (a bare return at program scope is
	// an error, mirroring the original analyzer's nullable field).
	currentReturnType types.Type
}

// New returns an Analyzer reporting to sink.
func New(sink *diag.Sink) *Analyzer {
	return &Analyzer{symbols: symbols.New(), sink: sink}
}

// Analyze runs semantic analysis over program. Check sink.HadError()
// afterward; codegen must not run over a program that failed analysis.
func Analyze(program *ast.Program, sink *diag.Sink) {
	a := New(sink)
	a.analyzeProgram(program)
}

func (a *Analyzer) analyzeProgram(program *ast.Program) {
	for _, decl := range program.Declarations {
		switch d := decl.(type) {
		case *ast.Function:
			a.analyzeFunction(d)
		case ast.Statement:
			a.analyzeStatement(d)
		}
	}
}

func (a *Analyzer) analyzeFunction(fn *ast.Function) {
	if a.symbols.IsDefinedInCurrentScope(fn.Name) {
		a.sink.AddWithoutPosition(fmt.Sprintf("Function '%s' already defined", fn.Name))
		return
	}

	paramTypes := make([]types.Type, len(fn.Params))
	for i, p := range fn.Params {
		paramTypes[i] = p.DeclaredType
	}
	funcType := types.NewFunction(fn.ReturnType, paramTypes)
	a.symbols.Define(fn.Name, funcType, true)

	a.symbols.EnterScope()
	prevReturn := a.currentReturnType
	a.currentReturnType = fn.ReturnType

	for _, p := range fn.Params {
		a.symbols.Define(p.Name, p.DeclaredType, false)
	}

	// The body is an ordinary Block and pushes its own scope in turn, so a
	// local declared in the body may shadow a parameter of the same name.
	a.analyzeBlock(fn.Body)

	a.currentReturnType = prevReturn
	a.symbols.ExitScope()
}

// --- Statements ------------------------------------------------------------

func (a *Analyzer) analyzeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDeclaration:
		a.analyzeVarDeclaration(s)
	case *ast.Assignment:
		a.analyzeAssignment(s)
	case *ast.Block:
		a.analyzeBlock(s)
	case *ast.IfStatement:
		a.analyzeIfStatement(s)
	case *ast.WhileStatement:
		a.analyzeWhileStatement(s)
	case *ast.ForStatement:
		a.analyzeForStatement(s)
	case *ast.ReturnStatement:
		a.analyzeReturnStatement(s)
	case *ast.PrintStatement:
		a.analyzePrintStatement(s)
	case *ast.ExpressionStatement:
		a.analyzeExpression(s.Expr)
	}
}

func (a *Analyzer) analyzeVarDeclaration(decl *ast.VarDeclaration) {
	if a.symbols.IsDefinedInCurrentScope(decl.Name) {
		a.sink.AddWithoutPosition(fmt.Sprintf("Variable '%s' already defined in this scope", decl.Name))
		return
	}

	if decl.Initializer != nil {
		a.analyzeExpression(decl.Initializer)
		if !isError(decl.Initializer.Type()) && !types.IsAssignable(decl.DeclaredType, decl.Initializer.Type()) {
			a.sink.AddWithoutPosition("Type mismatch in variable initialization")
		}
	}

	a.symbols.Define(decl.Name, decl.DeclaredType, false)
}

// isError reports whether t is the ERROR poison type (or absent, which
// analysis treats the same way): a prior rule already reported a diagnostic
// for the sub-expression t came from, so callers must not report a second,
// cascading diagnostic merely because t propagated here.
func isError(t types.Type) bool {
	return t == nil || t.Kind() == types.ERROR
}

// analyzeAssignment type-checks ast.Assignment itself. The parser never
// constructs this node (it folds `a = b` into a BinaryOp with op "="
// instead, handled in analyzeBinaryOp), but the logic is kept here so the
// node stays usable if a future caller constructs it directly.
func (a *Analyzer) analyzeAssignment(node *ast.Assignment) {
	a.analyzeExpression(node.Target)
	a.analyzeExpression(node.Value)

	if !isError(node.Target.Type()) && !isError(node.Value.Type()) &&
		!types.IsAssignable(node.Target.Type(), node.Value.Type()) {
		a.sink.AddWithoutPosition("Type mismatch in assignment")
	}
}

func (a *Analyzer) analyzeBlock(block *ast.Block) {
	a.symbols.EnterScope()
	for _, stmt := range block.Statements {
		a.analyzeStatement(stmt)
	}
	a.symbols.ExitScope()
}

func (a *Analyzer) analyzeIfStatement(node *ast.IfStatement) {
	a.analyzeExpression(node.Cond)
	if !isError(node.Cond.Type()) && node.Cond.Type().Kind() != types.BOOL {
		a.sink.AddWithoutPosition("If condition must be boolean")
	}

	a.analyzeStatement(node.Then)
	if node.Else != nil {
		a.analyzeStatement(node.Else)
	}
}

func (a *Analyzer) analyzeWhileStatement(node *ast.WhileStatement) {
	a.analyzeExpression(node.Cond)
	if !isError(node.Cond.Type()) && node.Cond.Type().Kind() != types.BOOL {
		a.sink.AddWithoutPosition("While condition must be boolean")
	}

	a.analyzeStatement(node.Body)
}

func (a *Analyzer) analyzeForStatement(node *ast.ForStatement) {
	a.symbols.EnterScope()

	if node.Init != nil {
		a.analyzeStatement(node.Init)
	}

	if node.Cond != nil {
		a.analyzeExpression(node.Cond)
		if !isError(node.Cond.Type()) && node.Cond.Type().Kind() != types.BOOL {
			a.sink.AddWithoutPosition("For condition must be boolean")
		}
	}

	if node.Update != nil {
		a.analyzeStatement(node.Update)
	}

	a.analyzeStatement(node.Body)

	a.symbols.ExitScope()
}

func (a *Analyzer) analyzeReturnStatement(node *ast.ReturnStatement) {
	if a.currentReturnType == nil {
		a.sink.AddWithoutPosition("Return statement outside function")
		return
	}

	if node.Value != nil {
		a.analyzeExpression(node.Value)
		if !isError(node.Value.Type()) && !types.IsAssignable(a.currentReturnType, node.Value.Type()) {
			a.sink.AddWithoutPosition("Return type mismatch")
		}
		return
	}

	if a.currentReturnType.Kind() != types.VOID {
		a.sink.AddWithoutPosition("Non-void function must return a value")
	}
}

func (a *Analyzer) analyzePrintStatement(node *ast.PrintStatement) {
	a.analyzeExpression(node.Expr)
}

// --- Expressions ------------------------------------------------------------

// analyzeExpression resolves expr's Type in place. Literal nodes already
// carry their type from construction; this only has work to do for names,
// accesses, and operators.
func (a *Analyzer) analyzeExpression(expr ast.Expression) {
	if expr == nil {
		return
	}

	switch e := expr.(type) {
	case *ast.IntLiteral, *ast.FloatLiteral, *ast.StringLiteral, *ast.BoolLiteral:
		// preset at construction; nothing to resolve
	case *ast.Variable:
		a.analyzeVariable(e)
	case *ast.ArrayAccess:
		a.analyzeArrayAccess(e)
	case *ast.BinaryOp:
		a.analyzeBinaryOp(e)
	case *ast.UnaryOp:
		a.analyzeUnaryOp(e)
	case *ast.FunctionCall:
		a.analyzeFunctionCall(e)
	}
}

func (a *Analyzer) analyzeVariable(node *ast.Variable) {
	sym, ok := a.symbols.Resolve(node.Name)
	if !ok {
		a.sink.AddWithoutPosition("Undefined variable: " + node.Name)
		node.SetType(types.Error)
		return
	}
	node.SetType(sym.Type)
}

func (a *Analyzer) analyzeArrayAccess(node *ast.ArrayAccess) {
	a.analyzeExpression(node.Array)
	a.analyzeExpression(node.Index)

	arrType, ok := node.Array.Type().(*types.Array)
	if !ok {
		if !isError(node.Array.Type()) {
			a.sink.AddWithoutPosition("Array access on non-array type")
		}
		node.SetType(types.Error)
		return
	}

	if !isError(node.Index.Type()) && node.Index.Type().Kind() != types.INT {
		a.sink.AddWithoutPosition("Array index must be integer")
	}

	node.SetType(arrType.Elem)
}

func (a *Analyzer) analyzeBinaryOp(node *ast.BinaryOp) {
	a.analyzeExpression(node.Left)
	a.analyzeExpression(node.Right)
	node.SetType(a.checkBinaryOp(node.Op, node.Left.Type(), node.Right.Type()))
}

func (a *Analyzer) checkBinaryOp(op string, left, right types.Type) types.Type {
	// A poisoned operand already produced a diagnostic where it originated;
	// silently propagate ERROR rather than reporting a second, cascading
	// complaint about this operator.
	if isError(left) || isError(right) {
		return types.Error
	}

	switch op {
	case "=":
		if !types.IsAssignable(left, right) {
			a.sink.AddWithoutPosition("Type mismatch in assignment")
			return types.Error
		}
		return left

	case "+", "-", "*", "/", "%":
		if !types.IsNumeric(left) || !types.IsNumeric(right) {
			a.sink.AddWithoutPosition("Numeric operands required for " + op)
			return types.Error
		}
		if left.Kind() == types.FLOAT || right.Kind() == types.FLOAT {
			return types.Float
		}
		return types.Int

	case "==", "!=", "<", "<=", ">", ">=":
		if !types.IsNumeric(left) || !types.IsNumeric(right) {
			if !left.Equals(right) {
				a.sink.AddWithoutPosition("Type mismatch in comparison")
				return types.Error
			}
		}
		return types.Bool

	case "&&", "||":
		if left.Kind() != types.BOOL || right.Kind() != types.BOOL {
			a.sink.AddWithoutPosition("Boolean operands required for " + op)
			return types.Error
		}
		return types.Bool
	}

	a.sink.AddWithoutPosition("Unknown binary operator: " + op)
	return types.Error
}

func (a *Analyzer) analyzeUnaryOp(node *ast.UnaryOp) {
	a.analyzeExpression(node.Operand)
	node.SetType(a.checkUnaryOp(node.Op, node.Operand.Type()))
}

func (a *Analyzer) checkUnaryOp(op string, operand types.Type) types.Type {
	if isError(operand) {
		return types.Error
	}

	switch op {
	case "-":
		if !types.IsNumeric(operand) {
			a.sink.AddWithoutPosition("Numeric operand required for unary -")
			return types.Error
		}
		return operand

	case "!":
		if operand.Kind() != types.BOOL {
			a.sink.AddWithoutPosition("Boolean operand required for !")
			return types.Error
		}
		return types.Bool
	}

	a.sink.AddWithoutPosition("Unknown unary operator: " + op)
	return types.Error
}

func (a *Analyzer) analyzeFunctionCall(node *ast.FunctionCall) {
	sym, ok := a.symbols.Resolve(node.Name)
	if !ok {
		a.sink.AddWithoutPosition("Undefined function: " + node.Name)
		node.SetType(types.Error)
		return
	}

	if !sym.IsFunction {
		a.sink.AddWithoutPosition(node.Name + " is not a function")
		node.SetType(types.Error)
		return
	}

	funcType := sym.Type.(*types.Function)

	if len(node.Args) != len(funcType.Params) {
		a.sink.AddWithoutPosition("Function argument count mismatch")
		node.SetType(types.Error)
		return
	}

	for i, arg := range node.Args {
		a.analyzeExpression(arg)
		if !isError(arg.Type()) && !types.IsAssignable(funcType.Params[i], arg.Type()) {
			a.sink.AddWithoutPosition("Argument type mismatch")
		}
	}

	node.SetType(funcType.Return)
}
