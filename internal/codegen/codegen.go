// Package codegen renders a type-checked *ast.Program as portable C source.
// It assumes semantic.Analyze has already run without error: every
// expression's Type() is populated and every name resolves.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/types"
)

// Generator accumulates C source text. The zero value is ready to use.
type Generator struct {
	out    strings.Builder
	indent int
}

// Generate renders program as a complete, compilable C translation unit.
func Generate(program *ast.Program) string {
	g := &Generator{}
	g.writeLine("#include <stdio.h>")
	g.writeLine("#include <stdlib.h>")
	g.writeLine("#include <string.h>")
	g.writeLine("")

	for _, decl := range program.Declarations {
		g.genDeclaration(decl)
		g.writeLine("")
	}

	return g.out.String()
}

func (g *Generator) writeIndent() {
	for i := 0; i < g.indent; i++ {
		g.out.WriteString("    ")
	}
}

func (g *Generator) write(text string) { g.out.WriteString(text) }

func (g *Generator) writeLine(text string) {
	g.writeIndent()
	g.out.WriteString(text)
	g.out.WriteString("\n")
}

// cType maps a nova type to its C spelling. Arrays render as the element
// type followed by "*": nova's one-dimensional fixed arrays decay to
// pointers exactly like a C array parameter would, and the declaration
// site (genVarDeclaration) is what actually emits the bracketed size.
func cType(t types.Type) string {
	switch t.Kind() {
	case types.INT:
		return "int"
	case types.FLOAT:
		return "float"
	case types.STRING:
		return "char*"
	case types.BOOL:
		return "int"
	case types.VOID:
		return "void"
	case types.ARRAY:
		return cType(t.(*types.Array).Elem) + "*"
	default:
		return "void*"
	}
}

func (g *Generator) genDeclaration(decl ast.Node) {
	switch d := decl.(type) {
	case *ast.Function:
		g.genFunction(d)
	case ast.Statement:
		g.genStatement(d)
	}
}

func (g *Generator) genFunction(fn *ast.Function) {
	if fn.Name == "main" {
		g.write("int main(")
	} else {
		g.write(cType(fn.ReturnType) + " " + fn.Name + "(")
	}

	for i, p := range fn.Params {
		if i > 0 {
			g.write(", ")
		}
		g.write(cType(p.DeclaredType) + " " + p.Name)
	}

	g.writeLine(") {")
	g.indent++

	g.genBlockStatements(fn.Body)

	if fn.Name == "main" && fn.ReturnType.Kind() == types.VOID {
		g.writeLine("return 0;")
	}

	g.indent--
	g.writeLine("}")
}

func (g *Generator) genStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDeclaration:
		g.genVarDeclaration(s)
	case *ast.Assignment:
		g.writeIndent()
		g.genExpression(s.Target)
		g.write(" = ")
		g.genExpression(s.Value)
		g.writeLine(";")
	case *ast.Block:
		g.genBlockStatements(s)
	case *ast.IfStatement:
		g.genIfStatement(s)
	case *ast.WhileStatement:
		g.genWhileStatement(s)
	case *ast.ForStatement:
		g.genForStatement(s)
	case *ast.ReturnStatement:
		g.genReturnStatement(s)
	case *ast.PrintStatement:
		g.genPrintStatement(s)
	case *ast.ExpressionStatement:
		g.writeIndent()
		g.genExpression(s.Expr)
		g.writeLine(";")
	}
}

func (g *Generator) genBlockStatements(block *ast.Block) {
	for _, stmt := range block.Statements {
		g.genStatement(stmt)
	}
}

func (g *Generator) genVarDeclaration(decl *ast.VarDeclaration) {
	g.writeIndent()

	if arr, ok := decl.DeclaredType.(*types.Array); ok {
		g.write(cType(arr.Elem) + " " + decl.Name)
		g.write("[" + strconv.Itoa(arr.Size) + "]")
	} else {
		g.write(cType(decl.DeclaredType) + " " + decl.Name)
	}

	if decl.Initializer != nil {
		g.write(" = ")
		g.genExpression(decl.Initializer)
	} else if decl.DeclaredType.Kind() == types.STRING {
		g.write(" = NULL")
	}

	g.writeLine(";")
}

func (g *Generator) genIfStatement(node *ast.IfStatement) {
	g.writeIndent()
	g.write("if (")
	g.genExpression(node.Cond)
	g.writeLine(") {")

	g.indent++
	g.genStatement(node.Then)
	g.indent--

	if node.Else != nil {
		g.writeLine("} else {")
		g.indent++
		g.genStatement(node.Else)
		g.indent--
	}

	g.writeLine("}")
}

func (g *Generator) genWhileStatement(node *ast.WhileStatement) {
	g.writeIndent()
	g.write("while (")
	g.genExpression(node.Cond)
	g.writeLine(") {")

	g.indent++
	g.genStatement(node.Body)
	g.indent--

	g.writeLine("}")
}

func (g *Generator) genForStatement(node *ast.ForStatement) {
	g.writeIndent()
	g.write("for (")

	switch init := node.Init.(type) {
	case *ast.VarDeclaration:
		g.write(cType(init.DeclaredType) + " " + init.Name)
		if init.Initializer != nil {
			g.write(" = ")
			g.genExpression(init.Initializer)
		}
	case *ast.ExpressionStatement:
		g.genExpression(init.Expr)
	}
	g.write("; ")

	if node.Cond != nil {
		g.genExpression(node.Cond)
	}
	g.write("; ")

	if update, ok := node.Update.(*ast.ExpressionStatement); ok {
		g.genExpression(update.Expr)
	}

	g.writeLine(") {")

	g.indent++
	g.genStatement(node.Body)
	g.indent--

	g.writeLine("}")
}

func (g *Generator) genReturnStatement(node *ast.ReturnStatement) {
	g.writeIndent()
	g.write("return")

	if node.Value != nil {
		g.write(" ")
		g.genExpression(node.Value)
	}

	g.writeLine(";")
}

// genPrintStatement picks a printf format by the printed expression's type.
// Bool needs a two-branch ternary since C has no native boolean formatting.
func (g *Generator) genPrintStatement(node *ast.PrintStatement) {
	g.writeIndent()

	switch node.Expr.Type().Kind() {
	case types.INT:
		g.write(`printf("%d\n", `)
	case types.FLOAT:
		g.write(`printf("%f\n", `)
	case types.STRING:
		g.write(`printf("%s\n", `)
	case types.BOOL:
		g.write(`printf("%s\n", (`)
		g.genExpression(node.Expr)
		g.write(`) ? "true" : "false"`)
		g.writeLine(");")
		return
	}

	g.genExpression(node.Expr)
	g.writeLine(");")
}

func (g *Generator) genExpression(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.IntLiteral:
		g.write(strconv.FormatInt(e.Value, 10))
	case *ast.FloatLiteral:
		g.write(formatCFloat(e.Value))
	case *ast.StringLiteral:
		g.write(`"` + e.Value + `"`)
	case *ast.BoolLiteral:
		if e.Value {
			g.write("1")
		} else {
			g.write("0")
		}
	case *ast.Variable:
		g.write(e.Name)
	case *ast.ArrayAccess:
		g.genExpression(e.Array)
		g.write("[")
		g.genExpression(e.Index)
		g.write("]")
	case *ast.BinaryOp:
		g.write("(")
		g.genExpression(e.Left)
		g.write(" " + e.Op + " ")
		g.genExpression(e.Right)
		g.write(")")
	case *ast.UnaryOp:
		g.write("(")
		g.write(e.Op)
		g.genExpression(e.Operand)
		g.write(")")
	case *ast.FunctionCall:
		g.write(e.Name + "(")
		for i, arg := range e.Args {
			if i > 0 {
				g.write(", ")
			}
			g.genExpression(arg)
		}
		g.write(")")
	}
}

// formatCFloat mirrors C++'s std::to_string(float) behavior (six digits
// after the decimal point) so generated literals match what the original
// implementation would have emitted.
func formatCFloat(v float32) string {
	return fmt.Sprintf("%.6f", v)
}
