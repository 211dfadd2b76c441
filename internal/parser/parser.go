// Package parser implements a recursive-descent parser for nova with
// precedence-climbing expression parsing (one method per precedence level,
// rather than a generic Pratt prefix/infix table — the grammar is small and
// fixed, so the explicit ladder reads more directly).
package parser

import (
	"strconv"

	"github.com/novalang/nova/internal/ast"
	"github.com/novalang/nova/internal/diag"
	"github.com/novalang/nova/internal/lexer"
	"github.com/novalang/nova/internal/token"
	"github.com/novalang/nova/internal/types"
)

// Parser turns a token stream into an *ast.Program, reporting syntax errors
// to a Sink rather than returning them. The statement that hit the first
// error may still add further diagnostics (for example a missing ';' and then
// a missing '}'), but the block and program loops stop once the sink holds
// an error; the caller checks the sink after the stage, as with every other
// stage of the pipeline.
type Parser struct {
	lex  *lexer.Lexer
	sink *diag.Sink

	cur  token.Token
	peek token.Token
}

// New returns a Parser reading from lex and reporting to sink.
func New(lex *lexer.Lexer, sink *diag.Sink) *Parser {
	p := &Parser{lex: lex, sink: sink}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) check(kind token.Kind) bool { return p.cur.Kind == kind }

func (p *Parser) match(kind token.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(kind token.Kind, message string) {
	if p.check(kind) {
		p.advance()
		return
	}
	p.sink.Add(message, p.cur.Pos)
}

// Parse parses a full program. It never returns an error itself; check
// sink.HadError() after calling it.
func Parse(source string, sink *diag.Sink) *ast.Program {
	p := New(lexer.New(source), sink)
	return p.parseProgram()
}

func (p *Parser) parseProgram() *ast.Program {
	var decls []ast.Node

	for !p.check(token.EOF) {
		if p.check(token.ERROR) {
			p.sink.Add(p.cur.Lexeme, p.cur.Pos)
			break
		}

		var decl ast.Node
		if p.check(token.FUNCTION) {
			decl = p.parseFunction()
		} else {
			decl = p.parseStatement()
		}

		if decl != nil {
			decls = append(decls, decl)
		}

		if p.sink.HadError() {
			break
		}
	}

	return ast.NewProgram(decls)
}

// parseType parses a base type keyword and an optional trailing `[size]`.
func (p *Parser) parseType() types.Type {
	var base types.Type

	switch {
	case p.match(token.INT):
		base = types.Int
	case p.match(token.FLOAT):
		base = types.Float
	case p.match(token.STRING):
		base = types.String
	case p.match(token.BOOL):
		base = types.Bool
	case p.match(token.VOID):
		base = types.Void
	default:
		p.sink.Add("Expected type", p.cur.Pos)
		return types.Error
	}

	if p.match(token.LBRACKET) {
		if !p.check(token.INT_LITERAL) {
			p.sink.Add("Expected array size", p.cur.Pos)
			return types.Error
		}
		size, err := strconv.Atoi(p.cur.Lexeme)
		if err != nil {
			p.sink.Add("Expected array size", p.cur.Pos)
			return types.Error
		}
		p.advance()
		p.consume(token.RBRACKET, "Expected ']'")
		return types.NewArray(base, size)
	}

	return base
}

func (p *Parser) parseFunction() *ast.Function {
	tok := p.cur
	p.consume(token.FUNCTION, "Expected 'function'")

	returnType := p.parseType()

	if !p.check(token.IDENT) {
		p.sink.Add("Expected function name", p.cur.Pos)
		return nil
	}
	name := p.cur.Lexeme
	p.advance()

	p.consume(token.LPAREN, "Expected '('")

	var params []ast.Parameter
	if !p.check(token.RPAREN) {
		for {
			paramType := p.parseType()
			if !p.check(token.IDENT) {
				p.sink.Add("Expected parameter name", p.cur.Pos)
				return nil
			}
			params = append(params, ast.Parameter{DeclaredType: paramType, Name: p.cur.Lexeme})
			p.advance()
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	p.consume(token.RPAREN, "Expected ')'")
	openBrace := p.cur
	p.consume(token.LBRACE, "Expected '{'")

	body := p.parseBlock(openBrace)

	return ast.NewFunction(tok, returnType, name, params, body)
}

func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.check(token.INT), p.check(token.FLOAT), p.check(token.STRING), p.check(token.BOOL):
		return p.parseVarDeclaration()
	case p.check(token.LBRACE):
		openBrace := p.cur
		p.advance()
		return p.parseBlock(openBrace)
	case p.check(token.IF):
		return p.parseIfStatement()
	case p.check(token.WHILE):
		return p.parseWhileStatement()
	case p.check(token.FOR):
		return p.parseForStatement()
	case p.check(token.RETURN):
		return p.parseReturnStatement()
	case p.check(token.PRINT):
		return p.parsePrintStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseVarDeclaration() *ast.VarDeclaration {
	tok := p.cur
	declaredType := p.parseType()

	if !p.check(token.IDENT) {
		p.sink.Add("Expected variable name", p.cur.Pos)
		return nil
	}
	name := p.cur.Lexeme
	p.advance()

	var init ast.Expression
	if p.match(token.ASSIGN) {
		init = p.parseExpression()
	}

	p.consume(token.SEMICOLON, "Expected ';'")

	return ast.NewVarDeclaration(tok, declaredType, name, init)
}

// parseBlock parses statements up to and including the closing '}'. openTok
// anchors the Block node's position; the caller has already consumed the
// opening '{'.
func (p *Parser) parseBlock(openTok token.Token) *ast.Block {
	var statements []ast.Statement

	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			statements = append(statements, stmt)
		}
		if p.sink.HadError() {
			break
		}
	}

	p.consume(token.RBRACE, "Expected '}'")

	return ast.NewBlock(openTok, statements)
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	tok := p.cur
	p.consume(token.IF, "Expected 'if'")
	p.consume(token.LPAREN, "Expected '('")
	cond := p.parseExpression()
	p.consume(token.RPAREN, "Expected ')'")

	then := p.parseStatement()
	var els ast.Statement
	if p.match(token.ELSE) {
		els = p.parseStatement()
	}

	return ast.NewIfStatement(tok, cond, then, els)
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	tok := p.cur
	p.consume(token.WHILE, "Expected 'while'")
	p.consume(token.LPAREN, "Expected '('")
	cond := p.parseExpression()
	p.consume(token.RPAREN, "Expected ')'")
	body := p.parseStatement()

	return ast.NewWhileStatement(tok, cond, body)
}

func (p *Parser) parseForStatement() *ast.ForStatement {
	tok := p.cur
	p.consume(token.FOR, "Expected 'for'")
	p.consume(token.LPAREN, "Expected '('")

	var init ast.Statement
	if !p.check(token.SEMICOLON) {
		switch {
		case p.check(token.INT), p.check(token.FLOAT), p.check(token.STRING), p.check(token.BOOL):
			init = p.parseVarDeclaration()
		default:
			init = p.parseExpressionStatement()
		}
	} else {
		p.advance()
	}

	var cond ast.Expression
	if !p.check(token.SEMICOLON) {
		cond = p.parseExpression()
	}
	p.consume(token.SEMICOLON, "Expected ';'")

	var update ast.Statement
	if !p.check(token.RPAREN) {
		updateTok := p.cur
		updateExpr := p.parseExpression()
		update = ast.NewExpressionStatement(updateTok, updateExpr)
	}
	p.consume(token.RPAREN, "Expected ')'")

	body := p.parseStatement()

	return ast.NewForStatement(tok, init, cond, update, body)
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	tok := p.cur
	p.consume(token.RETURN, "Expected 'return'")

	var value ast.Expression
	if !p.check(token.SEMICOLON) {
		value = p.parseExpression()
	}

	p.consume(token.SEMICOLON, "Expected ';'")

	return ast.NewReturnStatement(tok, value)
}

func (p *Parser) parsePrintStatement() *ast.PrintStatement {
	tok := p.cur
	p.consume(token.PRINT, "Expected 'print'")
	p.consume(token.LPAREN, "Expected '('")
	expr := p.parseExpression()
	p.consume(token.RPAREN, "Expected ')'")
	p.consume(token.SEMICOLON, "Expected ';'")

	return ast.NewPrintStatement(tok, expr)
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.cur
	expr := p.parseExpression()
	if expr == nil {
		for !p.check(token.SEMICOLON) && !p.check(token.EOF) {
			p.advance()
		}
	}
	p.consume(token.SEMICOLON, "Expected ';'")
	if expr == nil {
		return nil
	}
	return ast.NewExpressionStatement(tok, expr)
}

// --- Expressions, lowest to highest precedence ---------------------------

func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignment()
}

// parseAssignment folds `target = value` into a right-associative BinaryOp
// with op "=", matching SPEC_FULL.md's Open-Question resolution: the parser
// never constructs ast.Assignment directly.
func (p *Parser) parseAssignment() ast.Expression {
	expr := p.parseLogicalOr()
	if expr == nil {
		return nil
	}

	if p.check(token.ASSIGN) {
		tok := p.cur
		p.advance()
		value := p.parseAssignment()
		if value == nil {
			return nil
		}
		return ast.NewBinaryOp(tok, "=", expr, value)
	}

	return expr
}

func (p *Parser) parseLogicalOr() ast.Expression {
	expr := p.parseLogicalAnd()
	if expr == nil {
		return nil
	}

	for p.check(token.OR) {
		tok := p.cur
		p.advance()
		right := p.parseLogicalAnd()
		if right == nil {
			return nil
		}
		expr = ast.NewBinaryOp(tok, "||", expr, right)
	}

	return expr
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	expr := p.parseEquality()
	if expr == nil {
		return nil
	}

	for p.check(token.AND) {
		tok := p.cur
		p.advance()
		right := p.parseEquality()
		if right == nil {
			return nil
		}
		expr = ast.NewBinaryOp(tok, "&&", expr, right)
	}

	return expr
}

func (p *Parser) parseEquality() ast.Expression {
	expr := p.parseComparison()
	if expr == nil {
		return nil
	}

	for p.check(token.EQUAL) || p.check(token.NOT_EQUAL) {
		tok := p.cur
		op := "=="
		if tok.Kind == token.NOT_EQUAL {
			op = "!="
		}
		p.advance()
		right := p.parseComparison()
		if right == nil {
			return nil
		}
		expr = ast.NewBinaryOp(tok, op, expr, right)
	}

	return expr
}

func (p *Parser) parseComparison() ast.Expression {
	expr := p.parseAddition()
	if expr == nil {
		return nil
	}

	for p.check(token.LESS) || p.check(token.LESS_EQUAL) || p.check(token.GREATER) || p.check(token.GREATER_EQUAL) {
		tok := p.cur
		var op string
		switch tok.Kind {
		case token.LESS:
			op = "<"
		case token.LESS_EQUAL:
			op = "<="
		case token.GREATER:
			op = ">"
		case token.GREATER_EQUAL:
			op = ">="
		}
		p.advance()
		right := p.parseAddition()
		if right == nil {
			return nil
		}
		expr = ast.NewBinaryOp(tok, op, expr, right)
	}

	return expr
}

func (p *Parser) parseAddition() ast.Expression {
	expr := p.parseMultiplication()
	if expr == nil {
		return nil
	}

	for p.check(token.PLUS) || p.check(token.MINUS) {
		tok := p.cur
		op := "+"
		if tok.Kind == token.MINUS {
			op = "-"
		}
		p.advance()
		right := p.parseMultiplication()
		if right == nil {
			return nil
		}
		expr = ast.NewBinaryOp(tok, op, expr, right)
	}

	return expr
}

func (p *Parser) parseMultiplication() ast.Expression {
	expr := p.parseUnary()
	if expr == nil {
		return nil
	}

	for p.check(token.STAR) || p.check(token.SLASH) || p.check(token.PERCENT) {
		tok := p.cur
		var op string
		switch tok.Kind {
		case token.STAR:
			op = "*"
		case token.SLASH:
			op = "/"
		case token.PERCENT:
			op = "%"
		}
		p.advance()
		right := p.parseUnary()
		if right == nil {
			return nil
		}
		expr = ast.NewBinaryOp(tok, op, expr, right)
	}

	return expr
}

func (p *Parser) parseUnary() ast.Expression {
	if p.check(token.NOT) || p.check(token.MINUS) {
		tok := p.cur
		op := "!"
		if tok.Kind == token.MINUS {
			op = "-"
		}
		p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return ast.NewUnaryOp(tok, op, operand)
	}

	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}

	for {
		switch {
		case p.check(token.LBRACKET):
			tok := p.cur
			p.advance()
			index := p.parseExpression()
			if index == nil {
				return nil
			}
			p.consume(token.RBRACKET, "Expected ']'")
			expr = ast.NewArrayAccess(tok, expr, index)

		case p.check(token.LPAREN):
			tok := p.cur
			p.advance()
			var args []ast.Expression
			if !p.check(token.RPAREN) {
				for {
					arg := p.parseExpression()
					if arg != nil {
						args = append(args, arg)
					}
					if !p.match(token.COMMA) {
						break
					}
				}
			}
			p.consume(token.RPAREN, "Expected ')'")

			if v, ok := expr.(*ast.Variable); ok {
				expr = ast.NewFunctionCall(tok, v.Name, args)
			} else {
				p.sink.Add("Function call must be on identifier", tok.Pos)
			}

		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expression {
	switch {
	case p.check(token.INT_LITERAL):
		tok := p.cur
		p.advance()
		value, _ := strconv.ParseInt(tok.Lexeme, 10, 64)
		return ast.NewIntLiteral(tok, value)

	case p.check(token.FLOAT_LITERAL):
		tok := p.cur
		p.advance()
		value, _ := strconv.ParseFloat(tok.Lexeme, 32)
		return ast.NewFloatLiteral(tok, float32(value))

	case p.check(token.STRING_LITERAL):
		tok := p.cur
		p.advance()
		return ast.NewStringLiteral(tok, tok.Lexeme)

	case p.check(token.TRUE):
		tok := p.cur
		p.advance()
		return ast.NewBoolLiteral(tok, true)

	case p.check(token.FALSE):
		tok := p.cur
		p.advance()
		return ast.NewBoolLiteral(tok, false)

	case p.check(token.IDENT):
		tok := p.cur
		p.advance()
		return ast.NewVariable(tok, tok.Lexeme)

	case p.check(token.LPAREN):
		p.advance()
		expr := p.parseExpression()
		p.consume(token.RPAREN, "Expected ')'")
		return expr
	}

	p.sink.Add("Expected expression", p.cur.Pos)
	p.advance()
	return nil
}
