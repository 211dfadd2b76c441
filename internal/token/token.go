// Package token defines the fixed set of lexical token kinds produced by the
// lexer and consumed by the parser.
package token

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind int

// Token kinds, grouped the way the grammar groups them.
const (
	// Meta
	EOF Kind = iota
	ERROR

	// Identifier
	IDENT

	// Literals
	INT_LITERAL
	FLOAT_LITERAL
	STRING_LITERAL
	TRUE
	FALSE

	// Type keywords
	INT
	FLOAT
	STRING
	BOOL
	VOID

	// Keywords
	FUNCTION
	RETURN
	IF
	ELSE
	WHILE
	FOR
	PRINT

	// Operators
	ASSIGN        // =
	PLUS          // +
	MINUS         // -
	STAR          // *
	SLASH         // /
	PERCENT       // %
	EQUAL         // ==
	NOT_EQUAL     // !=
	LESS          // <
	LESS_EQUAL    // <=
	GREATER       // >
	GREATER_EQUAL // >=
	AND           // &&
	OR            // ||
	NOT           // !

	// Punctuation
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	SEMICOLON
	COMMA
	DOT
)

var names = map[Kind]string{
	EOF:            "EOF",
	ERROR:          "ERROR",
	IDENT:          "IDENT",
	INT_LITERAL:    "INT_LITERAL",
	FLOAT_LITERAL:  "FLOAT_LITERAL",
	STRING_LITERAL: "STRING_LITERAL",
	TRUE:           "TRUE",
	FALSE:          "FALSE",
	INT:            "INT",
	FLOAT:          "FLOAT",
	STRING:         "STRING",
	BOOL:           "BOOL",
	VOID:           "VOID",
	FUNCTION:       "FUNCTION",
	RETURN:         "RETURN",
	IF:             "IF",
	ELSE:           "ELSE",
	WHILE:          "WHILE",
	FOR:            "FOR",
	PRINT:          "PRINT",
	ASSIGN:         "ASSIGN",
	PLUS:           "PLUS",
	MINUS:          "MINUS",
	STAR:           "STAR",
	SLASH:          "SLASH",
	PERCENT:        "PERCENT",
	EQUAL:          "EQUAL",
	NOT_EQUAL:      "NOT_EQUAL",
	LESS:           "LESS",
	LESS_EQUAL:     "LESS_EQUAL",
	GREATER:        "GREATER",
	GREATER_EQUAL:  "GREATER_EQUAL",
	AND:            "AND",
	OR:             "OR",
	NOT:            "NOT",
	LPAREN:         "LPAREN",
	RPAREN:         "RPAREN",
	LBRACE:         "LBRACE",
	RBRACE:         "RBRACE",
	LBRACKET:       "LBRACKET",
	RBRACKET:       "RBRACKET",
	SEMICOLON:      "SEMICOLON",
	COMMA:          "COMMA",
	DOT:            "DOT",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps reserved lexemes to their token kind. Identifiers that don't
// appear here lex as IDENT.
var Keywords = map[string]Kind{
	"int":      INT,
	"float":    FLOAT,
	"string":   STRING,
	"bool":     BOOL,
	"void":     VOID,
	"true":     TRUE,
	"false":    FALSE,
	"function": FUNCTION,
	"return":   RETURN,
	"if":       IF,
	"else":     ELSE,
	"while":    WHILE,
	"for":      FOR,
	"print":    PRINT,
}

// LookupIdent returns the keyword Kind for text, or IDENT if text is not a
// reserved word.
func LookupIdent(text string) Kind {
	if kind, ok := Keywords[text]; ok {
		return kind
	}
	return IDENT
}

// Position is a 1-based line/column location in source text.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit: its kind, the raw source text it came
// from, and where it started.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Lexeme, t.Pos)
}
