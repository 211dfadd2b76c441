// Package types implements nova's small static type system: primitives,
// one-dimensional arrays, and function signatures, with structural equality
// and the widening rule the semantic analyser uses for assignability.
package types

import (
	"fmt"
	"strings"
)

// Kind discriminates the Type union.
type Kind int

const (
	INT Kind = iota
	FLOAT
	STRING
	BOOL
	VOID
	ARRAY
	FUNCTION
	ERROR // poison type: suppresses cascading diagnostics
)

func (k Kind) String() string {
	switch k {
	case INT:
		return "int"
	case FLOAT:
		return "float"
	case STRING:
		return "string"
	case BOOL:
		return "bool"
	case VOID:
		return "void"
	case ARRAY:
		return "array"
	case FUNCTION:
		return "function"
	default:
		return "error"
	}
}

// Type is the discriminated union of nova's type system. Every
// implementation is comparable with Equals and renders with String.
type Type interface {
	Kind() Kind
	String() string
	Equals(Type) bool
}

// primitive is the implementation behind the six singleton primitive types.
// Primitives are process-lifetime constants: every reference to, say, Int
// is the same *primitive value, so pointer identity already implies
// equality, but Equals below is still structural per the type's contract.
type primitive struct {
	kind Kind
}

func (p *primitive) Kind() Kind   { return p.kind }
func (p *primitive) String() string { return p.kind.String() }
func (p *primitive) Equals(other Type) bool {
	return other != nil && other.Kind() == p.kind
}

// The six primitive singletons. Every AST node that needs an int/float/
// string/bool/void/error type references one of these; none are ever
// cloned.
var (
	Int    Type = &primitive{kind: INT}
	Float  Type = &primitive{kind: FLOAT}
	String Type = &primitive{kind: STRING}
	Bool   Type = &primitive{kind: BOOL}
	Void   Type = &primitive{kind: VOID}
	Error  Type = &primitive{kind: ERROR}
)

// Array is a fixed-size one-dimensional array type. The parser only ever
// constructs one level of Array (it does not parse `T[N][M]`), but nothing
// here prevents an Array of Array from being built programmatically.
type Array struct {
	Elem Type
	Size int
}

func NewArray(elem Type, size int) *Array {
	return &Array{Elem: elem, Size: size}
}

func (a *Array) Kind() Kind { return ARRAY }
func (a *Array) String() string {
	return fmt.Sprintf("%s[%d]", a.Elem.String(), a.Size)
}
func (a *Array) Equals(other Type) bool {
	o, ok := other.(*Array)
	if !ok {
		return false
	}
	return a.Size == o.Size && a.Elem.Equals(o.Elem)
}

// Function is a callable signature: a return type plus an ordered list of
// parameter types.
type Function struct {
	Return Type
	Params []Type
}

func NewFunction(ret Type, params []Type) *Function {
	return &Function{Return: ret, Params: params}
}

func (f *Function) Kind() Kind { return FUNCTION }
func (f *Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s(%s)", f.Return.String(), strings.Join(parts, ", "))
}
func (f *Function) Equals(other Type) bool {
	o, ok := other.(*Function)
	if !ok {
		return false
	}
	if !f.Return.Equals(o.Return) || len(f.Params) != len(o.Params) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Equals(o.Params[i]) {
			return false
		}
	}
	return true
}

// IsNumeric reports whether t is INT or FLOAT.
func IsNumeric(t Type) bool {
	return t.Kind() == INT || t.Kind() == FLOAT
}

// IsAssignable reports whether a value of type value may be assigned to (or
// bound against) a target of type target: equal types always are, and INT
// widens to FLOAT. Nothing else widens.
func IsAssignable(target, value Type) bool {
	if target.Equals(value) {
		return true
	}
	if target.Kind() == FLOAT && value.Kind() == INT {
		return true
	}
	return false
}
