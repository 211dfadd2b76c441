// Package symbols implements nova's scope model: a stack of maps, pushed on
// block entry and popped on exit, replacing the linked-parent Scope objects
// the original implementation used. Lookups climb the stack from the
// innermost map outward and are case-sensitive.
package symbols

import "github.com/novalang/nova/internal/types"

// Symbol is one entry bound in a scope: a variable or a function name.
type Symbol struct {
	Name       string
	Type       types.Type
	IsFunction bool
}

// Table is the compiler's scope stack. The zero value is not usable; call
// New.
type Table struct {
	scopes []map[string]Symbol
}

// New returns a Table with a single, empty global scope already pushed.
func New() *Table {
	return &Table{scopes: []map[string]Symbol{make(map[string]Symbol)}}
}

// EnterScope pushes a new, empty scope on top of the stack.
func (t *Table) EnterScope() {
	t.scopes = append(t.scopes, make(map[string]Symbol))
}

// ExitScope pops the innermost scope. Calling it with only the global scope
// left is a programming error and panics, since it would mean a Block
// failed to balance its own EnterScope.
func (t *Table) ExitScope() {
	if len(t.scopes) == 1 {
		panic("symbols: ExitScope called with no scope to pop")
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
}

// Define binds name in the innermost scope. It reports false without
// modifying the table if name is already defined in that same scope
// (shadowing an outer scope's binding is fine and reports true).
func (t *Table) Define(name string, typ types.Type, isFunction bool) bool {
	top := t.scopes[len(t.scopes)-1]
	if _, exists := top[name]; exists {
		return false
	}
	top[name] = Symbol{Name: name, Type: typ, IsFunction: isFunction}
	return true
}

// Resolve looks up name starting at the innermost scope and climbing
// outward, returning the first match.
func (t *Table) Resolve(name string) (Symbol, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i][name]; ok {
			return sym, true
		}
	}
	return Symbol{}, false
}

// IsDefinedInCurrentScope reports whether name is bound in the innermost
// scope specifically, ignoring outer scopes. The analyser uses this to
// reject redeclaration within the same block while still allowing
// shadowing across nested blocks.
func (t *Table) IsDefinedInCurrentScope(name string) bool {
	_, ok := t.scopes[len(t.scopes)-1][name]
	return ok
}

// Depth reports how many scopes are currently pushed, including the global
// scope. Tests use this to assert EnterScope/ExitScope stay balanced.
func (t *Table) Depth() int {
	return len(t.scopes)
}
