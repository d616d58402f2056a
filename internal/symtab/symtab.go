// Package symtab implements minilang's scope-stack symbol table, seeded
// with the language's built-in operators and functions. Names are
// case-sensitive.
package symtab

import "github.com/mlang/minilang/internal/types"

// SymbolTable is one scope in the stack: a name-to-overload-list map
// plus a link to the enclosing scope. The outermost table (returned by
// New) holds the built-ins and has a nil outer.
type SymbolTable struct {
	symbols map[string][]types.Type
	outer   *SymbolTable
}

// New creates the outermost symbol table, seeded with the built-in
// operators and functions. `==` and `!=` are deliberately absent — the
// checker handles equality as a special case rather than as an overload
// lookup, since it applies uniformly across Int and Bool rather than
// needing one signature per type.
func New() *SymbolTable {
	st := &SymbolTable{symbols: make(map[string][]types.Type)}

	binaryIntOp := types.Fn{Params: []types.Type{types.Int{}, types.Int{}}, Result: types.Int{}}
	for _, name := range []string{"+", "*", "/", "%"} {
		st.Insert(name, binaryIntOp)
	}
	st.Insert("-", binaryIntOp)
	st.symbols["-"] = append(st.symbols["-"], types.Fn{Params: []types.Type{types.Int{}}, Result: types.Int{}})

	comparison := types.Fn{Params: []types.Type{types.Int{}, types.Int{}}, Result: types.Bool{}}
	for _, name := range []string{"<", "<=", ">", ">="} {
		st.Insert(name, comparison)
	}

	logicalBinary := types.Fn{Params: []types.Type{types.Bool{}, types.Bool{}}, Result: types.Bool{}}
	st.Insert("and", logicalBinary)
	st.Insert("or", logicalBinary)
	st.Insert("not", types.Fn{Params: []types.Type{types.Bool{}}, Result: types.Bool{}})

	st.Insert("print_int", types.Fn{Params: []types.Type{types.Int{}}, Result: types.Unit{}})
	st.Insert("print_bool", types.Fn{Params: []types.Type{types.Bool{}}, Result: types.Unit{}})
	st.Insert("read_int", types.Fn{Params: []types.Type{}, Result: types.Int{}})

	return st
}

// NewEnclosed creates a new scope nested inside outer. Block expressions
// push one of these on entry and discard it on exit.
func NewEnclosed(outer *SymbolTable) *SymbolTable {
	return &SymbolTable{symbols: make(map[string][]types.Type), outer: outer}
}

// Insert adds a binding to this scope's overload list for name. It
// returns false (and leaves the table unchanged) if name already has
// overloads in this exact scope. Shadowing an outer scope's binding is
// always permitted — only redeclaration within the same scope is not.
func (st *SymbolTable) Insert(name string, typ types.Type) bool {
	if _, exists := st.symbols[name]; exists {
		return false
	}
	st.symbols[name] = []types.Type{typ}
	return true
}

// Lookup walks from this scope outward and returns the overload list
// bound to name in the innermost scope that defines it, or nil if name
// is unbound anywhere in the chain.
func (st *SymbolTable) Lookup(name string) []types.Type {
	for s := st; s != nil; s = s.outer {
		if sigs, ok := s.symbols[name]; ok {
			return sigs
		}
	}
	return nil
}

// DefinedLocally reports whether name is bound in this exact scope,
// without consulting outer scopes. Insert performs its own
// duplicate-in-scope check and does not call this.
func (st *SymbolTable) DefinedLocally(name string) bool {
	_, ok := st.symbols[name]
	return ok
}
