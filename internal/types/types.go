// Package types implements minilang's type lattice: Unit, Int, Bool, and
// Fn (built-in function signatures). Equality is structural.
package types

import "strings"

// Type is any member of the Unit | Int | Bool | Fn(params, result) lattice.
type Type interface {
	// Equals reports structural equality with another Type.
	Equals(other Type) bool
	// String renders the type for diagnostics (e.g. "Int", "(Int, Int) -> Bool").
	String() string
}

// Unit is the type of the absence of a value.
type Unit struct{}

func (Unit) Equals(other Type) bool { _, ok := other.(Unit); return ok }
func (Unit) String() string         { return "Unit" }

// Int is the type of integer literals and arithmetic results.
type Int struct{}

func (Int) Equals(other Type) bool { _, ok := other.(Int); return ok }
func (Int) String() string         { return "Int" }

// Bool is the type of boolean literals and comparison/logical results.
type Bool struct{}

func (Bool) Equals(other Type) bool { _, ok := other.(Bool); return ok }
func (Bool) String() string         { return "Bool" }

// Fn is a built-in function signature: a parameter list and a result type.
// User code never constructs a Fn value directly — Fn values only arise
// from symbol table lookups of built-in operators and functions; there
// are no user-defined functions.
type Fn struct {
	Params []Type
	Result Type
}

// Equals compares parameter and result types structurally, arity included.
func (f Fn) Equals(other Type) bool {
	o, ok := other.(Fn)
	if !ok || len(f.Params) != len(o.Params) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Equals(o.Params[i]) {
			return false
		}
	}
	return f.Result.Equals(o.Result)
}

func (f Fn) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + f.Result.String()
}

// FromAnnotationName resolves a type annotation identifier to a Type.
// Function types are never spelled in source, so this never returns Fn.
func FromAnnotationName(name string) (Type, bool) {
	switch name {
	case "Unit":
		return Unit{}, true
	case "Int":
		return Int{}, true
	case "Bool":
		return Bool{}, true
	default:
		return nil, false
	}
}
