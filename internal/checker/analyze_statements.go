package checker

import (
	"github.com/mlang/minilang/internal/ast"
	"github.com/mlang/minilang/internal/diag"
	"github.com/mlang/minilang/internal/symtab"
	"github.com/mlang/minilang/internal/types"
)

// checkVariableDeclaration computes the value's type before inserting
// the name into scope, so the right-hand side can never see its own
// declaration.
func checkVariableDeclaration(n *ast.VariableDeclaration, st *symtab.SymbolTable) (types.Type, *diag.Diagnostic) {
	valueType, derr := Typecheck(n.Value, st)
	if derr != nil {
		return nil, derr
	}

	if n.TypeAnnotation != nil {
		annotated, ok := types.FromAnnotationName(n.TypeAnnotation.Name)
		if !ok {
			return nil, diag.New(diag.Type, n.TypeAnnotation.Pos(), "unknown type %q", n.TypeAnnotation.Name)
		}
		if !annotated.Equals(valueType) {
			return nil, diag.New(diag.Type, n.Pos(), "variable %q declared as %s but initialized with %s", n.Name.Name, annotated, valueType)
		}
	}

	if !st.Insert(n.Name.Name, valueType) {
		return nil, diag.New(diag.Type, n.Pos(), "variable %q already declared in this scope", n.Name.Name)
	}
	return types.Unit{}, nil
}

// checkIf: when both branches are present, the result type is always
// the "then" branch's type, even though the "else" branch is still
// fully type-checked (so a type error inside it still aborts).
func checkIf(n *ast.If, st *symtab.SymbolTable) (types.Type, *diag.Diagnostic) {
	condType, derr := Typecheck(n.Condition, st)
	if derr != nil {
		return nil, derr
	}
	if !condType.Equals(types.Bool{}) {
		return nil, diag.New(diag.Type, n.Condition.Pos(), "if condition must be Bool, got %s", condType)
	}

	thenType, derr := Typecheck(n.Then, st)
	if derr != nil {
		return nil, derr
	}

	if n.ElseBranch == nil {
		return types.Unit{}, nil
	}
	if _, derr := Typecheck(n.ElseBranch, st); derr != nil {
		return nil, derr
	}
	return thenType, nil
}

func checkWhile(n *ast.While, st *symtab.SymbolTable) (types.Type, *diag.Diagnostic) {
	condType, derr := Typecheck(n.Condition, st)
	if derr != nil {
		return nil, derr
	}
	if !condType.Equals(types.Bool{}) {
		return nil, diag.New(diag.Type, n.Condition.Pos(), "while condition must be Bool, got %s", condType)
	}
	if _, derr := Typecheck(n.Body, st); derr != nil {
		return nil, derr
	}
	return types.Unit{}, nil
}

// checkBlock opens a fresh scope for the block's statements and
// discards it on return, so names declared inside never leak out.
func checkBlock(n *ast.Block, st *symtab.SymbolTable) (types.Type, *diag.Diagnostic) {
	inner := symtab.NewEnclosed(st)
	result := types.Type(types.Unit{})
	for _, stmt := range n.Statements {
		t, derr := Typecheck(stmt, inner)
		if derr != nil {
			return nil, derr
		}
		result = t
	}
	return result, nil
}
