package checker

import (
	"github.com/mlang/minilang/internal/ast"
	"github.com/mlang/minilang/internal/diag"
	"github.com/mlang/minilang/internal/symtab"
	"github.com/mlang/minilang/internal/types"
)

// checkLiteral resolves a constant's type. Order matters: bool is
// checked before int so that boolean literals are never mistaken for
// integers.
func checkLiteral(n *ast.Literal) (types.Type, *diag.Diagnostic) {
	switch n.Value.(type) {
	case nil:
		return types.Unit{}, nil
	case bool:
		return types.Bool{}, nil
	case int64:
		return types.Int{}, nil
	default:
		return nil, diag.New(diag.Type, n.Pos(), "failed to resolve the type of literal %v", n.Value)
	}
}

func checkIdentifier(n *ast.Identifier, st *symtab.SymbolTable) (types.Type, *diag.Diagnostic) {
	sigs := st.Lookup(n.Name)
	if len(sigs) == 0 {
		return nil, diag.New(diag.Type, n.Pos(), "variable %q not found", n.Name)
	}
	return sigs[0], nil
}
