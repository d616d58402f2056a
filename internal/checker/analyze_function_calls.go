package checker

import (
	"github.com/mlang/minilang/internal/ast"
	"github.com/mlang/minilang/internal/diag"
	"github.com/mlang/minilang/internal/symtab"
	"github.com/mlang/minilang/internal/types"
)

func checkFunctionCall(n *ast.FunctionCall, st *symtab.SymbolTable) (types.Type, *diag.Diagnostic) {
	calleeType, derr := Typecheck(n.Callee, st)
	if derr != nil {
		return nil, derr
	}
	fn, ok := calleeType.(types.Fn)
	if !ok {
		return nil, diag.New(diag.Type, n.Pos(), "expected a function, got %s", calleeType)
	}
	if len(n.Arguments) != len(fn.Params) {
		return nil, diag.New(diag.Type, n.Pos(), "expected %d arguments instead of %d", len(fn.Params), len(n.Arguments))
	}
	for i, arg := range n.Arguments {
		argType, derr := Typecheck(arg, st)
		if derr != nil {
			return nil, derr
		}
		if !argType.Equals(fn.Params[i]) {
			return nil, diag.New(diag.Type, arg.Pos(), "expected argument %d to have type %s instead of %s", i, fn.Params[i], argType)
		}
	}
	return fn.Result, nil
}
