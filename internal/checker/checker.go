// Package checker implements minilang's type checker: a single
// recursive Typecheck function dispatching on AST node kind, split
// across a handful of per-concern files (literals and identifiers,
// operators, function calls, control flow and declarations).
package checker

import (
	"github.com/mlang/minilang/internal/ast"
	"github.com/mlang/minilang/internal/diag"
	"github.com/mlang/minilang/internal/symtab"
	"github.com/mlang/minilang/internal/types"
)

// Typecheck infers the type of node under st, or returns the first
// Diagnostic encountered. There is no error accumulation: the first
// mismatch aborts.
func Typecheck(node ast.Expression, st *symtab.SymbolTable) (types.Type, *diag.Diagnostic) {
	switch n := node.(type) {
	case *ast.Literal:
		return checkLiteral(n)
	case *ast.Identifier:
		return checkIdentifier(n, st)
	case *ast.VariableDeclaration:
		return checkVariableDeclaration(n, st)
	case *ast.UnaryOp:
		return checkUnaryOp(n, st)
	case *ast.BinaryOp:
		return checkBinaryOp(n, st)
	case *ast.FunctionCall:
		return checkFunctionCall(n, st)
	case *ast.If:
		return checkIf(n, st)
	case *ast.While:
		return checkWhile(n, st)
	case *ast.Block:
		return checkBlock(n, st)
	default:
		return nil, diag.New(diag.Type, node.Pos(), "cannot type-check node of type %T", node)
	}
}
