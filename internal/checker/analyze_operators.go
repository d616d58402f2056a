package checker

import (
	"github.com/mlang/minilang/internal/ast"
	"github.com/mlang/minilang/internal/diag"
	"github.com/mlang/minilang/internal/symtab"
	"github.com/mlang/minilang/internal/types"
)

func checkUnaryOp(n *ast.UnaryOp, st *symtab.SymbolTable) (types.Type, *diag.Diagnostic) {
	operandType, derr := Typecheck(n.Operand, st)
	if derr != nil {
		return nil, derr
	}
	sigs := st.Lookup(n.Op)
	for _, sig := range sigs {
		fn, ok := sig.(types.Fn)
		if ok && len(fn.Params) == 1 && fn.Params[0].Equals(operandType) {
			return fn.Result, nil
		}
	}
	return nil, diag.New(diag.Type, n.Pos(), "no overload of %q accepts an operand of type %s", n.Op, operandType)
}

func checkBinaryOp(n *ast.BinaryOp, st *symtab.SymbolTable) (types.Type, *diag.Diagnostic) {
	switch n.Op {
	case "=":
		return checkAssignment(n, st)
	case "==", "!=":
		return checkEquality(n, st)
	default:
		return checkOverloadedBinary(n, st)
	}
}

// checkAssignment enforces the syntactic-shape rule: only an
// Identifier can appear on the left of "=".
func checkAssignment(n *ast.BinaryOp, st *symtab.SymbolTable) (types.Type, *diag.Diagnostic) {
	if _, ok := n.Left.(*ast.Identifier); !ok {
		return nil, diag.New(diag.Type, n.Pos(), "left side of assignment must be a variable name")
	}
	leftType, derr := Typecheck(n.Left, st)
	if derr != nil {
		return nil, derr
	}
	rightType, derr := Typecheck(n.Right, st)
	if derr != nil {
		return nil, derr
	}
	if !leftType.Equals(rightType) {
		return nil, diag.New(diag.Type, n.Pos(), "cannot assign value of type %s to variable of type %s", rightType, leftType)
	}
	return rightType, nil
}

// checkEquality disallows Fn operands: function values have no
// equality built in.
func checkEquality(n *ast.BinaryOp, st *symtab.SymbolTable) (types.Type, *diag.Diagnostic) {
	leftType, derr := Typecheck(n.Left, st)
	if derr != nil {
		return nil, derr
	}
	rightType, derr := Typecheck(n.Right, st)
	if derr != nil {
		return nil, derr
	}
	if _, isFn := leftType.(types.Fn); isFn {
		return nil, diag.New(diag.Type, n.Pos(), "%q does not support operands of function type", n.Op)
	}
	if _, isFn := rightType.(types.Fn); isFn {
		return nil, diag.New(diag.Type, n.Pos(), "%q does not support operands of function type", n.Op)
	}
	if !leftType.Equals(rightType) {
		return nil, diag.New(diag.Type, n.Pos(), "%q expects both operands to have the same type, got %s and %s", n.Op, leftType, rightType)
	}
	return types.Bool{}, nil
}

func checkOverloadedBinary(n *ast.BinaryOp, st *symtab.SymbolTable) (types.Type, *diag.Diagnostic) {
	leftType, derr := Typecheck(n.Left, st)
	if derr != nil {
		return nil, derr
	}
	rightType, derr := Typecheck(n.Right, st)
	if derr != nil {
		return nil, derr
	}
	sigs := st.Lookup(n.Op)
	for _, sig := range sigs {
		fn, ok := sig.(types.Fn)
		if ok && len(fn.Params) == 2 && fn.Params[0].Equals(leftType) && fn.Params[1].Equals(rightType) {
			return fn.Result, nil
		}
	}
	return nil, diag.New(diag.Type, n.Pos(), "no overload of %q accepts operands of type %s and %s", n.Op, leftType, rightType)
}
