package ast

import (
	"testing"

	"github.com/mlang/minilang/internal/token"
)

func tok(kind token.Kind, lit string) token.Token {
	return token.New(kind, lit, token.Position{Line: 1, Column: 1, Offset: 0})
}

func TestLiteralString(t *testing.T) {
	intLit := &Literal{Token: tok(token.IntLit, "42"), Value: int64(42)}
	if got, want := intLit.String(), "42"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	boolLit := &Literal{Token: tok(token.BoolLit, "true"), Value: true}
	if got, want := boolLit.String(), "true"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	unitLit := &Literal{Token: tok(token.Punctuation, "}"), Value: nil}
	if got, want := unitLit.String(), "unit"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBinaryOpString(t *testing.T) {
	left := &Identifier{Token: tok(token.Identifier, "a"), Name: "a"}
	right := &Literal{Token: tok(token.IntLit, "1"), Value: int64(1)}
	expr := &BinaryOp{Token: tok(token.Operator, "+"), Left: left, Op: "+", Right: right}
	if got, want := expr.String(), "(a + 1)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestUnaryOpStringSpacing(t *testing.T) {
	operand := &Identifier{Token: tok(token.Identifier, "x"), Name: "x"}
	minus := &UnaryOp{Token: tok(token.Operator, "-"), Op: "-", Operand: operand}
	if got, want := minus.String(), "(-x)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	not := &UnaryOp{Token: tok(token.Operator, "not"), Op: "not", Operand: operand}
	if got, want := not.String(), "(not x)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestIfStringWithAndWithoutElse(t *testing.T) {
	cond := &Identifier{Token: tok(token.Identifier, "c"), Name: "c"}
	then := &Literal{Token: tok(token.IntLit, "1"), Value: int64(1)}
	els := &Literal{Token: tok(token.IntLit, "2"), Value: int64(2)}

	withElse := &If{Token: tok(token.Keyword, "if"), Condition: cond, Then: then, ElseBranch: els}
	if got, want := withElse.String(), "if c then 1 else 2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	noElse := &If{Token: tok(token.Keyword, "if"), Condition: cond, Then: then}
	if got, want := noElse.String(), "if c then 1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFunctionCallString(t *testing.T) {
	callee := &Identifier{Token: tok(token.Identifier, "f"), Name: "f"}
	arg1 := &Literal{Token: tok(token.IntLit, "1"), Value: int64(1)}
	arg2 := &Literal{Token: tok(token.IntLit, "2"), Value: int64(2)}
	call := &FunctionCall{Token: tok(token.Punctuation, "("), Callee: callee, Arguments: []Expression{arg1, arg2}}
	if got, want := call.String(), "f(1, 2)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestVariableDeclarationString(t *testing.T) {
	name := &Identifier{Token: tok(token.Identifier, "x"), Name: "x"}
	typ := &Identifier{Token: tok(token.Identifier, "Int"), Name: "Int"}
	value := &Literal{Token: tok(token.IntLit, "5"), Value: int64(5)}

	withType := &VariableDeclaration{Token: tok(token.Keyword, "var"), Name: name, TypeAnnotation: typ, Value: value}
	if got, want := withType.String(), "var x: Int = 5"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	noType := &VariableDeclaration{Token: tok(token.Keyword, "var"), Name: name, Value: value}
	if got, want := noType.String(), "var x = 5"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBlockStringEmptyAndNonEmpty(t *testing.T) {
	empty := &Block{Token: tok(token.Punctuation, "{"), Statements: []Expression{}}
	if got, want := empty.String(), "{  }"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	a := &Literal{Token: tok(token.IntLit, "1"), Value: int64(1)}
	b := &Literal{Token: tok(token.IntLit, "2"), Value: int64(2)}
	block := &Block{Token: tok(token.Punctuation, "{"), Statements: []Expression{a, b}}
	if got, want := block.String(), "{ 1; 2 }"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWhileString(t *testing.T) {
	cond := &Identifier{Token: tok(token.Identifier, "c"), Name: "c"}
	body := &Literal{Token: tok(token.IntLit, "1"), Value: int64(1)}
	w := &While{Token: tok(token.Keyword, "while"), Condition: cond, Body: body}
	if got, want := w.String(), "while c do 1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPosReturnsTokenPosition(t *testing.T) {
	pos := token.Position{Line: 3, Column: 5, Offset: 20}
	id := &Identifier{Token: token.New(token.Identifier, "x", pos), Name: "x"}
	if got := id.Pos(); got != pos {
		t.Errorf("Pos() = %v, want %v", got, pos)
	}
}

var _ Expression = (*Literal)(nil)
var _ Expression = (*Identifier)(nil)
var _ Expression = (*UnaryOp)(nil)
var _ Expression = (*BinaryOp)(nil)
var _ Expression = (*If)(nil)
var _ Expression = (*While)(nil)
var _ Expression = (*FunctionCall)(nil)
var _ Expression = (*VariableDeclaration)(nil)
var _ Expression = (*Block)(nil)
