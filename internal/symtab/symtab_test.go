package symtab

import (
	"testing"

	"github.com/mlang/minilang/internal/types"
)

func TestBuiltinArithmeticOperators(t *testing.T) {
	st := New()
	for _, name := range []string{"+", "-", "*", "/", "%"} {
		sigs := st.Lookup(name)
		if len(sigs) == 0 {
			t.Fatalf("%q: expected at least one signature, got none", name)
		}
		want := types.Fn{Params: []types.Type{types.Int{}, types.Int{}}, Result: types.Int{}}
		if !sigs[0].Equals(want) {
			t.Errorf("%q first signature = %v, want %v", name, sigs[0], want)
		}
	}
}

func TestMinusHasTwoOverloads(t *testing.T) {
	st := New()
	sigs := st.Lookup("-")
	if len(sigs) != 2 {
		t.Fatalf("got %d overloads for '-', want 2", len(sigs))
	}
	wantUnary := types.Fn{Params: []types.Type{types.Int{}}, Result: types.Int{}}
	if !sigs[1].Equals(wantUnary) {
		t.Errorf("second '-' overload = %v, want %v", sigs[1], wantUnary)
	}
}

func TestEqualsAndNotEqualsAreNotBuiltin(t *testing.T) {
	st := New()
	if sigs := st.Lookup("=="); sigs != nil {
		t.Errorf("expected '==' to be absent from the symbol table, got %v", sigs)
	}
	if sigs := st.Lookup("!="); sigs != nil {
		t.Errorf("expected '!=' to be absent from the symbol table, got %v", sigs)
	}
}

func TestBuiltinPrintAndRead(t *testing.T) {
	st := New()
	cases := []struct {
		name string
		want types.Fn
	}{
		{"print_int", types.Fn{Params: []types.Type{types.Int{}}, Result: types.Unit{}}},
		{"print_bool", types.Fn{Params: []types.Type{types.Bool{}}, Result: types.Unit{}}},
		{"read_int", types.Fn{Params: []types.Type{}, Result: types.Int{}}},
	}
	for _, c := range cases {
		sigs := st.Lookup(c.name)
		if len(sigs) != 1 || !sigs[0].Equals(c.want) {
			t.Errorf("%q = %v, want [%v]", c.name, sigs, c.want)
		}
	}
}

func TestShadowingAcrossScopesIsAllowed(t *testing.T) {
	outer := New()
	inner := NewEnclosed(outer)
	if !inner.Insert("x", types.Int{}) {
		t.Fatal("expected first insert of x in inner scope to succeed")
	}
	outer.Insert("x", types.Bool{})

	sigs := inner.Lookup("x")
	if len(sigs) != 1 || !sigs[0].Equals(types.Int{}) {
		t.Errorf("inner lookup of x = %v, want [Int]", sigs)
	}
}

func TestRedeclarationInSameScopeFails(t *testing.T) {
	st := NewEnclosed(New())
	if !st.Insert("x", types.Int{}) {
		t.Fatal("expected first insert to succeed")
	}
	if st.Insert("x", types.Bool{}) {
		t.Error("expected second insert of the same name in the same scope to fail")
	}
}

func TestLookupWalksOuterScopes(t *testing.T) {
	outer := New()
	outer.Insert("greeting", types.Int{})
	inner := NewEnclosed(outer)
	sigs := inner.Lookup("greeting")
	if len(sigs) != 1 || !sigs[0].Equals(types.Int{}) {
		t.Errorf("Lookup through outer scope = %v, want [Int]", sigs)
	}
}

func TestLookupUnboundNameReturnsNil(t *testing.T) {
	st := New()
	if sigs := st.Lookup("nonexistent"); sigs != nil {
		t.Errorf("expected nil for unbound name, got %v", sigs)
	}
}

func TestDefinedLocallyDoesNotConsultOuterScopes(t *testing.T) {
	outer := New()
	inner := NewEnclosed(outer)
	if inner.DefinedLocally("+") {
		t.Error("'+' is defined in outer, not inner; DefinedLocally should be false")
	}
	if !outer.DefinedLocally("+") {
		t.Error("'+' should be defined locally in the builtin scope")
	}
}
