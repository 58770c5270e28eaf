package qbf

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableIDs(t *testing.T) {
	a, b := NewVariable(), NewVariable()
	assert.Greater(t, b.ID(), a.ID(), "ids should be increasing")
	assert.Equal(t, fmt.Sprintf("x%d", a.ID()), a.String())
}

func TestString(t *testing.T) {
	a, b, c := NewVariable(), NewVariable(), NewVariable()
	f := And(Or(a, Not(b)), Not(c))
	expected := fmt.Sprintf("((%s ∨ ¬%s) ∧ ¬%s)", a, b, c)
	if f.String() != expected {
		t.Errorf("string representation of formula not as expected: wanted %q, got %q", expected, f.String())
	}
	q := ForallBits([]*Variable{a, b}, ExistsUniqueBits([]*Variable{c}, Xor(a, Iff(b, c))))
	expected = fmt.Sprintf("∀%s,%s ∃!%s (%s ⊕ (%s = %s))", a, b, c, a, b, c)
	assert.Equal(t, expected, q.String())
	assert.Equal(t, "1", True.String())
	assert.Equal(t, "0", Const(false).String())
	assert.Equal(t, a.String(), And(a).String(), "single operands are rendered alone")
}

func TestIdentities(t *testing.T) {
	assert.Equal(t, True, And())
	assert.Equal(t, False, Or())
	assert.Equal(t, False, Xor())
	assert.Equal(t, True, Eq())
	assert.Equal(t, True, Eq(NewVariable()))
}

func TestEqIsChained(t *testing.T) {
	a, b, c := NewVariable(), NewVariable(), NewVariable()
	f, ok := Eq(a, b, c).(*Operation)
	require.True(t, ok)
	assert.Equal(t, OpAnd, f.Op())
	require.Len(t, f.Children(), 2)
	first := f.Children()[0].(*Operation)
	second := f.Children()[1].(*Operation)
	assert.Equal(t, OpEq, first.Op())
	assert.Equal(t, []Formula{a, b}, first.Children())
	assert.Equal(t, []Formula{b, c}, second.Children())

	pair := Eq(a, b).(*Operation)
	assert.Equal(t, OpEq, pair.Op())
}

func TestSharing(t *testing.T) {
	a := NewVariable()
	sub := Or(a, Not(a))
	f := And(sub, Xor(sub, a)).(*Operation)
	assert.Same(t, sub, f.Children()[0])
	assert.Same(t, sub, f.Children()[1].(*Operation).Children()[0])
	// a, ¬a, sub, xor and the conjunction.
	assert.Equal(t, 5, Size(f))
}

func TestApplyCopiesOperands(t *testing.T) {
	a, b := NewVariable(), NewVariable()
	subs := []Formula{a, b}
	f := Apply(OpOr, subs...).(*Operation)
	subs[0] = False
	assert.Equal(t, []Formula{a, b}, f.Children())
}

func TestQuantifyWithoutVars(t *testing.T) {
	a := NewVariable()
	assert.Same(t, a, ExistsBits(nil, a))
	assert.Same(t, a, ForallBits([]*Variable{}, a))
	q := ExistsBits([]*Variable{a}, a).(*Quantifier)
	assert.Equal(t, KindExists, q.Kind())
	assert.Same(t, a, q.Body())
}

func TestFreeVariables(t *testing.T) {
	a, b, c := NewVariable(), NewVariable(), NewVariable()
	f := And(c, ExistsBits([]*Variable{a}, Or(a, b, c)), a)
	got := FreeVariables(f)
	want := []ID{c.ID(), b.ID(), a.ID()}
	ids := make([]ID, len(got))
	for i, v := range got {
		ids[i] = v.ID()
	}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("invalid free variables (-want +got):\n%s", diff)
	}
	assert.Empty(t, FreeVariables(ForallBits([]*Variable{a, b, c}, f)))
}

func TestBinders(t *testing.T) {
	a, b := NewVariable(), NewVariable()
	inner := ExistsBits([]*Variable{b}, b)
	f := ForallBits([]*Variable{a}, And(inner, inner, a))
	want := map[ID]int{a.ID(): 1, b.ID(): 2}
	if diff := cmp.Diff(want, Binders(f)); diff != "" {
		t.Errorf("invalid binders (-want +got):\n%s", diff)
	}
}
