package solver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/crillab/qsat/qbf"
)

func vars(n int) []*qbf.Variable {
	res := make([]*qbf.Variable, n)
	for i := range res {
		res[i] = qbf.NewVariable()
	}
	return res
}

func mustSolve(t *testing.T, f qbf.Formula) bool {
	t.Helper()
	res, err := Solve(f)
	require.NoError(t, err)
	return res
}

func TestConstants(t *testing.T) {
	assert.True(t, mustSolve(t, qbf.True))
	assert.False(t, mustSolve(t, qbf.False))
	assert.True(t, mustSolve(t, qbf.And()))
	assert.False(t, mustSolve(t, qbf.Or()))
	assert.False(t, mustSolve(t, qbf.Xor()))
	assert.True(t, mustSolve(t, qbf.Eq()))
}

func TestOperations(t *testing.T) {
	x := vars(3)
	a, b, c := x[0], x[1], x[2]
	tests := []struct {
		name string
		f    qbf.Formula
		want func(a, b, c bool) bool
	}{
		{"not", qbf.Not(a), func(a, _, _ bool) bool { return !a }},
		{"and", qbf.And(a, b, c), func(a, b, c bool) bool { return a && b && c }},
		{"or", qbf.Or(a, b, c), func(a, b, c bool) bool { return a || b || c }},
		{"xor", qbf.Xor(a, b, c), func(a, b, c bool) bool { return a != b != c }},
		{"eq", qbf.Eq(a, b, c), func(a, b, c bool) bool { return a == b && b == c }},
		{"iff", qbf.Iff(a, b), func(a, b, _ bool) bool { return a == b }},
		{"neq", qbf.Neq(a, b), func(a, b, _ bool) bool { return a != b }},
		{"implies", qbf.Implies(a, b), func(a, b, _ bool) bool { return !a || b }},
		{"raw eq over 3", qbf.Apply(qbf.OpEq, a, b, c), func(a, b, c bool) bool { return a == b && b == c }},
	}
	s := New()
	for _, test := range tests {
		for mask := 0; mask < 8; mask++ {
			va, vb, vc := mask&1 != 0, mask&2 != 0, mask&4 != 0
			assign := Assignment{a.ID(): va, b.ID(): vb, c.ID(): vc}
			got, err := s.SolveUnder(test.f, assign)
			require.NoError(t, err)
			if want := test.want(va, vb, vc); got != want {
				t.Errorf("%s with a=%t, b=%t, c=%t: expected %t, got %t", test.name, va, vb, vc, want, got)
			}
			assert.Len(t, assign, 3, "assignment should not be modified")
		}
	}
}

func TestEqIsChainedNotDistinct(t *testing.T) {
	// With chained equality, eq(1, 0, 1) is false although its ends agree.
	assert.False(t, mustSolve(t, qbf.Eq(qbf.True, qbf.False, qbf.True)))
	assert.True(t, mustSolve(t, qbf.Eq(qbf.False, qbf.False, qbf.False)))
}

func TestDoubleNegation(t *testing.T) {
	x := vars(3)
	fs := []qbf.Formula{
		qbf.Or(x[0], qbf.And(x[1], qbf.Not(x[2]))),
		qbf.Xor(x[0], x[1], x[2]),
		qbf.Eq(x[0], qbf.Implies(x[1], x[2])),
	}
	for i, f := range fs {
		law := qbf.ForallBits(x, qbf.Iff(qbf.Not(qbf.Not(f)), f))
		assert.True(t, mustSolve(t, law), "formula #%d", i)
	}
}

func TestDeMorgan(t *testing.T) {
	x := vars(2)
	a, b := x[0], x[1]
	and := qbf.ForallBits(x, qbf.Iff(qbf.Not(qbf.And(a, b)), qbf.Or(qbf.Not(a), qbf.Not(b))))
	or := qbf.ForallBits(x, qbf.Iff(qbf.Not(qbf.Or(a, b)), qbf.And(qbf.Not(a), qbf.Not(b))))
	assert.True(t, mustSolve(t, and))
	assert.True(t, mustSolve(t, or))
}

func TestQuantifiers(t *testing.T) {
	x := vars(2)
	a, b := x[0], x[1]
	tests := []struct {
		f    qbf.Formula
		want bool
	}{
		{qbf.ForallBits([]*qbf.Variable{a}, qbf.ExistsBits([]*qbf.Variable{b}, qbf.Xor(a, b))), true},
		{qbf.ExistsBits([]*qbf.Variable{b}, qbf.ForallBits([]*qbf.Variable{a}, qbf.Xor(a, b))), false},
		{qbf.ExistsUniqueBits(x, qbf.And(a, b)), true},
		{qbf.ExistsUniqueBits(x, qbf.Or(a, b)), false},
		{qbf.ExistsUniqueBits(x, qbf.False), false},
		{qbf.ForallBits([]*qbf.Variable{a}, qbf.ExistsUniqueBits([]*qbf.Variable{b}, qbf.Iff(a, b))), true},
		{qbf.ForallBits(nil, qbf.True), true},
	}
	for _, test := range tests {
		if got := mustSolve(t, test.f); got != test.want {
			t.Errorf("invalid result for %s: expected %t, got %t", test.f, test.want, got)
		}
	}
}

func TestEnumerationOrder(t *testing.T) {
	x := vars(3)
	// The only model is the mask 0b101.
	body := qbf.And(x[0], qbf.Not(x[1]), x[2])
	s := New()
	ok, err := s.Solve(qbf.ExistsBits(x, body))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 6, s.Stats.NbAssignments, "exists should stop at the first model")

	s = New()
	ok, err = s.Solve(qbf.ForallBits(x, qbf.Not(body)))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 6, s.Stats.NbAssignments, "forall should stop at the first counter-model")

	s = New()
	ok, err = s.Solve(qbf.ExistsUniqueBits(x, body))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 8, s.Stats.NbAssignments, "unique existence must try every assignment")
	assert.Equal(t, 1, s.Stats.NbQuantifiers)
}

func TestShortCircuit(t *testing.T) {
	free := qbf.NewVariable()
	assert.False(t, mustSolve(t, qbf.And(qbf.False, free)))
	assert.True(t, mustSolve(t, qbf.Or(qbf.True, free)))
	_, err := Solve(qbf.Xor(qbf.True, free))
	assert.Error(t, err, "xor must evaluate all of its operands")
	_, err = Solve(qbf.And(qbf.True, free))
	assert.Error(t, err)
}

func TestUnboundVariable(t *testing.T) {
	x := vars(2)
	f := qbf.ExistsBits(x[:1], qbf.And(x[0], x[1]))
	s := New()
	_, err := s.Solve(f)
	var unbound *UnboundVariableError
	require.True(t, errors.As(err, &unbound), "expected *UnboundVariableError, got %v", err)
	assert.Equal(t, x[1].ID(), unbound.Var.ID())

	// The same variable can be given by the caller.
	assign := Assignment{x[1].ID(): true}
	ok, err := s.SolveUnder(f, assign)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Assignment{x[1].ID(): true}, assign)

	// A false value never hides an unbound variable.
	_, err = s.Solve(qbf.Or(qbf.False, x[1]))
	assert.True(t, errors.As(err, &unbound))
}

func TestNestedQuantifier(t *testing.T) {
	x := vars(2)
	f := qbf.ForallBits(x, qbf.ExistsBits(x[1:], x[1]))
	assign := Assignment{}
	_, err := New().SolveUnder(f, assign)
	var nested *NestedQuantifierError
	require.True(t, errors.As(err, &nested), "expected *NestedQuantifierError, got %v", err)
	assert.Equal(t, x[1].ID(), nested.Var.ID())
	assert.Empty(t, assign, "bindings must be removed after an error")

	_, err = New().SolveUnder(qbf.ExistsBits(x[:1], x[0]), Assignment{x[0].ID(): true})
	assert.True(t, errors.As(err, &nested))

	_, err = Solve(qbf.ExistsBits([]*qbf.Variable{x[0], x[0]}, x[0]))
	assert.True(t, errors.As(err, &nested))
}

func TestSiblingQuantifiers(t *testing.T) {
	// The same variable may be bound by quantifiers that are not nested.
	x := vars(1)
	f := qbf.And(qbf.ExistsBits(x, x[0]), qbf.ExistsBits(x, qbf.Not(x[0])))
	assert.True(t, mustSolve(t, f))
}

type unknownNode struct{}

func (unknownNode) String() string { return "?" }

func TestUnknownNodes(t *testing.T) {
	_, err := Solve(qbf.And(qbf.True, unknownNode{}))
	var node *UnknownNodeError
	assert.True(t, errors.As(err, &node))

	_, err = Solve(qbf.Apply(qbf.Operator(42), qbf.True))
	var op *UnknownOperatorError
	assert.True(t, errors.As(err, &op))

	_, err = Solve(qbf.Quantify(qbf.Kind(42), vars(1), qbf.True))
	var kind *UnknownQuantifierError
	assert.True(t, errors.As(err, &kind))

	_, err = Solve(qbf.Apply(qbf.OpNot, qbf.True, qbf.False))
	var arity *ArityError
	assert.True(t, errors.As(err, &arity))
}

func TestWideQuantifier(t *testing.T) {
	// More than 64 bound variables: the enumeration is not bound by a machine word.
	x := vars(70)
	f := qbf.ExistsBits(x, qbf.True)
	assert.True(t, mustSolve(t, f))
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	x := vars(2)
	s := New(WithLogger(zap.New(core)))
	ok, err := s.Solve(qbf.ForallBits(x, qbf.Or(x[0], qbf.Not(x[0]))))
	require.NoError(t, err)
	assert.True(t, ok)
	entries := logs.FilterMessage("leaving quantifier").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(4), entries[0].ContextMap()["nbModels"])
}

func ExampleSolver_Solve() {
	a, b := qbf.NewVariable(), qbf.NewVariable()
	f := qbf.ForallBits([]*qbf.Variable{a}, qbf.ExistsBits([]*qbf.Variable{b}, qbf.Xor(a, b)))
	ok, err := New().Solve(f)
	if err != nil {
		fmt.Printf("Could not solve formula: %v", err)
		return
	}
	fmt.Println(ok)
	// Output: true
}
