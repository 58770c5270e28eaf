package qbf_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/qsat/qbf"
	"github.com/crillab/qsat/solver"
)

func solve(t *testing.T, f qbf.Formula) bool {
	t.Helper()
	res, err := solver.Solve(f)
	require.NoError(t, err)
	return res
}

// duplicate is a derived operation returning a copy of v.
func duplicate(v *qbf.Value) *qbf.Value {
	return qbf.Derive(func() *qbf.Value {
		res := qbf.NewValue(v.Width())
		for i := 0; i < v.Width(); i++ {
			res.Constrain(qbf.Iff(res.Bit(i), v.Bit(i)))
		}
		return res
	}, v)
}

func TestNewValue(t *testing.T) {
	v := qbf.NewValue(3)
	assert.Equal(t, 3, v.Width())
	assert.Len(t, v.Vars(), 3)
	assert.Equal(t, qbf.True, v.Constraint())
	assert.False(t, v.Auxiliary())
	assert.Same(t, v, v.Base())
	for i, bit := range v.Vars() {
		assert.Same(t, bit, v.Bit(i))
	}
	assert.Equal(t, qbf.False, v.Bit(-1))
	assert.Equal(t, qbf.False, v.Bit(3))

	vars := v.Vars()
	vars[0] = nil
	assert.NotNil(t, v.Vars()[0], "Vars must return a copy")
}

func TestOutOfRangePolicy(t *testing.T) {
	v := qbf.NewValue(2, qbf.WithOutOfRange(func(i int) qbf.Formula { return qbf.Const(i < 0) }))
	assert.Equal(t, qbf.True, v.Bit(-1))
	assert.Equal(t, qbf.False, v.Bit(2))
}

func TestValueQuantifiers(t *testing.T) {
	a, b := qbf.NewValue(3), qbf.NewValue(3)
	assert.True(t, solve(t, qbf.Forall(a).Holds(qbf.ExistsUnique(b).Holds(qbf.Equal(a, b)))))
	c, d := qbf.NewValue(3), qbf.NewValue(3)
	assert.False(t, solve(t, qbf.Forall(c).Holds(qbf.ExistsUnique(d).Holds(qbf.NotEqual(c, d)))))
	e, f := qbf.NewValue(2), qbf.NewValue(2)
	assert.True(t, solve(t, qbf.Exists(e, f).Holds(qbf.NotEqual(e, f))))
	assert.Equal(t, qbf.True, qbf.Exists().Holds(qbf.True))
}

func TestConstraintsAreQuantified(t *testing.T) {
	// Only the patterns with the first bit set are valid.
	v := qbf.NewValue(2)
	v.Constrain(v.Bit(0))
	assert.True(t, solve(t, qbf.Forall(v).Holds(v.Bit(0))))
	assert.False(t, solve(t, qbf.Exists(v).Holds(qbf.Not(v.Bit(0)))))
	// Two valid patterns: 01 and 11.
	assert.False(t, solve(t, qbf.ExistsUnique(v).Holds(qbf.True)))
	assert.True(t, solve(t, qbf.ExistsUnique(v).Holds(v.Bit(1))))
}

func TestEqualZeroExtends(t *testing.T) {
	a, b := qbf.NewValue(2), qbf.NewValue(3)
	// b equals a only when its extra bit is unset.
	assert.False(t, solve(t, qbf.Exists(a, b).Holds(qbf.And(qbf.Equal(a, b), b.Bit(2)))))
	assert.True(t, solve(t, qbf.Forall(a).Holds(qbf.Exists(b).Holds(qbf.Equal(a, b)))))
}

func TestDeriveMarksAuxiliary(t *testing.T) {
	a := qbf.NewValue(2)
	c := duplicate(a)
	assert.True(t, c.Auxiliary())
	assert.False(t, a.Auxiliary())
	d := duplicate(c)
	assert.False(t, c.Auxiliary(), "consumed values are no longer auxiliary")
	assert.True(t, d.Auxiliary())
	// The constraint of d binds the bits of c.
	q, ok := d.Constraint().(*qbf.Quantifier)
	require.True(t, ok, "constraint should be quantified, got %s", d.Constraint())
	assert.Equal(t, qbf.KindExists, q.Kind())
	assert.Equal(t, c.Vars(), q.Vars())
}

func TestWitnessesBoundExactlyOnce(t *testing.T) {
	a := qbf.NewValue(2)
	c := duplicate(a)
	d := duplicate(c)
	e := duplicate(d)
	f := qbf.Forall(a).Holds(qbf.Equal(e, a))
	assert.Empty(t, qbf.FreeVariables(f))
	binders := qbf.Binders(f)
	for _, w := range []*qbf.Value{a, c, d, e} {
		for _, v := range w.Vars() {
			assert.Equal(t, 1, binders[v.ID()], "bit %s", v)
		}
	}
	assert.True(t, solve(t, f))
}

func TestRelateSameOperandTwice(t *testing.T) {
	a := qbf.NewValue(2)
	c := duplicate(a)
	f := qbf.Forall(a).Holds(qbf.Equal(c, c))
	binders := qbf.Binders(f)
	for _, v := range c.Vars() {
		assert.Equal(t, 1, binders[v.ID()])
	}
	assert.True(t, solve(t, f))
}

func TestConsumedValueCannotBeReused(t *testing.T) {
	a := qbf.NewValue(1)
	c := duplicate(a)
	first := qbf.Equal(c, a)
	second := qbf.Equal(c, a)
	_, err := solver.Solve(qbf.Forall(a).Holds(qbf.And(first, second)))
	var unbound *solver.UnboundVariableError
	assert.True(t, errors.As(err, &unbound), "expected *UnboundVariableError, got %v", err)
}

func TestBuild(t *testing.T) {
	a, b := qbf.NewValue(1), qbf.NewValue(2)
	f, err := qbf.Build(func() qbf.Formula {
		qbf.RequireSameWidth("test", a, b)
		return qbf.True
	})
	assert.Nil(t, f)
	var mismatch *qbf.WidthMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, qbf.WidthMismatchError{Op: "test", Left: 1, Right: 2}, *mismatch)
	assert.ErrorIs(t, err, qbf.ErrUsage)

	f, err = qbf.Build(func() qbf.Formula { return qbf.Equal(a, b) })
	assert.NoError(t, err)
	assert.NotNil(t, f)

	assert.PanicsWithValue(t, "boom", func() {
		_, _ = qbf.Build(func() qbf.Formula { panic("boom") })
	})
}
