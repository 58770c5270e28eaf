// Package qbf offers facilities to build quantified boolean formulas over
// domain values encoded as vectors of boolean variables.
//
// A formula is built from constants, variables, the connectives Not, And,
// Or, Xor and Eq, and the quantifiers ∃, ∀ and ∃!. For example, the formula
//
// ∀a ∃b (a ⊕ b)
//
// will be defined with the following code:
//
//	a, b := NewVariable(), NewVariable()
//	f := ForallBits([]*Variable{a}, ExistsBits([]*Variable{b}, Xor(a, b)))
//
// Higher-level objects (integers, graphs, ...) are represented by a Value:
// a fixed number of bits, plus a constraint stating which bit patterns are
// valid. Quantifying over a value binds all of its bits and takes its
// constraint into account:
//
//	Forall(n).Holds(Exists(m).Holds(...))
//
// Operations computing a new value from other ones (a sum, a graph union,
// ...) introduce auxiliary values whose bits must be bound somewhere.
// Derive and Relate take care of this: every auxiliary value is
// existentially bound exactly once, by the operation consuming it, so that
// expressions such as Equal(Add(a, b), c) can be written without any
// explicit quantifier on the sum.
//
// The packages numbers and graphs provide such encodings, and the package
// solver decides the truth of the resulting closed formulas.
package qbf
