/*
Package solver decides the truth of quantified boolean formulas built with
the qbf package.

The solver is a reference evaluator, not a decision procedure: each
quantifier enumerates all the assignments of the variables it binds, and
the body is evaluated under each of them. Conjunctions and disjunctions are
evaluated left to right and stop as soon as their value is known, as do
existential and universal quantifiers. A unique-existential quantifier
always tries every assignment, since it has to count the models of its body.

Solving a formula

	a, b := qbf.NewVariable(), qbf.NewVariable()
	f := qbf.ForallBits([]*qbf.Variable{a}, qbf.ExistsBits([]*qbf.Variable{b}, qbf.Xor(a, b)))
	s := solver.New()
	ok, err := s.Solve(f)

The formula must be closed: every variable must be bound by a quantifier.
Otherwise, an *UnboundVariableError is returned. Free variables can be
bound by an explicit assignment:

	ok, err := s.SolveUnder(qbf.Xor(a, b), solver.Assignment{a.ID(): true, b.ID(): false})

A variable cannot be bound twice by nested quantifiers: such formulas yield a
*NestedQuantifierError.

The running time is exponential in the number of quantified variables,
compounded by quantifier nesting. Callers should keep their values a few
bits wide.
*/
package solver
