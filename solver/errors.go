package solver

import (
	"fmt"

	"github.com/crillab/qsat/qbf"
)

// An UnboundVariableError is returned when the solver meets a variable that
// is neither bound by an enclosing quantifier nor present in the assignment.
type UnboundVariableError struct {
	Var *qbf.Variable
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("variable %s cannot be evaluated: it is not bound", e.Var)
}

// A NestedQuantifierError is returned when a quantifier binds a variable
// that is already bound.
type NestedQuantifierError struct {
	Var *qbf.Variable
}

func (e *NestedQuantifierError) Error() string {
	return fmt.Sprintf("detected nested quantifiers binding %s", e.Var)
}

// An UnknownNodeError is returned when the formula contains a node that is
// not part of the qbf algebra.
type UnknownNodeError struct {
	Node qbf.Formula
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown node type %T", e.Node)
}

// An UnknownOperatorError is returned when an operation has an invalid operator.
type UnknownOperatorError struct {
	Op qbf.Operator
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operation type %s", e.Op)
}

// An UnknownQuantifierError is returned when a quantifier has an invalid kind.
type UnknownQuantifierError struct {
	Kind qbf.Kind
}

func (e *UnknownQuantifierError) Error() string {
	return fmt.Sprintf("unknown quantifier type %s", e.Kind)
}

// An ArityError is returned when an operation has an invalid number of operands.
type ArityError struct {
	Op qbf.Operator
	Nb int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("operation %s cannot have %d operands", e.Op, e.Nb)
}
