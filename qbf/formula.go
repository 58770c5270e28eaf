package qbf

import (
	"fmt"
	"strings"

	"go.uber.org/atomic"
)

// A Formula is any node of a quantified boolean formula.
// Formulas are immutable once built and may share sub-formulas, so a formula
// is a DAG rather than a tree.
type Formula interface {
	String() string
}

// ID uniquely identifies a boolean variable in the whole process.
type ID uint64

// lastID is never reset; the first variable gets the id 1.
var lastID atomic.Uint64

// A Variable is an atomic proposition.
// Two variables are the same proposition iff they have the same ID.
type Variable struct {
	id ID
}

// NewVariable returns a fresh boolean variable.
func NewVariable() *Variable {
	return &Variable{id: ID(lastID.Inc())}
}

// ID returns the unique identifier of v.
func (v *Variable) ID() ID {
	return v.id
}

func (v *Variable) String() string {
	return fmt.Sprintf("x%d", v.id)
}

// A Constant is a boolean literal.
type Constant bool

const (
	// True is the constant denoting a tautology.
	True = Constant(true)
	// False is the constant denoting a contradiction.
	False = Constant(false)
)

// Const returns the constant formula associated with b.
func Const(b bool) Formula {
	return Constant(b)
}

func (c Constant) String() string {
	if c {
		return "1"
	}
	return "0"
}

// An Operator is the connective of an Operation.
type Operator byte

const (
	// OpNot is the negation of its only operand.
	OpNot = Operator(iota)
	// OpAnd is the conjunction of its operands.
	OpAnd
	// OpOr is the disjunction of its operands.
	OpOr
	// OpXor is the parity of its operands.
	OpXor
	// OpEq is the chained equality of its operands: x1=x2, x2=x3, ...
	OpEq
)

func (op Operator) String() string {
	switch op {
	case OpNot:
		return "¬"
	case OpAnd:
		return "∧"
	case OpOr:
		return "∨"
	case OpXor:
		return "⊕"
	case OpEq:
		return "="
	default:
		return fmt.Sprintf("op(%d)", byte(op))
	}
}

// An Operation applies an Operator to one or more sub-formulas.
type Operation struct {
	op       Operator
	children []Formula
}

// Op returns the connective of the operation.
func (o *Operation) Op() Operator {
	return o.op
}

// Children returns the operands of the operation.
// The returned slice must not be modified.
func (o *Operation) Children() []Formula {
	return o.children
}

func (o *Operation) String() string {
	if o.op == OpNot && len(o.children) == 1 {
		return "¬" + o.children[0].String()
	}
	if len(o.children) == 1 {
		return o.children[0].String()
	}
	strs := make([]string, len(o.children))
	for i, f := range o.children {
		strs[i] = f.String()
	}
	return "(" + strings.Join(strs, " "+o.op.String()+" ") + ")"
}

// Apply builds the operation op over the given operands.
// It performs no simplification and no validation of op; the evaluator
// rejects unknown operators.
func Apply(op Operator, subs ...Formula) Formula {
	children := make([]Formula, len(subs))
	copy(children, subs)
	return &Operation{op: op, children: children}
}

// Not generates the negation of f.
func Not(f Formula) Formula {
	return &Operation{op: OpNot, children: []Formula{f}}
}

// And generates a conjunction of subformulas.
// The conjunction of no formula is True.
func And(subs ...Formula) Formula {
	if len(subs) == 0 {
		return True
	}
	return Apply(OpAnd, subs...)
}

// Or generates a disjunction of subformulas.
// The disjunction of no formula is False.
func Or(subs ...Formula) Formula {
	if len(subs) == 0 {
		return False
	}
	return Apply(OpOr, subs...)
}

// Xor is true iff an odd number of subformulas are true.
// The parity of no formula is False.
func Xor(subs ...Formula) Formula {
	if len(subs) == 0 {
		return False
	}
	return Apply(OpXor, subs...)
}

// Iff indicates a subformula is equivalent to another one.
func Iff(f1, f2 Formula) Formula {
	return &Operation{op: OpEq, children: []Formula{f1, f2}}
}

// Neq indicates two subformulas have different values.
func Neq(f1, f2 Formula) Formula {
	return Not(Iff(f1, f2))
}

// Eq states all subformulas have the same value.
// It is folded into a conjunction of pairwise equalities between neighbours,
// so Eq(a, b, c) is And(Iff(a, b), Iff(b, c)).
func Eq(subs ...Formula) Formula {
	if len(subs) == 2 {
		return Iff(subs[0], subs[1])
	}
	eqs := make([]Formula, 0, len(subs))
	for i := 1; i < len(subs); i++ {
		eqs = append(eqs, Iff(subs[i-1], subs[i]))
	}
	return And(eqs...)
}

// Implies indicates a subformula implies another one.
func Implies(f1, f2 Formula) Formula {
	return Or(Not(f1), f2)
}
