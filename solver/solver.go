package solver

import (
	"go.uber.org/zap"

	"github.com/crillab/qsat/qbf"
)

// An Assignment binds variables, identified by their ID, to a value.
type Assignment map[qbf.ID]bool

// Stats are statistics about the evaluation of formulas.
// They are provided for information purpose only.
type Stats struct {
	NbNodes       int // How many nodes were evaluated
	NbQuantifiers int // How many quantifier nodes were evaluated
	NbAssignments int // How many assignments of quantified variables were tried
}

// A Solver decides the truth of formulas by brute force: each quantifier
// tries all the assignments of the variables it binds.
// Its running time is exponential in the number of quantified variables,
// so it is only suitable for small formulas.
//
// A Solver is not safe for concurrent use.
type Solver struct {
	Stats  Stats // Statistics about the evaluations made so far.
	logger *zap.Logger
}

// An Option customizes a Solver.
type Option func(s *Solver)

// WithLogger makes the solver trace quantifier evaluations on l, at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) {
		s.logger = l
	}
}

// New returns a new brute-force solver.
func New(options ...Option) *Solver {
	s := &Solver{}
	for _, option := range options {
		option(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Solve evaluates the given closed formula with a solver using default options.
func Solve(f qbf.Formula) (bool, error) {
	return New().Solve(f)
}

// Solve returns the truth value of f, which must be closed.
// If f has a free variable, an *UnboundVariableError is returned.
func (s *Solver) Solve(f qbf.Formula) (bool, error) {
	return s.SolveUnder(f, nil)
}

// SolveUnder returns the truth value of f when its free variables are bound
// as in assign. assign is modified during the evaluation but recovers its
// initial content before SolveUnder returns.
func (s *Solver) SolveUnder(f qbf.Formula, assign Assignment) (bool, error) {
	if assign == nil {
		assign = make(Assignment)
	}
	return s.eval(f, assign)
}

func (s *Solver) eval(f qbf.Formula, assign Assignment) (bool, error) {
	s.Stats.NbNodes++
	switch f := f.(type) {
	case *qbf.Variable:
		b, ok := assign[f.ID()]
		if !ok {
			return false, &UnboundVariableError{Var: f}
		}
		return b, nil
	case qbf.Constant:
		return bool(f), nil
	case *qbf.Operation:
		return s.operation(f, assign)
	case *qbf.Quantifier:
		return s.quantifier(f, assign)
	default:
		return false, &UnknownNodeError{Node: f}
	}
}

func (s *Solver) operation(o *qbf.Operation, assign Assignment) (bool, error) {
	children := o.Children()
	switch o.Op() {
	case qbf.OpNot:
		if len(children) != 1 {
			return false, &ArityError{Op: o.Op(), Nb: len(children)}
		}
		b, err := s.eval(children[0], assign)
		return !b, err
	case qbf.OpAnd:
		for _, sub := range children {
			if b, err := s.eval(sub, assign); err != nil || !b {
				return false, err
			}
		}
		return true, nil
	case qbf.OpOr:
		for _, sub := range children {
			if b, err := s.eval(sub, assign); err != nil || b {
				return b, err
			}
		}
		return false, nil
	case qbf.OpXor:
		res := false
		for _, sub := range children {
			b, err := s.eval(sub, assign)
			if err != nil {
				return false, err
			}
			res = res != b
		}
		return res, nil
	case qbf.OpEq:
		if len(children) == 0 {
			return true, nil
		}
		prev, err := s.eval(children[0], assign)
		if err != nil {
			return false, err
		}
		for _, sub := range children[1:] {
			b, err := s.eval(sub, assign)
			if err != nil {
				return false, err
			}
			if b != prev {
				return false, nil
			}
			prev = b
		}
		return true, nil
	default:
		return false, &UnknownOperatorError{Op: o.Op()}
	}
}

// quantifier enumerates the 2^k assignments of the k variables bound by q,
// in increasing order of the mask whose i-th bit is the value of the i-th
// variable. The bindings are removed before returning.
func (s *Solver) quantifier(q *qbf.Quantifier, assign Assignment) (res bool, err error) {
	kind := q.Kind()
	if kind != qbf.KindExists && kind != qbf.KindForall && kind != qbf.KindExistsUnique {
		return false, &UnknownQuantifierError{Kind: kind}
	}
	s.Stats.NbQuantifiers++
	vars := q.Vars()
	for i, v := range vars {
		if _, ok := assign[v.ID()]; ok {
			unbind(assign, vars[:i])
			return false, &NestedQuantifierError{Var: v}
		}
		assign[v.ID()] = false
	}
	defer unbind(assign, vars)
	if ce := s.logger.Check(zap.DebugLevel, "entering quantifier"); ce != nil {
		ce.Write(zap.Stringer("kind", kind), zap.Int("nbVars", len(vars)))
	}
	nbModels := 0
	for {
		s.Stats.NbAssignments++
		b, err := s.eval(q.Body(), assign)
		if err != nil {
			return false, err
		}
		switch {
		case kind == qbf.KindExists && b:
			return true, nil
		case kind == qbf.KindForall && !b:
			return false, nil
		case b:
			nbModels++
		}
		if !next(assign, vars) {
			break
		}
	}
	res = kind == qbf.KindForall || (kind == qbf.KindExistsUnique && nbModels == 1)
	if ce := s.logger.Check(zap.DebugLevel, "leaving quantifier"); ce != nil {
		ce.Write(zap.Stringer("kind", kind), zap.Int("nbVars", len(vars)), zap.Int("nbModels", nbModels), zap.Bool("result", res))
	}
	return res, nil
}

// next moves to the next assignment of vars, variable 0 being the least
// significant bit. It returns false once all assignments were tried.
func next(assign Assignment, vars []*qbf.Variable) bool {
	for _, v := range vars {
		if !assign[v.ID()] {
			assign[v.ID()] = true
			return true
		}
		assign[v.ID()] = false
	}
	return false
}

func unbind(assign Assignment, vars []*qbf.Variable) {
	for _, v := range vars {
		delete(assign, v.ID())
	}
}
