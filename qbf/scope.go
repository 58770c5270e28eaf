package qbf

// A Scope is a quantifier over domain values, waiting for its body.
type Scope struct {
	kind Kind
	vals []*Value
}

// Exists quantifies existentially over the given values:
// Exists(a, b).Holds(f) is ∃bits(a,b). (valid(a) ∧ valid(b) ∧ f).
func Exists(vals ...Valuer) Scope {
	return newScope(KindExists, vals)
}

// Forall quantifies universally over the given values:
// Forall(a, b).Holds(f) is ∀bits(a,b). ((valid(a) ∧ valid(b)) → f).
func Forall(vals ...Valuer) Scope {
	return newScope(KindForall, vals)
}

// ExistsUnique states exactly one valid assignment of the given values
// satisfies the body.
func ExistsUnique(vals ...Valuer) Scope {
	return newScope(KindExistsUnique, vals)
}

func newScope(kind Kind, vals []Valuer) Scope {
	s := Scope{kind: kind, vals: make([]*Value, len(vals))}
	for i, val := range vals {
		s.vals[i] = val.Base()
	}
	return s
}

// Holds closes the scope over body.
// If the scope has no value, body is returned unchanged.
func (s Scope) Holds(body Formula) Formula {
	if len(s.vals) == 0 {
		return body
	}
	var (
		vars        []*Variable
		constraints []Formula
	)
	for _, v := range s.vals {
		vars = append(vars, v.bits...)
		if v.constraint != True {
			constraints = append(constraints, v.constraint)
		}
	}
	switch {
	case len(constraints) == 0:
		return Quantify(s.kind, vars, body)
	case s.kind == KindForall:
		return ForallBits(vars, Implies(And(constraints...), body))
	default:
		return Quantify(s.kind, vars, And(append(constraints, body)...))
	}
}

// consume clears the auxiliary flag of operands and returns those that had it.
// An operand given several times is only returned once.
func consume(operands []Valuer) []Valuer {
	var consumed []Valuer
	seen := make(map[*Value]bool)
	for _, op := range operands {
		v := op.Base()
		if v.auxiliary && !seen[v] {
			seen[v] = true
			v.auxiliary = false
			consumed = append(consumed, v)
		}
	}
	return consumed
}

// Derive runs build, a constructor of a new value computed from operands,
// under the auxiliary-scoping discipline.
//
// The auxiliary operands are consumed: their bits are existentially bound,
// together with their constraints, inside the constraint of the returned
// value. The returned value is itself marked auxiliary, so that the next
// operation using it binds its bits in turn. build must only access operands
// through Bit and Width.
func Derive[T Valuer](build func() T, operands ...Valuer) T {
	consumed := consume(operands)
	res := build()
	v := res.Base()
	v.auxiliary = true
	if len(consumed) > 0 {
		v.constraint = Exists(consumed...).Holds(v.constraint)
	}
	return res
}

// Relate runs build, a relation between operands, under the
// auxiliary-scoping discipline: the auxiliary operands are existentially
// bound around the formula built.
func Relate(build func() Formula, operands ...Valuer) Formula {
	consumed := consume(operands)
	f := build()
	if len(consumed) > 0 {
		return Exists(consumed...).Holds(f)
	}
	return f
}
