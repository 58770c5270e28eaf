package qbf

import (
	"fmt"
	"strings"
)

// A Kind is the type of a quantifier.
type Kind byte

const (
	// KindExists is satisfied by at least one assignment of the bound variables.
	KindExists = Kind(iota)
	// KindForall is satisfied by every assignment of the bound variables.
	KindForall
	// KindExistsUnique is satisfied by exactly one assignment of the bound variables.
	KindExistsUnique
)

func (k Kind) String() string {
	switch k {
	case KindExists:
		return "∃"
	case KindForall:
		return "∀"
	case KindExistsUnique:
		return "∃!"
	default:
		return fmt.Sprintf("quantifier(%d)", byte(k))
	}
}

// A Quantifier binds an ordered set of variables in its body.
type Quantifier struct {
	kind Kind
	vars []*Variable
	body Formula
}

// Kind returns the type of the quantifier.
func (q *Quantifier) Kind() Kind {
	return q.kind
}

// Vars returns the variables bound by q, in binding order.
// The returned slice must not be modified.
func (q *Quantifier) Vars() []*Variable {
	return q.vars
}

// Body returns the formula the variables are bound in.
func (q *Quantifier) Body() Formula {
	return q.body
}

func (q *Quantifier) String() string {
	strs := make([]string, len(q.vars))
	for i, v := range q.vars {
		strs[i] = v.String()
	}
	return q.kind.String() + strings.Join(strs, ",") + " " + q.body.String()
}

// Quantify binds vars in body with the given kind of quantifier.
// If vars is empty, body is returned as is.
func Quantify(kind Kind, vars []*Variable, body Formula) Formula {
	if len(vars) == 0 {
		return body
	}
	bound := make([]*Variable, len(vars))
	copy(bound, vars)
	return &Quantifier{kind: kind, vars: bound, body: body}
}

// ExistsBits states body holds for at least one assignment of vars.
func ExistsBits(vars []*Variable, body Formula) Formula {
	return Quantify(KindExists, vars, body)
}

// ForallBits states body holds for every assignment of vars.
func ForallBits(vars []*Variable, body Formula) Formula {
	return Quantify(KindForall, vars, body)
}

// ExistsUniqueBits states body holds for exactly one assignment of vars.
func ExistsUniqueBits(vars []*Variable, body Formula) Formula {
	return Quantify(KindExistsUnique, vars, body)
}
