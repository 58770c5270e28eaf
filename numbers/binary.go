package numbers

import "github.com/crillab/qsat/qbf"

// A Binary is an unsigned integer encoded in binary, bit 0 being the least
// significant one. Every bit pattern is valid.
//
// Arithmetic is modular: overflowing bits are silently dropped, as with
// unsigned machine integers. Operations combining two binary integers
// require them to have the same width and panic with a
// *qbf.WidthMismatchError otherwise; comparisons accept any widths.
type Binary struct {
	*qbf.Value
}

// NewBinary returns a new binary integer of the given width.
func NewBinary(width int) *Binary {
	return &Binary{Value: qbf.NewValue(width)}
}

// bitSum states a + b + c == 2*s1 + s0.
func bitSum(a, b, c, s0, s1 qbf.Formula) qbf.Formula {
	return qbf.And(
		qbf.Iff(s0, qbf.Xor(a, b, c)),
		qbf.Iff(s1, qbf.Or(qbf.And(a, b), qbf.And(b, c), qbf.And(a, c))),
	)
}

// AddBinary returns a + b.
// The carries of the ripple-carry adder are bound in the constraint of the sum.
func AddBinary(a, b *Binary) *Binary {
	qbf.RequireSameWidth("add", a, b)
	return qbf.Derive(func() *Binary {
		n := a.Width()
		sum := NewBinary(n)
		carry := qbf.NewValue(n + 1)
		conds := make([]qbf.Formula, 0, n+1)
		conds = append(conds, qbf.Not(carry.Bit(0)))
		for k := 0; k < n; k++ {
			conds = append(conds, bitSum(a.Bit(k), b.Bit(k), carry.Bit(k), sum.Bit(k), carry.Bit(k+1)))
		}
		sum.Constrain(qbf.Exists(carry).Holds(qbf.And(conds...)))
		return sum
	}, a, b)
}

// MulBinary returns a * b.
// It sums the partial products a<<i if the i-th bit of b is set.
func MulBinary(a, b *Binary) *Binary {
	qbf.RequireSameWidth("mul", a, b)
	return qbf.Derive(func() *Binary {
		n := a.Width()
		prod := NewBinary(n)
		if n == 0 {
			return prod
		}
		var conds []qbf.Formula
		rows := make([]qbf.Valuer, n)
		for i := range rows {
			row := NewBinary(n)
			for j := 0; j < i; j++ {
				conds = append(conds, qbf.Not(row.Bit(j)))
			}
			for j := i; j < n; j++ {
				conds = append(conds, qbf.Iff(row.Bit(j), qbf.And(a.Bit(j-i), b.Bit(i))))
			}
			rows[i] = row
		}
		s := rows[0].(*Binary)
		for _, row := range rows[1:] {
			s = AddBinary(s, row.(*Binary))
		}
		conds = append(conds, EqualBinary(prod, s))
		prod.Constrain(qbf.Exists(rows...).Holds(qbf.And(conds...)))
		return prod
	}, a, b)
}

type bitwise func(bits ...qbf.Formula) qbf.Formula

func combine(name string, op bitwise, a, b *Binary) *Binary {
	qbf.RequireSameWidth(name, a, b)
	return qbf.Derive(func() *Binary {
		res := NewBinary(a.Width())
		defs := make([]qbf.Formula, res.Width())
		for i := range defs {
			defs[i] = qbf.Iff(res.Bit(i), op(a.Bit(i), b.Bit(i)))
		}
		res.Constrain(defs...)
		return res
	}, a, b)
}

// AndBinary returns the bitwise conjunction of a and b.
func AndBinary(a, b *Binary) *Binary {
	return combine("and", qbf.And, a, b)
}

// OrBinary returns the bitwise disjunction of a and b.
func OrBinary(a, b *Binary) *Binary {
	return combine("or", qbf.Or, a, b)
}

// XorBinary returns the bitwise exclusive disjunction of a and b.
func XorBinary(a, b *Binary) *Binary {
	return combine("xor", qbf.Xor, a, b)
}

// NotBinary returns the bitwise negation of a.
func NotBinary(a *Binary) *Binary {
	return qbf.Derive(func() *Binary {
		res := NewBinary(a.Width())
		defs := make([]qbf.Formula, res.Width())
		for i := range defs {
			defs[i] = qbf.Iff(res.Bit(i), qbf.Not(a.Bit(i)))
		}
		res.Constrain(defs...)
		return res
	}, a)
}

// Is states b is equal to the constant k.
// If k cannot be represented on b.Width() bits, the result is False.
func (b *Binary) Is(k uint64) qbf.Formula {
	return qbf.Relate(func() qbf.Formula {
		w := b.Width()
		if w < 64 && k>>uint(w) != 0 {
			return qbf.False
		}
		lits := make([]qbf.Formula, w)
		for i := range lits {
			if i < 64 && k>>uint(i)&1 == 1 {
				lits[i] = b.Bit(i)
			} else {
				lits[i] = qbf.Not(b.Bit(i))
			}
		}
		return qbf.And(lits...)
	}, b)
}

// EqualBinary states a == b.
func EqualBinary(a, b *Binary) qbf.Formula {
	return qbf.Equal(a, b)
}

// NotEqualBinary states a != b.
func NotEqualBinary(a, b *Binary) qbf.Formula {
	return qbf.NotEqual(a, b)
}

// LessBinary states a < b: on the most significant bit where they differ,
// a is 0 and b is 1.
func LessBinary(a, b *Binary) qbf.Formula {
	return qbf.Relate(func() qbf.Formula {
		n := max(a.Width(), b.Width())
		options := make([]qbf.Formula, n)
		for i := range options {
			conds := []qbf.Formula{qbf.Not(a.Bit(i)), b.Bit(i)}
			for j := i + 1; j < n; j++ {
				conds = append(conds, qbf.Iff(a.Bit(j), b.Bit(j)))
			}
			options[i] = qbf.And(conds...)
		}
		return qbf.Or(options...)
	}, a, b)
}

// LessEqBinary states a <= b.
func LessEqBinary(a, b *Binary) qbf.Formula {
	return qbf.Relate(func() qbf.Formula {
		return qbf.Or(LessBinary(a, b), EqualBinary(a, b))
	}, a, b)
}

// GreaterBinary states a > b.
func GreaterBinary(a, b *Binary) qbf.Formula {
	return LessBinary(b, a)
}

// GreaterEqBinary states a >= b.
func GreaterEqBinary(a, b *Binary) qbf.Formula {
	return LessEqBinary(b, a)
}
