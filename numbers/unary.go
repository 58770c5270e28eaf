package numbers

import "github.com/crillab/qsat/qbf"

// A Unary is an unsigned integer encoded in unary: a magnitude v is
// represented by v leading bits set to true, followed by bits set to false.
// A Unary of width w ranges over 0..w.
//
// Reading a bit at a negative index yields True and reading a bit at an
// index >= width yields False, which is consistent with the encoding: every
// number is at least 0 and at most its width.
type Unary struct {
	*qbf.Value
}

func unaryOutside(i int) qbf.Formula {
	return qbf.Const(i < 0)
}

// NewUnary returns a new unary integer of the given width.
func NewUnary(width int) *Unary {
	u := &Unary{Value: qbf.NewValue(width, qbf.WithOutOfRange(unaryOutside))}
	valid := make([]qbf.Formula, 0, width)
	for i := 1; i < width; i++ {
		valid = append(valid, qbf.Implies(u.Bit(i), u.Bit(i-1)))
	}
	u.Constrain(valid...)
	return u
}

// AddUnary returns the sum of a and b, of width a.Width()+b.Width().
// The k-th unit of the sum is set iff k units can be split between a and b.
func AddUnary(a, b *Unary) *Unary {
	return qbf.Derive(func() *Unary {
		wa, wb := a.Width(), b.Width()
		sum := NewUnary(wa + wb)
		defs := make([]qbf.Formula, sum.Width())
		for k := 1; k <= sum.Width(); k++ {
			var splits []qbf.Formula
			for i := max(0, k-wb); i <= min(k, wa); i++ {
				splits = append(splits, qbf.And(a.Bit(i-1), b.Bit(k-i-1)))
			}
			defs[k-1] = qbf.Iff(sum.Bit(k-1), qbf.Or(splits...))
		}
		sum.Constrain(defs...)
		return sum
	}, a, b)
}

// MulUnary returns the product of a and b, of width a.Width()*b.Width().
// The k-th unit of the product is set iff a >= i and b >= j for some i and j
// such that i*j >= k.
func MulUnary(a, b *Unary) *Unary {
	return qbf.Derive(func() *Unary {
		wa, wb := a.Width(), b.Width()
		prod := NewUnary(wa * wb)
		defs := make([]qbf.Formula, prod.Width())
		for k := 1; k <= prod.Width(); k++ {
			var options []qbf.Formula
			for i := 1; i <= wa; i++ {
				// Since b is a thermometer code, the smallest suitable j is enough.
				j := (k + i - 1) / i
				if j <= wb {
					options = append(options, qbf.And(a.Bit(i-1), b.Bit(j-1)))
				}
			}
			defs[k-1] = qbf.Iff(prod.Bit(k-1), qbf.Or(options...))
		}
		prod.Constrain(defs...)
		return prod
	}, a, b)
}

// Is states u is equal to the constant k.
// It is Bit(k-1) ∧ ¬Bit(k), so Is(0) is ¬Bit(0), Is(u.Width()) is
// Bit(u.Width()-1), and Is(k) is False for k < 0 or k > u.Width().
func (u *Unary) Is(k int) qbf.Formula {
	return qbf.Relate(func() qbf.Formula {
		return qbf.And(u.Bit(k-1), qbf.Not(u.Bit(k)))
	}, u)
}

// LessEqUnary states a <= b, i.e each unit of a is a unit of b.
// Widths may differ.
func LessEqUnary(a, b *Unary) qbf.Formula {
	return qbf.Relate(func() qbf.Formula {
		n := max(a.Width(), b.Width())
		imps := make([]qbf.Formula, n)
		for i := range imps {
			imps[i] = qbf.Implies(a.Bit(i), b.Bit(i))
		}
		return qbf.And(imps...)
	}, a, b)
}

// GreaterEqUnary states a >= b.
func GreaterEqUnary(a, b *Unary) qbf.Formula {
	return LessEqUnary(b, a)
}

// EqualUnary states a == b.
func EqualUnary(a, b *Unary) qbf.Formula {
	return qbf.Relate(func() qbf.Formula {
		return qbf.And(LessEqUnary(a, b), LessEqUnary(b, a))
	}, a, b)
}

// NotEqualUnary states a != b.
func NotEqualUnary(a, b *Unary) qbf.Formula {
	return qbf.Relate(func() qbf.Formula {
		return qbf.Not(EqualUnary(a, b))
	}, a, b)
}

// LessUnary states a < b.
func LessUnary(a, b *Unary) qbf.Formula {
	return qbf.Relate(func() qbf.Formula {
		return qbf.And(LessEqUnary(a, b), NotEqualUnary(a, b))
	}, a, b)
}

// GreaterUnary states a > b.
func GreaterUnary(a, b *Unary) qbf.Formula {
	return LessUnary(b, a)
}
