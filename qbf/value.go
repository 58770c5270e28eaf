package qbf

// A Valuer is any domain object backed by a Value.
// Domain encodings embed *Value, which makes them Valuers.
type Valuer interface {
	Base() *Value
}

// A Value is a fixed-width vector of boolean variables representing a
// domain object, together with the constraint restricting its valid bit
// patterns.
//
// A Value produced by a derived operation (a sum, an intersection, ...) is
// auxiliary: its bits are witnesses that must be existentially bound by the
// next operation consuming it. See Derive and Relate.
type Value struct {
	bits       []*Variable
	constraint Formula
	auxiliary  bool
	outside    func(i int) Formula
}

// A ValueOption customizes a Value at construction time.
type ValueOption func(v *Value)

// WithOutOfRange sets the formula returned by Bit for indices outside
// [0, width). By default, such reads yield False.
func WithOutOfRange(sentinel func(i int) Formula) ValueOption {
	return func(v *Value) {
		v.outside = sentinel
	}
}

// NewValue allocates width fresh variables and returns the associated Value.
// Its constraint is True.
func NewValue(width int, opts ...ValueOption) *Value {
	v := &Value{
		bits:       make([]*Variable, width),
		constraint: True,
		outside:    func(int) Formula { return False },
	}
	for i := range v.bits {
		v.bits[i] = NewVariable()
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Base returns v itself, so that *Value is a Valuer.
func (v *Value) Base() *Value {
	return v
}

// Width returns the number of bits of v.
func (v *Value) Width() int {
	return len(v.bits)
}

// Bit returns the i-th bit of v.
// Reading outside [0, Width()) never fails: it yields the value's sentinel
// for that index.
func (v *Value) Bit(i int) Formula {
	if i < 0 || i >= len(v.bits) {
		return v.outside(i)
	}
	return v.bits[i]
}

// Vars returns a copy of the variables backing v.
func (v *Value) Vars() []*Variable {
	res := make([]*Variable, len(v.bits))
	copy(res, v.bits)
	return res
}

// Constraint returns the formula every valid bit pattern of v satisfies.
func (v *Value) Constraint() Formula {
	return v.constraint
}

// Constrain adds the given formulas to the constraint of v.
// It is meant to be called by the constructor of v, before v is used
// in any formula.
func (v *Value) Constrain(fs ...Formula) {
	if len(fs) == 0 {
		return
	}
	if v.constraint == True {
		v.constraint = And(fs...)
		return
	}
	v.constraint = And(append([]Formula{v.constraint}, fs...)...)
}

// Auxiliary indicates whether v is a witness that has not been bound yet.
func (v *Value) Auxiliary() bool {
	return v.auxiliary
}

func widest(vals ...Valuer) int {
	w := 0
	for _, val := range vals {
		if n := val.Base().Width(); n > w {
			w = n
		}
	}
	return w
}

// Equal states a and b have the same bits.
// If their widths differ, the shorter one is extended with its out-of-range
// sentinel.
func Equal(a, b Valuer) Formula {
	return Relate(func() Formula {
		va, vb := a.Base(), b.Base()
		n := widest(a, b)
		eqs := make([]Formula, n)
		for i := range eqs {
			eqs[i] = Iff(va.Bit(i), vb.Bit(i))
		}
		return And(eqs...)
	}, a, b)
}

// NotEqual states a and b differ on at least one bit.
// The witnesses of a and b are bound outside the negation.
func NotEqual(a, b Valuer) Formula {
	return Relate(func() Formula {
		return Not(Equal(a, b))
	}, a, b)
}
