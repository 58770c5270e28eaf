// Package numbers encodes unsigned integers as qbf values.
//
// Two encodings are available: Unary, where a number v of width w is
// represented by v leading true bits (so that a Unary ranges over 0..w), and
// Binary, the usual base-2 representation with modular arithmetic.
//
// Operations such as AddUnary or MulBinary return a new auxiliary value whose
// constraint states how it relates to its operands. Comparisons return
// formulas. Both can be nested freely: the bits of every intermediate result
// are existentially bound by the operation using it. For instance, stating
// that every even number has a half can be written:
//
//	n, m := numbers.NewUnary(4), numbers.NewUnary(4)
//	f := qbf.Forall(n).Holds(qbf.Exists(m).Holds(numbers.EqualUnary(n, numbers.AddUnary(m, m))))
//
// which is false, since odd numbers are not the sum of a number with itself.
package numbers
