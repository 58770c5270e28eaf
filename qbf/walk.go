package qbf

// FreeVariables returns the variables of f that are not bound by an
// enclosing quantifier, in order of first occurrence and without duplicates.
// A closed formula has no free variable.
func FreeVariables(f Formula) []*Variable {
	var (
		res   []*Variable
		seen  = make(map[ID]bool)
		bound = make(map[ID]int)
	)
	var rec func(f Formula)
	rec = func(f Formula) {
		switch f := f.(type) {
		case *Variable:
			if bound[f.id] == 0 && !seen[f.id] {
				seen[f.id] = true
				res = append(res, f)
			}
		case *Operation:
			for _, sub := range f.children {
				rec(sub)
			}
		case *Quantifier:
			for _, v := range f.vars {
				bound[v.id]++
			}
			rec(f.body)
			for _, v := range f.vars {
				bound[v.id]--
			}
		}
	}
	rec(f)
	return res
}

// Binders returns, for each variable bound in f, the number of quantifiers
// binding it. Shared sub-formulas are counted once per path leading to them.
func Binders(f Formula) map[ID]int {
	res := make(map[ID]int)
	var rec func(f Formula)
	rec = func(f Formula) {
		switch f := f.(type) {
		case *Operation:
			for _, sub := range f.children {
				rec(sub)
			}
		case *Quantifier:
			for _, v := range f.vars {
				res[v.id]++
			}
			rec(f.body)
		}
	}
	rec(f)
	return res
}

// Size returns the number of distinct nodes reachable from f.
func Size(f Formula) int {
	var (
		nb   int
		seen = make(map[any]bool)
	)
	var rec func(f Formula)
	rec = func(f Formula) {
		switch f := f.(type) {
		case *Variable:
			if !seen[f] {
				seen[f] = true
				nb++
			}
		case *Operation:
			if seen[f] {
				return
			}
			seen[f] = true
			nb++
			for _, sub := range f.children {
				rec(sub)
			}
		case *Quantifier:
			if seen[f] {
				return
			}
			seen[f] = true
			nb++
			rec(f.body)
		default:
			nb++
		}
	}
	rec(f)
	return nb
}
