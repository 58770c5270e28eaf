package claims

import (
	"sort"

	"github.com/crillab/qsat/graphs"
	"github.com/crillab/qsat/numbers"
	"github.com/crillab/qsat/qbf"
)

// A Claim is a named statement about a finite domain, whose truth is known.
type Claim struct {
	Name        string
	Description string
	// Expected is the truth value of the claim at every supported width.
	Expected bool
	// Width is the default size of the domain: the width of numbers, the
	// number of vertices of graphs.
	Width int
	// Build returns the claim as a closed formula over a domain of the given size.
	Build func(width int) qbf.Formula
}

var catalog = []Claim{
	{
		Name:        "unary-halves",
		Description: "every unary number is the double of some number",
		Expected:    false,
		Width:       4,
		Build: func(w int) qbf.Formula {
			n, m := numbers.NewUnary(w), numbers.NewUnary(w)
			return qbf.Forall(n).Holds(qbf.Exists(m).Holds(numbers.EqualUnary(n, numbers.AddUnary(m, m))))
		},
	},
	{
		Name:        "unary-doubles",
		Description: "the double of every unary number is the double of some number",
		Expected:    true,
		Width:       3,
		Build: func(w int) qbf.Formula {
			n, m := numbers.NewUnary(w), numbers.NewUnary(w)
			return qbf.Forall(n).Holds(qbf.Exists(m).Holds(numbers.EqualUnary(numbers.AddUnary(n, n), numbers.AddUnary(m, m))))
		},
	},
	{
		Name:        "unary-total-order",
		Description: "any two unary numbers are comparable with <=",
		Expected:    true,
		Width:       3,
		Build: func(w int) qbf.Formula {
			a, b := numbers.NewUnary(w), numbers.NewUnary(w)
			return qbf.Forall(a, b).Holds(qbf.Or(numbers.LessEqUnary(a, b), numbers.GreaterEqUnary(a, b)))
		},
	},
	{
		Name:        "unary-strict-order",
		Description: "any two unary numbers are comparable with <",
		Expected:    false,
		Width:       3,
		Build: func(w int) qbf.Formula {
			a, b := numbers.NewUnary(w), numbers.NewUnary(w)
			return qbf.Forall(a, b).Holds(qbf.Or(numbers.LessUnary(a, b), numbers.GreaterUnary(a, b)))
		},
	},
	{
		Name:        "unary-squares",
		Description: "every unary number is a square",
		Expected:    false,
		Width:       4,
		Build: func(w int) qbf.Formula {
			n, m := numbers.NewUnary(w), numbers.NewUnary(max(1, w/2))
			return qbf.Forall(n).Holds(qbf.Exists(m).Holds(numbers.EqualUnary(n, numbers.MulUnary(m, m))))
		},
	},
	{
		Name:        "binary-add-commutes",
		Description: "binary addition is commutative",
		Expected:    true,
		Width:       3,
		Build: func(w int) qbf.Formula {
			a, b := numbers.NewBinary(w), numbers.NewBinary(w)
			return qbf.Forall(a, b).Holds(numbers.EqualBinary(numbers.AddBinary(a, b), numbers.AddBinary(b, a)))
		},
	},
	{
		Name:        "binary-mul-commutes",
		Description: "binary multiplication is commutative",
		Expected:    true,
		Width:       2,
		Build: func(w int) qbf.Formula {
			a, b := numbers.NewBinary(w), numbers.NewBinary(w)
			return qbf.Forall(a, b).Holds(numbers.EqualBinary(numbers.MulBinary(a, b), numbers.MulBinary(b, a)))
		},
	},
	{
		Name:        "binary-subtraction",
		Description: "modular addition can reach any binary number from any other",
		Expected:    true,
		Width:       3,
		Build: func(w int) qbf.Formula {
			a, b, c := numbers.NewBinary(w), numbers.NewBinary(w), numbers.NewBinary(w)
			return qbf.Forall(a, b).Holds(qbf.Exists(c).Holds(numbers.EqualBinary(numbers.AddBinary(a, c), b)))
		},
	},
	{
		Name:        "binary-squares",
		Description: "every binary number is a square modulo 2^width",
		Expected:    false,
		Width:       2,
		Build: func(w int) qbf.Formula {
			n, m := numbers.NewBinary(w), numbers.NewBinary(w)
			return qbf.Forall(n).Holds(qbf.Exists(m).Holds(numbers.EqualBinary(n, numbers.MulBinary(m, m))))
		},
	},
	{
		Name:        "binary-de-morgan",
		Description: "the complement of a bitwise and is the bitwise or of the complements",
		Expected:    true,
		Width:       3,
		Build: func(w int) qbf.Formula {
			a, b := numbers.NewBinary(w), numbers.NewBinary(w)
			return qbf.Forall(a, b).Holds(numbers.EqualBinary(
				numbers.NotBinary(numbers.AndBinary(a, b)),
				numbers.OrBinary(numbers.NotBinary(a), numbers.NotBinary(b)),
			))
		},
	},
	{
		Name:        "digraph-unique-equal",
		Description: "every directed graph is equal to exactly one graph",
		Expected:    true,
		Width:       2,
		Build: func(n int) qbf.Formula {
			a, b := graphs.NewDirected(n), graphs.NewDirected(n)
			return qbf.Forall(a).Holds(qbf.ExistsUnique(b).Holds(graphs.Equal(b, a)))
		},
	},
	{
		Name:        "digraph-unique-different",
		Description: "every directed graph is different from exactly one graph",
		Expected:    false,
		Width:       2,
		Build: func(n int) qbf.Formula {
			a, b := graphs.NewDirected(n), graphs.NewDirected(n)
			return qbf.Forall(a).Holds(qbf.ExistsUnique(b).Holds(graphs.NotEqual(b, a)))
		},
	},
	{
		Name:        "digraph-distributive",
		Description: "intersection distributes over union",
		Expected:    true,
		Width:       2,
		Build: func(n int) qbf.Formula {
			a, b, c := graphs.NewDirected(n), graphs.NewDirected(n), graphs.NewDirected(n)
			return qbf.Forall(a, b, c).Holds(graphs.Equal(
				graphs.Intersect(graphs.Union(a, b), c),
				graphs.Union(graphs.Intersect(a, c), graphs.Intersect(b, c)),
			))
		},
	},
	{
		Name:        "digraph-unique-complete",
		Description: "exactly one loopless directed graph has all its edges",
		Expected:    true,
		Width:       3,
		Build: func(n int) qbf.Formula {
			g := graphs.NewDirected(n)
			u, v := g.Vertex(), g.Vertex()
			complete := qbf.Forall(u, v).Holds(qbf.Implies(qbf.NotEqual(u, v), g.HasEdge(u, v)))
			return qbf.ExistsUnique(g).Holds(complete)
		},
	},
	{
		Name:        "graph-monochromatic-triangle",
		Description: "every graph has three vertices that are all connected or all disconnected",
		Expected:    false,
		Width:       3,
		Build: func(n int) qbf.Formula {
			g := graphs.NewUndirected(n)
			return qbf.Forall(g).Holds(monochromaticTriangle(g))
		},
	},
}

// monochromaticTriangle states three distinct vertices of g are either all
// connected or all disconnected.
func monochromaticTriangle(g *graphs.Undirected) qbf.Formula {
	u, v, w := g.Vertex(), g.Vertex(), g.Vertex()
	distinct := qbf.And(qbf.NotEqual(u, v), qbf.NotEqual(v, w), qbf.NotEqual(u, w))
	edges := []qbf.Formula{g.HasEdge(u, v), g.HasEdge(v, w), g.HasEdge(u, w)}
	none := make([]qbf.Formula, len(edges))
	for i, e := range edges {
		none[i] = qbf.Not(e)
	}
	return qbf.Exists(u, v, w).Holds(qbf.And(distinct, qbf.Or(qbf.And(edges...), qbf.And(none...))))
}

// Catalog returns all known claims, sorted by name.
func Catalog() []Claim {
	res := make([]Claim, len(catalog))
	copy(res, catalog)
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

// Lookup returns the claim with the given name.
func Lookup(name string) (Claim, bool) {
	for _, c := range catalog {
		if c.Name == name {
			return c, true
		}
	}
	return Claim{}, false
}
