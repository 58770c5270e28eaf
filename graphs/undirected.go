package graphs

import "github.com/crillab/qsat/qbf"

// An Undirected is an undirected graph on n vertices.
// It is stored as a symmetric adjacency matrix: Edge(i, j) and Edge(j, i)
// are distinct bits, constrained to be equal.
type Undirected struct {
	*Directed
}

// NewUndirected returns a new undirected graph on n vertices.
func NewUndirected(n int, opts ...Option) *Undirected {
	return newUndirected(n, newConfig(opts).loops)
}

func newUndirected(n int, loops bool) *Undirected {
	g := &Undirected{Directed: newDirected(n, loops)}
	var sym []qbf.Formula
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sym = append(sym, qbf.Iff(g.Edge(i, j), g.Edge(j, i)))
		}
	}
	g.Constrain(sym...)
	return g
}

// IntersectUndirected returns the graph whose edges are the edges of both a and b.
func IntersectUndirected(a, b *Undirected) *Undirected {
	requireSameSize("intersect", a, b)
	return qbf.Derive(func() *Undirected {
		res := newUndirected(a.n, a.loops && b.loops)
		combine(qbf.And, a.Directed, b.Directed, res.Directed)
		return res
	}, a, b)
}

// UnionUndirected returns the graph whose edges are the edges of a or b.
func UnionUndirected(a, b *Undirected) *Undirected {
	requireSameSize("union", a, b)
	return qbf.Derive(func() *Undirected {
		res := newUndirected(a.n, a.loops || b.loops)
		combine(qbf.Or, a.Directed, b.Directed, res.Directed)
		return res
	}, a, b)
}
