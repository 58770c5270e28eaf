package graphs

import "github.com/crillab/qsat/qbf"

// A Graph is a graph on a fixed number of vertices, whose edges are bits.
type Graph interface {
	qbf.Valuer
	Vertices() int
	Edge(i, j int) qbf.Formula
}

// A Directed is a directed graph on n vertices, encoded as an adjacency
// matrix of n*n bits: bit i*n+j is set iff there is an edge from i to j.
type Directed struct {
	*qbf.Value
	n     int
	loops bool
}

type config struct {
	loops bool
}

// An Option customizes a graph at construction time.
type Option func(c *config)

// AllowSelfLoops allows edges from a vertex to itself.
// By default, self-loops are forbidden by the constraint of the graph.
func AllowSelfLoops() Option {
	return func(c *config) {
		c.loops = true
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewDirected returns a new directed graph on n vertices.
func NewDirected(n int, opts ...Option) *Directed {
	return newDirected(n, newConfig(opts).loops)
}

func newDirected(n int, loops bool) *Directed {
	g := &Directed{Value: qbf.NewValue(n * n), n: n, loops: loops}
	if !loops {
		noLoop := make([]qbf.Formula, n)
		for i := range noLoop {
			noLoop[i] = qbf.Not(g.Edge(i, i))
		}
		g.Constrain(noLoop...)
	}
	return g
}

// Vertices returns the number of vertices of g.
func (g *Directed) Vertices() int {
	return g.n
}

// SelfLoops indicates whether g may have edges from a vertex to itself.
func (g *Directed) SelfLoops() bool {
	return g.loops
}

// Edge returns the bit of the edge from i to j.
// If i or j is not a vertex of g, Edge returns False.
func (g *Directed) Edge(i, j int) qbf.Formula {
	if i < 0 || j < 0 || i >= g.n || j >= g.n {
		return qbf.False
	}
	return g.Bit(i*g.n + j)
}

// HasEdge states there is an edge from u to v.
// Both endpoints must be concrete, i.e At values, or symbolic, i.e
// *Vertex values; mixing them panics with an *InvalidVertexComparisonError.
func (g *Directed) HasEdge(u, v Endpoint) qbf.Formula {
	switch u := u.(type) {
	case At:
		if v, ok := v.(At); ok {
			return qbf.Relate(func() qbf.Formula {
				return g.Edge(int(u), int(v))
			}, g)
		}
	case *Vertex:
		if v, ok := v.(*Vertex); ok {
			return qbf.Relate(func() qbf.Formula {
				return g.symbolicEdge(u, v)
			}, g, u, v)
		}
	}
	panic(&InvalidVertexComparisonError{From: u, To: v})
}

func (g *Directed) symbolicEdge(u, v *Vertex) qbf.Formula {
	var options []qbf.Formula
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if i == j && !g.loops {
				continue
			}
			options = append(options, qbf.And(u.Is(uint64(i)), v.Is(uint64(j)), g.Edge(i, j)))
		}
	}
	return qbf.Or(options...)
}

func requireSameSize(op string, a, b Graph) {
	if na, nb := a.Vertices(), b.Vertices(); na != nb {
		panic(&qbf.WidthMismatchError{Op: op, Left: na, Right: nb})
	}
}

// combine constrains each edge of res to be op applied to the edges of a and b.
func combine(op func(...qbf.Formula) qbf.Formula, a, b, res *Directed) {
	defs := make([]qbf.Formula, 0, res.n*res.n)
	for i := 0; i < res.n; i++ {
		for j := 0; j < res.n; j++ {
			defs = append(defs, qbf.Iff(res.Edge(i, j), op(a.Edge(i, j), b.Edge(i, j))))
		}
	}
	res.Constrain(defs...)
}

// Intersect returns the graph whose edges are the edges of both a and b.
// It may have self-loops only if both a and b may.
func Intersect(a, b *Directed) *Directed {
	requireSameSize("intersect", a, b)
	return qbf.Derive(func() *Directed {
		res := newDirected(a.n, a.loops && b.loops)
		combine(qbf.And, a, b, res)
		return res
	}, a, b)
}

// Union returns the graph whose edges are the edges of a or b.
// It may have self-loops if a or b may.
func Union(a, b *Directed) *Directed {
	requireSameSize("union", a, b)
	return qbf.Derive(func() *Directed {
		res := newDirected(a.n, a.loops || b.loops)
		combine(qbf.Or, a, b, res)
		return res
	}, a, b)
}

// Equal states a and b have the same edges.
// They must have the same number of vertices.
func Equal(a, b Graph) qbf.Formula {
	requireSameSize("equal", a, b)
	return qbf.Equal(a, b)
}

// NotEqual states a and b differ on at least one edge.
// They must have the same number of vertices.
func NotEqual(a, b Graph) qbf.Formula {
	requireSameSize("not equal", a, b)
	return qbf.NotEqual(a, b)
}
