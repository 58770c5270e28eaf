package graphs

import (
	"fmt"
	"math/bits"

	"github.com/crillab/qsat/numbers"
	"github.com/crillab/qsat/qbf"
)

// An Endpoint designates a vertex, either concretely (At) or symbolically (*Vertex).
type Endpoint interface {
	endpoint()
}

// At is the concrete vertex of the given index.
type At int

func (At) endpoint() {}

func (i At) String() string {
	return fmt.Sprintf("vertex %d", int(i))
}

// A Vertex is a symbolic vertex: a binary-encoded index constrained to
// designate one of the vertices of a graph. Like any value, it is bound by
// a quantifier such as qbf.Exists.
type Vertex struct {
	*numbers.Binary
	n int
}

func (*Vertex) endpoint() {}

// Vertex returns a new symbolic vertex of g.
func (g *Directed) Vertex() *Vertex {
	w := 1
	if g.n > 1 {
		w = bits.Len(uint(g.n - 1))
	}
	v := &Vertex{Binary: numbers.NewBinary(w), n: g.n}
	valid := make([]qbf.Formula, g.n)
	for i := range valid {
		valid[i] = v.Is(uint64(i))
	}
	v.Constrain(qbf.Or(valid...))
	return v
}
