package graphs

import (
	"fmt"

	"github.com/crillab/qsat/qbf"
)

// An InvalidVertexComparisonError is raised when an edge lookup mixes a
// concrete vertex with a symbolic one.
type InvalidVertexComparisonError struct {
	From, To Endpoint
}

func (e *InvalidVertexComparisonError) Error() string {
	return fmt.Sprintf("invalid edge lookup: cannot mix %s and %s", describe(e.From), describe(e.To))
}

func (e *InvalidVertexComparisonError) Unwrap() error {
	return qbf.ErrUsage
}

func describe(e Endpoint) string {
	switch e := e.(type) {
	case At:
		return e.String()
	case *Vertex:
		return "symbolic vertex"
	default:
		return fmt.Sprintf("endpoint %v", e)
	}
}
