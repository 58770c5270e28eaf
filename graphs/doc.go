/*
Package graphs encodes graphs on a fixed number of vertices as qbf values.

A graph on n vertices is an adjacency matrix of n*n bits. Directed graphs
have no self-loop unless built with AllowSelfLoops; undirected graphs are
directed graphs constrained to be symmetric.

Edges can be read concretely, with Edge or HasEdge(At(i), At(j)), or through
symbolic vertices that are quantified like any other value:

	g := graphs.NewDirected(3)
	u, v := g.Vertex(), g.Vertex()
	// Is there a graph with an edge between any two distinct vertices?
	f := qbf.Exists(g).Holds(qbf.Forall(u, v).Holds(qbf.Implies(qbf.NotEqual(u, v), g.HasEdge(u, v))))

Intersect and Union, like the operations of the numbers package, return
auxiliary values that are bound by the operation using them.
*/
package graphs
