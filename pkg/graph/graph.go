package graph

import (
	"errors"
	"fmt"
)

// ErrNodeOutOfRange is returned when an edge endpoint is not a vertex of the graph
var ErrNodeOutOfRange = errors.New("node index out of range")

// Edge is an undirected edge between two vertex indices
type Edge struct {
	U int `json:"u"`
	V int `json:"v"`
}

// Graph represents an unweighted undirected graph using simple arrays
type Graph struct {
	NumNodes  int    `json:"num_nodes"`
	Degrees   []int  `json:"degrees"`    // degrees[i] = degree of node i
	Edges     []Edge `json:"-"`          // one entry per input edge, parallel edges kept
	DegreeSum int64  `json:"degree_sum"` // sum of all degrees, twice the edge count
}

// NewGraph creates a new graph with n nodes and no edges
func NewGraph(numNodes int) *Graph {
	return &Graph{
		NumNodes: numNodes,
		Degrees:  make([]int, numNodes),
		Edges:    make([]Edge, 0),
	}
}

// AddEdge adds an undirected edge between two nodes
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.NumNodes || v < 0 || v >= g.NumNodes {
		return fmt.Errorf("%w: u=%d, v=%d, numNodes=%d", ErrNodeOutOfRange, u, v, g.NumNodes)
	}

	g.Edges = append(g.Edges, Edge{U: u, V: v})

	// A self-loop counts twice toward its vertex degree
	g.Degrees[u]++
	g.Degrees[v]++
	g.DegreeSum += 2
	return nil
}

// Degree returns the degree of a node, or 0 for an unknown node
func (g *Graph) Degree(node int) int {
	if node < 0 || node >= g.NumNodes {
		return 0
	}
	return g.Degrees[node]
}

// NumEdges returns the number of edges, counting parallel edges separately
func (g *Graph) NumEdges() int {
	return len(g.Edges)
}

// TotalDegree returns the global degree sum
func (g *Graph) TotalDegree() int64 {
	return g.DegreeSum
}

// ForEachEdge calls fn once for every edge in insertion order
func (g *Graph) ForEachEdge(fn func(u, v int)) {
	for _, e := range g.Edges {
		fn(e.U, e.V)
	}
}

// Grow extends the vertex set to n nodes. Added nodes are isolated.
func (g *Graph) Grow(n int) {
	if n <= g.NumNodes {
		return
	}
	g.Degrees = append(g.Degrees, make([]int, n-g.NumNodes)...)
	g.NumNodes = n
}

// Validate checks graph consistency
func (g *Graph) Validate() error {
	if g.NumNodes <= 0 {
		return fmt.Errorf("graph must have positive number of nodes")
	}
	if len(g.Degrees) != g.NumNodes {
		return fmt.Errorf("degree array length %d does not match node count %d", len(g.Degrees), g.NumNodes)
	}

	degrees := make([]int, g.NumNodes)
	for i, e := range g.Edges {
		if e.U < 0 || e.U >= g.NumNodes || e.V < 0 || e.V >= g.NumNodes {
			return fmt.Errorf("edge %d (%d-%d): %w", i, e.U, e.V, ErrNodeOutOfRange)
		}
		degrees[e.U]++
		degrees[e.V]++
	}

	var sum int64
	for i, d := range degrees {
		if d != g.Degrees[i] {
			return fmt.Errorf("degree mismatch for node %d: stored %d, counted %d", i, g.Degrees[i], d)
		}
		sum += int64(d)
	}
	if sum != g.DegreeSum {
		return fmt.Errorf("degree sum mismatch: stored %d, counted %d", g.DegreeSum, sum)
	}

	return nil
}
