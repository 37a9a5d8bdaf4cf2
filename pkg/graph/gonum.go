package graph

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum converts the graph to a gonum weighted undirected graph. Node IDs
// are the vertex indices. Parallel edges collapse into one edge whose weight
// is their multiplicity. Self-loops are dropped since simple graphs cannot
// hold them.
func (g *Graph) ToGonum() *simple.WeightedUndirectedGraph {
	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))

	for i := 0; i < g.NumNodes; i++ {
		wg.AddNode(simple.Node(int64(i)))
	}

	for _, e := range g.Edges {
		if e.U == e.V {
			continue
		}
		from, to := int64(e.U), int64(e.V)
		weight := 1.0
		if existing := wg.WeightedEdge(from, to); existing != nil {
			weight += existing.Weight()
		}
		wg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(from),
			T: simple.Node(to),
			W: weight,
		})
	}

	return wg
}
