package community

import (
	gonumgraph "gonum.org/v1/gonum/graph"
	gcommunity "gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/gilchrisn/graph-conductance/pkg/graph"
)

// Modularity returns Newman's modularity Q of the partition at resolution 1.
// Self-loops are not part of the gonum projection and do not contribute.
// The second return value is false when the graph has no usable edges.
func Modularity(g *graph.Graph, communities []Community) (float64, bool) {
	wg := g.ToGonum()
	if wg.Edges().Len() == 0 {
		return 0, false
	}

	groups := make([][]gonumgraph.Node, 0, len(communities))
	for _, comm := range communities {
		if len(comm.Members) == 0 {
			continue
		}
		nodes := make([]gonumgraph.Node, len(comm.Members))
		for i, node := range comm.Members {
			nodes[i] = simple.Node(int64(node))
		}
		groups = append(groups, nodes)
	}

	return gcommunity.Q(wg, groups, 1), true
}
