package community

// Pair is an unordered pair of distinct communities with A < B
type Pair struct {
	A int
	B int
}

// NewPair returns the canonical pair for two community indices
func NewPair(a, b int) Pair {
	if a < b {
		return Pair{A: a, B: b}
	}
	return Pair{A: b, B: a}
}

// CrossingEdges counts the edges between each pair of distinct communities.
// A pair is present only if at least one edge crosses it.
type CrossingEdges map[Pair]int

// EdgeSource enumerates undirected edges as endpoint pairs
type EdgeSource interface {
	ForEachEdge(fn func(u, v int))
}

// BuildCrossingEdges scans every edge once, counting edges whose endpoints
// sit in different communities and recording each distinct community pair
// as mutual neighbours the first time it is seen.
func BuildCrossingEdges(g EdgeSource, n2c []int, communities []Community) CrossingEdges {
	crossing := make(CrossingEdges)

	g.ForEachEdge(func(u, v int) {
		a, b := n2c[u], n2c[v]
		if a == b {
			return
		}

		key := NewPair(a, b)
		if _, exists := crossing[key]; exists {
			crossing[key]++
			return
		}

		crossing[key] = 1
		communities[a].Neighbors = append(communities[a].Neighbors, b)
		communities[b].Neighbors = append(communities[b].Neighbors, a)
	})

	return crossing
}

// Count returns the number of edges between communities a and b
func (ce CrossingEdges) Count(a, b int) int {
	return ce[NewPair(a, b)]
}

// Total returns the number of crossing edges in the graph
func (ce CrossingEdges) Total() int {
	total := 0
	for _, n := range ce {
		total += n
	}
	return total
}

// Cut returns the number of edges leaving community c
func (ce CrossingEdges) Cut(c int, communities []Community) int {
	cut := 0
	for _, j := range communities[c].Neighbors {
		cut += ce.Count(c, j)
	}
	return cut
}
