package community

import (
	"fmt"
)

// Validate checks the partition and adjacency invariants of built
// communities against the crossing-edge table
func Validate(communities []Community, crossing CrossingEdges, numNodes int) error {
	seen := make([]bool, numNodes)
	assigned := 0
	for c, comm := range communities {
		for _, node := range comm.Members {
			if node < 0 || node >= numNodes {
				return fmt.Errorf("community %d: member %d outside [0, %d)", c, node, numNodes)
			}
			if seen[node] {
				return fmt.Errorf("node %d assigned to more than one community", node)
			}
			seen[node] = true
			assigned++
		}
	}
	if assigned != numNodes {
		return fmt.Errorf("partition covers %d of %d nodes", assigned, numNodes)
	}

	neighborSets := make([]map[int]bool, len(communities))
	for c, comm := range communities {
		neighborSets[c] = make(map[int]bool, len(comm.Neighbors))
		for _, j := range comm.Neighbors {
			if j == c {
				return fmt.Errorf("community %d lists itself as a neighbor", c)
			}
			if j < 0 || j >= len(communities) {
				return fmt.Errorf("community %d: neighbor %d out of range", c, j)
			}
			if neighborSets[c][j] {
				return fmt.Errorf("community %d lists neighbor %d twice", c, j)
			}
			neighborSets[c][j] = true
		}
	}

	pairs := 0
	for c, set := range neighborSets {
		for j := range set {
			if !neighborSets[j][c] {
				return fmt.Errorf("asymmetric adjacency: %d lists %d but not the reverse", c, j)
			}
			if crossing.Count(c, j) < 1 {
				return fmt.Errorf("communities %d and %d are neighbors without a crossing edge", c, j)
			}
			if c < j {
				pairs++
			}
		}
	}

	for key, n := range crossing {
		if key.A >= key.B {
			return fmt.Errorf("non-canonical pair (%d, %d)", key.A, key.B)
		}
		if n < 1 {
			return fmt.Errorf("pair (%d, %d) has count %d", key.A, key.B, n)
		}
	}
	if pairs != len(crossing) {
		return fmt.Errorf("%d neighbor pairs but %d crossing-edge entries", pairs, len(crossing))
	}

	return nil
}
