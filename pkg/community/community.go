package community

// Community holds the original nodes assigned to one community and the
// distinct communities it shares at least one edge with
type Community struct {
	Members   []int `json:"members"`
	Neighbors []int `json:"neighbors"`
}

// Size returns the number of member nodes
func (c *Community) Size() int {
	return len(c.Members)
}

// Build groups node indices by community. Members keep node order.
func Build(n2c []int, numCommunities int) []Community {
	communities := make([]Community, numCommunities)
	for node, c := range n2c {
		communities[c].Members = append(communities[c].Members, node)
	}
	return communities
}
