package conductance

import (
	"errors"
	"sort"

	"github.com/gilchrisn/graph-conductance/pkg/community"
)

// ErrNoValidCommunities is returned when no community has a positive conductance
var ErrNoValidCommunities = errors.New("no valid communities")

// Graph is the view of the graph the calculator needs
type Graph interface {
	Degree(node int) int
	TotalDegree() int64
}

// Status classifies how a community contributed to the statistics
type Status int

const (
	// StatusIncluded communities have φ > 0 and enter the statistics
	StatusIncluded Status = iota
	// StatusNoCrossing communities have no edge leaving them
	StatusNoCrossing
	// StatusDegenerate communities hold none or all of the graph's degree,
	// so min(vol(c), vol(V)-vol(c)) is zero
	StatusDegenerate
)

func (s Status) String() string {
	switch s {
	case StatusIncluded:
		return "included"
	case StatusNoCrossing:
		return "no_crossing"
	case StatusDegenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// Score is the conductance breakdown of one community
type Score struct {
	Community int     `json:"community"`
	Size      int     `json:"size"`
	Volume    int64   `json:"volume"` // degree sum of the members
	Cut       int64   `json:"cut"`    // edges leaving the community
	Phi       float64 `json:"phi"`
	Status    Status  `json:"status"`
}

// Record is a (size, φ) pair of a community that enters the statistics
type Record struct {
	Community int     `json:"community"`
	Size      int     `json:"size"`
	Phi       float64 `json:"phi"`
}

// Result contains the conductance of every community and the statistics
// over the included ones
type Result struct {
	Summary Summary  `json:"summary"`
	Records []Record `json:"records"` // ascending size, stable
	Scores  []Score  `json:"scores"`  // indexed by community
}

// ScoreCommunity computes the conductance of community c
func ScoreCommunity(g Graph, communities []community.Community, crossing community.CrossingEdges, c int) Score {
	comm := &communities[c]
	score := Score{Community: c, Size: comm.Size()}

	for _, node := range comm.Members {
		score.Volume += int64(g.Degree(node))
	}
	score.Cut = int64(crossing.Cut(c, communities))

	denominator := min(score.Volume, g.TotalDegree()-score.Volume)
	if denominator <= 0 {
		// A zero denominator leaves no edge able to cross
		score.Status = StatusDegenerate
		return score
	}

	score.Phi = float64(score.Cut) / float64(denominator)
	if score.Phi == 0 {
		score.Status = StatusNoCrossing
		return score
	}

	score.Status = StatusIncluded
	return score
}

// Compute scores every community and summarizes those with φ > 0. When no
// community qualifies the scores are still returned with ErrNoValidCommunities.
func Compute(g Graph, communities []community.Community, crossing community.CrossingEdges) (*Result, error) {
	result := &Result{
		Scores:  make([]Score, len(communities)),
		Records: make([]Record, 0),
	}

	for c := range communities {
		score := ScoreCommunity(g, communities, crossing, c)
		result.Scores[c] = score

		if score.Status == StatusIncluded {
			result.Records = append(result.Records, Record{
				Community: c,
				Size:      score.Size,
				Phi:       score.Phi,
			})
		}
	}

	sort.SliceStable(result.Records, func(i, j int) bool {
		return result.Records[i].Size < result.Records[j].Size
	})

	summary, err := Summarize(result.Records)
	if err != nil {
		return result, err
	}
	result.Summary = summary

	return result, nil
}

// Excluded returns the number of communities with the given status
func (r *Result) Excluded(status Status) int {
	n := 0
	for _, s := range r.Scores {
		if s.Status == status {
			n++
		}
	}
	return n
}
