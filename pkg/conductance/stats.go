package conductance

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds aggregate statistics of φ over included communities
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"stddev"` // population standard deviation
	CV     float64 `json:"cv"`     // StdDev / Mean * 100
}

// Summarize computes the statistics of the records' φ values
func Summarize(records []Record) (Summary, error) {
	if len(records) == 0 {
		return Summary{}, ErrNoValidCommunities
	}

	phis := make([]float64, len(records))
	for i, r := range records {
		phis[i] = r.Phi
	}

	mean, variance := stat.PopMeanVariance(phis, nil)
	// Rounding in the compensated sum can go slightly negative
	if variance < 0 {
		variance = 0
	}
	stdDev := math.Sqrt(variance)

	return Summary{
		Count:  len(phis),
		Mean:   mean,
		Min:    floats.Min(phis),
		Max:    floats.Max(phis),
		StdDev: stdDev,
		CV:     stdDev / mean * 100,
	}, nil
}
