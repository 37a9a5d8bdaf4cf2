package conductance

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gilchrisn/graph-conductance/pkg/community"
	"github.com/gilchrisn/graph-conductance/pkg/graph"
)

// Pipeline owns the state threaded through the build phases of one run
type Pipeline struct {
	Graph       *graph.Graph
	Assignment  *community.Assignment
	Communities []community.Community
	Crossing    community.CrossingEdges
	Result      *Result
	Modularity  float64
	RuntimeMS   int64

	config *Config
	logger zerolog.Logger
}

// NewPipeline prepares a run over a loaded graph and assignment
func NewPipeline(g *graph.Graph, assignment *community.Assignment, config *Config, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		Graph:      g,
		Assignment: assignment,
		config:     config,
		logger:     logger,
	}
}

// Run builds the communities, indexes crossing edges and computes conductance.
// The context is checked between phases.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	if err := p.Assignment.Validate(p.Graph.NumNodes); err != nil {
		return nil, err
	}

	p.logger.Info().
		Int("nodes", p.Graph.NumNodes).
		Int("edges", p.Graph.NumEdges()).
		Int64("degree_sum", p.Graph.TotalDegree()).
		Int("communities", p.Assignment.NumCommunities).
		Msg("Starting conductance computation")

	p.Communities = community.Build(p.Assignment.N2C, p.Assignment.NumCommunities)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.Crossing = community.BuildCrossingEdges(p.Graph, p.Assignment.N2C, p.Communities)
	p.logger.Info().
		Int("crossing_pairs", len(p.Crossing)).
		Int("crossing_edges", p.Crossing.Total()).
		Msg("Indexed crossing edges")

	if p.config.Validate() {
		if err := community.Validate(p.Communities, p.Crossing, p.Graph.NumNodes); err != nil {
			return nil, fmt.Errorf("community structure invalid: %w", err)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.config.Modularity() {
		if q, ok := community.Modularity(p.Graph, p.Communities); ok {
			p.Modularity = q
			p.logger.Info().Float64("modularity", q).Msg("Partition modularity")
		}
	}

	result, err := Compute(p.Graph, p.Communities, p.Crossing)
	p.Result = result
	p.RuntimeMS = time.Since(start).Milliseconds()

	for _, s := range result.Scores {
		if s.Status == StatusDegenerate {
			p.logger.Warn().
				Int("community", s.Community).
				Int("size", s.Size).
				Int64("volume", s.Volume).
				Msg("Community has zero conductance denominator, excluded")
		}
	}

	if err != nil {
		return result, err
	}

	p.logger.Info().
		Int("included", result.Summary.Count).
		Int("no_crossing", result.Excluded(StatusNoCrossing)).
		Int("degenerate", result.Excluded(StatusDegenerate)).
		Float64("mean", result.Summary.Mean).
		Int64("runtime_ms", p.RuntimeMS).
		Msg("Conductance computed")

	return result, nil
}
