package conductance

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gilchrisn/graph-conductance/pkg/community"
	"github.com/gilchrisn/graph-conductance/pkg/graph"
)

// RunFiles loads the graph and community files, computes conductance and
// writes the report. Nothing is written unless the computation succeeds.
func RunFiles(ctx context.Context, graphFile, communityFile, outputFile string, config *Config, logger zerolog.Logger) (*Pipeline, error) {
	reader := graph.NewReader()
	reader.MinNodes = config.NumNodes()

	g, err := reader.ReadFromFile(graphFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}
	logger.Debug().Str("file", graphFile).Int("nodes", g.NumNodes).Msg("Graph loaded")

	assignment, err := community.ReadAssignment(communityFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load communities: %w", err)
	}
	logger.Debug().Str("file", communityFile).Int("labels", assignment.NumNodes()).Msg("Communities loaded")

	pipeline := NewPipeline(g, assignment, config, logger)
	if _, err := pipeline.Run(ctx); err != nil {
		return pipeline, err
	}

	writer := NewFileWriter(config.Precision())
	if err := writer.WriteReport(pipeline.Result, outputFile); err != nil {
		return pipeline, err
	}
	logger.Info().Str("file", outputFile).Msg("Report written")

	if path := config.MembershipFile(); path != "" {
		if err := writer.WriteMembership(pipeline.Communities, path); err != nil {
			return pipeline, err
		}
		logger.Info().Str("file", path).Msg("Membership written")
	}

	return pipeline, nil
}
