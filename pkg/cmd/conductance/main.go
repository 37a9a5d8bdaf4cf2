package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gilchrisn/graph-conductance/pkg/conductance"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	config := conductance.NewConfig()
	var configFile string

	cmd := &cobra.Command{
		Use:   "conductance <input-graph> <input-communities> <output-file>",
		Short: "Compute the conductance of every community in a partitioned graph",
		Long: `Reads an undirected edge list and a community file holding one 1-based
label per node, computes the conductance of each community and writes
mean, maximum, minimum, standard deviation and coefficient of variation
followed by one "size<TAB>phi" line per community with non-zero conductance.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Argument errors above print usage; failures past this point do not
			cmd.SilenceUsage = true

			if configFile != "" {
				if err := config.LoadFromFile(configFile); err != nil {
					return fmt.Errorf("failed to load config %s: %w", configFile, err)
				}
			}

			logger := config.CreateLogger()
			_, err := conductance.RunFiles(cmd.Context(), args[0], args[1], args[2], config, logger)
			if err != nil {
				logger.Error().Err(err).Msg("Conductance computation failed")
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "configuration file (yaml, json or toml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("membership", "", "also write sorted community membership to this file")
	flags.Int("num-nodes", 0, "vertex count when trailing vertices are isolated")
	flags.Int("precision", conductance.DefaultPrecision, "significant digits in the report")

	v := config.Viper()
	v.BindPFlag("logging.level", flags.Lookup("log-level"))
	v.BindPFlag("output.membership_file", flags.Lookup("membership"))
	v.BindPFlag("graph.num_nodes", flags.Lookup("num-nodes"))
	v.BindPFlag("output.precision", flags.Lookup("precision"))

	return cmd
}
