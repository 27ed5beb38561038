package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pay-theory/dynaquery/pkg/query"
)

type rootOptions struct {
	verbose bool
	out     io.Writer
	logger  *zap.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{out: out, logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "dynaquery",
		Short: "Build DynamoDB Query requests from YAML definitions",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // main prints errors
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log ignored and rejected configuration")

	cmd.AddCommand(newBuildCmd(opts))
	cmd.AddCommand(newValidateCmd(opts))

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// loadBuilder reads a definition file and returns a Builder configured from it
func loadBuilder(opts *rootOptions, path string) (*query.Builder, error) {
	def, err := query.LoadDefinitionFile(path)
	if err != nil {
		return nil, &exitError{code: exitDefinition, err: err}
	}

	opts.logger.Debug("loaded query definition",
		zap.String("path", path),
		zap.String("table", def.Table),
		zap.Int("where", len(def.Where)),
		zap.Int("filter", len(def.Filter)))

	return def.Builder(query.WithLogger(opts.logger)), nil
}
