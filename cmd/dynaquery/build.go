package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBuildCmd(opts *rootOptions) *cobra.Command {
	var (
		file string
		sdk  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Print the Query request described by a definition",
		Example: `  # Print the request as JSON
  dynaquery build -f orders.yaml

  # Also check that it converts to a dynamodb.QueryInput
  dynaquery build -f orders.yaml --sdk`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBuilder(opts, file)
			if err != nil {
				return err
			}

			req, err := b.Build()
			if err != nil {
				return &exitError{code: exitDefinition, err: err}
			}

			if sdk {
				input, err := req.QueryInput()
				if err != nil {
					return &exitError{code: exitDefinition, err: err}
				}
				opts.logger.Debug("converted to query input",
					zap.Int("values", len(input.ExpressionAttributeValues)))
			}

			data, err := json.MarshalIndent(req, "", "  ")
			if err != nil {
				return fmt.Errorf("encode request: %w", err)
			}
			_, err = fmt.Fprintln(opts.out, string(data))
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "query definition (YAML)")
	cmd.Flags().BoolVar(&sdk, "sdk", false, "validate the conversion to dynamodb.QueryInput")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
