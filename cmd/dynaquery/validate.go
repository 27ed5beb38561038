package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a definition yields a complete Query request",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBuilder(opts, file)
			if err != nil {
				return err
			}

			req, err := b.Build()
			if err != nil {
				return &exitError{code: exitDefinition, err: err}
			}
			if _, err := req.QueryInput(); err != nil {
				return &exitError{code: exitDefinition, err: err}
			}

			_, err = fmt.Fprintln(opts.out, "ok")
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "query definition (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
