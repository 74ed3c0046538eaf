package main

import (
	"github.com/spf13/cobra"

	"github.com/scigolib/h5fixtures"
)

func newInspectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "List the groups and datasets of a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := h5fixtures.Inspect(fileArg(args))
			for _, e := range entries {
				printf(opts.stdout, "%s\n", e)
			}
			return err
		},
	}
}
