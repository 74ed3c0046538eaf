package main

import (
	"github.com/spf13/cobra"

	"github.com/scigolib/h5fixtures"
)

func newManifestCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "manifest",
		Short: "Print the fixture table as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := h5fixtures.Manifest(h5fixtures.ArchiveName, h5fixtures.ArchiveDatasets())
			if err != nil {
				return err
			}
			_, err = opts.stdout.Write(out)
			return err
		},
	}
}
