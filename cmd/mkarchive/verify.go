package main

import (
	"github.com/spf13/cobra"

	"github.com/scigolib/h5fixtures"
	"github.com/scigolib/h5fixtures/internal/logging"
)

func newVerifyCmd(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [file]",
		Short: "Check a file against the fixture table",
		Long: `Reopens the file (archive.h5 by default) and compares every fixture
dataset by path, shape and value. Floats must match bit for bit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := fileArg(args)
			want := h5fixtures.ArchiveDatasets()
			if err := h5fixtures.Verify(file, want); err != nil {
				return err
			}
			logging.UserSuccess("%s: %d datasets match", file, len(want))
			return nil
		},
	}
}
