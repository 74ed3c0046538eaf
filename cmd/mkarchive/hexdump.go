package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scigolib/h5fixtures"
	"github.com/scigolib/h5fixtures/internal/hexdump"
	"github.com/scigolib/h5fixtures/internal/logging"
)

func newHexdumpCmd(opts *options) *cobra.Command {
	var (
		offset int64
		length int
	)

	cmd := &cobra.Command{
		Use:   "hexdump [flags] file",
		Short: "Dump raw bytes of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			f, err := os.Open(file) //nolint:gosec // G304: dumping a user-named file is the point
			if err != nil {
				return &h5fixtures.IOError{Op: "open", Path: file, Err: err}
			}
			defer func() {
				if err := f.Close(); err != nil {
					logging.Warn("failed to close file", "file", file, "error", err)
				}
			}()

			fi, err := f.Stat()
			if err != nil {
				return &h5fixtures.IOError{Op: "open", Path: file, Err: err}
			}

			_, err = hexdump.Dump(opts.stdout, f, fi.Size(), offset, length)
			return err
		},
	}

	cmd.Flags().Int64Var(&offset, "offset", 0, "Offset in file to start dumping from")
	cmd.Flags().IntVar(&length, "length", 128, "Number of bytes to dump")
	return cmd
}
