package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/scigolib/h5fixtures"
	"github.com/scigolib/h5fixtures/internal/logging"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitIO       = 2
	exitMismatch = 3
)

type options struct {
	verbose bool
	json    bool
	stdout  io.Writer
	stderr  io.Writer
}

func run(args []string) int {
	return execute(args, os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) int {
	opts := &options{stdout: stdout, stderr: stderr}
	logging.SetOutput(stdout, stderr)
	root := newRootCmd(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err != nil {
		logging.UserError("%v", err)
	}
	return exitCode(err)
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "mkarchive",
		Short: "Write the HDF5 fixture archive",
		Long: `mkarchive writes archive.h5 to the working directory.

The archive holds fixed scalar, vector and matrix datasets of doubles,
integers and strings. An existing archive.h5 is replaced.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(opts.verbose, opts.json, opts.stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := h5fixtures.GenerateArchive(".", h5fixtures.WithLogger(logging.Logger()))
			if err != nil {
				return err
			}
			logging.Debug("archive generated", "file", path)
			logging.UserSuccess("wrote %s", path)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Write logs in JSON format")
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newVerifyCmd(opts),
		newInspectCmd(opts),
		newManifestCmd(opts),
		newHexdumpCmd(opts),
	)
	return root
}

// exitCode maps an error returned by a command to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var mismatch *h5fixtures.MismatchError
	if errors.As(err, &mismatch) {
		return exitMismatch
	}
	var ioErr *h5fixtures.IOError
	if errors.As(err, &ioErr) {
		return exitIO
	}
	return exitFailure
}

// fileArg returns the single optional file argument, defaulting to the
// archive name.
func fileArg(args []string) string {
	if len(args) == 0 {
		return h5fixtures.ArchiveName
	}
	return args[0]
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
