package h5fixtures

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDataset is returned for datasets whose path, shape and
	// payload disagree.
	ErrInvalidDataset = errors.New("invalid dataset")

	// ErrDuplicatePath is returned when a Writer is asked to write the same
	// object path twice.
	ErrDuplicatePath = errors.New("duplicate object path")

	// ErrClosed is returned when writing through a closed Writer.
	ErrClosed = errors.New("writer is closed")
)

// IOError reports a failure to create, write, flush or read the archive.
type IOError struct {
	Op   string // "create", "write", "close", "open", "read"
	Path string // file name or object path
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *IOError) Unwrap() error {
	return e.Err
}

func ioError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// Mismatch describes one dataset that does not match its expectation.
type Mismatch struct {
	Path   string
	Reason string
}

// MismatchError aggregates every mismatch found by Verify.
type MismatchError struct {
	File       string
	Mismatches []Mismatch
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d dataset(s) differ", e.File, len(e.Mismatches))
	for _, m := range e.Mismatches {
		fmt.Fprintf(&b, "\n  %s: %s", m.Path, m.Reason)
	}
	return b.String()
}
