package h5fixtures

import (
	"io"
	"log/slog"

	"github.com/scigolib/hdf5"
)

// Option configures how an archive file is created.
type Option func(*config)

type config struct {
	exclusive         bool
	superblockVersion uint8
	logger            *slog.Logger
}

func defaultConfig() *config {
	return &config{
		superblockVersion: hdf5.SuperblockV2,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithExclusive makes creation fail if the file already exists.
// By default an existing file is truncated.
func WithExclusive() Option {
	return func(c *config) {
		c.exclusive = true
	}
}

// WithSuperblockVersion selects the HDF5 superblock format.
//
// hdf5.SuperblockV2 (default) adds checksums; hdf5.SuperblockV0 is
// readable by h5dump and old h5py releases.
func WithSuperblockVersion(version uint8) Option {
	return func(c *config) {
		c.superblockVersion = version
	}
}

// WithLogger routes debug logs of the writer to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func (c *config) createMode() hdf5.CreateMode {
	if c.exclusive {
		return hdf5.CreateExclusive
	}
	return hdf5.CreateTruncate
}
