package h5fixtures

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/scigolib/hdf5"
)

// Writer populates a freshly created HDF5 file with fixture datasets.
// A Writer is not safe for concurrent use.
type Writer struct {
	fw       *hdf5.FileWriter
	filename string
	log      *slog.Logger

	groups  map[string]bool // object paths of groups created so far
	objects map[string]bool // object paths of datasets written so far
}

// Create creates filename for writing. An existing file is truncated
// unless WithExclusive is given.
func Create(filename string, opts ...Option) (*Writer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	fw, err := hdf5.CreateForWrite(filename, cfg.createMode(),
		hdf5.WithSuperblockVersion(cfg.superblockVersion))
	if err != nil {
		return nil, ioError("create", filename, err)
	}

	cfg.logger.Debug("archive created",
		"file", filename,
		"superblock", cfg.superblockVersion,
		"exclusive", cfg.exclusive)

	return &Writer{
		fw:       fw,
		filename: filename,
		log:      cfg.logger,
		groups:   map[string]bool{"/": true},
		objects:  make(map[string]bool),
	}, nil
}

// Filename returns the name of the file being written.
func (w *Writer) Filename() string {
	return w.filename
}

// Write creates the dataset, together with any missing parent groups,
// and stores its payload.
func (w *Writer) Write(ds Dataset) error {
	if w.fw == nil {
		return ErrClosed
	}
	if err := ds.Validate(); err != nil {
		return err
	}

	p := ds.ObjectPath()
	if w.objects[p] || w.groups[p] {
		return fmt.Errorf("%w: %s", ErrDuplicatePath, p)
	}

	if err := w.ensureParents(p); err != nil {
		return err
	}

	dtype, dsOpts := ds.h5Type()
	dw, err := w.fw.CreateDataset(p, dtype, ds.Dims(), dsOpts...)
	if err != nil {
		return ioError("write", p, fmt.Errorf("create dataset: %w", err))
	}
	if err := dw.Write(ds.payload()); err != nil {
		_ = dw.Close()
		return ioError("write", p, err)
	}
	if err := dw.Close(); err != nil {
		return ioError("write", p, err)
	}

	w.objects[p] = true
	w.log.Debug("dataset written", "path", p, "type", ds.Type, "dims", ds.Dims())
	return nil
}

// ensureParents creates every ancestor group of p that does not exist
// yet, outermost first.
func (w *Writer) ensureParents(p string) error {
	segments := strings.Split(strings.TrimPrefix(p, "/"), "/")
	group := ""
	for _, seg := range segments[:len(segments)-1] {
		group += "/" + seg
		if w.groups[group] {
			continue
		}
		if w.objects[group] {
			return fmt.Errorf("%w: %s is a dataset, cannot hold %s", ErrInvalidDataset, group, p)
		}
		if _, err := w.fw.CreateGroup(group); err != nil {
			return ioError("write", group, fmt.Errorf("create group: %w", err))
		}
		w.groups[group] = true
		w.log.Debug("group created", "path", group)
	}
	return nil
}

// Close flushes and closes the file. It is safe to call Close more than
// once; only the first call does any work.
func (w *Writer) Close() error {
	if w.fw == nil {
		return nil
	}
	err := w.fw.Close()
	w.fw = nil
	if err != nil {
		return ioError("close", w.filename, err)
	}
	w.log.Debug("archive closed", "file", w.filename, "datasets", len(w.objects))
	return nil
}

// Generate creates filename, writes every dataset in order and closes
// the file. The file handle is released even when a write fails.
func Generate(filename string, datasets []Dataset, opts ...Option) (err error) {
	w, err := Create(filename, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for _, ds := range datasets {
		if err := w.Write(ds); err != nil {
			return err
		}
	}
	return nil
}
