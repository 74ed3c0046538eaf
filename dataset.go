package h5fixtures

import (
	"fmt"
	"path"
	"strings"

	"github.com/scigolib/hdf5"
)

// ElementType is the element type of a fixture dataset.
type ElementType int

const (
	// Float64 is a 64-bit IEEE 754 floating point element.
	Float64 ElementType = iota
	// Int64 is a 64-bit signed integer element (the platform integer).
	Int64
	// String is a fixed-length, null-terminated text element.
	String
)

// MaxExactInt is the largest magnitude an Int64 element may have. The
// HDF5 reader returns integers as float64, which holds every integer
// up to 2^53 exactly.
const MaxExactInt = 1 << 53

// String returns the lower-case type name used in manifests.
func (t ElementType) String() string {
	switch t {
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	case String:
		return "string"
	default:
		return fmt.Sprintf("ElementType(%d)", int(t))
	}
}

// Dataset is one named, typed and shaped value of a fixture archive.
//
// Exactly one payload field is set, matching Type. A nil Shape marks a
// scalar. Multi-dimensional payloads are flattened in row-major order.
type Dataset struct {
	Path  string
	Type  ElementType
	Shape []uint64

	Floats []float64
	Ints   []int64
	Text   string
}

// Scalar reports whether the dataset holds a single value with no shape.
func (d Dataset) Scalar() bool {
	return len(d.Shape) == 0
}

// Elements returns the number of elements implied by Shape.
func (d Dataset) Elements() uint64 {
	n := uint64(1)
	for _, dim := range d.Shape {
		n *= dim
	}
	return n
}

// Dims returns the dimensions the dataset is stored with.
// Scalars are stored as one-element datasets.
func (d Dataset) Dims() []uint64 {
	if d.Scalar() {
		return []uint64{1}
	}
	dims := make([]uint64, len(d.Shape))
	copy(dims, d.Shape)
	return dims
}

// ObjectPath returns the absolute object path. Relative paths are
// resolved against the root group.
func (d Dataset) ObjectPath() string {
	return objectPath(d.Path)
}

func objectPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	return path.Clean("/" + p)
}

// Validate checks that the dataset is internally consistent.
func (d Dataset) Validate() error {
	p := d.ObjectPath()
	if p == "" || p == "/" {
		return fmt.Errorf("%w: path %q does not name an object", ErrInvalidDataset, d.Path)
	}
	for i, dim := range d.Shape {
		if dim == 0 {
			return fmt.Errorf("%w: %s: dimension %d is zero", ErrInvalidDataset, p, i)
		}
	}

	var n int
	switch d.Type {
	case Float64:
		if d.Ints != nil || d.Text != "" {
			return fmt.Errorf("%w: %s: float64 dataset carries a foreign payload", ErrInvalidDataset, p)
		}
		n = len(d.Floats)
	case Int64:
		if d.Floats != nil || d.Text != "" {
			return fmt.Errorf("%w: %s: int64 dataset carries a foreign payload", ErrInvalidDataset, p)
		}
		n = len(d.Ints)
		for i, v := range d.Ints {
			if v > MaxExactInt || v < -MaxExactInt {
				return fmt.Errorf("%w: %s: element %d (%d) exceeds +/-2^53", ErrInvalidDataset, p, i, v)
			}
		}
	case String:
		if d.Floats != nil || d.Ints != nil {
			return fmt.Errorf("%w: %s: string dataset carries a foreign payload", ErrInvalidDataset, p)
		}
		if !d.Scalar() {
			return fmt.Errorf("%w: %s: string datasets must be scalar", ErrInvalidDataset, p)
		}
		if strings.IndexByte(d.Text, 0) >= 0 {
			return fmt.Errorf("%w: %s: text contains a NUL byte", ErrInvalidDataset, p)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s: unknown element type %d", ErrInvalidDataset, p, int(d.Type))
	}

	if uint64(n) != d.Elements() { //nolint:gosec // Safe: slice length always fits in uint64
		return fmt.Errorf("%w: %s: %d values for shape %v", ErrInvalidDataset, p, n, d.Dims())
	}
	return nil
}

// h5Type maps the element type to the HDF5 writer datatype and the
// dataset options it needs.
func (d Dataset) h5Type() (hdf5.Datatype, []hdf5.DatasetOption) {
	switch d.Type {
	case Int64:
		return hdf5.Int64, nil
	case String:
		return hdf5.String, []hdf5.DatasetOption{hdf5.WithStringSize(uint32(len(d.Text) + 1))} //nolint:gosec // Safe: fixture text is short
	default:
		return hdf5.Float64, nil
	}
}

// payload returns the value handed to the HDF5 dataset writer.
func (d Dataset) payload() interface{} {
	switch d.Type {
	case Int64:
		return d.Ints
	case String:
		return []string{d.Text}
	default:
		return d.Floats
	}
}
