// Package h5fixtures writes and checks the HDF5 fixture archive used by
// array I/O test suites.
//
// The archive is a small HDF5 file with fixed scalar, vector and matrix
// datasets of doubles, integers and strings:
//
//	/scalar/double   scalar  float64  12.345
//	/scalar/int      scalar  int64    12345
//	/scalar/string   scalar  string   "12345"
//	/vector/double   [5]     float64  1.1 .. 5.5
//	/vector/int      [5]     int64    1 .. 5
//	matrix/double    [3 2]   float64  1.1 .. 6.6
//	matrix/int       [3 2]   int64    1 .. 6
//
// Paths without a leading slash are resolved against the root group, so
// matrix/double and /matrix/double name the same object.
//
// # Writing
//
// The common case is a single call:
//
//	path, err := h5fixtures.GenerateArchive(".")
//
// Custom tables go through Generate or, for finer control, a Writer:
//
//	w, err := h5fixtures.Create("custom.h5")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	err = w.Write(h5fixtures.Dataset{Path: "/a/b", Type: h5fixtures.Float64, Floats: []float64{1}})
//
// Groups are created implicitly, parents first.
//
// # Checking
//
// Verify reopens a file and compares every dataset with the table,
// floats by exact bit pattern. Inspect lists the file structure and
// Manifest renders a table as YAML.
package h5fixtures
