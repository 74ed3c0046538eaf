package h5fixtures

import "path/filepath"

// ArchiveName is the file name the fixture archive is written to.
const ArchiveName = "archive.h5"

// ArchiveDatasets returns the datasets of the fixture archive in write
// order. Each call returns a fresh copy that callers may modify.
//
// The matrix paths are deliberately relative; consumers read them back
// as /matrix/double and /matrix/int.
func ArchiveDatasets() []Dataset {
	return []Dataset{
		{Path: "/scalar/double", Type: Float64, Floats: []float64{12.345}},
		{Path: "/scalar/int", Type: Int64, Ints: []int64{12345}},
		{Path: "/scalar/string", Type: String, Text: "12345"},

		{Path: "/vector/double", Type: Float64, Shape: []uint64{5}, Floats: []float64{1.1, 2.2, 3.3, 4.4, 5.5}},
		{Path: "/vector/int", Type: Int64, Shape: []uint64{5}, Ints: []int64{1, 2, 3, 4, 5}},

		{Path: "matrix/double", Type: Float64, Shape: []uint64{3, 2}, Floats: []float64{
			1.1, 2.2,
			3.3, 4.4,
			5.5, 6.6,
		}},
		{Path: "matrix/int", Type: Int64, Shape: []uint64{3, 2}, Ints: []int64{
			1, 2,
			3, 4,
			5, 6,
		}},
	}
}

// GenerateArchive writes the fixture archive to dir/archive.h5,
// replacing any existing file, and returns the file path.
func GenerateArchive(dir string, opts ...Option) (string, error) {
	filename := filepath.Join(dir, ArchiveName)
	if err := Generate(filename, ArchiveDatasets(), opts...); err != nil {
		return "", err
	}
	return filename, nil
}
