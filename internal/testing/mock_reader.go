// Package testing provides test helpers shared by the h5fixtures packages.
package testing

import (
	"errors"
	"io"
)

// MockReaderAt is an in-memory io.ReaderAt that behaves like *os.File at
// the end of its data: short reads return io.EOF.
type MockReaderAt struct {
	data []byte
}

// NewMockReaderAt creates a new mock reader with the given data.
func NewMockReaderAt(data []byte) *MockReaderAt {
	return &MockReaderAt{data: data}
}

// Size returns the length of the underlying data.
func (m *MockReaderAt) Size() int64 {
	return int64(len(m.data))
}

// ReadAt implements io.ReaderAt.
func (m *MockReaderAt) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, errors.New("negative offset")
	}
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}

	n = copy(p, m.data[off:])
	if n < len(p) {
		err = io.EOF
	}
	return
}
