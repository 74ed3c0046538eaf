// Package hexdump prints raw byte ranges of a file for debugging.
package hexdump

import (
	"errors"
	"fmt"
	"io"
)

// BytesPerRow is the number of bytes shown on one output line.
const BytesPerRow = 16

// ErrRange is returned for offsets outside the file or non-positive lengths.
var ErrRange = errors.New("invalid range")

// Dump writes length bytes of r starting at offset to w. size is the
// total size of r. A range extending past the end is clipped and a
// warning line is printed. It returns the number of bytes dumped.
func Dump(w io.Writer, r io.ReaderAt, size, offset int64, length int) (int, error) {
	if offset < 0 || offset >= size {
		return 0, fmt.Errorf("%w: offset %d (file size: %d)", ErrRange, offset, size)
	}
	if length < 1 {
		return 0, fmt.Errorf("%w: length %d", ErrRange, length)
	}

	readLength := int64(length)
	if remaining := size - offset; readLength > remaining {
		readLength = remaining
		fmt.Fprintf(w, "Warning: requested length %d exceeds available bytes (%d). Dumping %d bytes.\n",
			length, remaining, readLength)
	}

	buf := make([]byte, readLength)
	n, err := r.ReadAt(buf, offset)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("read at 0x%x: %w", offset, err)
	}

	fmt.Fprintf(w, "Dumping %d bytes at offset 0x%x (%d) of %d:\n", n, offset, offset, size)
	for i := 0; i < n; i += BytesPerRow {
		end := min(i+BytesPerRow, n)
		writeRow(w, offset+int64(i), buf[i:end])
	}
	return n, nil
}

func writeRow(w io.Writer, addr int64, chunk []byte) {
	fmt.Fprintf(w, "%08x: ", addr)
	for j := 0; j < BytesPerRow; j++ {
		if j < len(chunk) {
			fmt.Fprintf(w, "%02x ", chunk[j])
		} else {
			fmt.Fprint(w, "   ")
		}
		if j == 7 {
			fmt.Fprint(w, " ")
		}
	}
	fmt.Fprint(w, " |")
	for _, b := range chunk {
		if b >= 32 && b <= 126 {
			fmt.Fprintf(w, "%c", b)
		} else {
			fmt.Fprint(w, ".")
		}
	}
	fmt.Fprintln(w, "|")
}
