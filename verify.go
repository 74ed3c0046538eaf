package h5fixtures

import (
	"fmt"
	"math"
	"strings"

	"github.com/scigolib/hdf5"
)

// Verify opens filename and checks that every dataset in want exists
// with the expected shape and values. Floats are compared by bit
// pattern, so 12.345 must read back as exactly 12.345. Integers are
// read back through float64 and compare exactly within +/-MaxExactInt,
// the range Validate accepts.
//
// All mismatches are reported together in a *MismatchError. Failures to
// open or read the file are returned as *IOError.
func Verify(filename string, want []Dataset) error {
	f, err := hdf5.Open(filename)
	if err != nil {
		return ioError("open", filename, err)
	}
	defer func() { _ = f.Close() }()

	index := datasetIndex(f)
	var mismatches []Mismatch
	for _, ds := range want {
		p := ds.ObjectPath()
		got, ok := index[p]
		if !ok {
			mismatches = append(mismatches, Mismatch{Path: p, Reason: "missing"})
			continue
		}
		if reason := compare(got, ds); reason != "" {
			mismatches = append(mismatches, Mismatch{Path: p, Reason: reason})
		}
	}

	if len(mismatches) > 0 {
		return &MismatchError{File: filename, Mismatches: mismatches}
	}
	return nil
}

// compare returns an empty string when got holds ds, or the reason it
// does not.
func compare(got *hdf5.Dataset, ds Dataset) string {
	if ds.Type == String {
		values, err := got.ReadStrings()
		if err != nil {
			return fmt.Sprintf("not a string dataset: %v", err)
		}
		if len(values) != 1 {
			return fmt.Sprintf("got %d strings, want 1", len(values))
		}
		if values[0] != ds.Text {
			return fmt.Sprintf("got %q, want %q", values[0], ds.Text)
		}
		return ""
	}

	if info, err := got.Info(); err == nil {
		if class := storedClass(info); class != "" && class != wantClass(ds.Type) {
			return fmt.Sprintf("stored as %s, want %s", class, wantClass(ds.Type))
		}
	}

	values, err := got.Read()
	if err != nil {
		return fmt.Sprintf("read failed: %v", err)
	}
	if uint64(len(values)) != ds.Elements() {
		return fmt.Sprintf("got %d elements, want %d", len(values), ds.Elements())
	}

	// A full-extent slice only succeeds if the rank matches and every
	// dimension is at least as large as expected; with the element count
	// fixed above, that pins the exact shape.
	dims := ds.Dims()
	if _, err := got.ReadSlice(make([]uint64, len(dims)), dims); err != nil {
		return fmt.Sprintf("shape is not %v: %v", dims, err)
	}

	switch ds.Type {
	case Float64:
		for i, v := range values {
			if math.Float64bits(v) != math.Float64bits(ds.Floats[i]) {
				return fmt.Sprintf("element %d: got %v, want %v", i, v, ds.Floats[i])
			}
		}
	case Int64:
		for i, v := range values {
			if v != math.Trunc(v) || int64(v) != ds.Ints[i] {
				return fmt.Sprintf("element %d: got %v, want %d", i, v, ds.Ints[i])
			}
		}
	}
	return ""
}

// storedClass extracts the datatype class from a dataset description
// such as "Dataset: float (size=8 bytes), ...". Unknown layouts yield "".
func storedClass(info string) string {
	rest, ok := strings.CutPrefix(info, "Dataset: ")
	if !ok {
		return ""
	}
	class, _, ok := strings.Cut(rest, " ")
	if !ok {
		return ""
	}
	switch class {
	case "float", "integer", "string":
		return class
	default:
		return ""
	}
}

func wantClass(t ElementType) string {
	switch t {
	case Int64:
		return "integer"
	case String:
		return "string"
	default:
		return "float"
	}
}

// Load reads every float64 and int64 dataset of filename as float64
// values, keyed by absolute object path. Integers beyond +/-MaxExactInt
// lose precision. String datasets are returned in
// the second map.
func Load(filename string) (map[string][]float64, map[string]string, error) {
	f, err := hdf5.Open(filename)
	if err != nil {
		return nil, nil, ioError("open", filename, err)
	}
	defer func() { _ = f.Close() }()

	numeric := make(map[string][]float64)
	text := make(map[string]string)
	for p, ds := range datasetIndex(f) {
		if values, err := ds.Read(); err == nil {
			numeric[p] = values
			continue
		}
		strs, err := ds.ReadStrings()
		if err != nil {
			return nil, nil, ioError("read", p, err)
		}
		if len(strs) > 0 {
			text[p] = strs[0]
		}
	}
	return numeric, text, nil
}
