package h5fixtures

import (
	"fmt"
	"path"
	"strings"

	"github.com/scigolib/hdf5"
)

// EntryKind distinguishes groups from datasets in an Inspect listing.
type EntryKind string

// Entry kinds.
const (
	KindGroup   EntryKind = "group"
	KindDataset EntryKind = "dataset"
)

// Entry is one object of an archive as reported by Inspect.
type Entry struct {
	Path string
	Kind EntryKind
	Info string // dataset description, or child count for groups
}

// String formats the entry as a single listing line.
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s  %s", e.Kind, e.Path, e.Info)
}

// Inspect lists every group and dataset of filename in depth-first order,
// starting with the root group.
func Inspect(filename string) ([]Entry, error) {
	f, err := hdf5.Open(filename)
	if err != nil {
		return nil, ioError("open", filename, err)
	}
	defer func() { _ = f.Close() }()

	var entries []Entry
	var walkErr error
	walk(f.Root(), "/", func(p string, obj hdf5.Object) {
		switch v := obj.(type) {
		case *hdf5.Group:
			entries = append(entries, Entry{
				Path: p,
				Kind: KindGroup,
				Info: fmt.Sprintf("%d children", len(v.Children())),
			})
		case *hdf5.Dataset:
			info, err := v.Info()
			if err != nil && walkErr == nil {
				walkErr = ioError("read", p, err)
			}
			entries = append(entries, Entry{Path: p, Kind: KindDataset, Info: info})
		}
	})
	if walkErr != nil {
		return entries, walkErr
	}
	return entries, nil
}

// walk visits g and all its descendants with absolute object paths.
// Child names are reduced to their last segment because readers report
// them either bare or with a leading slash.
func walk(g *hdf5.Group, groupPath string, fn func(string, hdf5.Object)) {
	fn(groupPath, g)
	for _, child := range g.Children() {
		p := path.Join(groupPath, childName(child))
		if sub, ok := child.(*hdf5.Group); ok {
			walk(sub, p, fn)
			continue
		}
		fn(p, child)
	}
}

func childName(obj hdf5.Object) string {
	name := strings.Trim(obj.Name(), "/")
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// datasetIndex maps absolute object paths to the datasets of f.
func datasetIndex(f *hdf5.File) map[string]*hdf5.Dataset {
	index := make(map[string]*hdf5.Dataset)
	walk(f.Root(), "/", func(p string, obj hdf5.Object) {
		if ds, ok := obj.(*hdf5.Dataset); ok {
			index[p] = ds
		}
	})
	return index
}

// ReadRow reads row of a two-dimensional dataset with cols columns
// through a hyperslab selection.
func ReadRow(filename, objPath string, row, cols uint64) ([]float64, error) {
	f, err := hdf5.Open(filename)
	if err != nil {
		return nil, ioError("open", filename, err)
	}
	defer func() { _ = f.Close() }()

	p := objectPath(objPath)
	ds, ok := datasetIndex(f)[p]
	if !ok {
		return nil, fmt.Errorf("%s: dataset %s not found", filename, p)
	}

	data, err := ds.ReadSlice([]uint64{row, 0}, []uint64{1, cols})
	if err != nil {
		return nil, ioError("read", p, err)
	}
	return toFloat64s(data)
}

// toFloat64s converts the native slice returned by a hyperslab read.
func toFloat64s(data interface{}) ([]float64, error) {
	switch v := data.(type) {
	case []float64:
		return v, nil
	case []float32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case []int64:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case []int32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported slice type %T", data)
	}
}
