package h5fixtures

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// manifestEntry is the YAML form of a Dataset.
type manifestEntry struct {
	Path   string      `yaml:"path"`
	Object string      `yaml:"object,omitempty"`
	Type   string      `yaml:"type"`
	Shape  []uint64    `yaml:"shape,flow"`
	Value  interface{} `yaml:"value"`
}

type manifest struct {
	File     string          `yaml:"file"`
	Datasets []manifestEntry `yaml:"datasets"`
}

// Manifest renders datasets as a YAML document describing file.
// Scalars have an empty shape and a bare value; vectors and matrices list
// their values row by row.
func Manifest(file string, datasets []Dataset) ([]byte, error) {
	m := manifest{File: file}
	for _, ds := range datasets {
		if err := ds.Validate(); err != nil {
			return nil, err
		}
		e := manifestEntry{
			Path:  ds.Path,
			Type:  ds.Type.String(),
			Shape: ds.Shape,
			Value: manifestValue(ds),
		}
		if e.Shape == nil {
			e.Shape = []uint64{}
		}
		if op := ds.ObjectPath(); op != ds.Path {
			e.Object = op
		}
		m.Datasets = append(m.Datasets, e)
	}

	out, err := yaml.Marshal(&m)
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return out, nil
}

func manifestValue(ds Dataset) interface{} {
	switch ds.Type {
	case String:
		return ds.Text
	case Int64:
		if ds.Scalar() {
			return ds.Ints[0]
		}
		return rows(ds.Ints, ds.Shape)
	default:
		if ds.Scalar() {
			return ds.Floats[0]
		}
		return rows(ds.Floats, ds.Shape)
	}
}

// rows splits a row-major payload into rows for two-dimensional shapes.
func rows[T any](values []T, shape []uint64) interface{} {
	if len(shape) != 2 {
		return values
	}
	cols := int(shape[1]) //nolint:gosec // Safe: validated against payload length
	out := make([][]T, 0, shape[0])
	for i := 0; i < len(values); i += cols {
		out = append(out, values[i:i+cols])
	}
	return out
}
