package h5fixtures

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/scigolib/hdf5"
	"github.com/stretchr/testify/require"
)

// TestGenerateArchive runs the generator once and checks the values a
// consumer reads back.
func TestGenerateArchive(t *testing.T) {
	dir := t.TempDir()

	path, err := GenerateArchive(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, ArchiveName), path)

	numeric, text, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, []float64{12.345}, numeric["/scalar/double"])
	require.Equal(t, []float64{12345}, numeric["/scalar/int"])
	require.Equal(t, "12345", text["/scalar/string"])
	require.NotContains(t, numeric, "/scalar/string", "string must not read back as a number")

	require.Equal(t, []float64{1.1, 2.2, 3.3, 4.4, 5.5}, numeric["/vector/double"])
	require.Equal(t, []float64{1, 2, 3, 4, 5}, numeric["/vector/int"])
	require.Len(t, numeric["/vector/double"], 5)
	require.Len(t, numeric["/vector/int"], 5)

	require.Equal(t, []float64{1.1, 2.2, 3.3, 4.4, 5.5, 6.6}, numeric["/matrix/double"])
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, numeric["/matrix/int"])

	row, err := ReadRow(path, "matrix/double", 2, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{5.5, 6.6}, row)

	require.NoError(t, Verify(path, ArchiveDatasets()))
}

func TestGenerateArchive_Groups(t *testing.T) {
	path, err := GenerateArchive(t.TempDir())
	require.NoError(t, err)

	entries, err := Inspect(path)
	require.NoError(t, err)

	kinds := make(map[string]EntryKind)
	for _, e := range entries {
		kinds[e.Path] = e.Kind
	}
	require.Equal(t, map[string]EntryKind{
		"/":              KindGroup,
		"/scalar":        KindGroup,
		"/vector":        KindGroup,
		"/matrix":        KindGroup,
		"/scalar/double": KindDataset,
		"/scalar/int":    KindDataset,
		"/scalar/string": KindDataset,
		"/vector/double": KindDataset,
		"/vector/int":    KindDataset,
		"/matrix/double": KindDataset,
		"/matrix/int":    KindDataset,
	}, kinds)
	require.Equal(t, "/", entries[0].Path)
}

func TestGenerateArchive_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ArchiveName)
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("stale"), 4096), 0o600))

	_, err := GenerateArchive(dir)
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(first), "stalestale")

	_, err = GenerateArchive(dir)
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second), "regenerated archive must be recreated, not appended")
	require.NoError(t, Verify(path, ArchiveDatasets()))
}

func TestOptions(t *testing.T) {
	cfg := defaultConfig()
	require.Equal(t, uint8(hdf5.SuperblockV2), cfg.superblockVersion)
	require.Equal(t, hdf5.CreateTruncate, cfg.createMode())

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	for _, opt := range []Option{WithExclusive(), WithSuperblockVersion(hdf5.SuperblockV0), WithLogger(logger), WithLogger(nil)} {
		opt(cfg)
	}
	require.Equal(t, uint8(hdf5.SuperblockV0), cfg.superblockVersion)
	require.Equal(t, hdf5.CreateExclusive, cfg.createMode())
	require.Same(t, logger, cfg.logger)
}

func TestGenerateArchive_SuperblockVersion(t *testing.T) {
	path, err := GenerateArchive(t.TempDir(), WithSuperblockVersion(hdf5.SuperblockV2))
	require.NoError(t, err)

	f, err := hdf5.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	require.Equal(t, uint8(2), f.SuperblockVersion())
}

func TestGenerate_Exclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclusive.h5")
	require.NoError(t, Generate(path, ArchiveDatasets(), WithExclusive()))

	err := Generate(path, ArchiveDatasets(), WithExclusive())
	require.Error(t, err)
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, "create", ioErr.Op)
}

func TestGenerate_UnwritableDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", ArchiveName)

	err := Generate(path, ArchiveDatasets())
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, path, ioErr.Path)
}

func TestWriter_DuplicatePath(t *testing.T) {
	w, err := Create(filepath.Join(t.TempDir(), "dup.h5"))
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	ds := Dataset{Path: "matrix/x", Type: Float64, Floats: []float64{1}}
	require.NoError(t, w.Write(ds))

	ds.Path = "/matrix/x"
	require.ErrorIs(t, w.Write(ds), ErrDuplicatePath)

	group := Dataset{Path: "/matrix", Type: Float64, Floats: []float64{1}}
	require.ErrorIs(t, w.Write(group), ErrDuplicatePath)
}

func TestWriter_DatasetAsParent(t *testing.T) {
	w, err := Create(filepath.Join(t.TempDir(), "parent.h5"))
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	require.NoError(t, w.Write(Dataset{Path: "/leaf", Type: Int64, Ints: []int64{1}}))
	err = w.Write(Dataset{Path: "/leaf/child", Type: Int64, Ints: []int64{2}})
	require.ErrorIs(t, err, ErrInvalidDataset)
}

func TestWriter_NestedGroups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested.h5")
	datasets := []Dataset{
		{Path: "/a/b/c", Type: Float64, Shape: []uint64{2}, Floats: []float64{0.1, 0.2}},
		{Path: "a/b/d", Type: Int64, Ints: []int64{-7}},
		{Path: "/a/e", Type: String, Text: "hello"},
	}
	require.NoError(t, Generate(path, datasets))
	require.NoError(t, Verify(path, datasets))

	numeric, text, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []float64{-7}, numeric["/a/b/d"])
	require.Equal(t, "hello", text["/a/e"])
}

func TestWriter_InvalidDatasetLeavesFileUsable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.h5")
	w, err := Create(path)
	require.NoError(t, err)

	require.ErrorIs(t, w.Write(Dataset{Path: "/bad", Type: Float64}), ErrInvalidDataset)
	require.NoError(t, w.Write(Dataset{Path: "/good", Type: Float64, Floats: []float64{3}}))
	require.NoError(t, w.Close())

	require.NoError(t, Verify(path, []Dataset{{Path: "/good", Type: Float64, Floats: []float64{3}}}))
}

func TestWriter_CloseTwice(t *testing.T) {
	w, err := Create(filepath.Join(t.TempDir(), "close.h5"))
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	require.ErrorIs(t, w.Write(Dataset{Path: "/x", Type: Int64, Ints: []int64{1}}), ErrClosed)
}

func TestWriter_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := GenerateArchive(t.TempDir(), WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "archive created")
	require.Contains(t, out, "group created")
	require.Contains(t, out, "path=/matrix")
	require.Contains(t, out, "path=/matrix/double")
	require.Contains(t, out, "archive closed")
}
