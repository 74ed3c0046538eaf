package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Info("archive written", "file", "archive.h5")

	require.Contains(t, buf.String(), "archive written")
	require.Contains(t, buf.String(), "file=archive.h5")
}

func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, true, &buf)

	Info("archive written", "file", "archive.h5")

	require.Contains(t, buf.String(), `"msg":"archive written"`)
	require.Contains(t, buf.String(), `"file":"archive.h5"`)
}

func TestSetup_Verbosity(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)
	Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	buf.Reset()
	Setup(true, false, &buf)
	Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestUserOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	SetOutput(&stdout, &stderr)
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, &bytes.Buffer{}) })

	UserSuccess("wrote %s", "archive.h5")
	UserError("failed: %v", "disk full")

	require.Equal(t, "✓ wrote archive.h5\n", stdout.String())
	require.Equal(t, "✗ failed: disk full\n", stderr.String())
}
