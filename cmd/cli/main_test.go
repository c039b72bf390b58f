package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quantdec/internal/pages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd(&buf)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestPagesCmd(t *testing.T) {
	out, err := run(t, "pages")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "home"))
	assert.Contains(t, lines[3], "Performance Dashboard")
}

func TestRenderCmd(t *testing.T) {
	out, err := run(t, "render", "Strategy Builder", "--short-window", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Strategy Builder")
	assert.Contains(t, out, "Short Moving Average Window: 5 (5 to 50)")

	_, err = run(t, "render", "nope")
	require.ErrorIs(t, err, pages.ErrUnknownPage)
}

func TestExportCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "sim.csv")
	out, err := run(t, "export", "trading-simulator", "--out", path, "--trade-size", "500")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 102)
	assert.Equal(t, "trade", rows[0][0])

	_, err = run(t, "export", "home")
	require.ErrorIs(t, err, pages.ErrNoSeries)
}

func TestExportCmd_Stdout(t *testing.T) {
	out, err := run(t, "export", "performance-dashboard")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "index,return,cumulative_return\n"))
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulator:\n  trades: 10\n"), 0o644))

	out, err := run(t, "--config", path, "export", "trading-simulator")
	require.NoError(t, err)
	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 12)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "pages")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "quantdec dev")
}
