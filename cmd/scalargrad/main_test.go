package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayers(t *testing.T) {
	widths, err := parseLayers("4, 4,1")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4, 1}, widths)

	_, err = parseLayers("4,x")
	require.Error(t, err)
}

func TestRunTrain_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parity.safetensors")

	require.NoError(t, runTrain([]string{"-epochs", "5", "-seed", "3", "-log-every", "0", "-save", path}))
	require.FileExists(t, path)

	require.NoError(t, runTrain([]string{"-epochs", "1", "-log-every", "0", "-load", path}))

	err := runTrain([]string{"-epochs", "1", "-layers", "2", "-load", path})
	require.Error(t, err)
}

func TestRun_BadFlagReturnsError(t *testing.T) {
	require.Error(t, runTrain([]string{"-epochs", "many"}))
	require.Error(t, runTrain([]string{"-no-such-flag"}))
	require.Error(t, runGraph([]string{"-no-such-flag"}))
}

func TestRunGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.dot")
	require.NoError(t, runGraph([]string{"-o", path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(string(data)), "digraph"))
	assert.Contains(t, string(data), "a | data 2.0000 | grad 6.0000")
}
