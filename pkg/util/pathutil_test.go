package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run042.tpx3")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.tpx3")))
	assert.False(t, FileExists(dir), "directories do not count as readable files")
	assert.False(t, FileExists(""))
}

func TestHasExtension(t *testing.T) {
	tests := []struct {
		name string
		path string
		ext  string
		want bool
	}{
		{"exact match", "run.tpx3", ".tpx3", true},
		{"with directories", "data/runs/run.tpx3", ".tpx3", true},
		{"case sensitive", "run.TPX3", ".tpx3", false},
		{"no dot in path", "runtpx3", ".tpx3", false},
		{"wrong extension", "run.txt", ".tpx3", false},
		{"double extension uses last", "run.tpx3.bak", ".tpx3", false},
		{"empty path", "", ".tpx3", false},
		{"dot only", ".tpx3", ".tpx3", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasExtension(tt.path, tt.ext))
		})
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantDir  string
		wantFile string
	}{
		{"unix path", "data/runs/run.tpx3", "data/runs", "run.tpx3"},
		{"windows path", `data\runs\run.tpx3`, `data\runs`, "run.tpx3"},
		{"bare name", "run.tpx3", "", "run.tpx3"},
		{"trailing separator", "data/runs/", "data/runs", ""},
		{"root file", "/run.tpx3", "", "run.tpx3"},
		{"empty", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, file := SplitPath(tt.path)
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantFile, file)
		})
	}
}

func TestRunHandle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips final extension", "run042.tpx3", "run042"},
		{"only final extension", "run.042.tpx3", "run.042"},
		{"no dot returns input", "run042", "run042"},
		{"empty", "", ""},
		{"dot first", ".tpx3", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RunHandle(tt.in))
		})
	}
}
