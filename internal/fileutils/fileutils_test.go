package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileAndDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(file))
	assert.False(t, DirectoryExists(filepath.Join(dir, "missing")))
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))
	require.NoError(t, EnsureDirectoryExists(dir))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "summary.txt")

	require.NoError(t, WriteFile(path, []byte("hello")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "x.csv")

	f, err := CreateFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.True(t, FileExists(path))
}

func TestCreateFile_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	parent := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0600))

	_, err := CreateFile(filepath.Join(parent, "x.csv"))
	assert.Error(t, err)
}
