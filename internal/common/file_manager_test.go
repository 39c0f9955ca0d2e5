package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileManager_ReadFile(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0644))

	tests := []struct {
		name          string
		maxSize       int64
		wantContent   string
		wantTruncated bool
	}{
		{"no limit", 0, "0123456789", false},
		{"limit above size", 64, "0123456789", false},
		{"limit equal to size", 10, "0123456789", false},
		{"limit below size", 4, "0123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, truncated, err := fm.ReadFile(path, FileReadOptions{MaxSize: tt.maxSize, BufferSize: 2})
			require.NoError(t, err)
			assert.Equal(t, tt.wantContent, string(content))
			assert.Equal(t, tt.wantTruncated, truncated)
		})
	}
}

func TestFileManager_ReadFile_Missing(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())

	_, _, err := fm.ReadFile(filepath.Join(t.TempDir(), "missing.txt"), DefaultFileReadOptions())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to open file"))
}

func TestFileManager_WriteFile(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "nested", "out", "report.json")

	require.NoError(t, fm.WriteFile(path, []byte(`{"a":1}`)))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))

	require.NoError(t, fm.WriteFile(path, []byte(`{"a":2}`)))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestFileManager_EnsureDirectory(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	dir := t.TempDir()

	filePath := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(filePath, nil, 0644))

	err := fm.EnsureDirectory(filePath, 0755)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "path", verr.Field)

	newDir := filepath.Join(dir, "a", "b")
	require.NoError(t, fm.EnsureDirectory(newDir, 0755))
	assert.True(t, fm.IsDir(newDir))
	require.NoError(t, fm.EnsureDirectory(newDir, 0755))
}
