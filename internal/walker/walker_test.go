package walker

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/aleister1102/secinspect/internal/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("<?php\n"), 0644))
	}
}

func relFiles(t *testing.T, root string, files []string) []string {
	t.Helper()
	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	sort.Strings(out)
	return out
}

func TestWalk_CollectsMatchingFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"index.php",
		"readme.md",
		"inc/admin.PHP",
		"inc/lib/helpers.php",
		"assets/app.js",
	)

	res, err := New(zerolog.Nop()).Walk(root, ExtensionPredicate(".php"), Options{MaxFiles: 100, MaxDepth: 12})

	require.NoError(t, err)
	assert.False(t, res.Truncated)
	assert.Equal(t, []string{"inc/admin.PHP", "inc/lib/helpers.php", "index.php"}, relFiles(t, root, res.Files))
}

func TestWalk_SkipsIgnoredDirectories(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"plugin.php",
		".git/hooks/pre-commit.php",
		"node_modules/pkg/x.php",
		"vendor/autoload.php",
		"dist/out.php",
		"build/out.php",
		"coverage/c.php",
		".next/n.php",
		".turbo/t.php",
		"src/vendor/deep.php",
	)

	res, err := New(zerolog.Nop()).Walk(root, ExtensionPredicate(".php"), Options{MaxFiles: 100, MaxDepth: 12})

	require.NoError(t, err)
	assert.Equal(t, []string{"plugin.php"}, relFiles(t, root, res.Files))
}

func TestWalk_DepthBound(t *testing.T) {
	root := t.TempDir()
	// a is depth 1, a/b depth 2, a/b/c depth 3.
	writeTree(t, root,
		"top.php",
		"a/one.php",
		"a/b/two.php",
		"a/b/c/three.php",
	)

	res, err := New(zerolog.Nop()).Walk(root, ExtensionPredicate(".php"), Options{MaxFiles: 100, MaxDepth: 2})

	require.NoError(t, err)
	got := relFiles(t, root, res.Files)
	assert.Contains(t, got, "a/b/two.php", "a directory at exactly max depth is still listed")
	assert.NotContains(t, got, "a/b/c/three.php")
	assert.False(t, res.Truncated)
}

func TestWalk_FileCountBound(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 10; i++ {
		writeTree(t, root, filepath.Join("d", strings.Repeat("f", i+1)+".php"))
	}

	res, err := New(zerolog.Nop()).Walk(root, ExtensionPredicate(".php"), Options{MaxFiles: 4, MaxDepth: 12})

	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.Len(t, res.Files, 4)
}

func TestWalk_NonMatchingFilesCountTowardsBound(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.txt", "b.txt", "c.txt")

	res, err := New(zerolog.Nop()).Walk(root, ExtensionPredicate(".php"), Options{MaxFiles: 2, MaxDepth: 12})

	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.Empty(t, res.Files)
}

func TestWalk_ExactlyMaxFilesIsNotTruncated(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.php", "b.php", "c.php")

	res, err := New(zerolog.Nop()).Walk(root, ExtensionPredicate(".php"), Options{MaxFiles: 3, MaxDepth: 12})

	require.NoError(t, err)
	assert.False(t, res.Truncated)
	assert.Len(t, res.Files, 3)
}

func TestWalk_InvalidRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.php")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	tests := []struct {
		name string
		root string
	}{
		{"missing", filepath.Join(dir, "missing")},
		{"file", file},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := New(zerolog.Nop()).Walk(tt.root, nil, Options{MaxFiles: 10, MaxDepth: 1})
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidRoot)
			assert.Empty(t, res.Files)
		})
	}
}

func TestWalk_UnreadableDirectoryIsSkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	root := t.TempDir()
	writeTree(t, root, "ok.php", "locked/hidden.php")
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	res, err := New(zerolog.Nop()).Walk(root, ExtensionPredicate(".php"), Options{MaxFiles: 10, MaxDepth: 5})

	require.NoError(t, err)
	assert.Equal(t, []string{"ok.php"}, relFiles(t, root, res.Files))
}

func TestWalk_Gitignore(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "keep.php", "generated/gen.php", "secret.php", "sub/secret.php")
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("generated/\nsecret.php\n"), 0644))

	matcher := LoadGitignore(root)
	require.NotNil(t, matcher)

	res, err := New(zerolog.Nop()).Walk(root, ExtensionPredicate(".php"), Options{MaxFiles: 10, MaxDepth: 5, Ignore: matcher})

	require.NoError(t, err)
	assert.Equal(t, []string{"keep.php"}, relFiles(t, root, res.Files))
}

func TestLoadGitignore_Missing(t *testing.T) {
	assert.Nil(t, LoadGitignore(t.TempDir()))
}

func TestExtensionPredicate(t *testing.T) {
	match := ExtensionPredicate(".php", ".INC")
	assert.True(t, match("a/b.php"))
	assert.True(t, match("a/b.Php"))
	assert.True(t, match("a/b.inc"))
	assert.False(t, match("a/b.phps"))
	assert.False(t, match("a/php"))
}

func TestIsIgnoredDir(t *testing.T) {
	assert.True(t, IsIgnoredDir(".git"))
	assert.True(t, IsIgnoredDir("node_modules"))
	assert.False(t, IsIgnoredDir("src"))
}
