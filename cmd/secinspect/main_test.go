package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/secinspect/internal/common"
	"github.com/aleister1102/secinspect/internal/models"
	"github.com/aleister1102/secinspect/internal/reporter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func pluginTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "admin"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "admin", "save.php"), []byte("<?php\n$v = $_POST['v'];\necho $v;\n"), 0644))
	return root
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCLI(t, "version")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "security_inspect 0.1.0\n", stdout)
}

func TestRun_ScanJSON(t *testing.T) {
	root := pluginTree(t)

	code, stdout, stderr := runCLI(t, "scan", root, "--log-level", "error")
	require.Equal(t, exitOK, code, stderr)

	var rep models.ScanReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &rep))

	abs, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, abs, rep.Root)
	assert.Equal(t, 1, rep.Scanned.FilesMatched)
	assert.Equal(t, 6000, rep.Scanned.MaxFiles)
	assert.Equal(t, 12, rep.Scanned.MaxDepth)
	require.Len(t, rep.Findings.RequestInput, 1)
	assert.Equal(t, "admin/save.php", rep.Findings.RequestInput[0].File)
	assert.Equal(t, 2, rep.Summary[models.CategoryFileLevel])
}

func TestRun_ScanYAMLWithBounds(t *testing.T) {
	root := pluginTree(t)

	code, stdout, stderr := runCLI(t, "scan", root, "--format", "yaml", "--max-files", "10", "--max-depth", "3", "--log-level", "error")
	require.Equal(t, exitOK, code, stderr)

	var rep models.ScanReport
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &rep))
	assert.Equal(t, 10, rep.Scanned.MaxFiles)
	assert.Equal(t, 3, rep.Scanned.MaxDepth)
}

func TestRun_ScanNonPositiveBoundsUseDefaults(t *testing.T) {
	root := pluginTree(t)

	code, stdout, stderr := runCLI(t, "scan", root, "--max-files", "0", "--max-depth", "-4", "--log-level", "error")
	require.Equal(t, exitOK, code, stderr)

	var rep models.ScanReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &rep))
	assert.Equal(t, 6000, rep.Scanned.MaxFiles)
	assert.Equal(t, 12, rep.Scanned.MaxDepth)
}

func TestRun_ScanToFiles(t *testing.T) {
	root := pluginTree(t)
	outDir := t.TempDir()
	output := filepath.Join(outDir, "report.json")
	archive := filepath.Join(outDir, "findings.parquet")

	code, stdout, stderr := runCLI(t, "scan", root, "-o", output, "--parquet", archive, "--log-level", "error")
	require.Equal(t, exitOK, code, stderr)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var rep models.ScanReport
	require.NoError(t, json.Unmarshal(data, &rep))

	rows, err := reporter.LoadRows(archive)
	require.NoError(t, err)
	assert.Len(t, rows, len(rep.Findings.RequestInput)+len(rep.Findings.OutputMaybeUnescaped)+len(rep.Findings.FileLevel))
}

func TestRun_ScanInvalidRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "index.php")
	require.NoError(t, os.WriteFile(file, []byte("<?php\n"), 0644))

	for _, root := range []string{filepath.Join(dir, "missing"), file} {
		t.Run(filepath.Base(root), func(t *testing.T) {
			code, stdout, stderr := runCLI(t, "scan", root, "--log-level", "error")
			assert.Equal(t, exitInvalidRoot, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "invalid root")
		})
	}
}

func TestRun_ScanInvalidFormat(t *testing.T) {
	code, _, stderr := runCLI(t, "scan", pluginTree(t), "--format", "xml")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "ERROR:")
}

func TestRun_ScanConfigFile(t *testing.T) {
	root := pluginTree(t)
	cfgPath := filepath.Join(t.TempDir(), "secinspect.yaml")
	content := fmt.Sprintf("scan_config:\n  root: %q\n  max_files: 20\n  max_depth: 4\nlog_config:\n  log_level: error\n", root)
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))

	code, stdout, stderr := runCLI(t, "scan", "--config", cfgPath)
	require.Equal(t, exitOK, code, stderr)

	var rep models.ScanReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &rep))
	assert.Equal(t, 20, rep.Scanned.MaxFiles)
	assert.Equal(t, 4, rep.Scanned.MaxDepth)
	assert.Equal(t, 1, rep.Scanned.FilesMatched)

	// Flags win over the file.
	code, stdout, stderr = runCLI(t, "scan", "--config", cfgPath, "--max-files", "30")
	require.Equal(t, exitOK, code, stderr)
	require.NoError(t, json.Unmarshal([]byte(stdout), &rep))
	assert.Equal(t, 30, rep.Scanned.MaxFiles)
}

func TestRun_ScanMissingConfigFile(t *testing.T) {
	code, _, stderr := runCLI(t, "scan", pluginTree(t), "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "config file does not exist")
}

func TestRun_TooManyArgs(t *testing.T) {
	code, _, _ := runCLI(t, "scan", "a", "b")
	assert.Equal(t, exitFailure, code)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"invalid root", common.NewInvalidRootError("/x", "not a directory", nil), exitInvalidRoot},
		{"wrapped invalid root", common.WrapError(common.NewInvalidRootError("/x", "cannot stat root", nil), "scan failed"), exitInvalidRoot},
		{"other", common.NewValidationError("format", "xml", "unsupported"), exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
