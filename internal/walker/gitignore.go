package walker

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoreMatcher decides whether a root-relative, slash separated path is
// excluded. Directory paths carry a trailing slash.
type IgnoreMatcher interface {
	MatchesPath(path string) bool
}

// LoadGitignore compiles root/.gitignore. It returns nil when the file does
// not exist or cannot be read.
func LoadGitignore(root string) IgnoreMatcher {
	content, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	return ignore.CompileIgnoreLines(lines...)
}
