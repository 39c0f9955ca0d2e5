// Package walker implements the bounded breadth-first directory traversal
// that produces the candidate file list for a scan.
package walker

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/secinspect/internal/common"
	"github.com/rs/zerolog"
)

// ignoredDirs are never descended into, at any depth.
var ignoredDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"vendor":       {},
	"dist":         {},
	"build":        {},
	"coverage":     {},
	".next":        {},
	".turbo":       {},
}

// IsIgnoredDir reports whether a directory name is in the fixed ignore set.
func IsIgnoredDir(name string) bool {
	_, ok := ignoredDirs[name]
	return ok
}

// Predicate selects the files a walk collects.
type Predicate func(path string) bool

// ExtensionPredicate matches files whose extension equals one of exts,
// ignoring case.
func ExtensionPredicate(exts ...string) Predicate {
	want := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		want[strings.ToLower(ext)] = struct{}{}
	}
	return func(path string) bool {
		_, ok := want[strings.ToLower(filepath.Ext(path))]
		return ok
	}
}

// Options bounds a walk.
type Options struct {
	MaxFiles int
	MaxDepth int
	// Ignore, when set, is consulted for every entry in addition to the
	// fixed ignore set.
	Ignore IgnoreMatcher
}

// Result is the outcome of a walk.
type Result struct {
	Files     []string
	Truncated bool
}

type queueItem struct {
	dir   string
	depth int
}

// Walker performs bounded breadth-first traversals.
type Walker struct {
	logger zerolog.Logger
}

// New creates a Walker.
func New(logger zerolog.Logger) *Walker {
	return &Walker{
		logger: logger.With().Str("module", "TreeWalker").Logger(),
	}
}

// Walk collects the files under root accepted by match. Every regular file
// counts against opts.MaxFiles whether or not it matches; once the count
// exceeds the bound the walk stops and Truncated is set. Directories deeper
// than opts.MaxDepth are not listed. Unreadable directories are skipped.
func (w *Walker) Walk(root string, match Predicate, opts Options) (Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return Result{}, common.NewInvalidRootError(root, "cannot stat root", err)
	}
	if !info.IsDir() {
		return Result{}, common.NewInvalidRootError(root, "not a directory", nil)
	}

	result := Result{Files: []string{}}
	queue := []queueItem{{dir: root, depth: 0}}
	visited := 0

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.depth > opts.MaxDepth {
			continue
		}

		entries, err := os.ReadDir(item.dir)
		if err != nil {
			w.logger.Debug().Err(err).Str("dir", item.dir).Msg("Skipping unreadable directory")
			continue
		}

		for _, entry := range entries {
			fullPath := filepath.Join(item.dir, entry.Name())

			if entry.IsDir() {
				if IsIgnoredDir(entry.Name()) || w.ignored(root, fullPath, true, opts.Ignore) {
					continue
				}
				queue = append(queue, queueItem{dir: fullPath, depth: item.depth + 1})
				continue
			}

			if !entry.Type().IsRegular() {
				continue
			}
			if w.ignored(root, fullPath, false, opts.Ignore) {
				continue
			}

			visited++
			if visited > opts.MaxFiles {
				w.logger.Debug().Int("max_files", opts.MaxFiles).Msg("File limit reached, stopping traversal")
				result.Truncated = true
				return result, nil
			}
			if match == nil || match(fullPath) {
				result.Files = append(result.Files, fullPath)
			}
		}
	}

	return result, nil
}

func (w *Walker) ignored(root, path string, isDir bool, matcher IgnoreMatcher) bool {
	if matcher == nil {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if isDir {
		rel += "/"
	}
	return matcher.MatchesPath(rel)
}
