package workspace

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/tacogips/aiscaffold/internal/debug"
)

// List returns up to limit relative file paths under root, skipping any
// file or directory whose name matches an exclude pattern (glob syntax,
// matched against the base name). Paths use forward slashes. The listing
// is only used as context text for the planning prompt, so a truncated
// walk is fine.
func List(root string, excludes []string, limit int) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal: the summary is
			// advisory context only.
			debug.Debug("[workspace] List: skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path == root {
			return nil
		}

		if excluded(d.Name(), excludes) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		paths = append(paths, filepath.ToSlash(rel))

		if limit > 0 && len(paths) >= limit {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	debug.Debug("[workspace] List: %d path(s) under %s", len(paths), root)
	return paths, nil
}

// Summary formats a path listing as context text for the planning prompt.
// Returns an empty string for an empty listing.
func Summary(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Existing paths in the workspace:\n")
	for _, p := range paths {
		b.WriteString("- ")
		b.WriteString(p)
		b.WriteString("\n")
	}
	return b.String()
}

// excluded reports whether name matches any exclude pattern.
func excluded(name string, excludes []string) bool {
	for _, pattern := range excludes {
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}
