package pack

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are the path-segment patterns stripped from every archive:
// version control, dependency caches, build artifacts, IDE and OS litter.
var DefaultExcludes = []string{
	".git",
	".gitignore",
	"node_modules",
	"__pycache__",
	"*.pyc",
	".pytest_cache",
	"dist",
	"build",
	"*.tsbuildinfo",
	".vscode",
	".idea",
	"*.swp",
	".DS_Store",
	"Thumbs.db",
	"*.tmp",
	"*.log",
}

// excluded reports whether any segment of the root-relative path matches one
// of the patterns. Matching per segment means a pattern like node_modules
// excludes the directory at any depth.
func excluded(relPath string, patterns []string) bool {
	for _, part := range strings.Split(filepath.ToSlash(relPath), "/") {
		for _, pattern := range patterns {
			if matched, err := doublestar.Match(pattern, part); err == nil && matched {
				return true
			}
		}
	}
	return false
}
