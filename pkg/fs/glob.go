package fs

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar"
)

// Glob returns the regular files matching pattern, sorted.
func (f *realFS) Glob(pattern string) ([]string, error) {
	matches, err := doublestar.Glob(filepath.ToSlash(pattern))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
	}

	files := matches[:0]
	for _, m := range matches {
		if dir, err := f.IsDir(m); err == nil && !dir {
			files = append(files, filepath.FromSlash(m))
		}
	}
	sort.Strings(files)

	return files, nil
}
