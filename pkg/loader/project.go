package loader

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/tailscale/hujson"
)

// projectFile is the part of a tsconfig file that selects sources.
type projectFile struct {
	Files   []string `json:"files"`
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// parseProjectFile decodes a tsconfig file. Comments and trailing commas are
// allowed, as tsc allows them.
func parseProjectFile(data []byte) (projectFile, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return projectFile{}, err
	}

	var p projectFile
	if err := json.Unmarshal(std, &p); err != nil {
		return projectFile{}, err
	}

	// Like tsc, only a project without "files" includes everything by default.
	if p.Include == nil && p.Files == nil {
		p.Include = []string{"**/*"}
	}
	return p, nil
}

// includePattern turns a tsconfig include entry into a glob. An entry whose
// last segment has neither a wildcard nor an extension names a directory.
func includePattern(dir, entry string) string {
	entry = filepath.ToSlash(entry)
	last := entry[strings.LastIndex(entry, "/")+1:]
	if !strings.ContainsAny(last, "*?") && !strings.Contains(last, ".") {
		entry = strings.TrimSuffix(entry, "/") + "/**/*"
	}
	return filepath.Join(dir, entry)
}

// excluded reports whether rel, a slash separated path relative to the
// project directory, matches one of patterns. A pattern also excludes every
// file below the directory it names.
func excluded(patterns []string, rel string) (bool, error) {
	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(filepath.ToSlash(pattern), "./")
		for _, p := range []string{pattern, strings.TrimSuffix(pattern, "/") + "/**"} {
			ok, err := doublestar.Match(p, rel)
			if err != nil {
				return false, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
			}
			if ok {
				return true, nil
			}
		}
	}
	return false, nil
}

// isSource reports whether path is a TypeScript source. Declaration files
// never declare components.
func isSource(path string) bool {
	return strings.HasSuffix(path, ".ts") && !strings.HasSuffix(path, ".d.ts")
}
