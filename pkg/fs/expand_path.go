package fs

import (
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ to the user's home directory.
func (f *realFS) ExpandPath(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}

	home, err := f.GetHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, rest), nil
}
