package fs

import "os"

// ReadFile reads the whole file at path.
func (f *realFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
