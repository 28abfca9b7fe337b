package fs

import (
	"errors"
	iofs "io/fs"
)

// IsNotExist checks if an error indicates that a file or directory doesn't exist.
// Unlike os.IsNotExist it sees through wrapped errors.
func (f *realFS) IsNotExist(err error) bool {
	return errors.Is(err, iofs.ErrNotExist)
}
