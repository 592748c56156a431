package filesystem

import (
	"errors"
	"io/fs"
	"time"
)

// DirEntry contains metadata about one child of a listed directory.
// This is our own type (not os.DirEntry) to make it easier to fake.
type DirEntry struct {
	// Name is the base name of the entry
	Name string

	// Size is the file size in bytes
	Size int64

	// ModTime is the modification time
	ModTime time.Time

	// IsDir indicates if this is a directory
	IsDir bool

	// Regular indicates a regular file (not a directory, device or socket)
	Regular bool
}

// Subdirs returns only the directory entries, keeping their order.
func Subdirs(entries []DirEntry) []DirEntry {
	dirs := make([]DirEntry, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir {
			dirs = append(dirs, entry)
		}
	}

	return dirs
}

// Exists reports whether path exists. Errors other than "not exist" are returned.
func Exists(fsys FileSystem, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// IsDir reports whether path exists and is a directory.
func IsDir(fsys FileSystem, path string) bool {
	info, err := fsys.Stat(path)

	return err == nil && info.IsDir()
}
