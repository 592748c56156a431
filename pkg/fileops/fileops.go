// Package fileops copies files through a filesystem.FileSystem and picks
// collision-free names for duplicates.
package fileops

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/joe/docket/pkg/filesystem"
)

// Exported constants.
const (
	// BufferSize is the size of the buffer used for file copy operations (64KB)
	BufferSize = 64 * 1024
	// DefaultDirPermissions is the default permission mode for created directories
	DefaultDirPermissions = 0o755
)

// ErrNoFreeName is returned when every numbered variant of a name is taken.
var ErrNoFreeName = errors.New("no free duplicate name")

// maxDuplicates bounds the suffix search in NextFreeName.
const maxDuplicates = 100000

// FileOps provides file operations with dependency injection for filesystem access.
// This allows for testing without actual filesystem I/O.
type FileOps struct {
	FS filesystem.FileSystem
}

// NewFileOps creates a new FileOps instance with the given filesystem.
func NewFileOps(fs filesystem.FileSystem) *FileOps {
	return &FileOps{FS: fs}
}

// CopyFile copies src to dst, replacing dst if it exists, and gives dst the
// modification time of src. The directory of dst must exist.
// On failure the partially written dst is removed.
func (fo *FileOps) CopyFile(src, dst string) (int64, error) {
	sourceFile, err := fo.FS.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open source file %s: %w", src, err)
	}

	defer func() {
		_ = sourceFile.Close()
	}()

	sourceInfo, err := sourceFile.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat source file %s: %w", src, err)
	}

	destFile, err := fo.FS.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("failed to create destination file %s: %w", dst, err)
	}

	written, err := copyLoop(sourceFile, destFile)

	closeErr := destFile.Close()
	if err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close destination: %w", closeErr)
	}

	if err != nil {
		_ = fo.FS.Remove(dst)

		return written, fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}

	// Set after close: writing and closing both bump the modification time
	err = fo.FS.Chtimes(dst, sourceInfo.ModTime(), sourceInfo.ModTime())
	if err != nil {
		return written, fmt.Errorf("failed to preserve modification time for %s: %w", dst, err)
	}

	return written, nil
}

// EnsureDir creates dir and its parents. An existing directory is not an error.
func (fo *FileOps) EnsureDir(dir string) error {
	err := fo.FS.MkdirAll(dir, DefaultDirPermissions)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return nil
}

// Exists reports whether path exists.
func (fo *FileOps) Exists(path string) (bool, error) {
	return filesystem.Exists(fo.FS, path)
}

// NextFreeName returns the lowest numbered variant of name that does not exist
// in dir: "proposta.pdf" becomes "proposta_1.pdf", then "proposta_2.pdf".
// Only the name is returned, not the joined path.
func (fo *FileOps) NextFreeName(dir, name string) (string, error) {
	stem, ext := SplitExt(name)

	for i := 1; i <= maxDuplicates; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)

		exists, err := fo.Exists(filepath.Join(dir, candidate))
		if err != nil {
			return "", fmt.Errorf("failed to check %s: %w", candidate, err)
		}

		if !exists {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w for %s in %s", ErrNoFreeName, name, dir)
}

// SplitExt splits name into stem and extension. Dotfiles such as ".env" have
// no extension.
func SplitExt(name string) (string, string) {
	ext := filepath.Ext(name)
	if ext == name {
		return name, ""
	}

	return strings.TrimSuffix(name, ext), ext
}

// copyLoop performs a basic buffered copy.
func copyLoop(src io.Reader, dst io.Writer) (int64, error) {
	var written int64

	buf := make([]byte, BufferSize)

	for {
		nr, err := src.Read(buf) //nolint:varnamelen // nr is idiomatic for bytes read
		if nr > 0 {
			nw, err := dst.Write(buf[0:nr]) //nolint:varnamelen // nw is idiomatic for bytes written
			written += int64(nw)

			if err != nil {
				return written, fmt.Errorf("failed to write to destination: %w", err)
			}

			if nr != nw {
				return written, fmt.Errorf("short write: %w", io.ErrShortWrite)
			}
		}

		if errors.Is(err, io.EOF) {
			return written, nil
		}

		if err != nil {
			return written, fmt.Errorf("failed to read from source: %w", err)
		}
	}
}
