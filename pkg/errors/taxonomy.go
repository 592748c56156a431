package errors

import (
	"errors"
	"fmt"
)

// ErrNotFound marks an absent models root, template or fuzzy-resolved folder.
var ErrNotFound = errors.New("not found")

// FilesystemError is a failed operation on one folder or file.
// It is reported for that unit and never stops a batch.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

// NewFilesystemError wraps err for op on path. A nil err yields nil.
func NewFilesystemError(op, path string, err error) error {
	if err == nil {
		return nil
	}

	return &FilesystemError{Op: op, Path: path, Err: err}
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// ConfigurationError means the destination root could not be established.
// The batch is aborted.
type ConfigurationError struct {
	Path string
	Err  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("cannot establish destination %s: %v", e.Path, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfiguration reports whether err aborts a batch.
func IsConfiguration(err error) bool {
	var cfgErr *ConfigurationError

	return errors.As(err, &cfgErr)
}
