package filesystem

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// ErrRemotePath is returned for URL-style paths that need a network filesystem.
var ErrRemotePath = errors.New("remote paths are not supported")

// ParsePath turns a user-supplied location into a local filesystem path.
// Supported forms:
//   - /local/path or relative/path
//   - ~/path (expanded against the home directory)
//   - file:///local/path
//   - \\server\share\path (UNC paths are kept as-is)
//
// Any other scheme (sftp://, smb://, http://) is rejected with ErrRemotePath.
func ParsePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is empty") //nolint:err113 // simple validation error
	}

	if strings.HasPrefix(path, `\\`) {
		return path, nil
	}

	if scheme, _, found := strings.Cut(path, "://"); found && isScheme(scheme) {
		if scheme != "file" {
			return "", fmt.Errorf("%w: %s", ErrRemotePath, path)
		}

		u, err := url.Parse(path) //nolint:varnamelen // u is idiomatic for URL
		if err != nil {
			return "", fmt.Errorf("invalid file URL: %w", err)
		}

		return filepath.Clean(filepath.FromSlash(u.Path)), nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand %s: %w", path, err)
		}

		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	return filepath.Clean(path), nil
}

// CreateFileSystem returns the FileSystem serving path and the path to use with it.
func CreateFileSystem(pathStr string) (FileSystem, string, error) {
	localPath, err := ParsePath(pathStr)
	if err != nil {
		return nil, "", err
	}

	return NewRealFileSystem(), localPath, nil
}

// isScheme reports whether s looks like a URL scheme (letters only, 2+ chars so
// that Windows drive letters like C:// are not mistaken for one).
func isScheme(s string) bool {
	if len(s) < 2 { //nolint:mnd // drive letters are single characters
		return false
	}

	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}

	return true
}
