package filesystem

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

// Operation names accepted by MockFileSystem.FailOn.
const (
	OpChtimes = "chtimes"
	OpCreate  = "create"
	OpMkdir   = "mkdir"
	OpOpen    = "open"
	OpReadDir = "readdir"
	OpStat    = "stat"
	OpWrite   = "write"
)

// MockFileSystem is an in-memory filesystem implementation for testing.
type MockFileSystem struct {
	mu       sync.RWMutex
	files    map[string]*mockFile
	failures map[string]error
}

// mockFile represents a file in the mock filesystem.
type mockFile struct {
	path    string
	data    []byte
	modTime time.Time
	isDir   bool
	perm    os.FileMode
}

// mockFileInfo implements os.FileInfo for mock files.
type mockFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	isDir   bool
	perm    os.FileMode
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return fi.size }
func (fi *mockFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *mockFileInfo) IsDir() bool        { return fi.isDir }
func (fi *mockFileInfo) Sys() interface{}   { return nil }

func (fi *mockFileInfo) Mode() os.FileMode {
	if fi.isDir {
		return fi.perm | os.ModeDir
	}

	return fi.perm
}

// mockFileHandle implements the File interface for reading/writing.
type mockFileHandle struct {
	fs       *MockFileSystem
	path     string
	reader   *bytes.Reader
	writer   *bytes.Buffer
	writeErr error
	closed   bool
}

func (f *mockFileHandle) Read(p []byte) (int, error) {
	if f.closed {
		return 0, os.ErrClosed
	}

	if f.reader == nil {
		return 0, io.EOF
	}

	return f.reader.Read(p)
}

func (f *mockFileHandle) Write(p []byte) (int, error) {
	if f.closed {
		return 0, os.ErrClosed
	}

	if f.writeErr != nil {
		return 0, f.writeErr
	}

	if f.writer == nil {
		f.writer = &bytes.Buffer{}
	}

	return f.writer.Write(p)
}

func (f *mockFileHandle) Close() error {
	if f.closed {
		return os.ErrClosed
	}

	f.closed = true

	// If we were writing, save the data
	if f.writer != nil {
		f.fs.mu.Lock()
		defer f.fs.mu.Unlock()

		if file, exists := f.fs.files[f.path]; exists {
			file.data = f.writer.Bytes()
			file.modTime = time.Now()
		} else {
			f.fs.files[f.path] = &mockFile{
				path:    f.path,
				data:    f.writer.Bytes(),
				modTime: time.Now(),
				perm:    0o644,
			}
		}
	}

	return nil
}

func (f *mockFileHandle) Stat() (os.FileInfo, error) {
	if f.closed {
		return nil, os.ErrClosed
	}

	return f.fs.Stat(f.path)
}

// NewMockFileSystem creates a new in-memory filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:    make(map[string]*mockFile),
		failures: make(map[string]error),
	}
}

// FailOn makes every future op on path fail with err.
// Use the Op* constants for op.
func (fs *MockFileSystem) FailOn(op, path string, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.failures[failureKey(op, filepath.Clean(path))] = err
}

// Chtimes changes the access and modification times of a file.
func (fs *MockFileSystem) Chtimes(path string, _, mtime time.Time) error {
	path = filepath.Clean(path)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.failureLocked(OpChtimes, path); err != nil {
		return err
	}

	file, exists := fs.files[path]
	if !exists {
		return pathError("chtimes", path, os.ErrNotExist)
	}

	file.modTime = mtime

	return nil
}

// Create creates or truncates a file for writing.
func (fs *MockFileSystem) Create(path string) (File, error) {
	path = filepath.Clean(path)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.failureLocked(OpCreate, path); err != nil {
		return nil, err
	}

	if existing, exists := fs.files[path]; exists && existing.isDir {
		return nil, pathError("open", path, syscall.EISDIR)
	}

	// Create parent directories if needed
	dir := filepath.Dir(path)
	if dir != "." && dir != "/" {
		if err := fs.mkdirAllLocked(dir, 0o755); err != nil {
			return nil, err
		}
	}

	fs.files[path] = &mockFile{
		path:    path,
		data:    []byte{},
		modTime: time.Now(),
		perm:    0o644,
	}

	return &mockFileHandle{
		fs:       fs,
		path:     path,
		writer:   &bytes.Buffer{},
		writeErr: fs.failures[failureKey(OpWrite, path)],
	}, nil
}

// MkdirAll creates a directory and all necessary parents.
func (fs *MockFileSystem) MkdirAll(path string, perm os.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.mkdirAllLocked(filepath.Clean(path), perm)
}

// Open opens a file for reading.
func (fs *MockFileSystem) Open(path string) (File, error) {
	path = filepath.Clean(path)

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if err := fs.failureLocked(OpOpen, path); err != nil {
		return nil, err
	}

	file, exists := fs.files[path]
	if !exists {
		return nil, pathError("open", path, os.ErrNotExist)
	}

	if file.isDir {
		return nil, pathError("read", path, syscall.EISDIR)
	}

	return &mockFileHandle{
		fs:     fs,
		path:   path,
		reader: bytes.NewReader(file.data),
	}, nil
}

// ReadDir lists the immediate children of path, sorted by name.
func (fs *MockFileSystem) ReadDir(path string) ([]DirEntry, error) {
	path = filepath.Clean(path)

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if err := fs.failureLocked(OpReadDir, path); err != nil {
		return nil, err
	}

	dir, exists := fs.files[path]
	if !exists {
		return nil, pathError("open", path, os.ErrNotExist)
	}

	if !dir.isDir {
		return nil, pathError("readdirent", path, syscall.ENOTDIR)
	}

	prefix := path + string(filepath.Separator)
	if path == string(filepath.Separator) {
		prefix = path
	}

	entries := make([]DirEntry, 0)

	for childPath, file := range fs.files {
		if childPath == path || !strings.HasPrefix(childPath, prefix) {
			continue
		}

		name := strings.TrimPrefix(childPath, prefix)
		if strings.ContainsRune(name, filepath.Separator) {
			continue
		}

		entries = append(entries, DirEntry{
			Name:    name,
			Size:    int64(len(file.data)),
			ModTime: file.modTime,
			IsDir:   file.isDir,
			Regular: !file.isDir,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// Remove removes a file or empty directory.
func (fs *MockFileSystem) Remove(path string) error {
	path = filepath.Clean(path)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	file, exists := fs.files[path]
	if !exists {
		return pathError("remove", path, os.ErrNotExist)
	}

	// If it's a directory, check if it's empty
	if file.isDir {
		for p := range fs.files {
			if strings.HasPrefix(p, path+string(filepath.Separator)) {
				return pathError("remove", path, syscall.ENOTEMPTY)
			}
		}
	}

	delete(fs.files, path)

	return nil
}

// Stat returns file information.
func (fs *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	path = filepath.Clean(path)

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if err := fs.failureLocked(OpStat, path); err != nil {
		return nil, err
	}

	file, exists := fs.files[path]
	if !exists {
		return nil, pathError("stat", path, os.ErrNotExist)
	}

	return &mockFileInfo{
		name:    filepath.Base(path),
		size:    int64(len(file.data)),
		modTime: file.modTime,
		isDir:   file.isDir,
		perm:    file.perm,
	}, nil
}

// Helper methods for testing

// AddDir adds a directory (and its parents) to the mock filesystem.
func (fs *MockFileSystem) AddDir(path string, modTime time.Time) {
	path = filepath.Clean(path)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	_ = fs.mkdirAllLocked(filepath.Dir(path), 0o755)

	fs.files[path] = &mockFile{
		path:    path,
		modTime: modTime,
		isDir:   true,
		perm:    0o755,
	}
}

// AddFile adds a file to the mock filesystem with the given content and modtime.
func (fs *MockFileSystem) AddFile(path string, content []byte, modTime time.Time) {
	path = filepath.Clean(path)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	// Create parent directories if needed
	dir := filepath.Dir(path)
	if dir != "." && dir != "/" {
		_ = fs.mkdirAllLocked(dir, 0o755)
	}

	fs.files[path] = &mockFile{
		path:    path,
		data:    append([]byte(nil), content...),
		modTime: modTime,
		perm:    0o644,
	}
}

// Exists checks if a path exists in the mock filesystem.
func (fs *MockFileSystem) Exists(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	_, exists := fs.files[filepath.Clean(path)]

	return exists
}

// GetFile retrieves a file's content from the mock filesystem.
func (fs *MockFileSystem) GetFile(path string) ([]byte, time.Time, error) {
	path = filepath.Clean(path)

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	file, exists := fs.files[path]
	if !exists {
		return nil, time.Time{}, os.ErrNotExist
	}

	if file.isDir {
		return nil, time.Time{}, fmt.Errorf("%s is a directory", path)
	}

	return append([]byte(nil), file.data...), file.modTime, nil
}

// ListFiles returns all paths in the mock filesystem.
func (fs *MockFileSystem) ListFiles() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	paths := make([]string, 0, len(fs.files))
	for p := range fs.files {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	return paths
}

// failureLocked returns the injected failure for op on path, if any.
func (fs *MockFileSystem) failureLocked(op, path string) error {
	if err, ok := fs.failures[failureKey(op, path)]; ok {
		return err
	}

	return nil
}

// mkdirAllLocked is the internal implementation that assumes the lock is held.
func (fs *MockFileSystem) mkdirAllLocked(path string, perm os.FileMode) error {
	if path == "." || path == "/" {
		return nil
	}

	if err := fs.failureLocked(OpMkdir, path); err != nil {
		return err
	}

	// Create parent directories first
	dir := filepath.Dir(path)
	if dir != "." && dir != "/" {
		if err := fs.mkdirAllLocked(dir, perm); err != nil {
			return err
		}
	}

	existing, exists := fs.files[path]
	if exists && !existing.isDir {
		return pathError("mkdir", path, syscall.ENOTDIR)
	}

	if !exists {
		fs.files[path] = &mockFile{
			path:    path,
			modTime: time.Now(),
			isDir:   true,
			perm:    perm,
		}
	}

	return nil
}

func failureKey(op, path string) string {
	return op + "\x00" + path
}

func pathError(op, path string, err error) error {
	return &os.PathError{Op: op, Path: path, Err: err}
}
