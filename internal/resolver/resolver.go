// Package resolver finds folders by tolerant name matching: the models root,
// the template inside it, relative paths whose segments drifted in naming,
// and month folders.
//
// Listings are sorted by raw name, so every "first match" is deterministic.
// Absence is reported as ok=false; only listing or creation failures are errors.
package resolver

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joe/docket/internal/schema"
	"github.com/joe/docket/pkg/filesystem"
	"github.com/joe/docket/pkg/normalize"

	pkgerrors "github.com/joe/docket/pkg/errors"
)

const (
	modelsToken   = "modelo"
	templateToken = "idlct"
)

// Resolver resolves folders on a FileSystem.
type Resolver struct {
	fs filesystem.FileSystem
}

// New returns a Resolver over fsys.
func New(fsys filesystem.FileSystem) *Resolver {
	return &Resolver{fs: fsys}
}

// FindModelsRoot returns the first subdirectory of parent whose name contains
// "modelo" after normalization. ok is false when there is none or parent is missing.
func (r *Resolver) FindModelsRoot(parent string) (string, bool, error) {
	dirs, err := r.subdirs(parent)
	if err != nil || dirs == nil {
		return "", false, err
	}

	for _, dir := range dirs {
		if strings.Contains(normalize.Normalize(dir.Name), modelsToken) {
			return filepath.Join(parent, dir.Name), true, nil
		}
	}

	return "", false, nil
}

// FindTemplate returns the template folder inside modelsRoot: the first
// subdirectory named like "ID.LCT" (or containing both "id" and "lct"), else
// the first subdirectory of all.
func (r *Resolver) FindTemplate(modelsRoot string) (string, bool, error) {
	dirs, err := r.subdirs(modelsRoot)
	if err != nil || len(dirs) == 0 {
		return "", false, err
	}

	for _, dir := range dirs {
		if isTemplateName(dir.Name) {
			return filepath.Join(modelsRoot, dir.Name), true, nil
		}
	}

	return filepath.Join(modelsRoot, dirs[0].Name), true, nil
}

// ResolveFlex walks rel under root one segment at a time. Each segment matches
// a subdirectory whose normalized name equals it, or failing that contains it
// or is contained by it, or failing that does so once plural endings are
// folded ("DECLARACAO" finds "DECLARACOES"). There is no backtracking: ok is
// false as soon as one segment has no candidate.
func (r *Resolver) ResolveFlex(root, rel string) (string, bool, error) {
	current := root

	for _, segment := range schema.SplitRel(rel) {
		dirs, err := r.subdirs(current)
		if err != nil || dirs == nil {
			return "", false, err
		}

		name, ok := matchSegment(dirs, normalize.Normalize(segment))
		if !ok {
			return "", false, nil
		}

		current = filepath.Join(current, name)
	}

	return current, true, nil
}

// ResolveMonth returns the subdirectory of base matching month label (the
// text after the first "." is compared, normalized), creating base/label
// when none matches. The created folder name is label without surrounding
// whitespace.
func (r *Resolver) ResolveMonth(base, label string) (string, error) {
	token := monthToken(label)

	if token != "" {
		dirs, err := r.subdirs(base)
		if err != nil {
			return "", err
		}

		for _, dir := range dirs {
			if strings.Contains(normalize.Normalize(dir.Name), token) {
				return filepath.Join(base, dir.Name), nil
			}
		}
	}

	target := filepath.Join(base, strings.TrimSpace(label))
	if err := r.fs.MkdirAll(target, 0o755); err != nil { //nolint:mnd // standard directory permissions
		return "", pkgerrors.NewFilesystemError("create", target, err)
	}

	return target, nil
}

// subdirs lists the subdirectories of dir. A missing dir yields nil, nil.
func (r *Resolver) subdirs(dir string) ([]filesystem.DirEntry, error) {
	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, pkgerrors.NewFilesystemError("list", dir, err)
	}

	return filesystem.Subdirs(entries), nil
}

func isTemplateName(name string) bool {
	token := normalize.Normalize(name)

	return strings.Contains(token, templateToken) ||
		(strings.Contains(token, "id") && strings.Contains(token, "lct"))
}

// matchSegment picks the subdirectory for one normalized segment.
// Empty tokens never match by containment, since "" is inside every name.
func matchSegment(dirs []filesystem.DirEntry, target string) (string, bool) {
	for _, dir := range dirs {
		if normalize.Normalize(dir.Name) == target {
			return dir.Name, true
		}
	}

	if target == "" {
		return "", false
	}

	for _, dir := range dirs {
		candidate := normalize.Normalize(dir.Name)
		if candidate == "" {
			continue
		}

		if overlaps(candidate, target) {
			return dir.Name, true
		}
	}

	singular := normalize.Singular(target)

	for _, dir := range dirs {
		candidate := normalize.Normalize(dir.Name)
		if candidate == "" {
			continue
		}

		if overlaps(normalize.Singular(candidate), singular) {
			return dir.Name, true
		}
	}

	return "", false
}

func overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func monthToken(label string) string {
	if _, after, found := strings.Cut(label, "."); found {
		return normalize.Normalize(after)
	}

	return normalize.Normalize(label)
}
