// Package copier copies template documents and attachments into a bid
// folder, one event per file, under a conflict policy.
//
// A failing file or folder produces an error event and the rest of the batch
// goes on.
package copier

import (
	"errors"
	"fmt"
	"iter"
	"path/filepath"

	"github.com/joe/docket/internal/config"
	"github.com/joe/docket/internal/events"
	"github.com/joe/docket/internal/resolver"
	"github.com/joe/docket/internal/schema"
	"github.com/joe/docket/pkg/fileops"
	"github.com/joe/docket/pkg/filesystem"

	pkgerrors "github.com/joe/docket/pkg/errors"
)

// Copier copies files under a conflict policy.
type Copier struct {
	Ops      *fileops.FileOps
	Resolver *resolver.Resolver
	Policy   config.ConflictPolicy
	Filter   FileFilter
	Enricher pkgerrors.Enricher
}

// New returns a Copier over fsys. A nil filter copies every file.
func New(fsys filesystem.FileSystem, policy config.ConflictPolicy, filter FileFilter) *Copier {
	return &Copier{
		Ops:      fileops.NewFileOps(fsys),
		Resolver: resolver.New(fsys),
		Policy:   policy,
		Filter:   filter,
		Enricher: pkgerrors.NewEnricher(),
	}
}

// CopySelected copies the regular files directly inside each selected
// subfolder of templateRoot into the same subfolder of destRoot.
//
// A subfolder missing from the template is looked up with fuzzy matching; if
// that fails too it is reported as a warning and skipped.
func (c *Copier) CopySelected(templateRoot, destRoot string, selected []string) iter.Seq[events.Event] {
	return events.Once(func(yield func(events.Event) bool) {
		for _, rel := range selected {
			if !c.copySubfolder(templateRoot, destRoot, rel, yield) {
				return
			}
		}
	})
}

// CopyAttachments copies each file into destRoot/destSubpath. Paths that are
// missing or not regular files are reported as warnings.
func (c *Copier) CopyAttachments(files []string, destRoot, destSubpath string) iter.Seq[events.Event] {
	return events.Once(func(yield func(events.Event) bool) {
		dstDir := joinRel(destRoot, destSubpath)

		if err := c.Ops.EnsureDir(dstDir); err != nil {
			yield(c.errorEvent(dstDir, "create", err, "Falha ao criar pasta '%s': %v", dstDir, err))

			return
		}

		for _, src := range files {
			if !c.isRegularFile(src) {
				if !yield(events.Warn(src, "Ignorado (não é arquivo): %s", src)) {
					return
				}

				continue
			}

			if !yield(c.copyOne(src, dstDir, filepath.Base(src), "anexar")) {
				return
			}
		}
	})
}

func (c *Copier) copySubfolder(templateRoot, destRoot, rel string, yield func(events.Event) bool) bool {
	srcDir := joinRel(templateRoot, rel)

	if !filesystem.IsDir(c.Ops.FS, srcDir) {
		resolved, ok, err := c.Resolver.ResolveFlex(templateRoot, rel)
		if err != nil {
			return yield(c.errorEvent(srcDir, "resolve", err, "Falha ao procurar pasta modelo '%s': %v", rel, err))
		}

		if !ok {
			warning := events.Warn(srcDir, "Pasta modelo não encontrada: %s", srcDir)
			warning.Err = fmt.Errorf("template folder %s: %w", rel, pkgerrors.ErrNotFound)

			return yield(warning)
		}

		srcDir = resolved
	}

	dstDir := joinRel(destRoot, rel)

	if err := c.Ops.EnsureDir(dstDir); err != nil {
		return yield(c.errorEvent(dstDir, "create", err, "Falha ao criar pasta '%s': %v", dstDir, err))
	}

	entries, err := c.Ops.FS.ReadDir(srcDir)
	if err != nil {
		return yield(c.errorEvent(srcDir, "list", err, "Falha ao listar '%s': %v", srcDir, err))
	}

	for _, entry := range entries {
		if !entry.Regular || !c.include(entry.Name) {
			continue
		}

		if !yield(c.copyOne(filepath.Join(srcDir, entry.Name), dstDir, entry.Name, "copiar")) {
			return false
		}
	}

	return true
}

// copyOne copies src into dstDir as name. verb names the operation in failure
// messages ("copiar" or "anexar").
func (c *Copier) copyOne(src, dstDir, name, verb string) events.Event {
	dst := filepath.Join(dstDir, name)

	exists, err := c.Ops.Exists(dst)
	if err != nil {
		return c.failure(verb, name, dst, err)
	}

	action := "copiar"

	if exists {
		switch c.Policy {
		case config.Skip:
			return events.Info(dst, "[%s] %s já existe.", c.Policy.Label(), name)
		case config.Overwrite:
			action = c.Policy.Label()
		case config.Duplicate:
			free, err := c.Ops.NextFreeName(dstDir, name)
			if err != nil {
				return c.failure(verb, name, dst, err)
			}

			action = c.Policy.Label()
			dst = filepath.Join(dstDir, free)
		}
	}

	if _, err := c.Ops.CopyFile(src, dst); err != nil {
		return c.failure(verb, name, dst, err)
	}

	return events.OK(dst, "[%s] %s", action, filepath.Base(dst))
}

func (c *Copier) failure(verb, name, path string, err error) events.Event {
	op := "copy"
	if verb == "anexar" {
		op = "attach"
	}

	return c.errorEvent(path, op, err, "Falha ao %s '%s': %v", verb, name, err)
}

func (c *Copier) errorEvent(path, op string, err error, format string, args ...any) events.Event {
	var fsErr *pkgerrors.FilesystemError
	if !errors.As(err, &fsErr) {
		err = pkgerrors.NewFilesystemError(op, path, err)
	}

	return events.Error(path, c.enricher().Enrich(err, path), format, args...)
}

func (c *Copier) include(name string) bool {
	return c.Filter == nil || c.Filter.ShouldInclude(name)
}

func (c *Copier) enricher() pkgerrors.Enricher {
	if c.Enricher == nil {
		return pkgerrors.NewEnricher()
	}

	return c.Enricher
}

func (c *Copier) isRegularFile(path string) bool {
	info, err := c.Ops.FS.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

// joinRel joins a "/"-delimited relative path onto root.
func joinRel(root, rel string) string {
	return filepath.Join(append([]string{root}, schema.SplitRel(rel)...)...)
}
