// Package treebuilder creates folder trees and reports one event per folder.
//
// A folder that cannot be created is reported and the walk goes on with its
// siblings and children, so a partial tree is always as complete as possible.
package treebuilder

import (
	"iter"
	"path/filepath"
	"strings"

	"github.com/joe/docket/internal/events"
	"github.com/joe/docket/internal/schema"
	"github.com/joe/docket/pkg/fileops"
	"github.com/joe/docket/pkg/filesystem"

	pkgerrors "github.com/joe/docket/pkg/errors"
)

const indentUnit = "  "

// Builder creates folders through a FileSystem.
type Builder struct {
	Ops      *fileops.FileOps
	Enricher pkgerrors.Enricher
}

// New returns a Builder over fsys.
func New(fsys filesystem.FileSystem) *Builder {
	return &Builder{
		Ops:      fileops.NewFileOps(fsys),
		Enricher: pkgerrors.NewEnricher(),
	}
}

// BuildTree creates every folder of s under root, parents before children,
// in declaration order.
func (b *Builder) BuildTree(root string, s schema.FolderSchema) iter.Seq[events.Event] {
	return events.Once(func(yield func(events.Event) bool) {
		b.walk(root, s, 0, yield)
	})
}

// BuildFixed creates each "/"-delimited relative path under root, one event
// per folder level. Parents shared by several paths are reported once.
func (b *Builder) BuildFixed(root string, rels []string) iter.Seq[events.Event] {
	return events.Once(func(yield func(events.Event) bool) {
		seen := make(map[string]bool)

		for _, rel := range rels {
			current := root

			for depth, segment := range schema.SplitRel(rel) {
				current = filepath.Join(current, segment)
				if seen[current] {
					continue
				}

				seen[current] = true

				if !yield(b.ensure(current, depth)) {
					return
				}
			}
		}
	})
}

func (b *Builder) walk(parent string, nodes schema.FolderSchema, depth int, yield func(events.Event) bool) bool {
	for _, node := range nodes {
		target := filepath.Join(parent, node.Name)

		if !yield(b.ensure(target, depth)) {
			return false
		}

		if !b.walk(target, node.Children, depth+1, yield) {
			return false
		}
	}

	return true
}

// ensure creates path when missing and returns the event describing what happened.
func (b *Builder) ensure(path string, depth int) events.Event {
	indent := strings.Repeat(indentUnit, depth)

	info, err := b.Ops.FS.Stat(path)
	if err == nil {
		if info.IsDir() {
			return events.Info(path, "%sJá existe: %s", indent, path)
		}

		return b.failure(path, indent, errNotDirectory)
	}

	if err := b.Ops.EnsureDir(path); err != nil {
		return b.failure(path, indent, err)
	}

	return events.OK(path, "%sCriado: %s", indent, path)
}

func (b *Builder) failure(path, indent string, err error) events.Event {
	enricher := b.Enricher
	if enricher == nil {
		enricher = pkgerrors.NewEnricher()
	}

	wrapped := enricher.Enrich(pkgerrors.NewFilesystemError("create", path, err), path)

	return events.Error(path, wrapped, "%sFalha ao criar '%s': %v", indent, path, err)
}
