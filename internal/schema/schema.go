// Package schema holds the folder layouts docket creates: the client
// structure tree, the fixed subfolders of a bid, and month labels.
package schema

import (
	"path"
	"strings"
)

// Node is one folder of a FolderSchema. A node without children is a leaf.
type Node struct {
	Name     string
	Children FolderSchema
}

// FolderSchema is an ordered tree of folders. Children keep declaration order.
type FolderSchema []Node

// Dir returns a folder node with the given children.
func Dir(name string, children ...Node) Node {
	return Node{Name: name, Children: children}
}

// Leaves returns a leaf node per name.
func Leaves(names ...string) FolderSchema {
	nodes := make(FolderSchema, 0, len(names))
	for _, name := range names {
		nodes = append(nodes, Node{Name: name})
	}

	return nodes
}

// Paths flattens the schema into "/"-joined relative paths, parents before
// children, in declaration order.
func (s FolderSchema) Paths() []string {
	var out []string

	var walk func(prefix string, nodes FolderSchema)
	walk = func(prefix string, nodes FolderSchema) {
		for _, node := range nodes {
			rel := path.Join(prefix, node.Name)
			out = append(out, rel)
			walk(rel, node.Children)
		}
	}

	walk("", s)

	return out
}

// Count returns the number of folders in the schema.
func (s FolderSchema) Count() int {
	total := 0
	for _, node := range s {
		total += 1 + node.Children.Count()
	}

	return total
}

// SplitRel splits a relative path on "/" or "\" and drops empty segments.
func SplitRel(rel string) []string {
	fields := strings.FieldsFunc(rel, func(r rune) bool {
		return r == '/' || r == '\\'
	})

	segments := make([]string, 0, len(fields))
	for _, field := range fields {
		if field = strings.TrimSpace(field); field != "" {
			segments = append(segments, field)
		}
	}

	return segments
}
