package treebuilder

import "errors"

// errNotDirectory is reported when a regular file occupies a folder's place.
var errNotDirectory = errors.New("a file with this name already exists and is not a directory")
