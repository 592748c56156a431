package schema

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// LoadFile reads a FolderSchema from a YAML file. See LoadYAML.
func LoadFile(path string) (FolderSchema, error) {
	data, err := os.ReadFile(path) // #nosec G304 - schema path is supplied by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
	}

	s, err := LoadYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", path, err)
	}

	return s, nil
}

// LoadYAML parses a FolderSchema. Declaration order is kept.
//
// A mapping is a folder with children, an empty mapping or null is a leaf,
// and a sequence lists leaf folders (or nested mappings). Folder names must
// be strings; quote names YAML would read as numbers or booleans:
//
//	"01. Licitacao":
//	  "01. Participar": ~
//	  "05. Modelos_Padrao": [DECLARACAO, PROPOSTA, PLANILHA]
//	"04. Orcamentos_Propostas": {}
func LoadYAML(data []byte) (FolderSchema, error) {
	var root yaml.MapSlice
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode yaml: %w", err)
	}

	return fromMapSlice(root)
}

func fromMapSlice(items yaml.MapSlice) (FolderSchema, error) {
	nodes := make(FolderSchema, 0, len(items))

	for _, item := range items {
		name, err := folderName(item.Key)
		if err != nil {
			return nil, err
		}

		children, err := fromValue(item.Value)
		if err != nil {
			return nil, fmt.Errorf("folder %q: %w", name, err)
		}

		nodes = append(nodes, Node{Name: name, Children: children})
	}

	return nodes, nil
}

func fromValue(value any) (FolderSchema, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case yaml.MapSlice:
		return fromMapSlice(v)
	case []any:
		nodes := make(FolderSchema, 0, len(v))

		for _, elem := range v {
			switch e := elem.(type) {
			case yaml.MapSlice:
				children, err := fromMapSlice(e)
				if err != nil {
					return nil, err
				}

				nodes = append(nodes, children...)
			case nil:
				return nil, fmt.Errorf("empty entry in folder list") //nolint:err113,perfsprint // validation error
			default:
				name, err := folderName(e)
				if err != nil {
					return nil, err
				}

				nodes = append(nodes, Node{Name: name})
			}
		}

		return nodes, nil
	default:
		return nil, fmt.Errorf("unsupported value %v (%T)", v, v) //nolint:err113 // includes the rejected value
	}
}

// folderName accepts only string scalars, so "01" or "1.10" are never
// rewritten to 1 or 1.1.
func folderName(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", fmt.Errorf("folder with empty name") //nolint:err113,perfsprint // validation error
	case string:
		if strings.TrimSpace(v) == "" {
			return "", fmt.Errorf("folder with empty name") //nolint:err113,perfsprint // validation error
		}

		return v, nil
	default:
		return "", fmt.Errorf("folder name %v is a %T, quote it to keep it as written", v, v) //nolint:err113 // includes the rejected value
	}
}
