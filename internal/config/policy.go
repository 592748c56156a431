package config

import (
	"fmt"
	"strings"
)

// ConflictPolicy decides what happens when a copy destination already exists.
type ConflictPolicy int

const (
	// Duplicate copies under the next free "name_N.ext"
	Duplicate ConflictPolicy = iota
	// Skip leaves the existing file untouched
	Skip
	// Overwrite replaces the existing file
	Overwrite
)

// String returns the string representation of ConflictPolicy
func (p ConflictPolicy) String() string {
	switch p {
	case Duplicate:
		return "duplicate"
	case Skip:
		return "skip"
	case Overwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// Label returns the Portuguese name shown in event messages: "duplicar",
// "pular" or "substituir".
func (p ConflictPolicy) Label() string {
	switch p {
	case Duplicate:
		return "duplicar"
	case Skip:
		return "pular"
	case Overwrite:
		return "substituir"
	default:
		return "?"
	}
}

// ParseConflictPolicy parses a string into a ConflictPolicy
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "duplicate", "duplicar", "dup":
		return Duplicate, nil
	case "skip", "pular":
		return Skip, nil
	case "overwrite", "substituir", "replace":
		return Overwrite, nil
	default:
		return Duplicate, fmt.Errorf("invalid conflict policy: %s (valid: skip, overwrite, duplicate; aliases: pular, substituir, duplicar)", s) //nolint:err113,lll // includes the rejected value
	}
}

// MarshalText implements encoding.TextMarshaler
func (p ConflictPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (p *ConflictPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseConflictPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
