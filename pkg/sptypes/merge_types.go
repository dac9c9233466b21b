// Package sptypes defines the shared value types for rsparam.
// This file contains the merge and sort engine types: conflict warnings
// and sort key selection.
package sptypes

import "fmt"

// ConflictKind identifies which record kind a merge conflict concerns.
type ConflictKind string

const (
	// ConflictGroup marks a dropped parameter group.
	ConflictGroup ConflictKind = "group"
	// ConflictParam marks a dropped parameter definition.
	ConflictParam ConflictKind = "param"
)

// MergeConflict records one record dropped during a merge because an
// earlier input already claimed its identifier. Merge conflicts are
// warnings attached to a successful merge result, never errors: the
// merge always succeeds with first-input-wins resolution, and the
// caller decides whether the warnings are acceptable.
type MergeConflict struct {
	Kind        ConflictKind
	Key         string
	Name        string
	SourceIndex int
	LineNumber  int
}

// String renders the conflict for warning output.
func (c MergeConflict) String() string {
	return fmt.Sprintf("dropped %s %q (key %s) from input #%d line %d",
		c.Kind, c.Name, c.Key, c.SourceIndex+1, c.LineNumber)
}

// SortKey selects the canonical ordering produced by the sort engine.
type SortKey string

const (
	// SortByName orders groups and parameters by display name,
	// case-sensitively, with line number breaking ties.
	SortByName SortKey = "name"
	// SortByGroup orders parameters by group id, then name, then line
	// number. Groups have no group-of-group concept and stay ordered
	// by name.
	SortByGroup SortKey = "group"
)

// ParseSortKey converts a CLI sort-by token into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortByName:
		return SortByName, nil
	case SortByGroup:
		return SortByGroup, nil
	default:
		return "", fmt.Errorf("unknown sort key %q (expected %q or %q)", s, SortByName, SortByGroup)
	}
}
