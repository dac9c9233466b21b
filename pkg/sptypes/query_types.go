// Package sptypes defines the shared value types for rsparam.
// This file contains the derived result types produced by the query
// engine: duplicate sets and file comparison results.
package sptypes

// Comparison field names carried on derived results so the presentation
// layer can label columns without re-deriving the mode.
const (
	// FieldGUID indicates records were keyed by GUID (or group id).
	FieldGUID = "guid"
	// FieldName indicates records were keyed by display name.
	FieldName = "name"
)

// GroupDuplicates is one set of parameter groups sharing a duplicate key.
// Entries keep their original file order.
type GroupDuplicates struct {
	Key     string
	Entries []ParamGroup
}

// ParamDuplicates is one set of parameter definitions sharing a duplicate
// key. Entries keep their original file order.
type ParamDuplicates struct {
	Key     string
	Entries []ParamDef
}

// DuplicateSet holds every duplicate key found in one file, for both
// groups and parameters. Only keys with two or more records appear.
// Field is the comparison field name (FieldGUID or FieldName) used to
// build the set. Sets are ordered by the first occurrence of their key.
type DuplicateSet struct {
	Field  string
	Groups []GroupDuplicates
	Params []ParamDuplicates
}

// Empty reports whether no duplicates were found at all.
func (d DuplicateSet) Empty() bool {
	return len(d.Groups) == 0 && len(d.Params) == 0
}

// Selection is an ordered subset of one file's records.
type Selection struct {
	Groups []ParamGroup
	Params []ParamDef
}

// FileDiff is the result of comparing two files: the records unique to
// the first file and the records unique to the second. A record is unique
// to one side when no record on the other side shares its comparison key.
// Group and parameter comparisons are independent of each other.
type FileDiff struct {
	Field  string
	First  Selection
	Second Selection
}
