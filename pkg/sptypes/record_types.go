// Package sptypes defines the shared value types for rsparam.
// This file contains the record model for shared parameter files:
// parameter groups, parameter definitions, and the file container
// that owns both collections.
package sptypes

import (
	"fmt"

	"github.com/google/uuid"
)

// ParamGroup is a single parameter group declaration (a GROUP line).
// The id is the format's notion of a group identifier: a small integer
// unique within one file, not a UUID.
type ParamGroup struct {
	ID         int
	Name       string
	LineNumber int
}

// ParamDef is a single parameter definition (a PARAM line).
// DataCategory, Visible, Description and UserModifiable are preserved
// verbatim for merge fidelity; they take no part in comparisons or
// searches.
type ParamDef struct {
	GUID           string
	Name           string
	DataType       string
	GroupID        int
	DataCategory   string
	Visible        string
	Description    string
	UserModifiable string
	LineNumber     int
}

// SharedParamFile holds the parsed contents of one shared parameter file.
// Groups and Params are kept in declaration order. Version and MinVersion
// are the metadata tokens recorded from the META line; both are empty when
// the source file carried no metadata.
//
// A SharedParamFile is immutable after construction: every operation over
// one returns new files or new derived collections.
type SharedParamFile struct {
	Version    string
	MinVersion string
	Groups     []ParamGroup
	Params     []ParamDef
}

// Group looks up a parameter group by id. The second return value is false
// when no group with that id exists, which callers surface as an
// "unresolved" group reference rather than an error.
func (f *SharedParamFile) Group(id int) (ParamGroup, bool) {
	for _, g := range f.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return ParamGroup{}, false
}

// Clone returns a deep value copy of the file. Engines that build new
// files start from a clone so the input file is never aliased.
func (f *SharedParamFile) Clone() *SharedParamFile {
	c := &SharedParamFile{
		Version:    f.Version,
		MinVersion: f.MinVersion,
		Groups:     make([]ParamGroup, len(f.Groups)),
		Params:     make([]ParamDef, len(f.Params)),
	}
	copy(c.Groups, f.Groups)
	copy(c.Params, f.Params)
	return c
}

// NormalizeGUID validates a parameter GUID and returns its canonical form:
// lowercase, hyphenated, 8-4-4-4-12. Input case is ignored. Only the
// 36-character hyphenated textual form is accepted; the shorter and
// urn-prefixed forms the uuid package tolerates are not valid in shared
// parameter files.
func NormalizeGUID(raw string) (string, error) {
	if len(raw) != 36 {
		return "", fmt.Errorf("guid %q is not in 8-4-4-4-12 form", raw)
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("guid %q is not valid: %w", raw, err)
	}
	return u.String(), nil
}
