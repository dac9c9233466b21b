// Package sptypes defines the shared value types for rsparam.
// This file contains the column registry: an explicit mapping from
// column-name tokens to accessor functions per record type, so the
// presentation layer can render configurable table columns without
// runtime reflection.
package sptypes

import (
	"fmt"
	"strconv"
)

// Unresolved is rendered for a parameter whose group id references no
// group declared in the same file. Dangling references are tolerated,
// never fatal.
const Unresolved = "unresolved"

// ParamAccessor extracts one column value from a parameter definition.
// The owning file is passed alongside so the group column can resolve
// its group reference.
type ParamAccessor func(f *SharedParamFile, p ParamDef) string

// GroupAccessor extracts one column value from a parameter group.
type GroupAccessor func(g ParamGroup) string

// ParamColumn describes one recognized parameter table column.
type ParamColumn struct {
	Header string
	Get    ParamAccessor
}

// GroupColumn describes one recognized group table column.
type GroupColumn struct {
	Header string
	Get    GroupAccessor
}

// paramColumns enumerates every recognized parameter column token.
var paramColumns = map[string]ParamColumn{
	"guid": {"Guid", func(_ *SharedParamFile, p ParamDef) string { return p.GUID }},
	"name": {"Name", func(_ *SharedParamFile, p ParamDef) string { return p.Name }},
	"datatype": {"Datatype", func(_ *SharedParamFile, p ParamDef) string { return p.DataType }},
	"group": {"Group", func(f *SharedParamFile, p ParamDef) string {
		if g, ok := f.Group(p.GroupID); ok {
			return g.Name
		}
		return Unresolved
	}},
	"groupid": {"Group Id", func(_ *SharedParamFile, p ParamDef) string { return strconv.Itoa(p.GroupID) }},
	"datacategory": {"Data Category", func(_ *SharedParamFile, p ParamDef) string { return p.DataCategory }},
	"visible": {"Visible", func(_ *SharedParamFile, p ParamDef) string { return p.Visible }},
	"description": {"Description", func(_ *SharedParamFile, p ParamDef) string { return p.Description }},
	"usermodifiable": {"User Modifiable", func(_ *SharedParamFile, p ParamDef) string { return p.UserModifiable }},
	"lineno": {"Line #", func(_ *SharedParamFile, p ParamDef) string { return strconv.Itoa(p.LineNumber) }},
}

// groupColumns enumerates every recognized group column token.
var groupColumns = map[string]GroupColumn{
	"id":     {"Id", func(g ParamGroup) string { return strconv.Itoa(g.ID) }},
	"name":   {"Description", func(g ParamGroup) string { return g.Name }},
	"lineno": {"Line #", func(g ParamGroup) string { return strconv.Itoa(g.LineNumber) }},
}

// DefaultParamColumns is the parameter column order used when the caller
// does not configure columns.
func DefaultParamColumns() []string {
	return []string{"guid", "name", "datatype", "group", "lineno"}
}

// DefaultGroupColumns is the group column order used when the caller
// does not configure columns.
func DefaultGroupColumns() []string {
	return []string{"id", "name", "lineno"}
}

// ResolveParamColumns validates the given column tokens against the
// recognized parameter columns and returns them in order. An unknown
// token is an error, reported before any rendering happens.
func ResolveParamColumns(tokens []string) ([]ParamColumn, error) {
	cols := make([]ParamColumn, 0, len(tokens))
	for _, t := range tokens {
		col, ok := paramColumns[t]
		if !ok {
			return nil, fmt.Errorf("unknown parameter column %q", t)
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// ResolveGroupColumns validates the given column tokens against the
// recognized group columns and returns them in order.
func ResolveGroupColumns(tokens []string) ([]GroupColumn, error) {
	cols := make([]GroupColumn, 0, len(tokens))
	for _, t := range tokens {
		col, ok := groupColumns[t]
		if !ok {
			return nil, fmt.Errorf("unknown group column %q", t)
		}
		cols = append(cols, col)
	}
	return cols, nil
}
