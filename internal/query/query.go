// Package query implements the analytical operations over parsed shared
// parameter files: listing with optional group filtering, regex search,
// duplicate detection, and pairwise comparison. Every operation is a
// pure function from inputs to outputs; no state survives a call and
// input files are never mutated.
package query

import (
	"regexp"
	"strconv"

	"rsparam/internal/logger"
	"rsparam/pkg/sptypes"
)

// Groups returns the file's parameter groups in declaration order.
func Groups(f *sptypes.SharedParamFile) []sptypes.ParamGroup {
	return append([]sptypes.ParamGroup(nil), f.Groups...)
}

// Params returns the file's parameter definitions in declaration order.
// When groupFilter is non-nil only parameters whose group id equals the
// filter are retained.
func Params(f *sptypes.SharedParamFile, groupFilter *int) []sptypes.ParamDef {
	if groupFilter == nil {
		return append([]sptypes.ParamDef(nil), f.Params...)
	}
	var out []sptypes.ParamDef
	for _, p := range f.Params {
		if p.GroupID == *groupFilter {
			out = append(out, p)
		}
	}
	return out
}

// Find returns the groups and parameters whose names match the given
// regular expression. Matching is case-sensitive. It fails with a
// PatternError when the pattern does not compile; the file itself stays
// valid for further queries.
func Find(f *sptypes.SharedParamFile, pattern string) (sptypes.Selection, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return sptypes.Selection{}, &sptypes.PatternError{Pattern: pattern, Reason: err.Error()}
	}

	var sel sptypes.Selection
	for _, g := range f.Groups {
		if re.MatchString(g.Name) {
			sel.Groups = append(sel.Groups, g)
		}
	}
	for _, p := range f.Params {
		if re.MatchString(p.Name) {
			sel.Params = append(sel.Params, p)
		}
	}
	logger.Debug("find", "pattern", pattern, "groups", len(sel.Groups), "params", len(sel.Params))
	return sel, nil
}

// Duplicates groups the file's records by their comparison key: GUID for
// parameters and id for groups, or display name for both when byName is
// set. Only keys shared by two or more records are returned; entries
// keep their file order and keys are ordered by first occurrence.
func Duplicates(f *sptypes.SharedParamFile, byName bool) sptypes.DuplicateSet {
	set := sptypes.DuplicateSet{Field: comparisonField(byName)}

	groupsByKey := make(map[string][]sptypes.ParamGroup)
	var groupOrder []string
	for _, g := range f.Groups {
		key := groupKey(g, byName)
		if _, seen := groupsByKey[key]; !seen {
			groupOrder = append(groupOrder, key)
		}
		groupsByKey[key] = append(groupsByKey[key], g)
	}
	for _, key := range groupOrder {
		if entries := groupsByKey[key]; len(entries) > 1 {
			set.Groups = append(set.Groups, sptypes.GroupDuplicates{Key: key, Entries: entries})
		}
	}

	paramsByKey := make(map[string][]sptypes.ParamDef)
	var paramOrder []string
	for _, p := range f.Params {
		key := paramKey(p, byName)
		if _, seen := paramsByKey[key]; !seen {
			paramOrder = append(paramOrder, key)
		}
		paramsByKey[key] = append(paramsByKey[key], p)
	}
	for _, key := range paramOrder {
		if entries := paramsByKey[key]; len(entries) > 1 {
			set.Params = append(set.Params, sptypes.ParamDuplicates{Key: key, Entries: entries})
		}
	}

	return set
}

// Compare partitions two files into the records unique to each side. A
// record is unique when no record in the other file shares its
// comparison key. Group and parameter comparisons are independent: a
// parameter is unique purely by its own key, whether or not its group
// is also unique.
func Compare(a, b *sptypes.SharedParamFile, byName bool) sptypes.FileDiff {
	diff := sptypes.FileDiff{Field: comparisonField(byName)}
	diff.First = uniqueTo(a, b, byName)
	diff.Second = uniqueTo(b, a, byName)
	return diff
}

// uniqueTo selects the records of f whose keys have no counterpart in
// other.
func uniqueTo(f, other *sptypes.SharedParamFile, byName bool) sptypes.Selection {
	otherGroups := make(map[string]struct{}, len(other.Groups))
	for _, g := range other.Groups {
		otherGroups[groupKey(g, byName)] = struct{}{}
	}
	otherParams := make(map[string]struct{}, len(other.Params))
	for _, p := range other.Params {
		otherParams[paramKey(p, byName)] = struct{}{}
	}

	var sel sptypes.Selection
	for _, g := range f.Groups {
		if _, ok := otherGroups[groupKey(g, byName)]; !ok {
			sel.Groups = append(sel.Groups, g)
		}
	}
	for _, p := range f.Params {
		if _, ok := otherParams[paramKey(p, byName)]; !ok {
			sel.Params = append(sel.Params, p)
		}
	}
	return sel
}

func comparisonField(byName bool) string {
	if byName {
		return sptypes.FieldName
	}
	return sptypes.FieldGUID
}

// groupKey is the comparison key for a group: its id, or its name in
// by-name mode.
func groupKey(g sptypes.ParamGroup, byName bool) string {
	if byName {
		return g.Name
	}
	return strconv.Itoa(g.ID)
}

// paramKey is the comparison key for a parameter: its normalized GUID,
// or its name in by-name mode.
func paramKey(p sptypes.ParamDef, byName bool) string {
	if byName {
		return p.Name
	}
	return p.GUID
}
