package editor

import (
	"sort"

	"rsparam/pkg/sptypes"
)

// Sort returns a new file with groups and parameters canonically
// re-ordered. SortByName orders both collections case-sensitively by
// name; SortByGroup orders parameters by group id first, then name.
// Line numbers break every tie, ascending, so the ordering is total and
// deterministic; the sort is stable with respect to attributes outside
// the key.
func Sort(f *sptypes.SharedParamFile, key sptypes.SortKey) *sptypes.SharedParamFile {
	out := f.Clone()

	// Groups have no group-of-group concept: they sort by name under
	// either key.
	sort.SliceStable(out.Groups, func(i, j int) bool {
		a, b := out.Groups[i], out.Groups[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.LineNumber < b.LineNumber
	})

	sort.SliceStable(out.Params, func(i, j int) bool {
		a, b := out.Params[i], out.Params[j]
		if key == sptypes.SortByGroup && a.GroupID != b.GroupID {
			return a.GroupID < b.GroupID
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.LineNumber < b.LineNumber
	})

	return out
}
