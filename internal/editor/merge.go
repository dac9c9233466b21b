// Package editor implements the operations that produce new shared
// parameter files: merging multiple files with identifier-conflict
// resolution, canonical re-sorting, and text diffs between serialized
// files. Like the query engine, everything here is a pure function;
// input files are never mutated.
package editor

import (
	"strconv"

	"rsparam/internal/logger"
	"rsparam/pkg/sptypes"
)

// Merge concatenates the groups and parameters of all input files, in
// input order, into one new file. When two groups share an id, or two
// parameters share a GUID, the first-encountered record wins and later
// ones are dropped; the order of the input list is the precedence
// order. Identifiers are never remapped. Every dropped record produces
// one MergeConflict warning, so loss of data is always observable by
// the caller. Merge always succeeds; callers decide whether the
// warnings are acceptable.
//
// The merged file's version metadata comes from the first input that
// carries any.
func Merge(files []*sptypes.SharedParamFile) (*sptypes.SharedParamFile, []sptypes.MergeConflict) {
	merged := &sptypes.SharedParamFile{}
	var conflicts []sptypes.MergeConflict

	seenGroups := make(map[int]struct{})
	seenParams := make(map[string]struct{})

	for i, f := range files {
		if merged.Version == "" && f.Version != "" {
			merged.Version = f.Version
			merged.MinVersion = f.MinVersion
		}

		for _, g := range f.Groups {
			if _, dup := seenGroups[g.ID]; dup {
				conflicts = append(conflicts, sptypes.MergeConflict{
					Kind:        sptypes.ConflictGroup,
					Key:         strconv.Itoa(g.ID),
					Name:        g.Name,
					SourceIndex: i,
					LineNumber:  g.LineNumber,
				})
				continue
			}
			seenGroups[g.ID] = struct{}{}
			merged.Groups = append(merged.Groups, g)
		}

		for _, p := range f.Params {
			if _, dup := seenParams[p.GUID]; dup {
				conflicts = append(conflicts, sptypes.MergeConflict{
					Kind:        sptypes.ConflictParam,
					Key:         p.GUID,
					Name:        p.Name,
					SourceIndex: i,
					LineNumber:  p.LineNumber,
				})
				continue
			}
			seenParams[p.GUID] = struct{}{}
			merged.Params = append(merged.Params, p)
		}
	}

	logger.Debug("merged shared parameter files",
		"inputs", len(files), "groups", len(merged.Groups), "params", len(merged.Params),
		"conflicts", len(conflicts))
	return merged, conflicts
}
