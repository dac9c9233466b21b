package editor

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// TextDiff renders a line-level diff between two serialized files, with
// inserted and deleted lines marked up for terminal display. The diff
// is computed over whole lines so changed records stay readable as
// records. Used by the comp command's --diff mode; the set-difference
// semantics of Compare are unaffected by it.
func TextDiff(first, second string) string {
	dmp := diffmatchpatch.New()
	chars1, chars2, lines := dmp.DiffLinesToChars(first, second)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	return dmp.DiffPrettyText(diffs)
}
