package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextDiff_IdenticalInputs(t *testing.T) {
	text := "GROUP\t1\tDoors\n"
	assert.Equal(t, text, TextDiff(text, text))
}

func TestTextDiff_ChangedLinesSurviveIntact(t *testing.T) {
	out := TextDiff("GROUP\t1\tDoors\n", "GROUP\t1\tPortes\n")
	// The diff works on whole lines, so both record lines appear
	// unbroken in the rendering
	assert.Contains(t, out, "GROUP\t1\tDoors")
	assert.Contains(t, out, "GROUP\t1\tPortes")
}

func TestTextDiff_UnchangedLinesKept(t *testing.T) {
	first := "GROUP\t1\tDoors\nGROUP\t2\tWindows\n"
	second := "GROUP\t1\tDoors\nGROUP\t2\tFenetres\n"
	out := TextDiff(first, second)
	assert.Contains(t, out, "GROUP\t1\tDoors")
	assert.Contains(t, out, "GROUP\t2\tWindows")
	assert.Contains(t, out, "GROUP\t2\tFenetres")
}
