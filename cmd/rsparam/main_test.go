package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFile = "# This is a Revit shared parameter file.\n" +
	"*META\tVERSION\tMINVERSION\n" +
	"META\t2\t1\n" +
	"*GROUP\tID\tNAME\n" +
	"GROUP\t1\tDoors\n" +
	"GROUP\t2\tWindows\n" +
	"*PARAM\tGUID\tNAME\tDATATYPE\tGROUP\tDATACATEGORY\tVISIBLE\tDESCRIPTION\tUSERMODIFIABLE\n" +
	"PARAM\taaaaaaaa-0000-0000-0000-000000000001\tDoor Width\tLENGTH\t1\n" +
	"PARAM\taaaaaaaa-0000-0000-0000-000000000002\tSill Height\tLENGTH\t2\n"

// writeTestFile drops a shared parameter file into a temp dir.
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// runCommand executes the CLI with the given args and captures output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--theme", "plain"}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestListCommand(t *testing.T) {
	path := writeTestFile(t, "params.txt", testFile)

	out, err := runCommand(t, "list", path)
	require.NoError(t, err)

	assert.Contains(t, out, "source file: "+path)
	assert.Contains(t, out, "Doors")
	assert.Contains(t, out, "Windows")
	assert.Contains(t, out, "Door Width")
	assert.Contains(t, out, "Total of 2 items.")
}

func TestListCommand_GroupsOnly(t *testing.T) {
	path := writeTestFile(t, "params.txt", testFile)

	out, err := runCommand(t, "list", "--groups=true", "--params=false", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Doors")
	assert.NotContains(t, out, "Door Width")
}

func TestListCommand_QuietSuppressesCommentary(t *testing.T) {
	path := writeTestFile(t, "params.txt", testFile)

	out, err := runCommand(t, "--quiet=true", "list", "--groups=true", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "source file:")
	assert.NotContains(t, out, "Total of")
	assert.Contains(t, out, "Doors")

	// Reset for other tests; persistent flags survive Execute calls
	_, err = runCommand(t, "--quiet=false", "list", "--groups=false", path)
	require.NoError(t, err)
}

func TestListCommand_SharedColumns(t *testing.T) {
	path := writeTestFile(t, "params.txt", testFile)

	out, err := runCommand(t, "list", "-c", "name:lineno", path)
	require.NoError(t, err)

	// Shared tokens shape both tables; the guid column is dropped
	assert.Contains(t, out, "Doors")
	assert.Contains(t, out, "Door Width")
	assert.NotContains(t, out, "aaaaaaaa-0000-0000-0000-000000000001")

	// Reset for other tests; command flags survive Execute calls
	_, err = runCommand(t, "list", "-c", "", path)
	require.NoError(t, err)
}

func TestListCommand_MissingFile(t *testing.T) {
	_, err := runCommand(t, "list", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestFindCommand(t *testing.T) {
	path := writeTestFile(t, "params.txt", testFile)

	out, err := runCommand(t, "find", "^Door", path)
	require.NoError(t, err)

	assert.Contains(t, out, "groups matching: ^Door")
	assert.Contains(t, out, "Doors")
	assert.Contains(t, out, "params matching: ^Door")
	assert.Contains(t, out, "Door Width")
	assert.NotContains(t, out, "Sill Height")
}

func TestFindCommand_ParamsOnly(t *testing.T) {
	path := writeTestFile(t, "params.txt", testFile)

	out, err := runCommand(t, "find", "--params=true", "^Door", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Door Width")
	assert.NotContains(t, out, "groups matching")

	// Reset for other tests; command flags survive Execute calls
	_, err = runCommand(t, "find", "--params=false", "^Door", path)
	require.NoError(t, err)
}

func TestFindCommand_GroupsOnly(t *testing.T) {
	path := writeTestFile(t, "params.txt", testFile)

	out, err := runCommand(t, "find", "--groups=true", "^Door", path)
	require.NoError(t, err)
	assert.Contains(t, out, "groups matching: ^Door")
	assert.Contains(t, out, "Doors")
	assert.NotContains(t, out, "Door Width")

	_, err = runCommand(t, "find", "--groups=false", "^Door", path)
	require.NoError(t, err)
}

func TestFindCommand_BadPattern(t *testing.T) {
	path := writeTestFile(t, "params.txt", testFile)

	_, err := runCommand(t, "find", "([bad", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestFindDuplCommand(t *testing.T) {
	content := testFile +
		"PARAM\taaaaaaaa-0000-0000-0000-000000000001\tDoor Width Copy\tLENGTH\t1\n"
	path := writeTestFile(t, "dupl.txt", content)

	out, err := runCommand(t, "find", "dupl", path)
	require.NoError(t, err)

	assert.Contains(t, out, "duplicates by guid: aaaaaaaa-0000-0000-0000-000000000001")
	assert.Contains(t, out, "Door Width")
	assert.Contains(t, out, "Door Width Copy")
}

func TestCompCommand(t *testing.T) {
	first := writeTestFile(t, "first.txt", testFile)
	second := writeTestFile(t, "second.txt",
		"GROUP\t1\tDoors\n"+
			"GROUP\t2\tWindows\n"+
			"PARAM\taaaaaaaa-0000-0000-0000-000000000001\tDoor Width\tLENGTH\t1\n"+
			"PARAM\tbbbbbbbb-0000-0000-0000-000000000009\tFrame Depth\tLENGTH\t1\n")

	out, err := runCommand(t, "comp", first, second)
	require.NoError(t, err)

	assert.Contains(t, out, "unique parameters in first")
	assert.Contains(t, out, "Sill Height")
	assert.Contains(t, out, "unique parameters in second")
	assert.Contains(t, out, "Frame Depth")
	assert.NotContains(t, out, "unique groups in first")
}

func TestMergeCommand(t *testing.T) {
	first := writeTestFile(t, "first.txt", testFile)
	second := writeTestFile(t, "second.txt",
		"GROUP\t1\tPortes\n"+
			"PARAM\tcccccccc-0000-0000-0000-000000000003\tHandle Height\tLENGTH\t1\n")
	dest := filepath.Join(t.TempDir(), "merged.txt")

	out, err := runCommand(t, "merge", dest, first, second)
	require.NoError(t, err)

	// The colliding group from the second file is dropped with a warning
	assert.Contains(t, out, `dropped group "Portes"`)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	merged := string(data)
	assert.Contains(t, merged, "GROUP\t1\tDoors")
	assert.NotContains(t, merged, "Portes")
	assert.Contains(t, merged, "Handle Height")
	assert.Contains(t, merged, "META\t2\t1")
}

func TestSortCommand_WritesSortedFileToStdout(t *testing.T) {
	content := "GROUP\t2\tWindows\n" +
		"GROUP\t1\tDoors\n" +
		"PARAM\taaaaaaaa-0000-0000-0000-000000000001\tZ Param\tTEXT\t1\n" +
		"PARAM\taaaaaaaa-0000-0000-0000-000000000002\tA Param\tTEXT\t1\n"
	path := writeTestFile(t, "unsorted.txt", content)

	out, err := runCommand(t, "--quiet=true", "sort", path)
	require.NoError(t, err)

	doors := strings.Index(out, "GROUP\t1\tDoors")
	windows := strings.Index(out, "GROUP\t2\tWindows")
	require.GreaterOrEqual(t, doors, 0)
	require.GreaterOrEqual(t, windows, 0)
	assert.Less(t, doors, windows)

	aParam := strings.Index(out, "A Param")
	zParam := strings.Index(out, "Z Param")
	assert.Less(t, aParam, zParam)

	_, err = runCommand(t, "--quiet=false", "version")
	require.NoError(t, err)
}

func TestSortCommand_OutputFlag(t *testing.T) {
	path := writeTestFile(t, "unsorted.txt",
		"GROUP\t2\tWindows\nGROUP\t1\tDoors\n")
	dest := filepath.Join(t.TempDir(), "sorted.txt")

	_, err := runCommand(t, "sort", "-o", dest, path)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "GROUP\t1\tDoors")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "rsparam v")
}
