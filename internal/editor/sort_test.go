package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsparam/pkg/sptypes"
)

func unsortedFile() *sptypes.SharedParamFile {
	return &sptypes.SharedParamFile{
		Groups: []sptypes.ParamGroup{
			{ID: 2, Name: "Windows", LineNumber: 3},
			{ID: 1, Name: "Doors", LineNumber: 4},
		},
		Params: []sptypes.ParamDef{
			{GUID: "aaaaaaaa-0000-0000-0000-000000000001", Name: "B", GroupID: 2, LineNumber: 6},
			{GUID: "aaaaaaaa-0000-0000-0000-000000000002", Name: "A", GroupID: 1, LineNumber: 7},
			{GUID: "aaaaaaaa-0000-0000-0000-000000000003", Name: "A", GroupID: 2, LineNumber: 8},
		},
	}
}

func TestSort_ByName(t *testing.T) {
	sorted := Sort(unsortedFile(), sptypes.SortByName)

	require.Len(t, sorted.Groups, 2)
	assert.Equal(t, "Doors", sorted.Groups[0].Name)
	assert.Equal(t, "Windows", sorted.Groups[1].Name)

	require.Len(t, sorted.Params, 3)
	assert.Equal(t, "A", sorted.Params[0].Name)
	assert.Equal(t, "A", sorted.Params[1].Name)
	assert.Equal(t, "B", sorted.Params[2].Name)
	// Name tie broken by line number
	assert.Equal(t, 7, sorted.Params[0].LineNumber)
	assert.Equal(t, 8, sorted.Params[1].LineNumber)
}

func TestSort_ByNameIsCaseSensitive(t *testing.T) {
	f := &sptypes.SharedParamFile{
		Params: []sptypes.ParamDef{
			{GUID: "aaaaaaaa-0000-0000-0000-000000000001", Name: "alpha", LineNumber: 1},
			{GUID: "aaaaaaaa-0000-0000-0000-000000000002", Name: "Beta", LineNumber: 2},
		},
	}
	sorted := Sort(f, sptypes.SortByName)
	// Uppercase sorts before lowercase in byte order
	assert.Equal(t, "Beta", sorted.Params[0].Name)
	assert.Equal(t, "alpha", sorted.Params[1].Name)
}

func TestSort_ByGroupOrdersGroupIDThenName(t *testing.T) {
	// Params in groups [2,1,2] named [B,A,A] must come out as
	// group1/A, group2/A, group2/B.
	sorted := Sort(unsortedFile(), sptypes.SortByGroup)

	require.Len(t, sorted.Params, 3)
	assert.Equal(t, 1, sorted.Params[0].GroupID)
	assert.Equal(t, "A", sorted.Params[0].Name)
	assert.Equal(t, 2, sorted.Params[1].GroupID)
	assert.Equal(t, "A", sorted.Params[1].Name)
	assert.Equal(t, 2, sorted.Params[2].GroupID)
	assert.Equal(t, "B", sorted.Params[2].Name)

	// Groups still sort by name
	assert.Equal(t, "Doors", sorted.Groups[0].Name)
}

func TestSort_ByNameIsIdempotent(t *testing.T) {
	once := Sort(unsortedFile(), sptypes.SortByName)
	twice := Sort(once, sptypes.SortByName)
	assert.Equal(t, once, twice)
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	f := unsortedFile()
	want := unsortedFile()

	_ = Sort(f, sptypes.SortByName)
	assert.Equal(t, want, f)
}
