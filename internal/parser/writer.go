package parser

import (
	"fmt"
	"strings"

	"rsparam/internal/encoding"
	"rsparam/pkg/sptypes"
)

// Comment banner written at the top of every generated file. Comment
// lines are skipped on parse, so the banner does not affect round-trips.
var headerBanner = []string{
	"# This is a Revit shared parameter file.",
	"# Do not edit manually.",
}

// Version tokens used when the source file carried no META line. A
// generated file must always carry a valid header to remain a valid
// file of this format.
const (
	defaultVersion    = "2"
	defaultMinVersion = "1"
)

// Write serializes a SharedParamFile back to the tab-delimited text
// format under the named encoding. The header is regenerated rather
// than copied: banner, META line (with default version tokens when the
// source had none), then the GROUP and PARAM sections with their column
// markers. Record order is preserved as-is.
func Write(f *sptypes.SharedParamFile, encodingName string) ([]byte, error) {
	var b strings.Builder

	for _, line := range headerBanner {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	version := f.Version
	if version == "" {
		version = defaultVersion
	}
	minVersion := f.MinVersion
	if minVersion == "" {
		minVersion = defaultMinVersion
	}
	b.WriteString("*META\tVERSION\tMINVERSION\n")
	fmt.Fprintf(&b, "META\t%s\t%s\n", version, minVersion)

	b.WriteString("*GROUP\tID\tNAME\n")
	for _, g := range f.Groups {
		fmt.Fprintf(&b, "GROUP\t%d\t%s\n", g.ID, g.Name)
	}

	b.WriteString("*PARAM\tGUID\tNAME\tDATATYPE\tGROUP\tDATACATEGORY\tVISIBLE\tDESCRIPTION\tUSERMODIFIABLE\n")
	for _, p := range f.Params {
		fmt.Fprintf(&b, "PARAM\t%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			p.GUID, p.Name, p.DataType, p.GroupID,
			p.DataCategory, p.Visible, p.Description, p.UserModifiable)
	}

	return encoding.Encode(b.String(), encodingName)
}
