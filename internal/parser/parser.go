// Package parser converts shared parameter file bytes into the in-memory
// record model, and serializes files back out to the same text format.
//
// The format is line oriented and tab delimited. A line is classified by
// its first tab token: asterisk-prefixed tokens are header markers whose
// content is regenerated on write, META carries the format version,
// GROUP and PARAM carry records, and anything else is skipped for
// forward compatibility with unknown record kinds.
package parser

import (
	"strconv"
	"strings"

	"rsparam/internal/encoding"
	"rsparam/internal/logger"
	"rsparam/pkg/sptypes"
)

const (
	tokenMeta  = "META"
	tokenGroup = "GROUP"
	tokenParam = "PARAM"
)

// Minimum tab-delimited field counts per record kind.
const (
	minGroupFields = 3 // GROUP, id, name
	minParamFields = 5 // PARAM, guid, name, datatype, group id
)

// Parse converts raw file bytes under the given encoding into a
// SharedParamFile. It fails with a DecodeError when the bytes cannot be
// decoded, and with a MalformedLineError on the first GROUP or PARAM
// line that cannot be tokenized into its minimum field count or whose
// fields fail validation. Records keep their declaration order and
// carry their 1-based source line number.
func Parse(data []byte, encodingName string) (*sptypes.SharedParamFile, error) {
	text, err := encoding.Decode(data, encodingName)
	if err != nil {
		return nil, err
	}

	// A UTF-8 BOM would otherwise glue itself onto the first token.
	text = strings.TrimPrefix(text, "\ufeff")

	file := &sptypes.SharedParamFile{}
	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimSuffix(raw, "\r")
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		switch kind := fields[0]; {
		case strings.HasPrefix(kind, "*"):
			// Header marker. Content is discarded; Write regenerates
			// an equivalent header.
		case kind == tokenMeta:
			if len(fields) > 1 {
				file.Version = fields[1]
			}
			if len(fields) > 2 {
				file.MinVersion = fields[2]
			}
		case kind == tokenGroup:
			group, err := parseGroup(fields, line, lineNo)
			if err != nil {
				return nil, err
			}
			file.Groups = append(file.Groups, group)
		case kind == tokenParam:
			param, err := parseParam(fields, line, lineNo)
			if err != nil {
				return nil, err
			}
			file.Params = append(file.Params, param)
		default:
			// Unknown record kind, skipped.
		}
	}

	logger.Debug("parsed shared parameter file",
		"groups", len(file.Groups), "params", len(file.Params), "version", file.Version)
	return file, nil
}

// parseGroup builds a ParamGroup from a GROUP line.
func parseGroup(fields []string, line string, lineNo int) (sptypes.ParamGroup, error) {
	if len(fields) < minGroupFields {
		return sptypes.ParamGroup{}, &sptypes.MalformedLineError{
			LineNumber: lineNo,
			RawText:    line,
			Reason:     "GROUP line needs at least 3 tab-delimited fields",
		}
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return sptypes.ParamGroup{}, &sptypes.MalformedLineError{
			LineNumber: lineNo,
			RawText:    line,
			Reason:     "group id is not an integer",
		}
	}
	return sptypes.ParamGroup{ID: id, Name: fields[2], LineNumber: lineNo}, nil
}

// parseParam builds a ParamDef from a PARAM line. Trailing fields past
// the group id are optional for forward compatibility with format
// revisions and default to the empty string.
func parseParam(fields []string, line string, lineNo int) (sptypes.ParamDef, error) {
	if len(fields) < minParamFields {
		return sptypes.ParamDef{}, &sptypes.MalformedLineError{
			LineNumber: lineNo,
			RawText:    line,
			Reason:     "PARAM line needs at least 5 tab-delimited fields",
		}
	}
	guid, err := sptypes.NormalizeGUID(fields[1])
	if err != nil {
		return sptypes.ParamDef{}, &sptypes.MalformedLineError{
			LineNumber: lineNo,
			RawText:    line,
			Reason:     err.Error(),
		}
	}
	groupID, err := strconv.Atoi(fields[4])
	if err != nil {
		return sptypes.ParamDef{}, &sptypes.MalformedLineError{
			LineNumber: lineNo,
			RawText:    line,
			Reason:     "group id is not an integer",
		}
	}
	return sptypes.ParamDef{
		GUID:           guid,
		Name:           fields[2],
		DataType:       fields[3],
		GroupID:        groupID,
		DataCategory:   fieldAt(fields, 5),
		Visible:        fieldAt(fields, 6),
		Description:    fieldAt(fields, 7),
		UserModifiable: fieldAt(fields, 8),
		LineNumber:     lineNo,
	}, nil
}

// fieldAt returns the field at index i, or "" when the line is shorter.
func fieldAt(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
