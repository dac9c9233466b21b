package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"rsparam/pkg/sptypes"
)

// newTable builds a borderless table with a header separator, styled
// like classic column output.
func newTable(theme *Theme, headers []string) *table.Table {
	cell := lipgloss.NewStyle().PaddingRight(2)
	header := theme.Header.PaddingRight(2)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderRow(false).
		BorderHeader(true).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers(headers...)
}

// ParamTable renders parameter definitions as a table using the given
// column tokens. The owning file is needed so the group column can
// resolve group references; a dangling reference renders as
// "unresolved". Unknown column tokens fail before anything renders.
func ParamTable(f *sptypes.SharedParamFile, params []sptypes.ParamDef, columns []string, theme *Theme) (string, error) {
	cols, err := sptypes.ResolveParamColumns(columns)
	if err != nil {
		return "", err
	}

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}

	t := newTable(theme, headers)
	for _, p := range params {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = c.Get(f, p)
		}
		t.Row(row...)
	}
	return t.String(), nil
}

// GroupTable renders parameter groups as a table using the given
// column tokens.
func GroupTable(groups []sptypes.ParamGroup, columns []string, theme *Theme) (string, error) {
	cols, err := sptypes.ResolveGroupColumns(columns)
	if err != nil {
		return "", err
	}

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}

	t := newTable(theme, headers)
	for _, g := range groups {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = c.Get(g)
		}
		t.Row(row...)
	}
	return t.String(), nil
}
