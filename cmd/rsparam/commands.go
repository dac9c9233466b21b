package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rsparam/internal/editor"
	"rsparam/internal/output"
	"rsparam/internal/parser"
	"rsparam/internal/query"
	"rsparam/pkg/sptypes"
)

// loadFile reads and parses one shared parameter file under the
// configured encoding. File-system access happens only here; the core
// packages are handed bytes.
func loadFile(path string) (*sptypes.SharedParamFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	f, err := parser.Parse(data, encodingName())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// columnTokens splits a colon-separated -c value, falling back to the
// given defaults when unset.
func columnTokens(spec string, defaults []string) []string {
	if spec == "" {
		return defaults
	}
	return strings.Split(spec, ":")
}

// sharedGroupColumnTokens keeps the tokens of a column spec that name
// group columns, so a spec with shared tokens like "name:lineno" shapes
// the group table too when both record kinds print. Falls back to the
// defaults when the spec names no group column.
func sharedGroupColumnTokens(spec string, defaults []string) []string {
	if spec == "" {
		return defaults
	}
	var out []string
	for _, t := range strings.Split(spec, ":") {
		if _, err := sptypes.ResolveGroupColumns([]string{t}); err == nil {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return defaults
	}
	return out
}

// printGroupTable renders a group table followed by its item count.
func printGroupTable(p *output.Printer, groups []sptypes.ParamGroup, columns []string) error {
	tbl, err := output.GroupTable(groups, columns, p.Theme())
	if err != nil {
		return err
	}
	p.Println(tbl)
	p.Info(fmt.Sprintf("Total of %d items.", len(groups)))
	return nil
}

// printParamTable renders a parameter table followed by its item count.
func printParamTable(p *output.Printer, f *sptypes.SharedParamFile, params []sptypes.ParamDef, columns []string) error {
	tbl, err := output.ParamTable(f, params, columns, p.Theme())
	if err != nil {
		return err
	}
	p.Println(tbl)
	p.Info(fmt.Sprintf("Total of %d items.", len(params)))
	return nil
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list <src_file>",
	Short: "List parameter groups and definitions",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

// findCmd represents the find command; regex search over record names.
var findCmd = &cobra.Command{
	Use:   "find <regex_pattern> <src_file>",
	Short: "Find groups and parameters matching a regular expression",
	Args:  cobra.ExactArgs(2),
	RunE:  runFind,
}

// duplCmd represents the find dupl subcommand
var duplCmd = &cobra.Command{
	Use:   "dupl <src_file>",
	Short: "Find duplicate groups and parameters",
	Args:  cobra.ExactArgs(1),
	RunE:  runDupl,
}

// compCmd represents the comp command
var compCmd = &cobra.Command{
	Use:   "comp <first_file> <second_file>",
	Short: "Compare two shared parameter files",
	Args:  cobra.ExactArgs(2),
	RunE:  runComp,
}

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge <dest_file> <src_file>...",
	Short: "Merge shared parameter files into one",
	Long: `Merge concatenates groups and parameters from the source files, in the
order given. When two groups share an id or two parameters share a GUID,
the record from the earlier file wins; every dropped record is reported
as a warning. Identifiers are never renumbered.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMerge,
}

// sortCmd represents the sort command
var sortCmd = &cobra.Command{
	Use:   "sort <src_file>",
	Short: "Sort a shared parameter file canonically",
	Args:  cobra.ExactArgs(1),
	RunE:  runSort,
}

func init() {
	listCmd.Flags().BoolP("all", "a", false, "List groups and parameters")
	listCmd.Flags().BoolP("params", "p", false, "List parameters only")
	listCmd.Flags().BoolP("groups", "g", false, "List parameter groups only")
	listCmd.Flags().StringP("sortby", "s", "", `Sort listing by "name" or "group"`)
	listCmd.Flags().StringP("columns", "c", "", "Colon-separated list of data columns")
	listCmd.Flags().IntP("filter", "f", 0, "Filter parameters by group id")

	findCmd.Flags().BoolP("params", "p", false, "Match parameters only")
	findCmd.Flags().BoolP("groups", "g", false, "Match parameter groups only")

	duplCmd.Flags().BoolP("byname", "n", false, "Detect duplicates by name instead of GUID")
	duplCmd.Flags().BoolP("all", "a", false, "Report duplicate groups and parameters")
	duplCmd.Flags().BoolP("params", "p", false, "Report duplicate parameters only")
	duplCmd.Flags().BoolP("groups", "g", false, "Report duplicate groups only")
	findCmd.AddCommand(duplCmd)

	compCmd.Flags().BoolP("byname", "n", false, "Compare by name instead of GUID/id")
	compCmd.Flags().BoolP("params", "p", false, "Report unique parameters only")
	compCmd.Flags().BoolP("groups", "g", false, "Report unique groups only")
	compCmd.Flags().BoolP("first", "1", false, "Report records unique to the first file only")
	compCmd.Flags().BoolP("second", "2", false, "Report records unique to the second file only")
	compCmd.Flags().Bool("diff", false, "Show a text diff of the two files")

	sortCmd.Flags().StringP("sortby", "s", "name", `Sort by "name" or "group"`)
	sortCmd.Flags().StringP("output", "o", "", "Write the sorted file here instead of stdout")
}

func runList(cmd *cobra.Command, args []string) error {
	p, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	f, err := loadFile(args[0])
	if err != nil {
		return err
	}
	p.Info(fmt.Sprintf("encoding=%s", encodingName()))
	p.Title(fmt.Sprintf("source file: %s", args[0]))

	if sortBy, _ := cmd.Flags().GetString("sortby"); sortBy != "" {
		key, err := sptypes.ParseSortKey(sortBy)
		if err != nil {
			return err
		}
		f = editor.Sort(f, key)
	}

	columnSpec, _ := cmd.Flags().GetString("columns")
	paramsOnly, _ := cmd.Flags().GetBool("params")
	groupsOnly, _ := cmd.Flags().GetBool("groups")
	if all, _ := cmd.Flags().GetBool("all"); all {
		paramsOnly, groupsOnly = false, false
	}

	var groupFilter *int
	if cmd.Flags().Changed("filter") {
		id, _ := cmd.Flags().GetInt("filter")
		groupFilter = &id
	}

	if !paramsOnly {
		// The token sets differ between record kinds: a groups-only
		// listing takes the spec verbatim, a mixed one takes the tokens
		// that name group columns.
		columns := columnTokens(columnSpec, sptypes.DefaultGroupColumns())
		if !groupsOnly {
			columns = sharedGroupColumnTokens(columnSpec, sptypes.DefaultGroupColumns())
		}
		if err := printGroupTable(p, query.Groups(f), columns); err != nil {
			return err
		}
	}
	if !groupsOnly {
		columns := columnTokens(columnSpec, sptypes.DefaultParamColumns())
		if err := printParamTable(p, f, query.Params(f, groupFilter), columns); err != nil {
			return err
		}
	}
	return nil
}

func runFind(cmd *cobra.Command, args []string) error {
	p, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	pattern, path := args[0], args[1]
	f, err := loadFile(path)
	if err != nil {
		return err
	}
	p.Info(fmt.Sprintf("encoding=%s", encodingName()))
	p.Title(fmt.Sprintf("source file: %s", path))

	sel, err := query.Find(f, pattern)
	if err != nil {
		return err
	}

	paramsOnly, _ := cmd.Flags().GetBool("params")
	groupsOnly, _ := cmd.Flags().GetBool("groups")

	if len(sel.Groups) > 0 && !paramsOnly {
		p.Info(fmt.Sprintf("\ngroups matching: %s", pattern))
		if err := printGroupTable(p, sel.Groups, sptypes.DefaultGroupColumns()); err != nil {
			return err
		}
	}
	if len(sel.Params) > 0 && !groupsOnly {
		p.Info(fmt.Sprintf("\nparams matching: %s", pattern))
		if err := printParamTable(p, f, sel.Params, sptypes.DefaultParamColumns()); err != nil {
			return err
		}
	}
	return nil
}

func runDupl(cmd *cobra.Command, args []string) error {
	p, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	f, err := loadFile(args[0])
	if err != nil {
		return err
	}
	p.Info(fmt.Sprintf("encoding=%s", encodingName()))
	p.Title(fmt.Sprintf("source file: %s", args[0]))

	byName, _ := cmd.Flags().GetBool("byname")
	paramsOnly, _ := cmd.Flags().GetBool("params")
	groupsOnly, _ := cmd.Flags().GetBool("groups")
	if all, _ := cmd.Flags().GetBool("all"); all {
		paramsOnly, groupsOnly = false, false
	}

	set := query.Duplicates(f, byName)
	if set.Empty() {
		p.Info("no duplicates found")
		return nil
	}

	if !paramsOnly {
		p.Info(fmt.Sprintf("\nduplicate groups by %s:", set.Field))
		for _, dup := range set.Groups {
			p.Info(fmt.Sprintf("\nduplicates by %s: %s", set.Field, dup.Key))
			if err := printGroupTable(p, dup.Entries, sptypes.DefaultGroupColumns()); err != nil {
				return err
			}
		}
	}
	if !groupsOnly {
		p.Info(fmt.Sprintf("\nduplicate params by %s:", set.Field))
		for _, dup := range set.Params {
			p.Info(fmt.Sprintf("\nduplicates by %s: %s", set.Field, dup.Key))
			if err := printParamTable(p, f, dup.Entries, sptypes.DefaultParamColumns()); err != nil {
				return err
			}
		}
	}
	return nil
}

func runComp(cmd *cobra.Command, args []string) error {
	p, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	first, err := loadFile(args[0])
	if err != nil {
		return err
	}
	second, err := loadFile(args[1])
	if err != nil {
		return err
	}
	p.Info(fmt.Sprintf("encoding=%s", encodingName()))
	p.Title(fmt.Sprintf("first file: %s", args[0]))
	p.Title(fmt.Sprintf("second file: %s", args[1]))

	if showDiff, _ := cmd.Flags().GetBool("diff"); showDiff {
		firstText, err := parser.Write(first, "utf-8")
		if err != nil {
			return err
		}
		secondText, err := parser.Write(second, "utf-8")
		if err != nil {
			return err
		}
		p.Println(editor.TextDiff(string(firstText), string(secondText)))
		return nil
	}

	byName, _ := cmd.Flags().GetBool("byname")
	paramsOnly, _ := cmd.Flags().GetBool("params")
	groupsOnly, _ := cmd.Flags().GetBool("groups")
	firstOnly, _ := cmd.Flags().GetBool("first")
	secondOnly, _ := cmd.Flags().GetBool("second")

	diff := query.Compare(first, second, byName)

	if len(diff.First.Groups) > 0 && !paramsOnly && !secondOnly {
		p.Info("\nunique groups in first")
		if err := printGroupTable(p, diff.First.Groups, sptypes.DefaultGroupColumns()); err != nil {
			return err
		}
	}
	if len(diff.Second.Groups) > 0 && !paramsOnly && !firstOnly {
		p.Info("\nunique groups in second")
		if err := printGroupTable(p, diff.Second.Groups, sptypes.DefaultGroupColumns()); err != nil {
			return err
		}
	}
	if len(diff.First.Params) > 0 && !groupsOnly && !secondOnly {
		p.Info("\nunique parameters in first")
		if err := printParamTable(p, first, diff.First.Params, sptypes.DefaultParamColumns()); err != nil {
			return err
		}
	}
	if len(diff.Second.Params) > 0 && !groupsOnly && !firstOnly {
		p.Info("\nunique parameters in second")
		if err := printParamTable(p, second, diff.Second.Params, sptypes.DefaultParamColumns()); err != nil {
			return err
		}
	}
	return nil
}

func runMerge(cmd *cobra.Command, args []string) error {
	p, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	dest, sources := args[0], args[1:]
	p.Info(fmt.Sprintf("encoding=%s", encodingName()))
	p.Title(fmt.Sprintf("destination file: %s", dest))

	files := make([]*sptypes.SharedParamFile, 0, len(sources))
	for _, src := range sources {
		p.Title(fmt.Sprintf("source file: %s", src))
		f, err := loadFile(src)
		if err != nil {
			return err
		}
		files = append(files, f)
	}

	merged, conflicts := editor.Merge(files)
	for _, c := range conflicts {
		p.Warning(c.String())
	}

	out, err := parser.Write(merged, encodingName())
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, out, 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", dest, err)
	}

	p.Success(fmt.Sprintf("merged %d groups and %d params into %s (%d warnings)",
		len(merged.Groups), len(merged.Params), dest, len(conflicts)))
	return nil
}

func runSort(cmd *cobra.Command, args []string) error {
	p, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	f, err := loadFile(args[0])
	if err != nil {
		return err
	}
	p.Info(fmt.Sprintf("encoding=%s", encodingName()))
	p.Title(fmt.Sprintf("source file: %s", args[0]))

	sortBy, _ := cmd.Flags().GetString("sortby")
	key, err := sptypes.ParseSortKey(sortBy)
	if err != nil {
		return err
	}

	out, err := parser.Write(editor.Sort(f, key), encodingName())
	if err != nil {
		return err
	}

	if dest, _ := cmd.Flags().GetString("output"); dest != "" {
		if err := os.WriteFile(dest, out, 0644); err != nil {
			return fmt.Errorf("cannot write %s: %w", dest, err)
		}
		p.Success(fmt.Sprintf("sorted file written to %s", dest))
		return nil
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
