package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/coords"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/output"
)

var (
	asJSON      bool
	filterTerm  string
	queryExpr   string
	setValues   []string
	mergeRanges []string
	insertRows  []int
	insertCols  []string
	resizeTo    string
	clearGrid   bool
	strict      bool
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print a grid as a table or JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the exported table as JSON")
	cmd.Flags().StringVar(&filterTerm, "filter", "", "Keep rows containing this text")
	cmd.Flags().StringVar(&queryExpr, "query", "", `Keep rows matching an expression, e.g. col("A") == "1234"`)
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	g, _, err := loadGrid(args[0])
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(cmd, gridsheet.Export(g))
	}

	var rows []int
	headerRows := opts.HeaderRowCount()
	if filterTerm != "" {
		rows = gridsheet.FilterRows(g, filterTerm, headerRows)
	}
	if queryExpr != "" {
		q, err := gridsheet.CompileQuery(queryExpr)
		if err != nil {
			return err
		}
		matched, err := q.Match(g, headerRows)
		if err != nil {
			return err
		}
		rows = intersect(rows, withHeader(matched, headerRows, g))
	}
	return output.RenderGrid(cmd.OutOrStdout(), g, rows)
}

func withHeader(rows []int, headerRows int, g *grid.Grid) []int {
	n, _ := g.Dimensions()
	out := make([]int, 0, len(rows)+headerRows)
	for r := 0; r < headerRows && r < n; r++ {
		out = append(out, r)
	}
	return append(out, rows...)
}

// intersect keeps the rows of b also in a; a nil a keeps all of b.
func intersect(a, b []int) []int {
	if a == nil {
		return b
	}
	keep := make(map[int]bool, len(a))
	for _, r := range a {
		keep[r] = true
	}
	out := []int{}
	for _, r := range b {
		if keep[r] {
			out = append(out, r)
		}
	}
	return out
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Convert between xlsx, JSON and YAML tables",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, name, err := loadGrid(args[0])
			if err != nil {
				return err
			}
			return saveGrid(args[1], name, g)
		},
	}
}

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [input] [output]",
		Short: "Apply edits to a grid and save the result",
		Long: `Edits run in this order: clear, resize, column inserts, row inserts,
merges, then cell values.`,
		Args: cobra.ExactArgs(2),
		RunE: runEdit,
	}
	cmd.Flags().StringArrayVar(&setValues, "set", nil, "Set a cell, e.g. C4=Accueil (repeatable)")
	cmd.Flags().StringArrayVar(&mergeRanges, "merge", nil, "Merge a range, e.g. C4:D4 (repeatable)")
	cmd.Flags().IntSliceVar(&insertRows, "insert-row", nil, "Insert an empty row before this 1-based row")
	cmd.Flags().StringSliceVar(&insertCols, "insert-col", nil, "Insert an empty column before this column")
	cmd.Flags().StringVar(&resizeTo, "resize", "", "Resize to ROWSxCOLS, e.g. 50x30")
	cmd.Flags().BoolVar(&clearGrid, "clear", false, "Start from an empty grid of the baseline size (default_rows x default_cols)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject inserts that split a merged region")
	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	g, name, err := loadGrid(args[0])
	if err != nil {
		return err
	}
	// flags override the config file
	if cmd.Flags().Changed("strict") {
		opts.StrictInsert = strict
	}

	session := gridsheet.NewSession(name, g)
	if clearGrid {
		session.Clear(opts.EmptyGrid())
	}
	if resizeTo != "" {
		rows, cols, err := parseSize(resizeTo)
		if err != nil {
			return err
		}
		if err := session.Apply(func(g *grid.Grid) (*grid.Grid, error) { return g.Resize(rows, cols) }); err != nil {
			return fmt.Errorf("resize: %w", err)
		}
	}
	for _, label := range insertCols {
		col, err := coords.ColumnLabelToIndex(label)
		if err != nil {
			return err
		}
		insert := (*grid.Grid).InsertColumn
		if opts.StrictInsert {
			insert = (*grid.Grid).InsertColumnStrict
		}
		if err := session.Apply(func(g *grid.Grid) (*grid.Grid, error) { return insert(g, col) }); err != nil {
			return fmt.Errorf("insert column %s: %w", label, err)
		}
	}
	for _, row := range insertRows {
		insert := (*grid.Grid).InsertRow
		if opts.StrictInsert {
			insert = (*grid.Grid).InsertRowStrict
		}
		if err := session.Apply(func(g *grid.Grid) (*grid.Grid, error) { return insert(g, row-1) }); err != nil {
			return fmt.Errorf("insert row %d: %w", row, err)
		}
	}
	if len(mergeRanges) > 0 {
		regions := make([]models.MergeRegion, 0, len(mergeRanges))
		for _, ref := range mergeRanges {
			sel, err := grid.ParseSelection(ref)
			if err != nil {
				return err
			}
			regions = append(regions, selectionRegion(sel))
		}
		err := session.Apply(func(g *grid.Grid) (*grid.Grid, error) {
			return g.ApplyMergeRegions(append(g.Merges(), regions...))
		})
		if err != nil {
			return fmt.Errorf("merge: %w", err)
		}
	}
	for _, assignment := range setValues {
		ref, value, ok := strings.Cut(assignment, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q (want CELL=VALUE)", assignment)
		}
		row, col, err := coords.ParseCellName(ref)
		if err != nil {
			return err
		}
		if err := session.Apply(func(g *grid.Grid) (*grid.Grid, error) { return g.SetCellValue(row, col, value) }); err != nil {
			return fmt.Errorf("set %s: %w", ref, err)
		}
	}

	if !session.Dirty() {
		log.Printf("no changes")
	}
	if err := saveGrid(args[1], name, session.Current()); err != nil {
		return err
	}
	session.MarkSaved()
	return nil
}

func selectionRegion(sel grid.Selection) models.MergeRegion {
	if sel.Kind == grid.SelectCell {
		return models.MergeRegion{StartRow: sel.Row, StartCol: sel.Col, EndRow: sel.Row, EndCol: sel.Col}
	}
	return models.MergeRegion{StartRow: sel.StartRow, StartCol: sel.StartCol, EndRow: sel.EndRow, EndCol: sel.EndCol}
}

func parseSize(s string) (int, int, error) {
	rs, cs, ok := strings.Cut(strings.ToLower(s), "x")
	rows, err1 := strconv.Atoi(rs)
	cols, err2 := strconv.Atoi(cs)
	if !ok || err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("invalid size %q (want ROWSxCOLS)", s)
	}
	return rows, cols, nil
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [file] [key]",
		Short: "Find a row by its key column and list its shifts",
		Args:  cobra.ExactArgs(2),
		RunE:  runFind,
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the shifts as JSON")
	return cmd
}

func runFind(cmd *cobra.Command, args []string) error {
	g, _, err := loadGrid(args[0])
	if err != nil {
		return err
	}
	keyCol, err := opts.KeyColumnIndex()
	if err != nil {
		return err
	}
	row, err := gridsheet.FindRow(g, keyCol, args[1], opts.HeaderRowCount())
	if err != nil {
		return err
	}

	fromCol := 0
	if len(opts.TimeColumns) > 0 {
		if fromCol, err = coords.ColumnLabelToIndex(opts.TimeColumns[0]); err != nil {
			return err
		}
	}
	shifts := gridsheet.Shifts(g, row, fromCol)
	if asJSON {
		return printJSON(cmd, shifts)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "row %d\n", row+1)
	for _, s := range shifts {
		window := s.Start
		if window != "" && s.End != "" {
			window += "-" + s.End
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", coords.CellName(s.Row, s.Col), window, s.Label)
	}
	return nil
}

func newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select [file] [ref]",
		Short: "Print the cells of a selection such as C4, C4:F9, 4:4 or C:C",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := loadGrid(args[0])
			if err != nil {
				return err
			}
			sel, err := grid.ParseSelection(args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			rows, cols := g.Dimensions()
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					if !sel.Contains(r, c) {
						continue
					}
					cell, _ := g.CellAt(r, c)
					if cell.Hidden {
						continue
					}
					fmt.Fprintf(out, "%s\t%s\n", coords.CellName(r, c), cell.Value)
				}
			}
			return nil
		},
	}
}

func newLabelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "label [n|label|cell]...",
		Short: "Convert between column numbers, column labels and cell names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				s, err := describeRef(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}
}

func describeRef(arg string) (string, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 0 {
			return "", fmt.Errorf("%w: negative column %d", coords.ErrInvalidLabel, n)
		}
		return fmt.Sprintf("%d\t%s", n, coords.IndexToColumnLabel(n)), nil
	}
	if c, err := coords.ColumnLabelToIndex(arg); err == nil {
		return fmt.Sprintf("%s\t%d", strings.ToUpper(arg), c), nil
	}
	row, col, err := coords.ParseCellName(arg)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\trow %d\tcol %d", coords.CellName(row, col), row, col), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
