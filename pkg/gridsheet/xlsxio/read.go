package xlsxio

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/coords"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// ReadOptions configures Load.
type ReadOptions struct {
	// Sheet names the worksheet to read. If empty, the first sheet is used.
	Sheet string
	// PrintArea restricts the read to the sheet's first print area, when it
	// has one.
	PrintArea bool
}

// Sheet is one worksheet read from a workbook.
type Sheet struct {
	Name  string
	Table models.SparseTable
}

// Load opens the workbook at path and reads one worksheet.
func Load(path string, opts ReadOptions) (*Sheet, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := opts.Sheet
	if name == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
		}
		name = sheets[0]
	}

	var area *models.MergeRegion
	if opts.PrintArea {
		areas, err := PrintAreas(f)
		if err != nil {
			return nil, NewSheetError(name, "print_area", err)
		}
		if a := areas[name]; len(a) > 0 {
			area = &a[0]
		}
	}

	table, err := ReadArea(f, name, area)
	if err != nil {
		return nil, err
	}
	return &Sheet{Name: name, Table: table}, nil
}

// ReadSheet reads a whole worksheet.
func ReadSheet(f *excelize.File, sheet string) (models.SparseTable, error) {
	return ReadArea(f, sheet, nil)
}

// ReadArea reads the cells of sheet inside area (0-based, inclusive), or the
// whole sheet when area is nil. Merges crossing the area border are dropped.
func ReadArea(f *excelize.File, sheet string, area *models.MergeRegion) (models.SparseTable, error) {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return models.SparseTable{}, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.SparseTable{}, NewSheetError(sheet, "cells", err)
	}
	merges, err := readMerges(f, sheet)
	if err != nil {
		return models.SparseTable{}, NewSheetError(sheet, "merges", err)
	}

	// the sheet extent covers values and merges
	rows, cols := len(raw), 0
	for _, row := range raw {
		cols = max(cols, len(row))
	}
	for _, m := range merges {
		rows, cols = max(rows, m.EndRow+1), max(cols, m.EndCol+1)
	}

	bounds := models.MergeRegion{EndRow: rows - 1, EndCol: cols - 1}
	if area != nil {
		bounds = *area
	}

	var t models.SparseTable
	for r := bounds.StartRow; r <= bounds.EndRow; r++ {
		var out []any
		if area != nil {
			out = make([]any, bounds.ColSpan())
		}
		if r < len(raw) {
			for c := bounds.StartCol; c < len(raw[r]) && c <= bounds.EndCol; c++ {
				v, err := readValue(f, sheet, r, c, raw[r][c])
				if err != nil {
					return models.SparseTable{}, NewSheetError(sheet, "cells", err)
				}
				if area == nil {
					out = append(out, v)
				} else {
					out[c-bounds.StartCol] = v
				}
			}
		}
		t.Rows = append(t.Rows, out)
	}

	for _, m := range merges {
		if !bounds.Contains(m.StartRow, m.StartCol) || !bounds.Contains(m.EndRow, m.EndCol) {
			continue
		}
		t.Merges = append(t.Merges, models.MergeRegion{
			StartRow: m.StartRow - bounds.StartRow,
			StartCol: m.StartCol - bounds.StartCol,
			EndRow:   m.EndRow - bounds.StartRow,
			EndCol:   m.EndCol - bounds.StartCol,
		})
	}
	if area == nil {
		padToMerges(&t)
	}

	if t.Styles, err = readStyles(f, sheet, bounds, len(t.Rows)); err != nil {
		return models.SparseTable{}, err
	}
	return t, nil
}

// padToMerges makes sure every merge lies inside the rows of t.
func padToMerges(t *models.SparseTable) {
	for _, m := range t.Merges {
		row := t.Rows[m.EndRow]
		for len(row) <= m.EndCol {
			row = append(row, nil)
		}
		t.Rows[m.EndRow] = row
	}
}

func readMerges(f *excelize.File, sheet string) ([]models.MergeRegion, error) {
	cells, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}
	regions := make([]models.MergeRegion, 0, len(cells))
	for _, mc := range cells {
		r1, c1, r2, c2, err := coords.ParseRangeName(mc.GetStartAxis() + ":" + mc.GetEndAxis())
		if err != nil {
			return nil, err
		}
		regions = append(regions, models.MergeRegion{StartRow: r1, StartCol: c1, EndRow: r2, EndCol: c2})
	}
	return regions, nil
}

// readStyles collects cell styles, column widths (on the first row) and row
// heights (on the first column) for the cells of bounds.
func readStyles(f *excelize.File, sheet string, bounds models.MergeRegion, rows int) ([]models.StyleHint, error) {
	if rows == 0 {
		return nil, nil
	}
	hints := make(map[[2]int]*models.StyleHint)
	hint := func(r, c int) *models.StyleHint {
		h, ok := hints[[2]int{r, c}]
		if !ok {
			h = &models.StyleHint{Row: r, Col: c}
			hints[[2]int{r, c}] = h
		}
		return h
	}

	cache := make(map[int]models.Style)
	for r := 0; r < rows; r++ {
		for c := 0; c < bounds.ColSpan(); c++ {
			name := coords.CellName(bounds.StartRow+r, bounds.StartCol+c)
			id, err := f.GetCellStyle(sheet, name)
			if err != nil {
				return nil, NewSheetError(sheet, "styles", err)
			}
			if id == 0 {
				continue
			}
			st, ok := cache[id]
			if !ok {
				xs, err := f.GetStyle(id)
				if err != nil {
					return nil, NewSheetError(sheet, "styles", err)
				}
				st = fromExcelStyle(xs)
				cache[id] = st
			}
			if st.IsZero() {
				continue
			}
			h := hint(r, c)
			h.BackgroundColorHex, h.TextColorHex = st.BackgroundColor, st.TextColor
			h.Bold, h.Italic, h.Underline = st.Bold, st.Italic, st.Underline
			h.HorizontalAlign, h.VerticalAlign = st.HorizontalAlign, st.VerticalAlign
		}
	}

	for c := 0; c < bounds.ColSpan(); c++ {
		w, err := f.GetColWidth(sheet, coords.IndexToColumnLabel(bounds.StartCol+c))
		if err != nil {
			return nil, NewSheetError(sheet, "sizes", err)
		}
		if w != DefaultColWidth && w > 0 {
			hint(0, c).ColumnWidthPx = ColWidthToPixels(w)
		}
	}
	for r := 0; r < rows; r++ {
		h, err := f.GetRowHeight(sheet, bounds.StartRow+r+1)
		if err != nil {
			return nil, NewSheetError(sheet, "sizes", err)
		}
		if h != DefaultRowHeight && h > 0 {
			hint(r, 0).RowHeightPx = PointsToPixels(h)
		}
	}

	out := make([]models.StyleHint, 0, len(hints))
	for _, h := range hints {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out, nil
}

func fromExcelStyle(xs *excelize.Style) models.Style {
	var st models.Style
	if xs == nil {
		return st
	}
	if xs.Fill.Type == "pattern" && xs.Fill.Pattern == 1 && len(xs.Fill.Color) > 0 {
		st.BackgroundColor = normalizeColor(xs.Fill.Color[0])
	}
	if xs.Font != nil {
		st.Bold = xs.Font.Bold
		st.Italic = xs.Font.Italic
		st.Underline = xs.Font.Underline != "" && xs.Font.Underline != "none"
		st.TextColor = normalizeColor(xs.Font.Color)
	}
	if xs.Alignment != nil {
		st.HorizontalAlign = horizontalAlign(xs.Alignment.Horizontal)
		st.VerticalAlign = verticalAlign(xs.Alignment.Vertical)
	}
	return st
}

func horizontalAlign(a string) string {
	switch a {
	case models.AlignLeft, models.AlignRight:
		return a
	case models.AlignCenter, "centerContinuous":
		return models.AlignCenter
	}
	return ""
}

func verticalAlign(a string) string {
	switch a {
	case models.AlignTop, models.AlignBottom, models.AlignMiddle:
		return a
	}
	return ""
}

// PrintAreas returns the print areas of every sheet, keyed by sheet name.
func PrintAreas(f *excelize.File) (map[string][]models.MergeRegion, error) {
	result := make(map[string][]models.MergeRegion)
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		for _, part := range strings.Split(dn.RefersTo, ",") {
			idx := strings.LastIndex(part, "!")
			if idx < 0 {
				continue
			}
			sheet := strings.Trim(strings.TrimSpace(part[:idx]), "'")
			r1, c1, r2, c2, err := coords.ParseRangeName(part[idx+1:])
			if err != nil {
				return nil, fmt.Errorf("print area %q: %w", dn.RefersTo, err)
			}
			result[sheet] = append(result[sheet], models.MergeRegion{StartRow: r1, StartCol: c1, EndRow: r2, EndCol: c2})
		}
	}
	return result, nil
}

// readValue converts a raw cell value. Cells stored as text keep their text
// even when it looks like a number.
func readValue(f *excelize.File, sheet string, row, col int, raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	typ, err := f.GetCellType(sheet, coords.CellName(row, col))
	if err != nil {
		return nil, err
	}
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return raw, nil
	}
	return parseValue(raw), nil
}

// parseValue attempts to parse a raw cell value as a number.
// Returns nil for empty cells, int64 for integers, float64 for decimals, or
// the original string.
func parseValue(s string) any {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return s
}
