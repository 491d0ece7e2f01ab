package xlsxio

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/coords"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

const defaultSheet = "Sheet1"

// Save writes t as the only worksheet of a new workbook at path.
func Save(path, sheet string, t models.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = defaultSheet
	}
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return err
		}
	}
	if err := WriteSheet(f, sheet, t); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// WriteSheet writes the values, merges, styles and sizes of t into an
// existing worksheet. Numeric text is stored as numbers.
func WriteSheet(f *excelize.File, sheet string, t models.Table) error {
	for r, row := range t.Rows {
		vals := make([]any, len(row))
		for c, v := range row {
			vals[c] = cellValue(v)
		}
		if err := f.SetSheetRow(sheet, coords.CellName(r, 0), &vals); err != nil {
			return NewSheetError(sheet, "cells", err)
		}
	}

	for _, m := range t.Merges {
		if m.IsSingleCell() {
			continue
		}
		start, end := coords.CellName(m.StartRow, m.StartCol), coords.CellName(m.EndRow, m.EndCol)
		if err := f.MergeCell(sheet, start, end); err != nil {
			return NewSheetError(sheet, "merges", err)
		}
	}

	ids := make(map[models.Style]int)
	for _, h := range t.Styles {
		name := coords.CellName(h.Row, h.Col)
		if st := h.CellStyle(); !st.IsZero() {
			id, ok := ids[st]
			if !ok {
				var err error
				if id, err = f.NewStyle(toExcelStyle(st)); err != nil {
					return NewSheetError(sheet, "styles", fmt.Errorf("%s: %w", name, err))
				}
				ids[st] = id
			}
			if err := f.SetCellStyle(sheet, name, name, id); err != nil {
				return NewSheetError(sheet, "styles", err)
			}
		}
		if h.ColumnWidthPx > 0 {
			col := coords.IndexToColumnLabel(h.Col)
			if err := f.SetColWidth(sheet, col, col, PixelsToColWidth(h.ColumnWidthPx)); err != nil {
				return NewSheetError(sheet, "sizes", err)
			}
		}
		if h.RowHeightPx > 0 {
			if err := f.SetRowHeight(sheet, h.Row+1, PixelsToPoints(h.RowHeightPx)); err != nil {
				return NewSheetError(sheet, "sizes", err)
			}
		}
	}
	return nil
}

// cellValue stores s as a number only when the number prints back as s, so
// text such as "00123", "+5" or "1e3" stays text.
func cellValue(s string) any {
	switch v := parseValue(s).(type) {
	case int64:
		if strconv.FormatInt(v, 10) == s {
			return v
		}
	case float64:
		if strconv.FormatFloat(v, 'f', -1, 64) == s {
			return v
		}
	case nil:
		return nil
	}
	return s
}

func toExcelStyle(st models.Style) *excelize.Style {
	xs := &excelize.Style{}
	if st.BackgroundColor != "" {
		xs.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{st.BackgroundColor}}
	}
	if st.Bold || st.Italic || st.Underline || st.TextColor != "" {
		xs.Font = &excelize.Font{Bold: st.Bold, Italic: st.Italic, Color: st.TextColor}
		if st.Underline {
			xs.Font.Underline = "single"
		}
	}
	if st.HorizontalAlign != "" || st.VerticalAlign != "" {
		xs.Alignment = &excelize.Alignment{Horizontal: st.HorizontalAlign, Vertical: st.VerticalAlign}
	}
	return xs
}
