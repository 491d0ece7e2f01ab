package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/coords"
)

// SelectionKind tags the shape of a Selection.
type SelectionKind int

const (
	// SelectCell targets a single cell.
	SelectCell SelectionKind = iota
	// SelectRow targets a full row.
	SelectRow
	// SelectColumn targets a full column.
	SelectColumn
	// SelectRange targets an inclusive rectangle.
	SelectRange
)

// Selection is the transient set of highlighted cells.
// Only the fields relevant to Kind are meaningful.
type Selection struct {
	Kind     SelectionKind
	Row      int
	Col      int
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// Edges flags which sides of a cell lie on the selection boundary.
type Edges struct {
	Top, Bottom, Left, Right bool
}

// Dimensioner is anything that knows its row and column counts.
type Dimensioner interface {
	Dimensions() (rows, cols int)
}

// CellSelection selects (row, col).
func CellSelection(row, col int) Selection {
	return Selection{Kind: SelectCell, Row: row, Col: col}
}

// RowSelection selects a full row.
func RowSelection(row int) Selection {
	return Selection{Kind: SelectRow, Row: row}
}

// ColumnSelection selects a full column.
func ColumnSelection(col int) Selection {
	return Selection{Kind: SelectColumn, Col: col}
}

// RangeSelection selects the rectangle spanned by two corners in any order.
// A rectangle of one cell becomes a cell selection.
func RangeSelection(row1, col1, row2, col2 int) Selection {
	minRow, maxRow := min(row1, row2), max(row1, row2)
	minCol, maxCol := min(col1, col2), max(col1, col2)
	if minRow == maxRow && minCol == maxCol {
		return CellSelection(minRow, minCol)
	}
	return Selection{
		Kind:     SelectRange,
		StartRow: minRow,
		StartCol: minCol,
		EndRow:   maxRow,
		EndCol:   maxCol,
	}
}

// Contains reports whether (row, col) is part of the selection.
func (s Selection) Contains(row, col int) bool {
	switch s.Kind {
	case SelectCell:
		return s.Row == row && s.Col == col
	case SelectRow:
		return s.Row == row
	case SelectColumn:
		return s.Col == col
	case SelectRange:
		return row >= s.StartRow && row <= s.EndRow && col >= s.StartCol && col <= s.EndCol
	}
	return false
}

// Edges reports which sides of (row, col) border the selection.
// Cells outside the selection have no edges.
func (s Selection) Edges(d Dimensioner, row, col int) Edges {
	if !s.Contains(row, col) {
		return Edges{}
	}
	rows, cols := d.Dimensions()
	switch s.Kind {
	case SelectCell:
		return Edges{Top: true, Bottom: true, Left: true, Right: true}
	case SelectRow:
		return Edges{Top: true, Bottom: true, Left: col == 0, Right: col == cols-1}
	case SelectColumn:
		return Edges{Top: row == 0, Bottom: row == rows-1, Left: true, Right: true}
	default:
		return Edges{
			Top:    row == s.StartRow,
			Bottom: row == s.EndRow,
			Left:   col == s.StartCol,
			Right:  col == s.EndCol,
		}
	}
}

// Label renders the selection in reference notation: "C4", "C4:F9", "4:4"
// or "C:C".
func (s Selection) Label() string {
	switch s.Kind {
	case SelectCell:
		return coords.CellName(s.Row, s.Col)
	case SelectRow:
		n := strconv.Itoa(s.Row + 1)
		return n + ":" + n
	case SelectColumn:
		l := coords.IndexToColumnLabel(s.Col)
		return l + ":" + l
	default:
		return coords.RangeName(s.StartRow, s.StartCol, s.EndRow, s.EndCol)
	}
}

// ParseSelection reads a selection written in reference notation, the
// inverse of Label.
func ParseSelection(ref string) (Selection, error) {
	ref = strings.TrimSpace(ref)
	start, end, isRange := strings.Cut(ref, ":")
	if !isRange {
		row, col, err := coords.ParseCellName(ref)
		if err != nil {
			return Selection{}, err
		}
		return CellSelection(row, col), nil
	}

	// "4:4" selects a row, "C:C" a column
	if r1, err1 := strconv.Atoi(start); err1 == nil {
		r2, err2 := strconv.Atoi(end)
		if err2 != nil || r1 != r2 || r1 < 1 {
			return Selection{}, fmt.Errorf("%w: row selection %q", coords.ErrInvalidLabel, ref)
		}
		return RowSelection(r1 - 1), nil
	}
	if c1, err1 := coords.ColumnLabelToIndex(start); err1 == nil {
		c2, err2 := coords.ColumnLabelToIndex(end)
		if err2 != nil || c1 != c2 {
			return Selection{}, fmt.Errorf("%w: column selection %q", coords.ErrInvalidLabel, ref)
		}
		return ColumnSelection(c1), nil
	}

	r1, c1, r2, c2, err := coords.ParseRangeName(ref)
	if err != nil {
		return Selection{}, err
	}
	return RangeSelection(r1, c1, r2, c2), nil
}
