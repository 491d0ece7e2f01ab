package models

import "fmt"

// MergeRegion is an inclusive, 0-based rectangle of merged cells.
type MergeRegion struct {
	// StartRow is the anchor row.
	StartRow int `json:"start_row" yaml:"start_row"`
	// StartCol is the anchor column.
	StartCol int `json:"start_col" yaml:"start_col"`
	// EndRow is the last covered row (inclusive).
	EndRow int `json:"end_row" yaml:"end_row"`
	// EndCol is the last covered column (inclusive).
	EndCol int `json:"end_col" yaml:"end_col"`
}

// RowSpan returns the number of rows covered.
func (m MergeRegion) RowSpan() int { return m.EndRow - m.StartRow + 1 }

// ColSpan returns the number of columns covered.
func (m MergeRegion) ColSpan() int { return m.EndCol - m.StartCol + 1 }

// Contains reports whether (row, col) lies inside the region.
func (m MergeRegion) Contains(row, col int) bool {
	return row >= m.StartRow && row <= m.EndRow && col >= m.StartCol && col <= m.EndCol
}

// IsSingleCell reports whether the region covers one cell only.
func (m MergeRegion) IsSingleCell() bool {
	return m.StartRow == m.EndRow && m.StartCol == m.EndCol
}

func (m MergeRegion) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", m.StartRow, m.StartCol, m.EndRow, m.EndCol)
}
