package models

// StyleHint carries the interchange form of a cell's style.
//
// ColumnWidthPx and RowHeightPx follow the interchange convention: exports
// place widths on row 0 hints and heights on column 0 hints. Imports accept
// them on any cell of the column or row.
type StyleHint struct {
	// Row is the 0-based row.
	Row int `json:"row" yaml:"row"`
	// Col is the 0-based column.
	Col int `json:"col" yaml:"col"`
	// BackgroundColorHex is the fill color (RRGGBB, optional leading # or alpha).
	BackgroundColorHex string `json:"background_color_hex,omitempty" yaml:"background_color_hex,omitempty"`
	// TextColorHex is the font color.
	TextColorHex string `json:"text_color_hex,omitempty" yaml:"text_color_hex,omitempty"`
	Bold         bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic       bool   `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underline    bool   `json:"underline,omitempty" yaml:"underline,omitempty"`
	// HorizontalAlign is one of left, center, right.
	HorizontalAlign string `json:"horizontal_align,omitempty" yaml:"horizontal_align,omitempty"`
	// VerticalAlign is one of top, center, bottom.
	VerticalAlign string `json:"vertical_align,omitempty" yaml:"vertical_align,omitempty"`
	// ColumnWidthPx is the width of column Col in pixels (0 if unset).
	ColumnWidthPx float64 `json:"column_width_px,omitempty" yaml:"column_width_px,omitempty"`
	// RowHeightPx is the height of row Row in pixels (0 if unset).
	RowHeightPx float64 `json:"row_height_px,omitempty" yaml:"row_height_px,omitempty"`
}

// CellStyle returns the cell-level part of the hint.
func (h StyleHint) CellStyle() Style {
	return Style{
		BackgroundColor: h.BackgroundColorHex,
		TextColor:       h.TextColorHex,
		Bold:            h.Bold,
		Italic:          h.Italic,
		Underline:       h.Underline,
		HorizontalAlign: h.HorizontalAlign,
		VerticalAlign:   h.VerticalAlign,
	}
}

// SparseTable is the import form of a sheet: ragged rows of raw values.
type SparseTable struct {
	// Rows holds raw values: string, float64, int, int64, bool or nil.
	Rows [][]any `json:"rows" yaml:"rows"`
	// Merges lists merged regions.
	Merges []MergeRegion `json:"merges,omitempty" yaml:"merges,omitempty"`
	// Styles lists per-cell style hints.
	Styles []StyleHint `json:"styles,omitempty" yaml:"styles,omitempty"`
}

// Table is the export form of a sheet: rectangular rows of text.
type Table struct {
	// Rows holds display values.
	Rows [][]string `json:"rows" yaml:"rows"`
	// Merges lists merged regions in row-major anchor order.
	Merges []MergeRegion `json:"merges,omitempty" yaml:"merges,omitempty"`
	// Styles lists per-cell style hints in row-major order.
	Styles []StyleHint `json:"styles,omitempty" yaml:"styles,omitempty"`
}

// Sparse converts an exported table back into import form.
func (t Table) Sparse() SparseTable {
	rows := make([][]any, len(t.Rows))
	for r, row := range t.Rows {
		rows[r] = make([]any, len(row))
		for c, v := range row {
			rows[r][c] = v
		}
	}
	return SparseTable{
		Rows:   rows,
		Merges: append([]MergeRegion(nil), t.Merges...),
		Styles: append([]StyleHint(nil), t.Styles...),
	}
}
